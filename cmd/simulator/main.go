package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suflem/mahjong-ai/common/config"
	"github.com/suflem/mahjong-ai/common/log"
	"github.com/suflem/mahjong-ai/common/metrics"
	"github.com/suflem/mahjong-ai/simulator"
)

// 加载配置 -> 启动监控 -> 跑批量模拟

var configFile string

var rootCmd = &cobra.Command{
	Use:   "simulator",
	Short: "simulator 山东麻将对局模拟器",
	Long:  `simulator 山东麻将对局模拟器`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.Load(configFile); err != nil {
			log.Fatal("文件配置发生错误：%v", err)
		}
		log.InitLog(config.SimulatorConfig.ID, config.SimulatorConfig.LogConf.Level)
		log.Info("配置文件: %+v", config.SimulatorConfig)
		if config.SimulatorConfig.MetricPort > 0 {
			go func() {
				log.Info("启动监控..., URL: http://localhost:%d/debug/statsviz/", config.SimulatorConfig.MetricPort)
				err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", config.SimulatorConfig.MetricPort))
				if err != nil {
					panic(err)
				}
			}()
		}
		err := simulator.Run(context.Background())
		if err != nil {
			log.Error("发生异常: %v", err)
			os.Exit(-1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "configFile", "", "resource file")
	rootCmd.MarkFlagRequired("configFile")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %#v", err)
		os.Exit(1)
	}
}
