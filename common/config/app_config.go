package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var SimulatorConfig SimulatorConfiguration

type BaseConfig struct {
	ID         string `mapstructure:"id"`
	ServerType string `mapstructure:"serverType"`
	MetricPort int    `mapstructure:"metricPort"`
}

type SimulatorConfiguration struct {
	BaseConfig `mapstructure:",squash"`
	LogConf    `mapstructure:"log"`
	GameConf   `mapstructure:"game"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// GameConf 对局与模拟参数
type GameConf struct {
	IncludeHonors bool  `mapstructure:"includeHonors"` // 是否带风牌、箭牌（108/136 张）
	Rounds        int   `mapstructure:"rounds"`        // 模拟局数
	Workers       int   `mapstructure:"workers"`       // 并行 worker 数
	BaseSeed      int64 `mapstructure:"baseSeed"`      // 基准种子，每局种子 = baseSeed + 局序号
	MaxTurns      int   `mapstructure:"maxTurns"`      // 回合上限，超出按荒庄处理
}

func Load(configFile string) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("game.rounds", 100)
	v.SetDefault("game.workers", 1)
	v.SetDefault("game.maxTurns", 100)

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	var cfg SimulatorConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return err
	}
	if cfg.ServerType != "simulator" {
		return fmt.Errorf("unknown server type: %s", cfg.ServerType)
	}
	SimulatorConfig = cfg

	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		var next SimulatorConfiguration
		if err := v.Unmarshal(&next); err == nil {
			SimulatorConfig = next
		}
	})

	return nil
}
