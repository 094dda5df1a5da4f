package simulator

import (
	"context"

	"github.com/suflem/mahjong-ai/common/config"
	"github.com/suflem/mahjong-ai/common/log"
)

// Run 按全局配置跑完一批模拟并输出汇总
func Run(ctx context.Context) error {
	gameConf := config.SimulatorConfig.GameConf
	cfg := Config{
		IncludeHonors: gameConf.IncludeHonors,
		MaxTurns:      gameConf.MaxTurns,
		BaseSeed:      gameConf.BaseSeed,
		Workers:       gameConf.Workers,
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	batch, err := RunBatch(cfg, gameConf.Rounds)
	if err != nil {
		return err
	}

	log.Info("模拟结束 局数=%d 流局=%d 庄胜=%d 自摸=%d 七对=%d",
		batch.Rounds, batch.DrawCount, batch.DealerWins, batch.ZimoCount, batch.QiduiCount)
	log.Info("各座位胜局=%v 平均回合=%.2f(±%.2f) 平均番=%.2f",
		batch.SeatWins, batch.MeanTurns, batch.StdDevTurns, batch.MeanFan)
	return nil
}
