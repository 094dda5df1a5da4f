package simulator

import (
	"sync"

	"github.com/montanaflynn/stats"

	"github.com/suflem/mahjong-ai/common/log"
	"github.com/suflem/mahjong-ai/game/engines/mahjong"
)

// BatchResult 批量模拟的汇总
type BatchResult struct {
	Rounds      int
	SeatWins    [mahjong.SeatCount]int
	DealerWins  int
	ZimoCount   int
	QiduiCount  int
	DrawCount   int // 流局数
	MeanTurns   float64
	StdDevTurns float64
	MeanFan     float64 // 只统计和牌局
	Results     []RoundResult
}

// RunBatch 并发跑 rounds 局，第 i 局用种子 BaseSeed+i、庄家 i%4，结果可复现
func RunBatch(cfg Config, rounds int) (BatchResult, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, rounds)
	results := make(chan RoundResult, rounds)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := RunRound(cfg, cfg.BaseSeed+int64(i), i%mahjong.SeatCount)
				if err != nil {
					errs <- err
					return
				}
				results <- result
			}
		}()
	}
	for i := 0; i < rounds; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)
	close(errs)

	if err := <-errs; err != nil {
		return BatchResult{}, err
	}

	batch := BatchResult{Results: make([]RoundResult, 0, rounds)}
	turns := make([]float64, 0, rounds)
	fanTotal := 0
	for r := range results {
		batch.Rounds++
		batch.Results = append(batch.Results, r)
		turns = append(turns, float64(r.Turns))
		if r.WinnerSeat < 0 {
			batch.DrawCount++
			continue
		}
		batch.SeatWins[r.WinnerSeat]++
		fanTotal += r.Fan
		if r.WinnerSeat == r.DealerSeat {
			batch.DealerWins++
		}
		if r.Reason == mahjong.TerminalZimo {
			batch.ZimoCount++
		}
		if r.Shape == mahjong.HuQidui {
			batch.QiduiCount++
		}
	}

	if len(turns) > 0 {
		mean, err := stats.Mean(turns)
		if err != nil {
			return BatchResult{}, err
		}
		stddev, err := stats.StandardDeviation(turns)
		if err != nil {
			return BatchResult{}, err
		}
		batch.MeanTurns = mean
		batch.StdDevTurns = stddev
	}
	if wins := batch.Rounds - batch.DrawCount; wins > 0 {
		batch.MeanFan = float64(fanTotal) / float64(wins)
	}

	log.Debug("批量模拟完成 rounds=%d draws=%d meanTurns=%.2f", batch.Rounds, batch.DrawCount, batch.MeanTurns)
	return batch, nil
}
