package simulator

import (
	"github.com/google/uuid"

	"github.com/suflem/mahjong-ai/game/ai"
	"github.com/suflem/mahjong-ai/game/engines/mahjong"
)

// Config 单局与批量模拟参数
type Config struct {
	IncludeHonors bool
	MaxTurns      int // 摸牌次数封顶，超限按流局处理
	BaseSeed      int64
	Workers       int
}

// RoundResult 一局的结果
type RoundResult struct {
	RoundID    string
	Seed       int64
	DealerSeat int
	WinnerSeat int // -1 表示流局
	Reason     mahjong.TerminalReason
	Shape      mahjong.HuShape
	Fan        int
	Turns      int // 实际摸牌次数
	WallLeft   int
}

// RunRound 以给定种子跑完一局，四个座位由同一套启发式决策驱动
func RunRound(cfg Config, seed int64, dealerSeat int) (RoundResult, error) {
	eg := mahjong.NewShandongMahjong4p(cfg.IncludeHonors, seed)
	if err := eg.StartRound(dealerSeat); err != nil {
		return RoundResult{}, err
	}
	adv := ai.NewAdvisor(eg.Searcher, ai.DefaultWeights())

	for !eg.Finished() {
		if eg.Turn.TurnCount >= cfg.MaxTurns {
			eg.ForceWallExhausted()
			break
		}
		switch eg.Turn.Phase {
		case mahjong.PhaseAwaitDraw:
			if err := eg.ApplyDraw(eg.Turn.Current()); err != nil {
				return RoundResult{}, err
			}
		case mahjong.PhaseAwaitDiscard:
			if err := playDiscardPhase(eg, adv); err != nil {
				return RoundResult{}, err
			}
		case mahjong.PhaseAwaitClaims:
			accepted := acceptClaims(eg, adv)
			if err := eg.ResolveClaims(accepted); err != nil {
				return RoundResult{}, err
			}
		}
	}

	return RoundResult{
		RoundID:    uuid.NewString(),
		Seed:       seed,
		DealerSeat: dealerSeat,
		WinnerSeat: eg.WinnerSeat,
		Reason:     eg.Reason,
		Shape:      eg.WinResult.Shape,
		Fan:        eg.Fan,
		Turns:      eg.Turn.TurnCount,
		WallLeft:   eg.Deck.Remaining(),
	}, nil
}

// playDiscardPhase 依次尝试暗杠、补杠，然后选牌打出
func playDiscardPhase(eg *mahjong.ShandongMahjong4p, adv *ai.Advisor) error {
	seat := eg.Turn.Current()
	view := buildView(eg, seat)

	an, bu := eg.SelfGangOptions(seat)
	for _, t := range an {
		if adv.DecideGang(view, t, mahjong.GangAn) {
			return eg.ApplySelfGang(seat, t, mahjong.GangAn)
		}
	}
	for _, t := range bu {
		if adv.DecideGang(view, t, mahjong.GangBu) {
			return eg.ApplySelfGang(seat, t, mahjong.GangBu)
		}
	}

	tile, ok := adv.DecideDiscard(view)
	if !ok {
		// 手里只剩财神，正常流程下此时应已和牌
		eg.ForceWallExhausted()
		return nil
	}
	return eg.ApplyDiscard(seat, tile)
}

// acceptClaims 逐座位把合法表态交给决策层筛选
func acceptClaims(eg *mahjong.ShandongMahjong4p, adv *ai.Advisor) []mahjong.Claim {
	claims := eg.CollectClaims()
	if len(claims) == 0 {
		return nil
	}
	tile := eg.LastDiscard.Tile

	accepted := make([]mahjong.Claim, 0, len(claims))
	chiCombos := make(map[int][]mahjong.ChiCombo)
	for _, c := range claims {
		view := buildView(eg, c.Seat)
		switch c.Kind {
		case mahjong.ClaimHu:
			accepted = append(accepted, c)
		case mahjong.ClaimGang:
			if adv.DecideGang(view, tile, mahjong.GangZhi) {
				accepted = append(accepted, c)
			}
		case mahjong.ClaimPeng:
			if adv.DecidePeng(view, tile) {
				accepted = append(accepted, c)
			}
		case mahjong.ClaimChi:
			chiCombos[c.Seat] = append(chiCombos[c.Seat], c.Chi)
		}
	}
	for seat, combos := range chiCombos {
		view := buildView(eg, seat)
		if combo, ok := adv.DecideChi(view, tile, combos); ok {
			accepted = append(accepted, mahjong.Claim{Seat: seat, Kind: mahjong.ClaimChi, Chi: combo})
		}
	}
	return accepted
}

func buildView(eg *mahjong.ShandongMahjong4p, seat int) ai.View {
	opponents := make([]ai.Opponent, 0, mahjong.SeatCount-1)
	for offset := 1; offset < mahjong.SeatCount; offset++ {
		p := eg.Players[(seat+offset)%mahjong.SeatCount]
		peng, gang := 0, 0
		for _, m := range p.Melds {
			switch m.Kind {
			case mahjong.MeldPeng:
				peng++
			case mahjong.MeldGang:
				gang++
			}
		}
		opponents = append(opponents, ai.Opponent{
			Discards:  p.DiscardPile,
			PengCount: peng,
			GangCount: gang,
		})
	}
	return ai.View{
		Player:        eg.Players[seat],
		Opponents:     opponents,
		WallRemaining: eg.Deck.Remaining(),
	}
}
