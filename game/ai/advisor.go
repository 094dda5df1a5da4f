package ai

import (
	"github.com/suflem/mahjong-ai/game/engines/mahjong"
)

/*
	启发式决策层

	出牌：对每张手牌打分（孤张、搭子、对刻、258 将、危险度、打出后的进张），
	打分最低者出；听牌时优先打安全牌
	碰/吃：模拟鸣牌并选出最优弃牌后比较听口数，不降才鸣
	杠：暗杠必杠，明杠在听牌或牌墙见底时放弃
	财神不入 Tiles，因此永远不会被评估为弃牌候选
*/

// Weights 评分权重，默认值取自线上调参结果
type Weights struct {
	Isolation   float64 // 孤张惩罚
	Neighbor    float64 // 同花色邻张每张加成
	Triplet     float64 // 对子、刻子每张加成
	Jiang       float64 // 258 将牌加成
	Danger      float64 // 危险度权重（负值）
	Improvement float64 // 打出后进张权重（负值，进张多的先打）
	QualityKeep float64 // 牌型质量阈值，超过不碰
}

// DefaultWeights 默认权重
func DefaultWeights() Weights {
	return Weights{
		Isolation:   -10,
		Neighbor:    5,
		Triplet:     15,
		Jiang:       8,
		Danger:      -5,
		Improvement: -20,
		QualityKeep: 0.7,
	}
}

// Opponent 单个对手的可见信息
type Opponent struct {
	Discards  []mahjong.Tile
	PengCount int
	GangCount int
}

// View 某座位决策时可见的局面
type View struct {
	Player        *mahjong.PlayerImage
	Opponents     []Opponent
	WallRemaining int
}

// Advisor 基于可见局面给出出牌与鸣牌决策
type Advisor struct {
	Searcher *mahjong.Searcher
	Weights  Weights
}

// NewAdvisor 创建决策器，共享和牌搜索器的缓存
func NewAdvisor(searcher *mahjong.Searcher, weights Weights) *Advisor {
	return &Advisor{Searcher: searcher, Weights: weights}
}

// DecideDiscard 选出要打的牌；手里全是财神时返回 false（理论上此时已经和牌）
func (a *Advisor) DecideDiscard(v View) (mahjong.Tile, bool) {
	tiles := v.Player.Tiles
	if len(tiles) == 0 {
		return mahjong.Tile{}, false
	}

	var best mahjong.Tile
	bestValue := 0.0
	bestDanger := 0.0
	first := true
	evaluated := make(map[int]bool, len(tiles))
	for _, tile := range tiles {
		idx := tile.Index()
		if evaluated[idx] {
			continue
		}
		evaluated[idx] = true

		value := a.evaluate(v, tile)
		danger := a.assessDanger(v, tile)
		if first || value < bestValue || (value == bestValue && danger < bestDanger) {
			best, bestValue, bestDanger = tile, value, danger
			first = false
		}
	}
	return best, true
}

// DecidePeng 碰后听口不降才碰；牌型好时惜碰，对手做大牌时抢碰
func (a *Advisor) DecidePeng(v View, tile mahjong.Tile) bool {
	player := v.Player
	counts := player.HandCounts()
	current := len(a.Searcher.WaitingTiles(counts, player.MagicCount, len(player.Melds)))

	work := counts
	work[tile.Index()] -= 2
	after := a.bestWaitsAfterDiscard(work, player.MagicCount, len(player.Melds)+1)
	if after >= current {
		return true
	}
	if a.handQuality(counts) > a.Weights.QualityKeep {
		return false
	}
	return a.opponentMakingBigHand(v)
}

// DecideGang 暗杠必杠；明杠在已听牌或牌墙见底时放弃
func (a *Advisor) DecideGang(v View, tile mahjong.Tile, kind mahjong.GangKind) bool {
	if kind == mahjong.GangAn {
		return true
	}
	player := v.Player
	counts := player.HandCounts()
	if kind == mahjong.GangBu {
		// 补杠在摸牌后判定，手牌是 14 张等效，先扣掉要杠的那张再看听口
		counts[tile.Index()]--
	}
	waits := a.Searcher.WaitingTiles(counts, player.MagicCount, len(player.Melds))
	if len(waits) > 0 {
		return false
	}
	return v.WallRemaining >= 20
}

// DecideChi 在全部吃法中选听口最多的一种，吃完听口必须严格增加
func (a *Advisor) DecideChi(v View, tile mahjong.Tile, combos []mahjong.ChiCombo) (mahjong.ChiCombo, bool) {
	if len(combos) == 0 {
		return mahjong.ChiCombo{}, false
	}
	player := v.Player
	counts := player.HandCounts()
	current := len(a.Searcher.WaitingTiles(counts, player.MagicCount, len(player.Melds)))

	var bestCombo mahjong.ChiCombo
	bestWaits := current
	found := false
	for _, combo := range combos {
		work := counts
		for _, t := range combo {
			if t != tile {
				work[t.Index()]--
			}
		}
		after := a.bestWaitsAfterDiscard(work, player.MagicCount, len(player.Melds)+1)
		if after > bestWaits {
			bestWaits = after
			bestCombo = combo
			found = true
		}
	}
	return bestCombo, found
}

// evaluate 一张牌的保留价值，越低越该打出
func (a *Advisor) evaluate(v View, tile mahjong.Tile) float64 {
	counts := v.Player.HandCounts()
	idx := tile.Index()
	value := 0.0

	if a.isIsolated(counts, tile) {
		value += a.Weights.Isolation
	}
	if tile.Suit.IsNumbered() {
		for delta := -2; delta <= 2; delta++ {
			rank := tile.Rank + delta
			if rank < 1 || rank > 9 {
				continue
			}
			value += a.Weights.Neighbor * float64(counts[mahjong.Tile{Suit: tile.Suit, Rank: rank}.Index()])
		}
	}
	if counts[idx] >= 2 {
		value += a.Weights.Triplet * float64(counts[idx])
	}
	if tile.IsJiang() {
		value += a.Weights.Jiang
	}
	value += a.Weights.Danger * a.assessDanger(v, tile)

	// 打出后若有进张，倾向先打
	work := counts
	work[idx]--
	waits := a.Searcher.WaitingTiles(work, v.Player.MagicCount, len(v.Player.Melds))
	value += a.Weights.Improvement * float64(len(waits)) / float64(a.Searcher.KindCount())

	return value
}

// assessDanger 打出一张牌的危险度：生张、中张危险，多见的字牌与对手弃过的花色安全
func (a *Advisor) assessDanger(v View, tile mahjong.Tile) float64 {
	danger := 0.0
	seen := 0
	for _, opp := range v.Opponents {
		sameSuit := 0
		for _, c := range opp.Discards {
			if c.Suit == tile.Suit {
				sameSuit++
			}
			if c == tile {
				seen++
			}
		}
		if sameSuit > 3 {
			danger--
		}
	}
	for _, c := range v.Player.DiscardPile {
		if c == tile {
			seen++
		}
	}

	if seen == 0 {
		danger += 3
	}
	if tile.Suit.IsNumbered() && tile.Rank >= 3 && tile.Rank <= 7 {
		danger += 2
	}
	if tile.Suit.IsHonor() {
		if seen >= 2 {
			danger -= 2
		} else {
			danger++
		}
	}
	return danger
}

// bestWaitsAfterDiscard 鸣牌后还要出一张，取所有弃法中的最大听口数
func (a *Advisor) bestWaitsAfterDiscard(counts mahjong.Hand34, magicCount int, fixedMelds int) int {
	best := 0
	kindCount := a.Searcher.KindCount()
	for k := 0; k < kindCount; k++ {
		if counts[k] == 0 {
			continue
		}
		counts[k]--
		waits := len(a.Searcher.WaitingTiles(counts, magicCount, fixedMelds))
		counts[k]++
		if waits > best {
			best = waits
		}
	}
	return best
}

func (a *Advisor) isIsolated(counts mahjong.Hand34, tile mahjong.Tile) bool {
	if tile.Suit.IsHonor() {
		return counts[tile.Index()] < 2
	}
	for delta := -2; delta <= 2; delta++ {
		if delta == 0 {
			continue
		}
		rank := tile.Rank + delta
		if rank < 1 || rank > 9 {
			continue
		}
		if counts[mahjong.Tile{Suit: tile.Suit, Rank: rank}.Index()] > 0 {
			return false
		}
	}
	return true
}

// handQuality 搭子完成度估计，0 到 1
func (a *Advisor) handQuality(counts mahjong.Hand34) float64 {
	groups := 0.0
	for k := 0; k < mahjong.KindCountAll; k++ {
		switch {
		case counts[k] >= 3:
			groups++
		case counts[k] == 2:
			groups += 0.5
		}
	}
	for k := 0; k < mahjong.KindCountNumbered; k++ {
		if k%9 > 6 {
			continue
		}
		present := 0
		for d := 0; d < 3; d++ {
			if counts[k+d] > 0 {
				present++
			}
		}
		switch present {
		case 3:
			groups++
		case 2:
			groups += 0.5
		}
	}
	quality := groups / 4
	if quality > 1 {
		quality = 1
	}
	return quality
}

func (a *Advisor) opponentMakingBigHand(v View) bool {
	for _, opp := range v.Opponents {
		if opp.PengCount >= 2 || opp.GangCount >= 1 {
			return true
		}
	}
	return false
}
