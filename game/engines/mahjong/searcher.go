package mahjong

import "sync"

// Hand34 手牌计数表，下标为稠密索引；财神不计入，单独用预算表示
type Hand34 [34]uint8

// Hand34FromTiles 把牌列表折叠为计数表
func Hand34FromTiles(tiles []Tile) Hand34 {
	var h Hand34
	for _, t := range tiles {
		h[t.Index()]++
	}
	return h
}

// Total 计数表总张数
func (h Hand34) Total() int {
	total := 0
	for i := 0; i < KindCountAll; i++ {
		total += int(h[i])
	}
	return total
}

type HuShape int

const (
	HuNone     HuShape = iota // 未和牌
	HuQidui                   // 七对
	HuStandard                // 平胡（四扑一将）
)

func (s HuShape) String() string {
	switch s {
	case HuQidui:
		return "七对"
	case HuStandard:
		return "平胡"
	default:
		return "未和"
	}
}

// HuResult 和牌判定结果；Shape 为 HuStandard 时 Eye 是选中的将牌
type HuResult struct {
	Shape HuShape
	Eye   Tile
}

// Searcher 和牌与听牌搜索器，结果按 计数表+财神数+副露数 缓存
// 听牌枚举会对每种候选牌各跑一次和牌搜索，缓存避免重复回溯
type Searcher struct {
	kindCount int
	mu        sync.RWMutex
	huCache   map[string]HuResult
	waitCache map[string][]Tile
}

// NewSearcher 创建搜索器，kindCount 取 27（无字牌）或 34
func NewSearcher(kindCount int) *Searcher {
	if kindCount != KindCountNumbered {
		kindCount = KindCountAll
	}
	return &Searcher{
		kindCount: kindCount,
		huCache:   make(map[string]HuResult, 4096),
		waitCache: make(map[string][]Tile, 4096),
	}
}

// KindCount 搜索的牌种类数
func (s *Searcher) KindCount() int {
	return s.kindCount
}

// CheckHu 判定 14 张（等效）手牌是否和牌
// h 为非财神手牌计数，magicCount 为持有的财神数，fixedMelds 为已副露的组数
// 先查七对、再查平胡，任意一种成立即返回；和不了返回 ok=false（常规状态，不是错误）
// 入参畸形（财神数为负、副露组数越界、总张数对不上 14-3*fixedMelds）同样归并为
// ok=false，不另设错误值，调用方想区分时先自查张数
func (s *Searcher) CheckHu(h Hand34, magicCount int, fixedMelds int) (HuResult, bool) {
	if magicCount < 0 || fixedMelds < 0 || fixedMelds > 4 {
		return HuResult{}, false
	}
	if h.Total()+magicCount != 14-3*fixedMelds {
		return HuResult{}, false
	}

	key := s.cacheKey(h, magicCount, fixedMelds)
	s.mu.RLock()
	if v, ok := s.huCache[key]; ok {
		s.mu.RUnlock()
		return v, v.Shape != HuNone
	}
	s.mu.RUnlock()

	var res HuResult
	if fixedMelds == 0 && s.checkQidui(h, magicCount) {
		res = HuResult{Shape: HuQidui}
	} else if eye, ok := s.checkStandard(h, magicCount, 4-fixedMelds); ok {
		res = HuResult{Shape: HuStandard, Eye: eye}
	}

	s.mu.Lock()
	s.huCache[key] = res
	s.mu.Unlock()

	return res, res.Shape != HuNone
}

// CheckHuTiles 牌列表入口，财神牌不要混进列表
func (s *Searcher) CheckHuTiles(tiles []Tile, magicCount int, fixedMelds int) (HuResult, bool) {
	return s.CheckHu(Hand34FromTiles(tiles), magicCount, fixedMelds)
}

// CheckHuWith 在手牌上补一张（自摸/点炮的那张）后判定
func (s *Searcher) CheckHuWith(h Hand34, magicCount int, fixedMelds int, extra Tile) (HuResult, bool) {
	idx := extra.Index()
	if idx < 0 || idx >= s.kindCount || h[idx] >= 4 {
		return HuResult{}, false
	}
	h[idx]++
	return s.CheckHu(h, magicCount, fixedMelds)
}

// WaitingTiles 听牌枚举：对 13 张（等效）手牌逐种试摸一张跑和牌判定
// 返回能让手牌和牌的所有牌种，未听牌时为空；入参畸形与 CheckHu 同样归并为空结果
func (s *Searcher) WaitingTiles(h Hand34, magicCount int, fixedMelds int) []Tile {
	if magicCount < 0 || fixedMelds < 0 || fixedMelds > 4 {
		return nil
	}
	if h.Total()+magicCount != 13-3*fixedMelds {
		return nil
	}

	key := s.cacheKey(h, magicCount, fixedMelds)
	s.mu.RLock()
	if v, ok := s.waitCache[key]; ok {
		s.mu.RUnlock()
		waits := make([]Tile, len(v))
		copy(waits, v)
		return waits
	}
	s.mu.RUnlock()

	var waits []Tile
	for idx := 0; idx < s.kindCount; idx++ {
		if h[idx] >= 4 {
			continue
		}
		work := h
		work[idx]++
		if _, ok := s.CheckHu(work, magicCount, fixedMelds); ok {
			waits = append(waits, mustTileFromIndex(idx))
		}
	}

	s.mu.Lock()
	s.waitCache[key] = append([]Tile(nil), waits...)
	s.mu.Unlock()

	return waits
}

func (s *Searcher) cacheKey(h Hand34, magicCount int, fixedMelds int) string {
	var b [36]byte
	for i := 0; i < KindCountAll; i++ {
		b[i] = byte(h[i])
	}
	b[34] = byte(magicCount)
	b[35] = byte(fixedMelds)
	return string(b[:])
}

// checkQidui 七对：自然对子数 + 财神补对 ≥ 7
func (s *Searcher) checkQidui(h Hand34, magicCount int) bool {
	pairs := 0
	for i := 0; i < s.kindCount; i++ {
		pairs += int(h[i] / 2)
	}
	if pairs >= 7 {
		return true
	}
	return magicCount >= 7-pairs
}

// checkStandard 平胡：枚举 258 将牌，拆掉一对后递归组面子
// 将牌不足时用财神补（缺一张补一张、全缺补两张）；258 限制对纯财神将同样生效
func (s *Searcher) checkStandard(h Hand34, magicCount int, need int) (Tile, bool) {
	for idx := 0; idx < s.kindCount; idx++ {
		eye := mustTileFromIndex(idx)
		if !eye.IsJiang() {
			continue
		}

		work := h
		budget := magicCount
		switch {
		case work[idx] >= 2:
			work[idx] -= 2
		case work[idx] == 1 && budget >= 1:
			work[idx] = 0
			budget--
		case budget >= 2:
			budget -= 2
		default:
			continue
		}

		if canFormGroups(&work, budget, need, s.kindCount) {
			return eye, true
		}
	}
	return Tile{}, false
}

// canFormGroups 递归回溯：剩余手牌能否组成 need 组刻子/顺子
// 每次固定取最低索引的未消耗牌开组，分支退出时显式恢复计数和预算
func canFormGroups(h *Hand34, budget int, need int, kindCount int) bool {
	if need == 0 {
		// 组的大小固定，成功时非财神牌必须刚好耗尽；剩余财神闲置无妨
		for i := 0; i < kindCount; i++ {
			if h[i] != 0 {
				return false
			}
		}
		return true
	}

	first := -1
	for i := 0; i < kindCount; i++ {
		if h[i] > 0 {
			first = i
			break
		}
	}
	if first == -1 {
		// 只剩财神，整组整组地凑
		return budget >= need*3
	}

	// 刻子：自然三张
	if h[first] >= 3 {
		h[first] -= 3
		if canFormGroups(h, budget, need-1, kindCount) {
			h[first] += 3
			return true
		}
		h[first] += 3
	} else if short := 3 - int(h[first]); short <= budget {
		// 刻子：财神补缺（自然 1 或 2 张）
		natural := h[first]
		h[first] = 0
		if canFormGroups(h, budget-short, need-1, kindCount) {
			h[first] = natural
			return true
		}
		h[first] = natural
	}

	// 顺子：仅数牌，first 作为最低位（点数 ≤ 7），缺的位置用财神补
	if first < KindCountNumbered && first%9 <= 6 {
		short := 0
		for off := 1; off <= 2; off++ {
			if h[first+off] == 0 {
				short++
			}
		}
		if short <= budget {
			var taken [3]bool
			for off := 0; off <= 2; off++ {
				if h[first+off] > 0 {
					h[first+off]--
					taken[off] = true
				}
			}
			ok := canFormGroups(h, budget-short, need-1, kindCount)
			for off := 0; off <= 2; off++ {
				if taken[off] {
					h[first+off]++
				}
			}
			if ok {
				return true
			}
		}
	}

	return false
}
