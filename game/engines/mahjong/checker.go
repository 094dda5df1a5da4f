package mahjong

type GangKind int

const (
	GangNone GangKind = iota
	GangAn                // 暗杠：手中已有 4 张，自愿宣告
	GangBu                // 补杠：已碰的刻子补上第 4 张（手里有或刚摸到）
	GangZhi               // 直杠：手中 3 张，杠别人打出的第 4 张
)

func (k GangKind) String() string {
	switch k {
	case GangAn:
		return "暗杠"
	case GangBu:
		return "补杠"
	case GangZhi:
		return "直杠"
	default:
		return "无"
	}
}

// ChiCombo 一组顺子吃法，按点数升序，含被吃的那张
type ChiCombo [3]Tile

// 以下判定全部是纯查询，不改动手牌、副露和牌墙

// CountTile 手牌中某种牌的张数
func CountTile(hand []Tile, tile Tile) int {
	count := 0
	for _, t := range hand {
		if t == tile {
			count++
		}
	}
	return count
}

// CanPeng 能否碰：手中已有至少 2 张同种牌
func CanPeng(hand []Tile, tile Tile) bool {
	return CountTile(hand, tile) >= 2
}

// CanGangZhi 能否直杠别人打出的牌：手中已有 3 张
func CanGangZhi(hand []Tile, tile Tile) bool {
	return CountTile(hand, tile) >= 3
}

// CanGangAn 能否暗杠：手中已有 4 张
func CanGangAn(hand []Tile, tile Tile) bool {
	return CountTile(hand, tile) >= 4
}

// CanGangBu 能否补杠：已有该种牌的碰副露
func CanGangBu(melds []Meld, tile Tile) bool {
	for _, m := range melds {
		if m.Kind == MeldPeng && len(m.Tiles) > 0 && m.Tiles[0] == tile {
			return true
		}
	}
	return false
}

// GangAnOptions 手牌中所有可暗杠的牌种
func GangAnOptions(hand []Tile) []Tile {
	h := Hand34FromTiles(hand)
	var out []Tile
	for i := 0; i < KindCountAll; i++ {
		if h[i] >= 4 {
			out = append(out, mustTileFromIndex(i))
		}
	}
	return out
}

// GangBuOptions 手牌与副露组合出的所有补杠选择
func GangBuOptions(hand []Tile, melds []Meld) []Tile {
	var out []Tile
	for _, m := range melds {
		if m.Kind != MeldPeng || len(m.Tiles) == 0 {
			continue
		}
		if CountTile(hand, m.Tiles[0]) >= 1 {
			out = append(out, m.Tiles[0])
		}
	}
	return out
}

// CanChi 能否吃，返回所有合法吃法（被吃张做低/中/高位各查一次）
// 只能吃上家（出牌座位领先自己一位，即 (discarder-claimant) mod 4 == 3）的牌
// 字牌不能吃
func CanChi(hand []Tile, tile Tile, claimantSeat int, discarderSeat int) []ChiCombo {
	if (discarderSeat-claimantSeat+SeatCount)%SeatCount != SeatCount-1 {
		return nil
	}
	if !tile.Suit.IsNumbered() {
		return nil
	}

	var combos []ChiCombo

	// 吃头：tile, tile+1, tile+2
	if tile.Rank <= 7 {
		n1 := Tile{Suit: tile.Suit, Rank: tile.Rank + 1}
		n2 := Tile{Suit: tile.Suit, Rank: tile.Rank + 2}
		if CountTile(hand, n1) >= 1 && CountTile(hand, n2) >= 1 {
			combos = append(combos, ChiCombo{tile, n1, n2})
		}
	}

	// 吃中：tile-1, tile, tile+1
	if tile.Rank >= 2 && tile.Rank <= 8 {
		lo := Tile{Suit: tile.Suit, Rank: tile.Rank - 1}
		hi := Tile{Suit: tile.Suit, Rank: tile.Rank + 1}
		if CountTile(hand, lo) >= 1 && CountTile(hand, hi) >= 1 {
			combos = append(combos, ChiCombo{lo, tile, hi})
		}
	}

	// 吃尾：tile-2, tile-1, tile
	if tile.Rank >= 3 {
		l2 := Tile{Suit: tile.Suit, Rank: tile.Rank - 2}
		l1 := Tile{Suit: tile.Suit, Rank: tile.Rank - 1}
		if CountTile(hand, l2) >= 1 && CountTile(hand, l1) >= 1 {
			combos = append(combos, ChiCombo{l2, l1, tile})
		}
	}

	return combos
}
