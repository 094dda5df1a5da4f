package mahjong

// PlayerImage 一个座位的对局状态
// Tiles 只存非财神手牌，财神单独计数；DiscardPile 追加写，用于吃牌归属和 AI 读牌
type PlayerImage struct {
	SeatIndex   int
	Tiles       []Tile
	MagicCount  int    // 手中财神张数
	Melds       []Meld // 碰、杠、吃的副露
	DiscardPile []Tile // 本座位打出过的牌（追加写日志）
}

// NewPlayerImage 创建座位状态
func NewPlayerImage(seatIndex int) *PlayerImage {
	return &PlayerImage{
		SeatIndex:   seatIndex,
		Tiles:       make([]Tile, 0, 14),
		Melds:       make([]Meld, 0, 4),
		DiscardPile: make([]Tile, 0, 24),
	}
}

// AddTile 收进一张非财神牌
func (p *PlayerImage) AddTile(tile Tile) {
	p.Tiles = append(p.Tiles, tile)
}

// RemoveTile 移除一张指定牌，不存在时返回 false
func (p *PlayerImage) RemoveTile(tile Tile) bool {
	for i := range p.Tiles {
		if p.Tiles[i] == tile {
			p.Tiles = append(p.Tiles[:i], p.Tiles[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTiles 批量移除，全部成功才返回 true；失败时已移除的不回滚，调用方保证存在性
func (p *PlayerImage) RemoveTiles(tiles []Tile) bool {
	for _, t := range tiles {
		if !p.RemoveTile(t) {
			return false
		}
	}
	return true
}

// HandCounts 手牌计数表（不含财神）
func (p *PlayerImage) HandCounts() Hand34 {
	return Hand34FromTiles(p.Tiles)
}

// HeldTotal 手中物理张数，含财神
func (p *PlayerImage) HeldTotal() int {
	return len(p.Tiles) + p.MagicCount
}

// MeldTileTotal 副露中的物理张数（碰吃 3 张、杠 4 张）
func (p *PlayerImage) MeldTileTotal() int {
	total := 0
	for _, m := range p.Melds {
		total += len(m.Tiles)
	}
	return total
}

// GangCount 已成的杠数（计番用）
func (p *PlayerImage) GangCount() int {
	count := 0
	for _, m := range p.Melds {
		if m.Kind == MeldGang {
			count++
		}
	}
	return count
}
