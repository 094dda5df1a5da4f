package mahjong

import (
	"fmt"
	"math/rand"
	"sort"
)

type Suit int

const (
	SuitWan  Suit = iota // 万
	SuitTong             // 筒
	SuitTiao             // 条
	SuitFeng             // 风（东南西北）
	SuitJian             // 箭（中发白）
)

// IsNumbered 是否为数牌（万筒条）
func (s Suit) IsNumbered() bool {
	return s == SuitWan || s == SuitTong || s == SuitTiao
}

// IsHonor 是否为字牌（风、箭）
func (s Suit) IsHonor() bool {
	return s == SuitFeng || s == SuitJian
}

func (s Suit) String() string {
	switch s {
	case SuitWan:
		return "万"
	case SuitTong:
		return "筒"
	case SuitTiao:
		return "条"
	case SuitFeng:
		return "风"
	case SuitJian:
		return "箭"
	default:
		return "未知"
	}
}

const (
	KindCountNumbered = 27 // 万筒条各 9 种
	KindCountAll      = 34 // 加上 4 种风牌、3 种箭牌
)

const (
	fengIndexBase = 27
	jianIndexBase = 31
)

// Tile 一张麻将牌，(花色, 点数) 值类型，等值与排序都按稠密索引
// 万筒条点数 1-9，风 1-4（东南西北），箭 1-3（中发白）
type Tile struct {
	Suit Suit
	Rank int
}

var fengNames = [4]string{"东", "南", "西", "北"}
var jianNames = [3]string{"中", "发", "白"}

// Index 转换为稠密索引：万 0-8、筒 9-17、条 18-26、风 27-30、箭 31-33
func (t Tile) Index() int {
	switch t.Suit {
	case SuitWan:
		return t.Rank - 1
	case SuitTong:
		return 9 + t.Rank - 1
	case SuitTiao:
		return 18 + t.Rank - 1
	case SuitFeng:
		return fengIndexBase + t.Rank - 1
	default:
		return jianIndexBase + t.Rank - 1
	}
}

// TileFromIndex 从稠密索引创建牌，越界时返回 ErrInvalidTileIndex
func TileFromIndex(index int) (Tile, error) {
	switch {
	case index < 0 || index >= KindCountAll:
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidTileIndex, index)
	case index < 9:
		return Tile{Suit: SuitWan, Rank: index + 1}, nil
	case index < 18:
		return Tile{Suit: SuitTong, Rank: index - 9 + 1}, nil
	case index < KindCountNumbered:
		return Tile{Suit: SuitTiao, Rank: index - 18 + 1}, nil
	case index < jianIndexBase:
		return Tile{Suit: SuitFeng, Rank: index - fengIndexBase + 1}, nil
	default:
		return Tile{Suit: SuitJian, Rank: index - jianIndexBase + 1}, nil
	}
}

// mustTileFromIndex 内部枚举用，索引来源于循环边界，不会越界
func mustTileFromIndex(index int) Tile {
	t, err := TileFromIndex(index)
	if err != nil {
		panic(err)
	}
	return t
}

// IsJiang 是否为将牌候选：数牌 2、5、8（小胡必须 258 做将）
func (t Tile) IsJiang() bool {
	if !t.Suit.IsNumbered() {
		return false
	}
	return t.Rank == 2 || t.Rank == 5 || t.Rank == 8
}

// Less 按稠密索引排序
func (t Tile) Less(o Tile) bool {
	return t.Index() < o.Index()
}

func (t Tile) String() string {
	switch t.Suit {
	case SuitFeng:
		if t.Rank >= 1 && t.Rank <= 4 {
			return fengNames[t.Rank-1]
		}
	case SuitJian:
		if t.Rank >= 1 && t.Rank <= 3 {
			return jianNames[t.Rank-1]
		}
	default:
		return fmt.Sprintf("%d%s", t.Rank, t.Suit)
	}
	return fmt.Sprintf("?%d%s", t.Rank, t.Suit)
}

// SortTiles 原地按索引排序，方便展示和比较
func SortTiles(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })
}

type MeldKind int

const (
	MeldPeng MeldKind = iota // 碰
	MeldGang                 // 杠
	MeldChi                  // 吃
)

// Meld 副露：从手牌移出、按座位单独记录的明/暗组合
type Meld struct {
	Kind     MeldKind
	Tiles    []Tile
	GangKind GangKind // Kind == MeldGang 时有效
	From     int      // 来源座位，暗杠、补杠为自己
}

const (
	SeatCount     = 4
	DealRequired  = 14 + 13*3 + 1 // 庄家 14 + 三家各 13 + 财神 1
	dealerInitial = 14
	otherInitial  = 13
)

// DeckManager 管理一局的牌池、牌墙与财神
// 牌墙从切片末端消费（后洗进的先被摸走）
type DeckManager struct {
	includeHonors bool
	kindCount     int
	population    []Tile // 全量牌池（不随摸牌变化）
	wall          []Tile
	magic         Tile
	magicValid    bool
	rng           *rand.Rand
}

// NewDeckManager 创建牌池管理器，seed 决定整局洗牌结果
func NewDeckManager(includeHonors bool, seed int64) *DeckManager {
	dm := &DeckManager{
		includeHonors: includeHonors,
		kindCount:     KindCountNumbered,
		rng:           rand.New(rand.NewSource(seed)),
	}
	if includeHonors {
		dm.kindCount = KindCountAll
	}
	dm.population = buildPopulation(includeHonors)
	return dm
}

// buildPopulation 构建全量牌池：万筒条各 9 种 4 张，可选风 16 张、箭 12 张
func buildPopulation(includeHonors bool) []Tile {
	tiles := make([]Tile, 0, 136)
	for _, suit := range []Suit{SuitWan, SuitTong, SuitTiao} {
		for rank := 1; rank <= 9; rank++ {
			for i := 0; i < 4; i++ {
				tiles = append(tiles, Tile{Suit: suit, Rank: rank})
			}
		}
	}
	if includeHonors {
		for rank := 1; rank <= 4; rank++ {
			for i := 0; i < 4; i++ {
				tiles = append(tiles, Tile{Suit: SuitFeng, Rank: rank})
			}
		}
		for rank := 1; rank <= 3; rank++ {
			for i := 0; i < 4; i++ {
				tiles = append(tiles, Tile{Suit: SuitJian, Rank: rank})
			}
		}
	}
	return tiles
}

// Deal 洗牌并发牌：庄家（0 号座）14 张、闲家各 13 张，随后翻出一张财神
// 牌池小于发牌需求时返回 ErrInsufficientTiles（配置错误，致命）
func (dm *DeckManager) Deal() ([SeatCount][]Tile, Tile, error) {
	var hands [SeatCount][]Tile
	if len(dm.population) < DealRequired {
		return hands, Tile{}, fmt.Errorf("%w: 共 %d 张，至少需要 %d 张",
			ErrInsufficientTiles, len(dm.population), DealRequired)
	}

	dm.wall = make([]Tile, len(dm.population))
	copy(dm.wall, dm.population)
	dm.rng.Shuffle(len(dm.wall), func(i, j int) {
		dm.wall[i], dm.wall[j] = dm.wall[j], dm.wall[i]
	})

	for seat := 0; seat < SeatCount; seat++ {
		count := otherInitial
		if seat == 0 {
			count = dealerInitial
		}
		hand := make([]Tile, 0, count)
		for i := 0; i < count; i++ {
			t, _ := dm.pop()
			hand = append(hand, t)
		}
		hands[seat] = hand
	}

	// 开神：翻出的财神牌本身离场，只用来标记财神种类
	magic, _ := dm.pop()
	dm.magic = magic
	dm.magicValid = true

	return hands, magic, nil
}

// Draw 从牌墙摸一张牌，摸空时 ok 为 false（荒庄信号，不是错误）
func (dm *DeckManager) Draw() (Tile, bool) {
	return dm.pop()
}

func (dm *DeckManager) pop() (Tile, bool) {
	if len(dm.wall) == 0 {
		return Tile{}, false
	}
	t := dm.wall[len(dm.wall)-1]
	dm.wall = dm.wall[:len(dm.wall)-1]
	return t, true
}

// IsMagic 是否财神（按种类比较，场上同种的 4 张都算）
func (dm *DeckManager) IsMagic(t Tile) bool {
	return dm.magicValid && t == dm.magic
}

// MagicTile 本局财神牌，发牌前 ok 为 false
func (dm *DeckManager) MagicTile() (Tile, bool) {
	return dm.magic, dm.magicValid
}

// Remaining 牌墙剩余张数
func (dm *DeckManager) Remaining() int {
	return len(dm.wall)
}

// PopulationSize 全量牌池张数（108 或 136）
func (dm *DeckManager) PopulationSize() int {
	return len(dm.population)
}

// KindCount 牌的种类数（27 或 34）
func (dm *DeckManager) KindCount() int {
	return dm.kindCount
}
