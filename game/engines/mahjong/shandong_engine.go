package mahjong

/*
	山东麻将单局状态机

	开局：庄家 14 张、闲家各 13 张，翻出一张财神并从牌墙移走
	行牌：摸牌 -> 出牌 -> 收集表态 -> 仲裁，循环直到和牌或牌墙摸空
	财神：摸到财神只入计数不入手牌，出牌、碰、杠、吃都不能动用财神
	仲裁优先级：胡 > 杠/碰 > 吃；同级按离出牌者的座位距离近者优先
*/

// TerminalReason 单局结束原因
type TerminalReason int

const (
	TerminalNone          TerminalReason = iota
	TerminalZimo                         // 自摸和牌
	TerminalDiscardHu                    // 点炮和牌
	TerminalWallExhausted                // 牌墙摸空流局
)

func (r TerminalReason) String() string {
	switch r {
	case TerminalZimo:
		return "zimo"
	case TerminalDiscardHu:
		return "discard_hu"
	case TerminalWallExhausted:
		return "wall_exhausted"
	default:
		return "none"
	}
}

// ClaimKind 弃牌表态类型
type ClaimKind int

const (
	ClaimHu ClaimKind = iota
	ClaimGang
	ClaimPeng
	ClaimChi
)

func (k ClaimKind) String() string {
	switch k {
	case ClaimHu:
		return "hu"
	case ClaimGang:
		return "gang"
	case ClaimPeng:
		return "peng"
	default:
		return "chi"
	}
}

// Claim 某座位对弃牌的一个可选表态；吃牌时 Chi 给出使用的两张搭子所在顺子
type Claim struct {
	Seat int
	Kind ClaimKind
	Chi  ChiCombo
}

// ShandongMahjong4p 山东麻将四人单局引擎
type ShandongMahjong4p struct {
	Deck     *DeckManager
	Searcher *Searcher
	Turn     *TurnManager
	Players  [SeatCount]*PlayerImage

	DealerSeat  int
	MagicTile   Tile
	Discards    []Tile // 桌面上仍可被鸣的弃牌；被鸣走的牌移入副露
	LastDiscard LastDiscard

	Reason     TerminalReason
	WinnerSeat int
	WinResult  HuResult
	Fan        int
}

// LastDiscard 最近一张弃牌，Valid 为 false 表示当前没有待表态的弃牌
type LastDiscard struct {
	Seat  int
	Tile  Tile
	Valid bool
}

// NewShandongMahjong4p 创建单局引擎，seed 决定洗牌结果
func NewShandongMahjong4p(includeHonors bool, seed int64) *ShandongMahjong4p {
	kindCount := KindCountAll
	if !includeHonors {
		kindCount = KindCountNumbered
	}
	eg := &ShandongMahjong4p{
		Deck:       NewDeckManager(includeHonors, seed),
		Searcher:   NewSearcher(kindCount),
		WinnerSeat: -1,
	}
	for seat := 0; seat < SeatCount; seat++ {
		eg.Players[seat] = NewPlayerImage(seat)
	}
	return eg
}

// StartRound 发牌、定财神，庄家直接进入出牌阶段
func (eg *ShandongMahjong4p) StartRound(dealerSeat int) error {
	if dealerSeat < 0 || dealerSeat >= SeatCount {
		return ErrInvalidSeat
	}
	hands, magic, err := eg.Deck.Deal()
	if err != nil {
		return err
	}
	eg.DealerSeat = dealerSeat
	eg.MagicTile = magic
	// hands[0] 是 14 张的庄家份，按庄位旋转落座
	for i := 0; i < SeatCount; i++ {
		seat := (dealerSeat + i) % SeatCount
		for _, t := range hands[i] {
			if eg.Deck.IsMagic(t) {
				eg.Players[seat].MagicCount++
			} else {
				eg.Players[seat].AddTile(t)
			}
		}
		SortTiles(eg.Players[seat].Tiles)
	}
	eg.Turn = NewTurnManager(dealerSeat)

	// 庄家配牌即可能成和（天胡）
	dealer := eg.Players[dealerSeat]
	if result, ok := eg.checkHuFor(dealer); ok {
		eg.finishWin(dealerSeat, result, TerminalZimo)
	}
	return nil
}

// ApplyDraw 当前座位从牌墙摸一张；牌墙空则流局
func (eg *ShandongMahjong4p) ApplyDraw(seat int) error {
	if err := eg.requirePhase(seat, PhaseAwaitDraw); err != nil {
		return err
	}
	tile, ok := eg.Deck.Draw()
	if !ok {
		eg.finishDraw()
		return nil
	}
	eg.Turn.TurnCount++
	player := eg.Players[seat]
	if eg.Deck.IsMagic(tile) {
		player.MagicCount++
	} else {
		player.AddTile(tile)
		SortTiles(player.Tiles)
	}
	eg.Turn.Phase = PhaseAwaitDiscard

	if result, ok := eg.checkHuFor(player); ok {
		eg.finishWin(seat, result, TerminalZimo)
	}
	return nil
}

// ApplyDiscard 当前座位打出一张非财神手牌，进入表态阶段
func (eg *ShandongMahjong4p) ApplyDiscard(seat int, tile Tile) error {
	if err := eg.requirePhase(seat, PhaseAwaitDiscard); err != nil {
		return err
	}
	player := eg.Players[seat]
	if !player.RemoveTile(tile) {
		return ErrTileNotInHand
	}
	player.DiscardPile = append(player.DiscardPile, tile)
	eg.Discards = append(eg.Discards, tile)
	eg.LastDiscard = LastDiscard{Seat: seat, Tile: tile, Valid: true}
	eg.Turn.Phase = PhaseAwaitClaims
	return nil
}

// CollectClaims 枚举其余三家对最近弃牌的全部合法表态
func (eg *ShandongMahjong4p) CollectClaims() []Claim {
	if eg.Turn == nil || eg.Turn.Phase != PhaseAwaitClaims || !eg.LastDiscard.Valid {
		return nil
	}
	tile := eg.LastDiscard.Tile
	claims := make([]Claim, 0, 4)
	for offset := 1; offset < SeatCount; offset++ {
		seat := (eg.LastDiscard.Seat + offset) % SeatCount
		player := eg.Players[seat]
		counts := player.HandCounts()

		if _, ok := eg.Searcher.CheckHuWith(counts, player.MagicCount, len(player.Melds), tile); ok {
			claims = append(claims, Claim{Seat: seat, Kind: ClaimHu})
		}
		if CanGangZhi(player.Tiles, tile) {
			claims = append(claims, Claim{Seat: seat, Kind: ClaimGang})
		}
		if CanPeng(player.Tiles, tile) {
			claims = append(claims, Claim{Seat: seat, Kind: ClaimPeng})
		}
		for _, combo := range CanChi(player.Tiles, tile, seat, eg.LastDiscard.Seat) {
			claims = append(claims, Claim{Seat: seat, Kind: ClaimChi, Chi: combo})
		}
	}
	return claims
}

// ResolveClaims 从各家接受的表态中选出最高优先者并执行
// accepted 为空表示全部过牌，行牌权移交下家
func (eg *ShandongMahjong4p) ResolveClaims(accepted []Claim) error {
	if eg.Turn == nil {
		return ErrRoundNotStarted
	}
	if eg.Turn.Phase != PhaseAwaitClaims {
		return ErrWrongPhase
	}
	if !eg.LastDiscard.Valid {
		return ErrWrongPhase
	}

	winner := eg.pickClaim(accepted)
	if winner == nil {
		eg.LastDiscard.Valid = false
		eg.Turn.NextTurn()
		return nil
	}
	switch winner.Kind {
	case ClaimHu:
		return eg.applyDiscardHu(winner.Seat)
	case ClaimGang:
		return eg.applyGangZhi(winner.Seat)
	case ClaimPeng:
		return eg.applyPeng(winner.Seat)
	case ClaimChi:
		return eg.applyChi(winner.Seat, winner.Chi)
	default:
		return ErrIllegalClaim
	}
}

// pickClaim 按 胡 > 杠/碰 > 吃、同级近者优先 选出生效表态
func (eg *ShandongMahjong4p) pickClaim(accepted []Claim) *Claim {
	var best *Claim
	for i := range accepted {
		c := &accepted[i]
		if best == nil || eg.claimBeats(c, best) {
			best = c
		}
	}
	return best
}

func (eg *ShandongMahjong4p) claimBeats(a, b *Claim) bool {
	ra, rb := claimRank(a.Kind), claimRank(b.Kind)
	if ra != rb {
		return ra > rb
	}
	da := (a.Seat - eg.LastDiscard.Seat + SeatCount) % SeatCount
	db := (b.Seat - eg.LastDiscard.Seat + SeatCount) % SeatCount
	return da < db
}

func claimRank(k ClaimKind) int {
	switch k {
	case ClaimHu:
		return 2
	case ClaimGang, ClaimPeng:
		return 1
	default:
		return 0
	}
}

// applyDiscardHu 食胡：弃牌并入和牌结算，不进副露
func (eg *ShandongMahjong4p) applyDiscardHu(seat int) error {
	player := eg.Players[seat]
	tile := eg.LastDiscard.Tile
	result, ok := eg.Searcher.CheckHuWith(player.HandCounts(), player.MagicCount, len(player.Melds), tile)
	if !ok {
		return ErrIllegalClaim
	}
	eg.takeLastDiscard()
	player.AddTile(tile)
	SortTiles(player.Tiles)
	eg.finishWin(seat, result, TerminalDiscardHu)
	return nil
}

// applyPeng 碰：手牌两张加弃牌成刻，进入出牌阶段
func (eg *ShandongMahjong4p) applyPeng(seat int) error {
	player := eg.Players[seat]
	tile := eg.LastDiscard.Tile
	if !CanPeng(player.Tiles, tile) {
		return ErrIllegalClaim
	}
	from := eg.LastDiscard.Seat
	eg.takeLastDiscard()
	player.RemoveTile(tile)
	player.RemoveTile(tile)
	player.Melds = append(player.Melds, Meld{
		Kind:  MeldPeng,
		Tiles: []Tile{tile, tile, tile},
		From:  from,
	})
	eg.Turn.PassTo(seat, PhaseAwaitDiscard)
	return nil
}

// applyGangZhi 直杠：手牌三张加弃牌成杠，补摸一张后出牌
func (eg *ShandongMahjong4p) applyGangZhi(seat int) error {
	player := eg.Players[seat]
	tile := eg.LastDiscard.Tile
	if !CanGangZhi(player.Tiles, tile) {
		return ErrIllegalClaim
	}
	from := eg.LastDiscard.Seat
	eg.takeLastDiscard()
	for i := 0; i < 3; i++ {
		player.RemoveTile(tile)
	}
	player.Melds = append(player.Melds, Meld{
		Kind:     MeldGang,
		Tiles:    []Tile{tile, tile, tile, tile},
		GangKind: GangZhi,
		From:     from,
	})
	eg.Turn.PassTo(seat, PhaseAwaitDiscard)
	return eg.drawReplacement(seat)
}

// applyChi 吃：仅限下家，两张搭子加弃牌成顺，进入出牌阶段
func (eg *ShandongMahjong4p) applyChi(seat int, combo ChiCombo) error {
	player := eg.Players[seat]
	tile := eg.LastDiscard.Tile
	legal := false
	for _, c := range CanChi(player.Tiles, tile, seat, eg.LastDiscard.Seat) {
		if c == combo {
			legal = true
			break
		}
	}
	if !legal {
		return ErrIllegalClaim
	}
	from := eg.LastDiscard.Seat
	eg.takeLastDiscard()
	for _, t := range combo {
		if t != tile {
			player.RemoveTile(t)
		}
	}
	player.Melds = append(player.Melds, Meld{
		Kind:  MeldChi,
		Tiles: []Tile{combo[0], combo[1], combo[2]},
		From:  from,
	})
	eg.Turn.PassTo(seat, PhaseAwaitDiscard)
	return nil
}

// SelfGangOptions 当前座位出牌阶段可宣的暗杠、补杠
func (eg *ShandongMahjong4p) SelfGangOptions(seat int) (an []Tile, bu []Tile) {
	if eg.Turn == nil || eg.Turn.Phase != PhaseAwaitDiscard || eg.Turn.Current() != seat {
		return nil, nil
	}
	player := eg.Players[seat]
	return GangAnOptions(player.Tiles), GangBuOptions(player.Tiles, player.Melds)
}

// ApplySelfGang 宣暗杠或补杠，成杠后补摸一张
func (eg *ShandongMahjong4p) ApplySelfGang(seat int, tile Tile, kind GangKind) error {
	if err := eg.requirePhase(seat, PhaseAwaitDiscard); err != nil {
		return err
	}
	player := eg.Players[seat]
	switch kind {
	case GangAn:
		if !CanGangAn(player.Tiles, tile) {
			return ErrIllegalClaim
		}
		for i := 0; i < 4; i++ {
			player.RemoveTile(tile)
		}
		player.Melds = append(player.Melds, Meld{
			Kind:     MeldGang,
			Tiles:    []Tile{tile, tile, tile, tile},
			GangKind: GangAn,
			From:     seat,
		})
	case GangBu:
		if !CanGangBu(player.Melds, tile) || !player.RemoveTile(tile) {
			return ErrIllegalClaim
		}
		for i := range player.Melds {
			m := &player.Melds[i]
			if m.Kind == MeldPeng && m.Tiles[0].Index() == tile.Index() {
				m.Kind = MeldGang
				m.GangKind = GangBu
				m.Tiles = append(m.Tiles, tile)
				break
			}
		}
	default:
		return ErrIllegalClaim
	}
	return eg.drawReplacement(seat)
}

// drawReplacement 杠后补牌；牌墙空则流局
func (eg *ShandongMahjong4p) drawReplacement(seat int) error {
	tile, ok := eg.Deck.Draw()
	if !ok {
		eg.finishDraw()
		return nil
	}
	player := eg.Players[seat]
	if eg.Deck.IsMagic(tile) {
		player.MagicCount++
	} else {
		player.AddTile(tile)
		SortTiles(player.Tiles)
	}
	if result, ok := eg.checkHuFor(player); ok {
		eg.finishWin(seat, result, TerminalZimo)
	}
	return nil
}

// ForceWallExhausted 外部封顶（回合数超限）强制流局
func (eg *ShandongMahjong4p) ForceWallExhausted() {
	if eg.Turn != nil && eg.Turn.Phase != PhaseTerminal {
		eg.finishDraw()
	}
}

// Finished 本局是否已结束
func (eg *ShandongMahjong4p) Finished() bool {
	return eg.Turn != nil && eg.Turn.Phase == PhaseTerminal
}

// checkHuFor 自摸检测，副露数折算后跑和牌搜索
func (eg *ShandongMahjong4p) checkHuFor(player *PlayerImage) (HuResult, bool) {
	return eg.Searcher.CheckHu(player.HandCounts(), player.MagicCount, len(player.Melds))
}

// takeLastDiscard 把最近弃牌从桌面移走（进副露或和牌牌型）
func (eg *ShandongMahjong4p) takeLastDiscard() {
	tile := eg.LastDiscard.Tile
	for i := len(eg.Discards) - 1; i >= 0; i-- {
		if eg.Discards[i] == tile {
			eg.Discards = append(eg.Discards[:i], eg.Discards[i+1:]...)
			break
		}
	}
	eg.LastDiscard.Valid = false
}

func (eg *ShandongMahjong4p) finishWin(seat int, result HuResult, reason TerminalReason) {
	player := eg.Players[seat]
	eg.WinnerSeat = seat
	eg.WinResult = result
	eg.Reason = reason
	eg.Fan = CalculateFan(result.Shape, player.GangCount(),
		reason == TerminalZimo, seat == eg.DealerSeat, player.MagicCount)
	eg.Turn.Phase = PhaseTerminal
}

func (eg *ShandongMahjong4p) finishDraw() {
	eg.WinnerSeat = -1
	eg.Reason = TerminalWallExhausted
	eg.Fan = 0
	eg.Turn.Phase = PhaseTerminal
}

func (eg *ShandongMahjong4p) requirePhase(seat int, phase TurnPhase) error {
	if eg.Turn == nil {
		return ErrRoundNotStarted
	}
	if eg.Turn.Phase == PhaseTerminal {
		return ErrRoundFinished
	}
	if eg.Turn.Phase != phase {
		return ErrWrongPhase
	}
	if eg.Turn.Current() != seat {
		return ErrWrongSeat
	}
	return nil
}

// CheckConservation 全桌物理牌张守恒：牌墙 + 财神 + 手牌 + 副露 + 桌面弃牌 == 全量
func (eg *ShandongMahjong4p) CheckConservation() bool {
	total := eg.Deck.Remaining() + 1 // 翻出的财神一张
	for _, p := range eg.Players {
		total += p.HeldTotal() + p.MeldTileTotal()
	}
	total += len(eg.Discards)
	return total == eg.Deck.PopulationSize()
}
