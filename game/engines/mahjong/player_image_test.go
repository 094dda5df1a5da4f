package mahjong

import "testing"

func TestPlayerImageRemoveTile(t *testing.T) {
	p := NewPlayerImage(1)
	p.AddTile(wan(3))
	p.AddTile(wan(3))
	p.AddTile(tong(7))

	if !p.RemoveTile(wan(3)) {
		t.Fatalf("移除存在的牌应成功")
	}
	if got := CountTile(p.Tiles, wan(3)); got != 1 {
		t.Fatalf("应只移除一张, 剩 %d", got)
	}
	if p.RemoveTile(tiao(9)) {
		t.Fatalf("移除不存在的牌应失败")
	}
}

func TestPlayerImageGangCount(t *testing.T) {
	p := NewPlayerImage(0)
	p.Melds = []Meld{
		{Kind: MeldPeng, Tiles: []Tile{wan(1), wan(1), wan(1)}},
		{Kind: MeldGang, GangKind: GangAn, Tiles: []Tile{tong(2), tong(2), tong(2), tong(2)}},
		{Kind: MeldGang, GangKind: GangBu, Tiles: []Tile{tiao(3), tiao(3), tiao(3), tiao(3)}},
	}
	if got := p.GangCount(); got != 2 {
		t.Fatalf("GangCount = %d, want 2", got)
	}
	if got := p.MeldTileTotal(); got != 11 {
		t.Fatalf("MeldTileTotal = %d, want 11", got)
	}
}

func TestTurnManagerFlow(t *testing.T) {
	tm := NewTurnManager(3)
	if tm.Current() != 3 || tm.Phase != PhaseAwaitDiscard {
		t.Fatalf("庄家开局应在出牌阶段, seat=%d phase=%v", tm.Current(), tm.Phase)
	}
	tm.NextTurn()
	if tm.Current() != 0 || tm.Phase != PhaseAwaitDraw {
		t.Fatalf("行牌权应顺时针回绕, seat=%d phase=%v", tm.Current(), tm.Phase)
	}
	tm.PassTo(2, PhaseAwaitDiscard)
	if tm.Current() != 2 || tm.Phase != PhaseAwaitDiscard {
		t.Fatalf("鸣牌插队失败, seat=%d phase=%v", tm.Current(), tm.Phase)
	}
}
