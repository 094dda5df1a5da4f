package mahjong

import "testing"

func TestCanPeng(t *testing.T) {
	hand := []Tile{wan(5), wan(5), tong(3), tiao(7)}
	if !CanPeng(hand, wan(5)) {
		t.Fatalf("两张 5万 应可碰")
	}
	if CanPeng(hand, tong(3)) {
		t.Fatalf("一张 3筒 不可碰")
	}
}

func TestGangSubtypes(t *testing.T) {
	hand := []Tile{wan(5), wan(5), wan(5), tong(3), tong(3), tong(3), tong(3)}

	if !CanGangZhi(hand, wan(5)) {
		t.Fatalf("三张 5万 应可直杠")
	}
	if CanGangZhi(hand, tiao(1)) {
		t.Fatalf("零张 1条 不可直杠")
	}
	if !CanGangAn(hand, tong(3)) {
		t.Fatalf("四张 3筒 应可暗杠")
	}
	if CanGangAn(hand, wan(5)) {
		t.Fatalf("三张 5万 不可暗杠")
	}

	an := GangAnOptions(hand)
	if len(an) != 1 || an[0] != tong(3) {
		t.Fatalf("暗杠候选应只有 3筒, got %v", an)
	}

	melds := []Meld{{Kind: MeldPeng, Tiles: []Tile{tiao(9), tiao(9), tiao(9)}, From: 2}}
	if !CanGangBu(melds, tiao(9)) {
		t.Fatalf("已碰 9条 摸到第四张应可补杠")
	}
	if CanGangBu(melds, wan(5)) {
		t.Fatalf("未碰过的牌不可补杠")
	}
	bu := GangBuOptions(append(hand, tiao(9)), melds)
	if len(bu) != 1 || bu[0] != tiao(9) {
		t.Fatalf("补杠候选应只有 9条, got %v", bu)
	}
}

func TestCanChiSeatRestriction(t *testing.T) {
	hand := []Tile{wan(4), wan(5), wan(7), wan(8)}

	// 只能吃上家：出牌者是上家时座位差 3
	if combos := CanChi(hand, wan(6), 1, 0); len(combos) == 0 {
		t.Fatalf("下家应可吃上家的牌")
	}
	if combos := CanChi(hand, wan(6), 2, 0); combos != nil {
		t.Fatalf("对家出的牌不可吃, got %v", combos)
	}
	if combos := CanChi(hand, wan(6), 3, 0); combos != nil {
		t.Fatalf("上家方向不可吃, got %v", combos)
	}
}

func TestCanChiShapes(t *testing.T) {
	hand := []Tile{tiao(4), tiao(5), tiao(7), tiao(8)}
	combos := CanChi(hand, tiao(6), 1, 0)
	if len(combos) != 3 {
		t.Fatalf("4 5 7 8 吃 6 应有三种吃法, got %v", combos)
	}
	want := map[ChiCombo]bool{
		{tiao(4), tiao(5), tiao(6)}: true,
		{tiao(5), tiao(6), tiao(7)}: true,
		{tiao(6), tiao(7), tiao(8)}: true,
	}
	for _, c := range combos {
		if !want[c] {
			t.Fatalf("意外的吃法 %v", c)
		}
	}
}

func TestCanChiHonor(t *testing.T) {
	hand := []Tile{{Suit: SuitFeng, Rank: 1}, {Suit: SuitFeng, Rank: 2}}
	if combos := CanChi(hand, Tile{Suit: SuitFeng, Rank: 3}, 1, 0); combos != nil {
		t.Fatalf("字牌没有顺子, got %v", combos)
	}
}

func TestCountTile(t *testing.T) {
	hand := []Tile{wan(1), wan(1), wan(1), tong(9)}
	if got := CountTile(hand, wan(1)); got != 3 {
		t.Fatalf("CountTile = %d, want 3", got)
	}
	if got := CountTile(hand, tiao(5)); got != 0 {
		t.Fatalf("CountTile = %d, want 0", got)
	}
}
