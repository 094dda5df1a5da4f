package mahjong

import "testing"

func handOf(tiles ...Tile) Hand34 {
	return Hand34FromTiles(tiles)
}

func TestCheckHuStandard(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	h := handOf(
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6),
		tiao(3), tiao(3), tiao(3), tiao(5), tiao(6), tiao(7),
		tong(2), tong(2),
	)
	res, ok := s.CheckHu(h, 0, 0)
	if !ok || res.Shape != HuStandard {
		t.Fatalf("平胡判定失败: %+v ok=%v", res, ok)
	}
	if res.Eye != tong(2) {
		t.Fatalf("将牌应为 2筒, got %v", res.Eye)
	}
}

func TestCheckHuQidui(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	h := handOf(
		wan(1), wan(1), wan(3), wan(3), wan(9), wan(9),
		tiao(5), tiao(5), tiao(7), tiao(7),
		tong(2), tong(2), tong(4), tong(4),
	)
	res, ok := s.CheckHu(h, 0, 0)
	if !ok || res.Shape != HuQidui {
		t.Fatalf("七对判定失败: %+v ok=%v", res, ok)
	}
}

func TestCheckHuQiduiWithMagic(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	// 六对 + 一张单牌，财神补成第七对
	h := handOf(
		wan(1), wan(1), wan(3), wan(3), wan(9), wan(9),
		tiao(5), tiao(5), tiao(7), tiao(7),
		tong(2), tong(2), tong(4),
	)
	res, ok := s.CheckHu(h, 1, 0)
	if !ok || res.Shape != HuQidui {
		t.Fatalf("财神补对七对判定失败: %+v ok=%v", res, ok)
	}

	// 六对带两张单牌、没有财神，不成七对
	bare := handOf(
		wan(1), wan(1), wan(3), wan(3), wan(9), wan(9),
		tiao(5), tiao(5), tiao(7), tiao(7),
		tong(2), tong(2), tong(4), tong(7),
	)
	if _, ok := s.CheckHu(bare, 0, 0); ok {
		t.Fatalf("六对两单无财神不应和")
	}
}

func TestQiduiBeforeStandard(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	// 既是七对又能拆成四扑一将，按七对计
	h := handOf(
		wan(2), wan(2), wan(3), wan(3), wan(4), wan(4),
		tiao(2), tiao(2), tiao(3), tiao(3), tiao(4), tiao(4),
		tong(5), tong(5),
	)
	res, ok := s.CheckHu(h, 0, 0)
	if !ok || res.Shape != HuQidui {
		t.Fatalf("两可牌型应优先七对: %+v ok=%v", res, ok)
	}
}

func TestMagicBudgetNotReused(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	// 缺口共 2 张财神，只有 1 张时不能和
	h := handOf(
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6), wan(7), wan(8), wan(9),
		tiao(2), tiao(2), tong(3), tong(9),
	)
	if _, ok := s.CheckHu(h, 1, 0); ok {
		t.Fatalf("1 张财神不能同时补两个缺口")
	}

	h2 := handOf(
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6), wan(7), wan(8), wan(9),
		tiao(2), tiao(2), tong(3),
	)
	res, ok := s.CheckHu(h2, 2, 0)
	if !ok || res.Shape != HuStandard {
		t.Fatalf("2 张财神补一组刻子应和: %+v ok=%v", res, ok)
	}
}

func TestEyeRestriction(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	groups := []Tile{
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6), wan(7), wan(8), wan(9),
		tiao(1), tiao(2), tiao(3),
	}

	bad := handOf(append(append([]Tile{}, groups...), tong(4), tong(4))...)
	if _, ok := s.CheckHu(bad, 0, 0); ok {
		t.Fatalf("4筒 做将不符合 258 限制")
	}

	good := handOf(append(append([]Tile{}, groups...), tong(5), tong(5))...)
	res, ok := s.CheckHu(good, 0, 0)
	if !ok || res.Eye != tong(5) {
		t.Fatalf("5筒 做将应和: %+v ok=%v", res, ok)
	}
}

func TestMagicEye(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	// 四组面子齐整，两张财神直接做将
	h := handOf(
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6), wan(7), wan(8), wan(9),
		tiao(1), tiao(2), tiao(3),
	)
	res, ok := s.CheckHu(h, 2, 0)
	if !ok || res.Shape != HuStandard {
		t.Fatalf("双财神做将应和: %+v ok=%v", res, ok)
	}
}

func TestCheckHuWithFixedMelds(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	// 三组副露后手里只剩一组加将
	h := handOf(wan(1), wan(2), wan(3), tong(2), tong(2))
	res, ok := s.CheckHu(h, 0, 3)
	if !ok || res.Shape != HuStandard {
		t.Fatalf("带副露的平胡判定失败: %+v ok=%v", res, ok)
	}

	// 有副露时不做七对
	if _, ok := s.CheckHu(h, 0, 2); ok {
		t.Fatalf("张数与副露数不匹配时应判不和")
	}
}

func TestCheckHuWrongTotal(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	h := handOf(wan(1), wan(2), wan(3))
	if _, ok := s.CheckHu(h, 0, 0); ok {
		t.Fatalf("张数不符不应和牌")
	}

	full := handOf(
		wan(1), wan(1), wan(1), wan(2), wan(2), wan(2), wan(3),
		wan(3), wan(3), tong(5), tong(5), tiao(5), tiao(5), tiao(5),
	)
	if _, ok := s.CheckHu(full, -1, 0); ok {
		t.Fatalf("财神数为负应归并为不和")
	}
	if _, ok := s.CheckHu(full, 0, 5); ok {
		t.Fatalf("副露组数越界应归并为不和")
	}
}

func TestWaitingTiles(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	h := handOf(
		wan(7), wan(8), wan(9),
		tiao(4), tiao(5), tiao(6),
		tong(2), tong(2), tong(3), tong(4), tong(5), tong(6), tong(7),
	)
	waits := s.WaitingTiles(h, 0, 0)
	want := map[Tile]bool{tong(2): true, tong(5): true, tong(8): true}
	if len(waits) != len(want) {
		t.Fatalf("听口应为 %d 种, got %v", len(want), waits)
	}
	for _, w := range waits {
		if !want[w] {
			t.Fatalf("意外的听口 %v", w)
		}
		// 听口与和牌判定必须自洽
		if _, ok := s.CheckHuWith(h, 0, 0, w); !ok {
			t.Fatalf("听口 %v 补进后应和牌", w)
		}
	}
}

func TestWaitingTilesWrongTotal(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	h := handOf(
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6),
		tiao(3), tiao(3), tiao(3), tiao(5), tiao(6), tiao(7),
		tong(2), tong(2),
	)
	if waits := s.WaitingTiles(h, 0, 0); waits != nil {
		t.Fatalf("14 张手牌没有听牌语义, got %v", waits)
	}
}

func TestRunStartRestriction(t *testing.T) {
	s := NewSearcher(KindCountNumbered)
	// 顺子只从手中最低的那张起且起点不超过 7：8、9 加财神成不了 789
	blocked := handOf(
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6),
		tiao(2), tiao(2), tiao(2),
		tiao(5), tiao(5),
		tong(8), tong(9),
	)
	if _, ok := s.CheckHu(blocked, 1, 0); ok {
		t.Fatalf("8 9 加财神不应成顺")
	}

	// 7、8 加财神补出第三张，起点 7 合法
	open := handOf(
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6),
		tiao(2), tiao(2), tiao(2),
		tiao(5), tiao(5),
		tong(7), tong(8),
	)
	if _, ok := s.CheckHu(open, 1, 0); !ok {
		t.Fatalf("7 8 加财神应成顺")
	}
}
