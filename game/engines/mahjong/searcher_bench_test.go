package mahjong

import "testing"

func benchHands() (Hand34, Hand34) {
	// 平胡：123万 456万 333条 567条 22筒
	huHand := Hand34FromTiles([]Tile{
		wan(1), wan(2), wan(3), wan(4), wan(5), wan(6),
		tiao(3), tiao(3), tiao(3), tiao(5), tiao(6), tiao(7),
		tong(2), tong(2),
	})
	// 13 张听牌型
	waitHand := Hand34FromTiles([]Tile{
		wan(7), wan(8), wan(9),
		tiao(4), tiao(5), tiao(6),
		tong(2), tong(2), tong(3), tong(4), tong(5), tong(6), tong(7),
	})
	return huHand, waitHand
}

func BenchmarkCheckHu_NoCache(b *testing.B) {
	huHand, _ := benchHands()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSearcher(KindCountNumbered)
		_, _ = s.CheckHu(huHand, 0, 0)
	}
}

func BenchmarkCheckHu_Cached(b *testing.B) {
	huHand, _ := benchHands()
	s := NewSearcher(KindCountNumbered)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.CheckHu(huHand, 0, 0)
	}
}

func BenchmarkWaitingTiles_NoCache(b *testing.B) {
	_, waitHand := benchHands()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSearcher(KindCountNumbered)
		_ = s.WaitingTiles(waitHand, 0, 0)
	}
}

func BenchmarkWaitingTiles_WithMagic(b *testing.B) {
	_, waitHand := benchHands()
	waitHand[wan(7).Index()]--
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSearcher(KindCountNumbered)
		_ = s.WaitingTiles(waitHand, 1, 0)
	}
}
