package mahjong

// 山东麻将计番
const (
	FanBaseQidui    = 4 // 七对底番
	FanBaseStandard = 1 // 平胡底番
	FanPerGang      = 2 // 每个杠
	FanZimo         = 1 // 自摸
	FanDealer       = 1 // 庄家
	FanPerMagic     = 1 // 和牌时手中每张财神
)

// CalculateFan 计算和牌番数；未和牌恒为 0，附加番只在成和时累计
func CalculateFan(shape HuShape, gangCount int, zimo bool, dealer bool, magicCount int) int {
	fan := 0

	switch shape {
	case HuQidui:
		fan += FanBaseQidui
	case HuStandard:
		fan += FanBaseStandard
	default:
		return 0
	}

	if gangCount > 0 {
		fan += gangCount * FanPerGang
	}
	if zimo {
		fan += FanZimo
	}
	if dealer {
		fan += FanDealer
	}
	if magicCount > 0 {
		fan += magicCount * FanPerMagic
	}

	return fan
}
