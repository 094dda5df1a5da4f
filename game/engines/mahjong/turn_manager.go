package mahjong

// TurnPhase 单局状态机阶段
type TurnPhase int

const (
	PhaseAwaitDraw    TurnPhase = iota // 等待当前座位摸牌
	PhaseAwaitDiscard                  // 等待当前座位出牌
	PhaseAwaitClaims                   // 等待其余座位对弃牌表态
	PhaseTerminal                      // 局已结束
)

func (p TurnPhase) String() string {
	switch p {
	case PhaseAwaitDraw:
		return "await_draw"
	case PhaseAwaitDiscard:
		return "await_discard"
	case PhaseAwaitClaims:
		return "await_claims"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// TurnManager 管理行牌权与阶段流转
type TurnManager struct {
	TurnPointer int       // 当前行动座位
	Phase       TurnPhase // 当前阶段
	TurnCount   int       // 已完成的摸牌次数，封顶判和平用
}

// NewTurnManager 从庄家座位开局，庄家配 14 张直接进入出牌阶段
func NewTurnManager(dealerSeat int) *TurnManager {
	return &TurnManager{
		TurnPointer: dealerSeat,
		Phase:       PhaseAwaitDiscard,
	}
}

// NextTurn 行牌权顺时针移交，回到摸牌阶段
func (t *TurnManager) NextTurn() {
	t.TurnPointer = (t.TurnPointer + 1) % SeatCount
	t.Phase = PhaseAwaitDraw
}

// PassTo 行牌权直接跳转到指定座位（鸣牌后插队）
func (t *TurnManager) PassTo(seat int, phase TurnPhase) {
	t.TurnPointer = seat
	t.Phase = phase
}

// Current 当前行动座位
func (t *TurnManager) Current() int {
	return t.TurnPointer
}
