package mahjong

import "errors"

// 牌与索引相关错误
var (
	ErrInvalidTileIndex = errors.New("无效的牌索引")
	ErrInvalidSeat      = errors.New("无效的座位索引")
)

// 牌墙与发牌相关错误
var (
	ErrInsufficientTiles = errors.New("牌池数量不足以完成发牌")
	ErrRoundNotStarted   = errors.New("对局尚未开始")
)

// 回合与操作相关错误
var (
	ErrWrongPhase    = errors.New("当前阶段不允许该操作")
	ErrWrongSeat     = errors.New("不是该座位的操作回合")
	ErrTileNotInHand = errors.New("手牌中不存在该牌")
	ErrIllegalClaim  = errors.New("不符合条件的副露或和牌声明")
	ErrRoundFinished = errors.New("对局已结束")
)
