package model

import "time"

// Gift — подарок на сегменте колеса. Пустая строка — подарка нет,
// любое другое значение кроме известных констант — произвольный приз.
type Gift string

const (
	GiftNone       Gift = ""
	GiftFreeSpin   Gift = "Free Spin"
	GiftBonusBadge Gift = "Gold Badge"
)

// Segment — один сегмент колеса: неизменяемая конфигурация
type Segment struct {
	Label     string
	CashValue int  // Денежный приз (неотрицательный)
	Gift      Gift // Подарок (может быть пустым)
	Weight    int  // Относительный вес выпадения
}

// Bet — принятая ставка текущего раунда
type Bet struct {
	Stake        int  // Сумма ставки (0 если фриспин)
	UsesFreeSpin bool // Ставка за счет фриспина
}

// WalletState — состояние кошелька игрока.
// Инвариант: Balance никогда не уходит в минус
type WalletState struct {
	Balance         int
	FreeSpins       int
	BonusBadgeCount int // Прогресс к порогу золотых значков
	AutoPlayEnabled bool
	SoundEnabled    bool
}

// Resolution — результат разрешения ставки против выпавшего сегмента
type Resolution struct {
	Payout       int
	Gift         Gift
	IsWin        bool
	ThresholdHit bool // Порог значков пересечен в этом раунде
}

// HistoryEntry — запись истории, добавляется при разрешении раунда
type HistoryEntry struct {
	Time         time.Time
	SegmentLabel string
	Stake        int
	Payout       int
	Gift         Gift
	IsWin        bool
}

// Phase — фаза жизненного цикла раунда
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBettingOpen
	PhaseLocked
	PhaseResolving
	PhaseCooldown
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBettingOpen:
		return "betting_open"
	case PhaseLocked:
		return "locked"
	case PhaseResolving:
		return "resolving"
	case PhaseCooldown:
		return "cooldown"
	}
	return "unknown"
}

// RoundState — состояние текущего раунда
type RoundState struct {
	Phase            Phase
	CountdownSeconds int
	PendingBet       *Bet
}

// EngineSnapshot — снимок состояния движка для выдачи клиенту
type EngineSnapshot struct {
	Phase            Phase
	CountdownSeconds int
	HasPendingBet    bool
	Wallet           WalletState
	AutoAttemptsUsed int
	LastWin          int
}
