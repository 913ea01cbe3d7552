package wheel

import (
	"time"

	"spinx_backend/internal/model"
)

// RNG — источник случайности, подменяется в тестах
type RNG interface {
	Intn(n int) int
}

// Timer — запланированный вызов, который можно отменить
type Timer interface {
	Stop() bool
}

// Clock — источник времени и таймеров движка.
// Фазы раунда переключаются только из его колбэков
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Notifier — порт уведомлений внешнего UI (рендер, модалки, звук).
// Движок ничего не знает о конкретном отображении
type Notifier interface {
	RoundOpened(countdownSeconds int)
	CountdownTick(secondsLeft int)
	// SpinFinished вызывается на каждом раунде; entry == nil для
	// декоративного вращения без ставки
	SpinFinished(segmentIndex int, entry *model.HistoryEntry, message string)
	ThresholdReward(message string)
}
