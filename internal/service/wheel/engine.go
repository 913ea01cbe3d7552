package wheel

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"spinx_backend/internal/config"
	"spinx_backend/internal/model"
	"spinx_backend/internal/repository"
)

// Engine — движок раундов колеса. Единолично владеет кошельком и
// состоянием раунда; фазы переключаются только из собственных таймеров,
// внешние вызовы лишь изменяют состояние, достижимое из текущей фазы
type Engine struct {
	mu sync.Mutex

	cfg      config.WheelConfig
	table    *SegmentTable
	selector *Selector
	ledger   *Ledger
	recorder *Recorder
	clock    Clock
	store    repository.WalletRepository
	notifier Notifier

	wallet model.WalletState
	round  model.RoundState

	attemptsUsed int // Счетчик попыток авто-игры
	lastStake    int // Последняя ставка для авто-игры
	lastWin      int

	timer   Timer
	running bool
}

func NewEngine(
	cfg config.WheelConfig,
	store repository.WalletRepository,
	notifier Notifier,
	rng RNG,
	clock Clock,
) (*Engine, error) {
	table, err := NewSegmentTable(cfg.Segments())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		table:     table,
		recorder:  NewRecorder(cfg.MaxHistory(), cfg.MaxFeed()),
		clock:     clock,
		store:     store,
		notifier:  notifier,
		lastStake: cfg.MinStake(),
	}
	e.selector = NewSelector(table, rng)
	e.ledger = NewLedger(&e.wallet, cfg.MinStake(), cfg.ReferenceStakeUnit(), cfg.BadgeThreshold())

	return e, nil
}

// Start загружает сохраненное состояние и открывает первый раунд
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return nil
	}

	state, err := e.store.LoadWallet(ctx)
	if err != nil {
		log.Printf("wheel: load wallet failed, starting fresh: %v", err)
		state = &model.WalletState{}
	}
	e.wallet = *state

	history, err := e.store.LoadHistory(ctx, e.cfg.MaxHistory())
	if err != nil {
		log.Printf("wheel: load history failed: %v", err)
	} else {
		e.recorder.Restore(history)
	}

	e.running = true
	e.openRound()

	return nil
}

// Stop останавливает планирование будущих таймеров.
// Раунд в фазе Resolving не откатывается
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.running = false
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// SubmitBet принимает ставку текущего раунда.
// Допустима только в фазе приема ставок и только одна на раунд
func (e *Engine) SubmitBet(stake int, useFreeSpin bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.submitBet(stake, useFreeSpin)
}

// submitBet — под мьютексом; общий путь ручной и авто-игры
func (e *Engine) submitBet(stake int, useFreeSpin bool) error {
	if !e.running || e.round.Phase != model.PhaseBettingOpen {
		return ErrBettingClosed
	}
	if e.round.PendingBet != nil {
		return ErrDuplicateBet
	}

	bet, err := e.ledger.PlaceBet(stake, useFreeSpin)
	if err != nil {
		return err
	}

	e.round.PendingBet = bet
	if !useFreeSpin {
		e.lastStake = stake
	}
	e.persistWallet()

	return nil
}

// ToggleAutoPlay переключает авто-игру. Включение обнуляет счетчик
// попыток; выключение не отменяет уже принятую ставку
func (e *Engine) ToggleAutoPlay() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.wallet.AutoPlayEnabled = !e.wallet.AutoPlayEnabled
	if e.wallet.AutoPlayEnabled {
		e.attemptsUsed = 0
		// Если ставки еще принимаются — играем сразу, не дожидаясь
		// следующего раунда
		if e.round.Phase == model.PhaseBettingOpen && e.round.PendingBet == nil {
			e.autoPlayAttempt()
		}
	}
	e.persistWallet()

	return e.wallet.AutoPlayEnabled
}

func (e *Engine) ToggleSound() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.wallet.SoundEnabled = !e.wallet.SoundEnabled
	e.persistWallet()

	return e.wallet.SoundEnabled
}

func (e *Engine) State() model.EngineSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return model.EngineSnapshot{
		Phase:            e.round.Phase,
		CountdownSeconds: e.round.CountdownSeconds,
		HasPendingBet:    e.round.PendingBet != nil,
		Wallet:           e.wallet,
		AutoAttemptsUsed: e.attemptsUsed,
		LastWin:          e.lastWin,
	}
}

func (e *Engine) History() []model.HistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.recorder.History()
}

func (e *Engine) Feed() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.recorder.Feed()
}

// openRound открывает прием ставок и взводит секундный таймер.
// Вызывается под мьютексом
func (e *Engine) openRound() {
	e.round.Phase = model.PhaseBettingOpen
	e.round.CountdownSeconds = e.cfg.BetWindowSeconds()
	e.round.PendingBet = nil

	e.notifier.RoundOpened(e.round.CountdownSeconds)
	e.autoPlayAttempt()
	e.armTick()
}

func (e *Engine) armTick() {
	e.timer = e.clock.AfterFunc(time.Second, e.tick)
}

func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running || e.round.Phase != model.PhaseBettingOpen {
		return
	}

	e.round.CountdownSeconds--
	e.notifier.CountdownTick(e.round.CountdownSeconds)

	if e.round.CountdownSeconds > 0 {
		e.armTick()
		return
	}

	e.lockAndResolve()
}

// lockAndResolve — Locked -> Resolving -> Cooldown.
// Ровно одно разрешение на раунд: PendingBet очищается до того,
// как может быть принята следующая ставка
func (e *Engine) lockAndResolve() {
	e.round.Phase = model.PhaseLocked
	index := e.selector.Pick()

	e.round.Phase = model.PhaseResolving
	if e.round.PendingBet != nil {
		e.resolveBet(index)
	} else {
		// Декоративное вращение: колесо крутится каждый цикл,
		// но кошелек и история не затрагиваются
		e.notifier.SpinFinished(index, nil, "")
	}
	e.round.PendingBet = nil

	e.round.Phase = model.PhaseCooldown
	cooldown := time.Duration(e.cfg.CooldownSeconds()) * time.Second
	e.timer = e.clock.AfterFunc(cooldown, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if !e.running {
			return
		}
		e.openRound()
	})
}

func (e *Engine) resolveBet(index int) {
	bet := e.round.PendingBet
	segment := e.table.SegmentAt(index)

	res := e.ledger.Resolve(bet, segment)
	e.lastWin = res.Payout

	entry := model.HistoryEntry{
		Time:         e.clock.Now(),
		SegmentLabel: segment.Label,
		Stake:        bet.Stake,
		Payout:       res.Payout,
		Gift:         res.Gift,
		IsWin:        res.IsWin,
	}
	e.recorder.Append(entry)
	e.recorder.PushFeed(e.feedLine(entry))

	e.persistWallet()
	e.persistHistory(entry)

	e.notifier.SpinFinished(index, &entry, e.resultMessage(res))
	if res.ThresholdHit {
		e.notifier.ThresholdReward(fmt.Sprintf(
			"You've won a free spin for reaching %d Gold Badges!", e.cfg.BadgeThreshold(),
		))
	}

	// Авто-игра выключается, когда играть больше нечем
	if e.wallet.AutoPlayEnabled && e.wallet.Balance <= 0 && e.wallet.FreeSpins <= 0 {
		e.wallet.AutoPlayEnabled = false
		e.persistWallet()
	}
}

func (e *Engine) resultMessage(res model.Resolution) string {
	var b strings.Builder

	switch {
	case res.Gift == model.GiftFreeSpin:
		b.WriteString("🎁 Free spin awarded! ")
	case res.Gift != model.GiftNone && res.Gift != model.GiftBonusBadge:
		fmt.Fprintf(&b, "🎉 You received: %s! ", res.Gift)
	}

	if res.Payout > 0 {
		fmt.Fprintf(&b, "You won %s %d!", e.cfg.Currency(), res.Payout)
	} else {
		b.WriteString("Try again next time!")
	}

	return b.String()
}

func (e *Engine) feedLine(entry model.HistoryEntry) string {
	what := fmt.Sprintf("%s %d", e.cfg.Currency(), entry.Payout)
	if entry.Gift != model.GiftNone {
		what = string(entry.Gift)
	}
	return fmt.Sprintf("Player won %s at %s", what, entry.Time.Format("15:04:05"))
}

// persistWallet пишет кошелек в хранилище сразу после мутации.
// Ошибка записи логируется, состояние в памяти остается истинным
func (e *Engine) persistWallet() {
	state := e.wallet
	if err := e.store.SaveWallet(context.Background(), &state); err != nil {
		log.Printf("wheel: persistence write failed: %v", err)
	}
}

func (e *Engine) persistHistory(entry model.HistoryEntry) {
	if err := e.store.AppendHistory(context.Background(), entry, e.cfg.MaxHistory()); err != nil {
		log.Printf("wheel: persistence write failed: %v", err)
	}
}
