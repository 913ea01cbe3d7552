package wheel_test

import (
	"testing"

	"spinx_backend/internal/model"
)

func TestAutoPlay_BetsOnEnable(t *testing.T) {
	f := newEngineFixture(t, model.WalletState{Balance: 1000}, []int{0})

	enabled := f.engine.ToggleAutoPlay()
	if !enabled {
		t.Fatal("ToggleAutoPlay returned false on enable")
	}

	snap := f.engine.State()
	if !snap.HasPendingBet {
		t.Fatal("auto-play did not place a bet in the open window")
	}
	// Ставка минимальная: истории ставок еще нет
	if snap.Wallet.Balance != 1000-testMinStake {
		t.Errorf("balance = %d, want %d", snap.Wallet.Balance, 1000-testMinStake)
	}
	if snap.AutoAttemptsUsed != 1 {
		t.Errorf("attemptsUsed = %d, want 1", snap.AutoAttemptsUsed)
	}
}

func TestAutoPlay_RepeatsLastStake(t *testing.T) {
	// Оба раунда проигрышные (сегмент 0)
	f := newEngineFixture(t, model.WalletState{Balance: 1000}, []int{0})

	if err := f.engine.SubmitBet(200, false); err != nil {
		t.Fatalf("SubmitBet: %v", err)
	}
	f.runRound(t)

	f.engine.ToggleAutoPlay()
	snap := f.engine.State()
	if !snap.HasPendingBet {
		t.Fatal("auto-play did not bet")
	}
	if snap.Wallet.Balance != 800-200 {
		t.Errorf("balance = %d, want 600 (repeat stake 200)", snap.Wallet.Balance)
	}
}

func TestAutoPlay_PrefersFreeSpin(t *testing.T) {
	f := newEngineFixture(t, model.WalletState{Balance: 1000, FreeSpins: 2}, []int{0})

	f.engine.ToggleAutoPlay()

	snap := f.engine.State()
	if !snap.HasPendingBet {
		t.Fatal("auto-play did not bet")
	}
	if snap.Wallet.FreeSpins != 1 {
		t.Errorf("freeSpins = %d, want 1", snap.Wallet.FreeSpins)
	}
	if snap.Wallet.Balance != 1000 {
		t.Errorf("balance = %d, want 1000 (free spin costs nothing)", snap.Wallet.Balance)
	}
}

func TestAutoPlay_ClampsStakeToBalance(t *testing.T) {
	f := newEngineFixture(t, model.WalletState{Balance: 1000}, []int{0})

	if err := f.engine.SubmitBet(900, false); err != nil {
		t.Fatalf("SubmitBet: %v", err)
	}
	f.runRound(t) // проигрыш, баланс 100

	f.engine.ToggleAutoPlay()
	snap := f.engine.State()
	if !snap.HasPendingBet {
		t.Fatal("auto-play did not bet")
	}
	if snap.Wallet.Balance != 0 {
		t.Errorf("balance = %d, want 0 (stake clamped to remaining 100)", snap.Wallet.Balance)
	}
}

func TestAutoPlay_DisablesAtAttemptCap(t *testing.T) {
	// maxAutoAttempts = 3 в тестовой конфигурации
	f := newEngineFixture(t, model.WalletState{Balance: 100000}, []int{0})

	f.engine.ToggleAutoPlay()
	for i := 0; i < 3; i++ {
		f.runRound(t)
	}

	snap := f.engine.State()
	if snap.Wallet.AutoPlayEnabled {
		t.Error("auto-play still enabled past the attempt cap")
	}
	if snap.HasPendingBet {
		t.Error("bet placed after the attempt cap")
	}
	if snap.AutoAttemptsUsed != 3 {
		t.Errorf("attemptsUsed = %d, want 3", snap.AutoAttemptsUsed)
	}
}

func TestAutoPlay_DisablesWhenBroke(t *testing.T) {
	// Единственная ставка проигрывает весь баланс
	f := newEngineFixture(t, model.WalletState{Balance: 1}, []int{0})

	f.engine.ToggleAutoPlay()
	f.runRound(t)

	snap := f.engine.State()
	if snap.Wallet.AutoPlayEnabled {
		t.Error("auto-play still enabled with no funds")
	}
	if snap.Wallet.Balance != 0 {
		t.Errorf("balance = %d, want 0", snap.Wallet.Balance)
	}
}

func TestAutoPlay_ReEnableResetsCounter(t *testing.T) {
	f := newEngineFixture(t, model.WalletState{Balance: 100000}, []int{0})

	f.engine.ToggleAutoPlay() // вкл: попытка 1
	f.engine.ToggleAutoPlay() // выкл, принятая ставка остается
	f.runRound(t)             // новый раунд открывается без авто-ставки
	f.engine.ToggleAutoPlay() // вкл заново: счетчик с нуля

	if got := f.engine.State().AutoAttemptsUsed; got != 1 {
		t.Errorf("attemptsUsed = %d, want 1 (reset on enable, then one bet)", got)
	}
}
