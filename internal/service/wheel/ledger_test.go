package wheel_test

import (
	"errors"
	"testing"

	"spinx_backend/internal/model"
	"spinx_backend/internal/service/wheel"
)

const (
	testMinStake       = 1
	testReferenceUnit  = 50
	testBadgeThreshold = 5
)

func newTestLedger(wallet *model.WalletState) *wheel.Ledger {
	return wheel.NewLedger(wallet, testMinStake, testReferenceUnit, testBadgeThreshold)
}

func TestLedger_PlaceBet_DeductsStake(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000}
	ledger := newTestLedger(wallet)

	bet, err := ledger.PlaceBet(100, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bet.Stake != 100 || bet.UsesFreeSpin {
		t.Errorf("bet = %+v, want stake 100, no free spin", bet)
	}
	if wallet.Balance != 900 {
		t.Errorf("balance = %d, want 900", wallet.Balance)
	}
}

func TestLedger_PlaceBet_InsufficientFunds(t *testing.T) {
	wallet := &model.WalletState{Balance: 50, FreeSpins: 2}
	ledger := newTestLedger(wallet)

	_, err := ledger.PlaceBet(100, false)
	if !errors.Is(err, wheel.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	// Отклоненный вызов не оставляет частичных изменений
	if wallet.Balance != 50 || wallet.FreeSpins != 2 {
		t.Errorf("wallet mutated on rejection: %+v", wallet)
	}
}

func TestLedger_PlaceBet_InvalidStake(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000}
	ledger := newTestLedger(wallet)

	_, err := ledger.PlaceBet(0, false)
	if !errors.Is(err, wheel.ErrInvalidStake) {
		t.Fatalf("err = %v, want ErrInvalidStake", err)
	}
	if wallet.Balance != 1000 {
		t.Errorf("balance mutated on rejection: %d", wallet.Balance)
	}
}

func TestLedger_PlaceBet_NoFreeSpins(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000, FreeSpins: 0}
	ledger := newTestLedger(wallet)

	_, err := ledger.PlaceBet(0, true)
	if !errors.Is(err, wheel.ErrNoFreeSpins) {
		t.Fatalf("err = %v, want ErrNoFreeSpins", err)
	}
	if wallet.Balance != 1000 || wallet.FreeSpins != 0 {
		t.Errorf("wallet mutated on rejection: %+v", wallet)
	}
}

func TestLedger_PlaceBet_FreeSpin(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000, FreeSpins: 3}
	ledger := newTestLedger(wallet)

	bet, err := ledger.PlaceBet(500, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ставка фриспином не трогает баланс и обнуляет stake
	if bet.Stake != 0 || !bet.UsesFreeSpin {
		t.Errorf("bet = %+v, want zero stake free spin", bet)
	}
	if wallet.Balance != 1000 {
		t.Errorf("balance = %d, want 1000", wallet.Balance)
	}
	if wallet.FreeSpins != 2 {
		t.Errorf("freeSpins = %d, want 2", wallet.FreeSpins)
	}
}

// Опорный сценарий: ставка 100 на "KSh 50" при reference unit 50 —
// выплата 100, итоговый баланс равен исходному.
func TestLedger_Resolve_ReferenceScenario(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000}
	ledger := newTestLedger(wallet)

	bet, err := ledger.PlaceBet(100, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wallet.Balance != 900 {
		t.Fatalf("balance after bet = %d, want 900", wallet.Balance)
	}

	segment := model.Segment{Label: "KSh 50", CashValue: 50, Weight: 9}
	res := ledger.Resolve(bet, segment)

	if res.Payout != 100 {
		t.Errorf("payout = %d, want 100", res.Payout)
	}
	if !res.IsWin {
		t.Error("IsWin = false, want true")
	}
	if wallet.Balance != 1000 {
		t.Errorf("final balance = %d, want 1000", wallet.Balance)
	}
}

func TestLedger_Resolve_LosingSegment(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000}
	ledger := newTestLedger(wallet)

	bet, _ := ledger.PlaceBet(100, false)
	res := ledger.Resolve(bet, model.Segment{Label: "Try Again", CashValue: 0, Weight: 12})

	if res.Payout != 0 || res.IsWin {
		t.Errorf("resolution = %+v, want losing", res)
	}
	if wallet.Balance != 900 {
		t.Errorf("balance = %d, want 900", wallet.Balance)
	}
}

// Фриспин-ставка платит value напрямую, без множителя ставки.
func TestLedger_Resolve_FreeSpinPaysDirectValue(t *testing.T) {
	wallet := &model.WalletState{Balance: 0, FreeSpins: 1}
	ledger := newTestLedger(wallet)

	bet, _ := ledger.PlaceBet(0, true)
	res := ledger.Resolve(bet, model.Segment{Label: "KSh 1000", CashValue: 1000, Weight: 6})

	if res.Payout != 1000 {
		t.Errorf("payout = %d, want 1000", res.Payout)
	}
	if wallet.Balance != 1000 {
		t.Errorf("balance = %d, want 1000", wallet.Balance)
	}
}

func TestLedger_Resolve_FreeSpinGift(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000}
	ledger := newTestLedger(wallet)

	bet, _ := ledger.PlaceBet(10, false)
	res := ledger.Resolve(bet, model.Segment{Label: "Free Spin", Gift: model.GiftFreeSpin, Weight: 4})

	if !res.IsWin {
		t.Error("gift segment must count as a win")
	}
	if wallet.FreeSpins != 1 {
		t.Errorf("freeSpins = %d, want 1", wallet.FreeSpins)
	}
}

func TestLedger_Resolve_OtherGiftIsWin(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000}
	ledger := newTestLedger(wallet)

	bet, _ := ledger.PlaceBet(10, false)
	res := ledger.Resolve(bet, model.Segment{Label: "Sticker", Gift: model.Gift("Sticker Pack"), Weight: 3})

	if !res.IsWin {
		t.Error("gift segment must count as a win")
	}
	if res.Payout != 0 {
		t.Errorf("payout = %d, want 0", res.Payout)
	}
}

func TestLedger_Resolve_BadgeAccumulates(t *testing.T) {
	wallet := &model.WalletState{Balance: 1000}
	ledger := newTestLedger(wallet)

	bet, _ := ledger.PlaceBet(10, false)
	res := ledger.Resolve(bet, model.Segment{Label: "Gold Badge", Gift: model.GiftBonusBadge, Weight: 2})

	if wallet.BonusBadgeCount != 1 {
		t.Errorf("badgeCount = %d, want 1", wallet.BonusBadgeCount)
	}
	if res.ThresholdHit {
		t.Error("threshold must not fire below the limit")
	}
	if wallet.FreeSpins != 0 {
		t.Errorf("freeSpins = %d, want 0", wallet.FreeSpins)
	}
}

// Сценарий порога: фриспин-ставка на "Gold Badge" при badgeCount = порог-1.
// После разрешения badgeCount == 0, freeSpins = исходное значение
// (спин потрачен -1, награда за порог +1).
func TestLedger_Resolve_BadgeThresholdExactlyOnce(t *testing.T) {
	wallet := &model.WalletState{Balance: 0, FreeSpins: 1, BonusBadgeCount: testBadgeThreshold - 1}
	ledger := newTestLedger(wallet)

	bet, err := ledger.PlaceBet(0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wallet.FreeSpins != 0 {
		t.Fatalf("freeSpins after bet = %d, want 0", wallet.FreeSpins)
	}

	res := ledger.Resolve(bet, model.Segment{Label: "Gold Badge", Gift: model.GiftBonusBadge, Weight: 2})

	if !res.ThresholdHit {
		t.Error("ThresholdHit = false, want true")
	}
	if wallet.BonusBadgeCount != 0 {
		t.Errorf("badgeCount = %d, want 0", wallet.BonusBadgeCount)
	}
	if wallet.FreeSpins != 1 {
		t.Errorf("freeSpins = %d, want 1 (consumed -1, reward +1)", wallet.FreeSpins)
	}
}

// Баланс не уходит в минус ни при какой последовательности операций.
func TestLedger_BalanceNeverNegative(t *testing.T) {
	wallet := &model.WalletState{Balance: 100, FreeSpins: 1}
	ledger := newTestLedger(wallet)

	segments := []model.Segment{
		{Label: "Try Again", CashValue: 0, Weight: 12},
		{Label: "KSh 50", CashValue: 50, Weight: 9},
		{Label: "Gold Badge", Gift: model.GiftBonusBadge, Weight: 2},
	}

	rng := newSeededRNG(99)
	for i := 0; i < 500; i++ {
		useFree := wallet.FreeSpins > 0 && rng.Intn(2) == 0
		stake := 0
		if !useFree {
			stake = rng.Intn(150) // иногда заведомо больше баланса
		}

		bet, err := ledger.PlaceBet(stake, useFree)
		if err != nil {
			continue
		}
		ledger.Resolve(bet, segments[rng.Intn(len(segments))])

		if wallet.Balance < 0 {
			t.Fatalf("balance went negative: %d (iteration %d)", wallet.Balance, i)
		}
	}
}
