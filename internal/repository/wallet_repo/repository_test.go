package wallet_repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"spinx_backend/internal/model"
	"spinx_backend/internal/repository/wallet_repo"
)

func newTestRepo(t *testing.T) *wallet_repo.Repo {
	t.Helper()
	repo, err := wallet_repo.NewWalletRepository(":memory:")
	if err != nil {
		t.Fatalf("NewWalletRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoadWallet_EmptyStore(t *testing.T) {
	repo := newTestRepo(t)

	state, err := repo.LoadWallet(context.Background())
	if err != nil {
		t.Fatalf("LoadWallet: %v", err)
	}
	if *state != (model.WalletState{}) {
		t.Errorf("fresh store state = %+v, want zero", *state)
	}
}

func TestSaveWallet_Roundtrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := model.WalletState{
		Balance:         1250,
		FreeSpins:       2,
		BonusBadgeCount: 4,
		AutoPlayEnabled: true,
		SoundEnabled:    true,
	}
	if err := repo.SaveWallet(ctx, &want); err != nil {
		t.Fatalf("SaveWallet: %v", err)
	}

	got, err := repo.LoadWallet(ctx)
	if err != nil {
		t.Fatalf("LoadWallet: %v", err)
	}
	if *got != want {
		t.Errorf("roundtrip = %+v, want %+v", *got, want)
	}
}

func TestSaveWallet_OverwritesPrevious(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SaveWallet(ctx, &model.WalletState{Balance: 100, AutoPlayEnabled: true}); err != nil {
		t.Fatalf("SaveWallet: %v", err)
	}
	if err := repo.SaveWallet(ctx, &model.WalletState{Balance: 60}); err != nil {
		t.Fatalf("SaveWallet: %v", err)
	}

	got, err := repo.LoadWallet(ctx)
	if err != nil {
		t.Fatalf("LoadWallet: %v", err)
	}
	if got.Balance != 60 {
		t.Errorf("balance = %d, want 60", got.Balance)
	}
	if got.AutoPlayEnabled {
		t.Error("autoPlay flag survived overwrite")
	}
}

func TestHistory_NewestFirstRoundtrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	first := model.HistoryEntry{
		Time:         base,
		SegmentLabel: "KSh 50",
		Stake:        100,
		Payout:       100,
		IsWin:        true,
	}
	second := model.HistoryEntry{
		Time:         base.Add(7 * time.Second),
		SegmentLabel: "Free Spin",
		Gift:         model.GiftFreeSpin,
		IsWin:        true,
	}

	if err := repo.AppendHistory(ctx, first, 100); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}
	if err := repo.AppendHistory(ctx, second, 100); err != nil {
		t.Fatalf("AppendHistory: %v", err)
	}

	got, err := repo.LoadHistory(ctx, 100)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("history length = %d, want 2", len(got))
	}
	if got[0].SegmentLabel != "Free Spin" || got[0].Gift != model.GiftFreeSpin {
		t.Errorf("newest entry = %+v", got[0])
	}
	if got[1].Stake != 100 || got[1].Payout != 100 || !got[1].IsWin {
		t.Errorf("oldest entry = %+v", got[1])
	}
	if !got[1].Time.Equal(first.Time) {
		t.Errorf("time = %v, want %v", got[1].Time, first.Time)
	}
}

func TestAppendHistory_TrimsToCap(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		entry := model.HistoryEntry{
			Time:         time.Now(),
			SegmentLabel: fmt.Sprintf("spin-%d", i),
		}
		if err := repo.AppendHistory(ctx, entry, 3); err != nil {
			t.Fatalf("AppendHistory: %v", err)
		}
	}

	got, err := repo.LoadHistory(ctx, 100)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("history length = %d, want 3", len(got))
	}
	if got[0].SegmentLabel != "spin-6" || got[2].SegmentLabel != "spin-4" {
		t.Errorf("kept = [%s .. %s], want [spin-6 .. spin-4]", got[0].SegmentLabel, got[2].SegmentLabel)
	}
}

func TestLoadHistory_RespectsLimit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		entry := model.HistoryEntry{Time: time.Now(), SegmentLabel: fmt.Sprintf("spin-%d", i)}
		if err := repo.AppendHistory(ctx, entry, 100); err != nil {
			t.Fatalf("AppendHistory: %v", err)
		}
	}

	got, err := repo.LoadHistory(ctx, 2)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("history length = %d, want 2", len(got))
	}
}
