package wheel_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"spinx_backend/internal/model"
	"spinx_backend/internal/service/wheel"
)

// scriptedRNG returns values from a pre-set sequence.
type scriptedRNG struct {
	values []int
	idx    int
}

func (r *scriptedRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

// seededRNG wraps math/rand/v2 with a fixed seed.
type seededRNG struct {
	r *rand.Rand
}

func newSeededRNG(seed uint64) *seededRNG {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededRNG) Intn(n int) int { return s.r.IntN(n) }

func spinxSegments() []model.Segment {
	return []model.Segment{
		{Label: "Try Again", CashValue: 0, Gift: model.GiftNone, Weight: 12},
		{Label: "KSh 50", CashValue: 50, Gift: model.GiftNone, Weight: 9},
		{Label: "Free Spin", CashValue: 0, Gift: model.GiftFreeSpin, Weight: 4},
		{Label: "KSh 1000", CashValue: 1000, Gift: model.GiftNone, Weight: 6},
		{Label: "Sticker", CashValue: 0, Gift: model.Gift("Sticker Pack"), Weight: 3},
		{Label: "KSh 250", CashValue: 250, Gift: model.GiftNone, Weight: 5},
		{Label: "Try Again", CashValue: 0, Gift: model.GiftNone, Weight: 12},
		{Label: "KSh 150", CashValue: 150, Gift: model.GiftNone, Weight: 7},
		{Label: "Gold Badge", CashValue: 0, Gift: model.GiftBonusBadge, Weight: 2},
		{Label: "KSh 300", CashValue: 300, Gift: model.GiftNone, Weight: 5},
	}
}

func TestSegmentTable_Empty(t *testing.T) {
	_, err := wheel.NewSegmentTable(nil)
	if err == nil {
		t.Fatal("expected error for empty segment table")
	}
}

func TestSegmentTable_TotalWeight(t *testing.T) {
	table, err := wheel.NewSegmentTable(spinxSegments())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := table.TotalWeight(), 65; got != want {
		t.Errorf("TotalWeight() = %d, want %d", got, want)
	}
	if got, want := table.Len(), 10; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got := table.SegmentAt(1).Label; got != "KSh 50" {
		t.Errorf("SegmentAt(1).Label = %q, want %q", got, "KSh 50")
	}
}

// Частоты выпадения должны сходиться к weight_i / totalWeight.
func TestSelector_FrequencyConvergence(t *testing.T) {
	segments := spinxSegments()
	table, err := wheel.NewSegmentTable(segments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	selector := wheel.NewSelector(table, newSeededRNG(42))

	const draws = 100000
	counts := make([]int, len(segments))
	for i := 0; i < draws; i++ {
		idx := selector.Pick()
		if idx < 0 || idx >= len(segments) {
			t.Fatalf("Pick() = %d, out of range", idx)
		}
		counts[idx]++
	}

	total := float64(table.TotalWeight())
	for i, seg := range segments {
		want := float64(seg.Weight) / total
		got := float64(counts[i]) / draws
		if math.Abs(got-want) > 0.01 {
			t.Errorf("segment %d (%s): frequency %.4f, want %.4f ± 0.01", i, seg.Label, got, want)
		}
	}
}

// Вырожденная конфигурация: все веса нулевые — равномерный выбор без паники.
func TestSelector_AllZeroWeights(t *testing.T) {
	segments := []model.Segment{
		{Label: "A", Weight: 0},
		{Label: "B", Weight: 0},
		{Label: "C", Weight: 0},
	}
	table, err := wheel.NewSegmentTable(segments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	selector := wheel.NewSelector(table, newSeededRNG(7))

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		idx := selector.Pick()
		if idx < 0 || idx >= len(segments) {
			t.Fatalf("Pick() = %d, out of range", idx)
		}
		seen[idx] = true
	}

	if len(seen) != len(segments) {
		t.Errorf("uniform fallback hit %d of %d segments", len(seen), len(segments))
	}
}

func TestSelector_ZeroWeightSegmentNeverPicked(t *testing.T) {
	segments := []model.Segment{
		{Label: "never", Weight: 0},
		{Label: "always", Weight: 3},
	}
	table, err := wheel.NewSegmentTable(segments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	selector := wheel.NewSelector(table, newSeededRNG(1))
	for i := 0; i < 1000; i++ {
		if idx := selector.Pick(); idx == 0 {
			t.Fatal("zero-weight segment was picked")
		}
	}
}
