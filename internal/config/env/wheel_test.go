package env_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spinx_backend/internal/config/env"
	"spinx_backend/internal/model"
)

const validWheelYAML = `
wheel:
  bet_window_seconds: 5
  cooldown_seconds: 2
  min_stake: 1
  reference_stake_unit: 50
  badge_threshold: 5
  max_history: 2000
  max_feed: 50
  max_auto_attempts: 1000
  currency: "KSh"
  segments:
    - {label: "Try Again", value: 0, weight: 12}
    - {label: "KSh 50", value: 50, weight: 9}
    - {label: "Free Spin", gift: "Free Spin", weight: 4}
    - {label: "Gold Badge", gift: "Gold Badge", weight: 2}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewWheelConfigFromYAML(t *testing.T) {
	cfg, err := env.NewWheelConfigFromYAML(writeConfig(t, validWheelYAML))
	if err != nil {
		t.Fatalf("NewWheelConfigFromYAML: %v", err)
	}

	if got := cfg.BetWindowSeconds(); got != 5 {
		t.Errorf("BetWindowSeconds = %d, want 5", got)
	}
	if got := cfg.ReferenceStakeUnit(); got != 50 {
		t.Errorf("ReferenceStakeUnit = %d, want 50", got)
	}
	if got := cfg.Currency(); got != "KSh" {
		t.Errorf("Currency = %q, want KSh", got)
	}

	segments := cfg.Segments()
	if len(segments) != 4 {
		t.Fatalf("segments = %d, want 4", len(segments))
	}
	if segments[1].CashValue != 50 || segments[1].Weight != 9 {
		t.Errorf("segment 1 = %+v", segments[1])
	}
	if segments[2].Gift != model.GiftFreeSpin {
		t.Errorf("segment 2 gift = %q, want Free Spin", segments[2].Gift)
	}

	// Конфигурация неизменяема снаружи
	segments[0].Weight = 999
	if got := cfg.Segments()[0].Weight; got != 12 {
		t.Errorf("config mutated through Segments(): weight = %d", got)
	}
}

func TestNewWheelConfigFromYAML_MissingFile(t *testing.T) {
	_, err := env.NewWheelConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewWheelConfigFromYAML_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "no segments",
			mutate:  func(y string) string { return y[:strings.Index(y, "  segments:")] },
			wantErr: "at least one segment",
		},
		{
			name: "zero total weight",
			mutate: func(y string) string {
				return strings.NewReplacer(
					"weight: 12", "weight: 0",
					"weight: 9", "weight: 0",
					"weight: 4", "weight: 0",
					"weight: 2", "weight: 0",
				).Replace(y)
			},
			wantErr: "weight > 0",
		},
		{
			name:    "negative value",
			mutate:  func(y string) string { return strings.Replace(y, "value: 50", "value: -50", 1) },
			wantErr: "negative value",
		},
		{
			name:    "zero bet window",
			mutate:  func(y string) string { return strings.Replace(y, "bet_window_seconds: 5", "bet_window_seconds: 0", 1) },
			wantErr: "bet_window_seconds",
		},
		{
			name:    "zero reference unit",
			mutate:  func(y string) string { return strings.Replace(y, "reference_stake_unit: 50", "reference_stake_unit: 0", 1) },
			wantErr: "reference_stake_unit",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.NewWheelConfigFromYAML(writeConfig(t, tc.mutate(validWheelYAML)))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}
