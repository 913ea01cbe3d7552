package wheel

import "time"

type BetRequest struct {
	Stake       int  `json:"stake"`         // Размер ставки
	UseFreeSpin bool `json:"use_free_spin"` // Играть за фриспин
}

type StateResponse struct {
	Phase            string `json:"phase"`
	CountdownSeconds int    `json:"countdown_seconds"`
	HasPendingBet    bool   `json:"has_pending_bet"`
	Balance          int    `json:"balance"`
	FreeSpins        int    `json:"free_spins"`
	GoldBadgeCount   int    `json:"gold_badge_count"`
	AutoPlayEnabled  bool   `json:"auto_play_enabled"`
	SoundEnabled     bool   `json:"sound_enabled"`
	AutoAttemptsUsed int    `json:"auto_attempts_used"`
	LastWin          int    `json:"last_win"`
}

type HistoryEntry struct {
	Time    time.Time `json:"time"`
	Segment string    `json:"segment"`
	Stake   int       `json:"stake"`
	Payout  int       `json:"payout"`
	Gift    string    `json:"gift,omitempty"`
	IsWin   bool      `json:"is_win"`
}

type ToggleResponse struct {
	Enabled bool `json:"enabled"`
}
