package converter

import (
	wheelDto "spinx_backend/internal/api/dto/wheel"
	"spinx_backend/internal/model"
)

func ToWheelStateResponse(snap model.EngineSnapshot) wheelDto.StateResponse {
	return wheelDto.StateResponse{
		Phase:            snap.Phase.String(),
		CountdownSeconds: snap.CountdownSeconds,
		HasPendingBet:    snap.HasPendingBet,
		Balance:          snap.Wallet.Balance,
		FreeSpins:        snap.Wallet.FreeSpins,
		GoldBadgeCount:   snap.Wallet.BonusBadgeCount,
		AutoPlayEnabled:  snap.Wallet.AutoPlayEnabled,
		SoundEnabled:     snap.Wallet.SoundEnabled,
		AutoAttemptsUsed: snap.AutoAttemptsUsed,
		LastWin:          snap.LastWin,
	}
}

func ToWheelHistory(entries []model.HistoryEntry) []wheelDto.HistoryEntry {
	result := make([]wheelDto.HistoryEntry, len(entries))
	for i, e := range entries {
		result[i] = wheelDto.HistoryEntry{
			Time:    e.Time,
			Segment: e.SegmentLabel,
			Stake:   e.Stake,
			Payout:  e.Payout,
			Gift:    string(e.Gift),
			IsWin:   e.IsWin,
		}
	}
	return result
}
