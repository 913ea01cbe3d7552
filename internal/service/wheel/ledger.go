package wheel

import (
	"math"

	"spinx_backend/internal/model"
)

// Ledger применяет правила ставок и выплат к состоянию кошелька.
// Отклоненный вызов не оставляет частичных изменений
type Ledger struct {
	wallet         *model.WalletState
	minStake       int
	referenceUnit  int
	badgeThreshold int
}

func NewLedger(wallet *model.WalletState, minStake, referenceUnit, badgeThreshold int) *Ledger {
	return &Ledger{
		wallet:         wallet,
		minStake:       minStake,
		referenceUnit:  referenceUnit,
		badgeThreshold: badgeThreshold,
	}
}

// PlaceBet принимает ставку. Ставка сразу списывается с баланса
// (деньги "в игре" до разрешения раунда), фриспин — уменьшает счетчик
func (l *Ledger) PlaceBet(stake int, useFreeSpin bool) (*model.Bet, error) {
	if useFreeSpin {
		if l.wallet.FreeSpins <= 0 {
			return nil, ErrNoFreeSpins
		}
		l.wallet.FreeSpins--
		return &model.Bet{Stake: 0, UsesFreeSpin: true}, nil
	}

	if stake < l.minStake {
		return nil, ErrInvalidStake
	}
	if stake > l.wallet.Balance {
		return nil, ErrInsufficientFunds
	}

	l.wallet.Balance -= stake
	return &model.Bet{Stake: stake, UsesFreeSpin: false}, nil
}

// Resolve разрешает ставку против выпавшего сегмента: начисляет выплату
// и атомарно применяет подарочные эффекты.
// Выплата: stake * value / referenceUnit с округлением;
// фриспин-ставка платит value напрямую (ставка нулевая)
func (l *Ledger) Resolve(bet *model.Bet, segment model.Segment) model.Resolution {
	res := model.Resolution{Gift: segment.Gift}

	if segment.CashValue > 0 {
		if bet.UsesFreeSpin {
			res.Payout = segment.CashValue
		} else {
			res.Payout = int(math.Round(
				float64(bet.Stake) * float64(segment.CashValue) / float64(l.referenceUnit),
			))
		}
	}

	l.wallet.Balance += res.Payout

	switch segment.Gift {
	case model.GiftFreeSpin:
		l.wallet.FreeSpins++
	case model.GiftBonusBadge:
		l.wallet.BonusBadgeCount++
		// Порог пересекается максимум один раз: счетчик растет
		// ровно на единицу за раунд
		if l.wallet.BonusBadgeCount >= l.badgeThreshold {
			l.wallet.BonusBadgeCount = 0
			l.wallet.FreeSpins++
			res.ThresholdHit = true
		}
	}

	res.IsWin = res.Payout > 0 || segment.Gift != model.GiftNone

	return res
}
