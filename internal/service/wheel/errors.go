package wheel

import "errors"

var (
	ErrInvalidStake      = errors.New("invalid stake")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoFreeSpins       = errors.New("no free spins available")
	ErrBettingClosed     = errors.New("betting closed for this round")
	ErrDuplicateBet      = errors.New("bet already placed for this round")
)
