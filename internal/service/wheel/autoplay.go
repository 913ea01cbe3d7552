package wheel

import "log"

// autoPlayAttempt делает одну попытку ставки за авто-игру.
// Вызывается под мьютексом при открытии раунда и при включении режима.
// Фриспин предпочтительнее денежной ставки
func (e *Engine) autoPlayAttempt() {
	if !e.wallet.AutoPlayEnabled {
		return
	}

	if e.attemptsUsed >= e.cfg.MaxAutoAttempts() {
		e.wallet.AutoPlayEnabled = false
		e.persistWallet()
		return
	}
	if e.wallet.Balance <= 0 && e.wallet.FreeSpins <= 0 {
		e.wallet.AutoPlayEnabled = false
		e.persistWallet()
		return
	}

	e.attemptsUsed++

	useFree := e.wallet.FreeSpins > 0
	stake := 0
	if !useFree {
		stake = e.lastStake
		if stake < e.cfg.MinStake() {
			stake = e.cfg.MinStake()
		}
		if stake > e.wallet.Balance {
			stake = e.wallet.Balance
		}
	}

	if err := e.submitBet(stake, useFree); err != nil {
		log.Printf("wheel: auto-play bet rejected: %v", err)
	}
}
