package payment

import (
	"context"
	"errors"
	"time"

	"spinx_backend/internal/model"
	"spinx_backend/internal/repository"
	svc "spinx_backend/internal/service"
)

// Transaction выполняет депозит или вывод средств.
// Обновление баланса и строка журнала пишутся в одной транзакции:
// либо применяется все, либо ничего
func (s *serv) Transaction(ctx context.Context, username, txType string, amount int) (int, error) {
	if txType != model.TransactionDeposit && txType != model.TransactionWithdraw {
		return 0, svc.ErrInvalidTransaction
	}
	if amount <= 0 {
		return 0, svc.ErrInvalidAmount
	}

	var newBalance int

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Получаем пользователя внутри транзакции
		user, err := s.userRepo.GetUserByUsername(txCtx, username)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return svc.ErrUserNotFound
			}
			return err
		}

		newBalance = user.Balance
		switch txType {
		case model.TransactionDeposit:
			newBalance += amount
		case model.TransactionWithdraw:
			if amount > newBalance {
				return svc.ErrInsufficientBalance
			}
			newBalance -= amount
		}

		if err := s.userRepo.UpdateBalance(txCtx, username, newBalance); err != nil {
			return err
		}

		// Каждая принятая операция попадает в журнал
		return s.txRepo.Create(txCtx, &model.Transaction{
			Username:  username,
			Type:      txType,
			Amount:    amount,
			Timestamp: time.Now(),
		})
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

// ListTransactions — журнал операций пользователя, новые сверху
func (s *serv) ListTransactions(ctx context.Context, username string) ([]model.Transaction, error) {
	return s.txRepo.ListByUsername(ctx, username)
}

// GetUser — публичная карточка пользователя
func (s *serv) GetUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, svc.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
