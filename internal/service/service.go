package service

import (
	"context"

	"spinx_backend/internal/model"
)

// WheelService — движок колеса: единственный владелец кошелька
// и состояния раунда
type WheelService interface {
	Start(ctx context.Context) error
	Stop()
	SubmitBet(stake int, useFreeSpin bool) error
	ToggleAutoPlay() bool
	ToggleSound() bool
	State() model.EngineSnapshot
	History() []model.HistoryEntry
	Feed() []string
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, username, password string) (*model.AuthData, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Refresh(ctx context.Context, sessionID string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type PaymentService interface {
	Transaction(ctx context.Context, username, txType string, amount int) (balance int, err error)
	ListTransactions(ctx context.Context, username string) ([]model.Transaction, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
}
