package repository

import (
	"context"
	"errors"
	"time"

	"spinx_backend/internal/model"
)

// ErrNotFound возвращается репозиториями, когда записи нет
var ErrNotFound = errors.New("not found")

// WalletRepository — порт локального key-value хранилища движка колеса:
// состояние кошелька и ограниченная история раундов
type WalletRepository interface {
	LoadWallet(ctx context.Context) (*model.WalletState, error)
	SaveWallet(ctx context.Context, state *model.WalletState) error
	AppendHistory(ctx context.Context, entry model.HistoryEntry, maxHistory int) error
	LoadHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	GetBalance(ctx context.Context, username string) (int, error)
	UpdateBalance(ctx context.Context, username string, amount int) error

	SetResetToken(ctx context.Context, email, token string, expires time.Time) error
	GetUserByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	ListByUsername(ctx context.Context, username string) ([]model.Transaction, error)
}
