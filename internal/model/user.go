package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Username string
	Email    string
	Password string
	Balance  int
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData — результат регистрации/логина для выдачи клиенту
type AuthData struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
}

// Transaction — строка журнала транзакций (депозит/вывод)
type Transaction struct {
	ID        int
	Username  string
	Type      string // "deposit" или "withdraw"
	Amount    int
	Timestamp time.Time
}

const (
	TransactionDeposit  = "deposit"
	TransactionWithdraw = "withdraw"
)
