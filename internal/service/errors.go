package service

import "errors"

// Ошибки аккаунт-сервиса, которые API отдает клиенту как 400.
// Все остальное — неожиданный сбой (500)
var (
	ErrUserTaken           = errors.New("username or email already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPassword       = errors.New("wrong password")
	ErrEmailNotFound       = errors.New("email not found")
	ErrInvalidResetToken   = errors.New("invalid or expired token")
	ErrInvalidTransaction  = errors.New("invalid transaction type")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)
