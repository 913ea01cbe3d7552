package auth

import (
	"context"
	"errors"
	"time"

	"spinx_backend/internal/repository"
	svc "spinx_backend/internal/service"
	"spinx_backend/pkg/pass"
)

func (s *serv) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	// Токен должен существовать и быть непросроченным
	user, err := s.userRepo.GetUserByResetToken(ctx, resetToken, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return svc.ErrInvalidResetToken
		}
		return err
	}

	passwordHash, err := pass.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// Новый хэш записывается вместе с очисткой токена
	return s.userRepo.UpdatePassword(ctx, user.ID, passwordHash)
}
