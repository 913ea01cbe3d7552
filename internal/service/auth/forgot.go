package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"spinx_backend/internal/repository"
	svc "spinx_backend/internal/service"
	"spinx_backend/pkg/token"
)

// Время жизни токена сброса пароля
const resetTokenTTL = time.Hour

func (s *serv) ForgotPassword(ctx context.Context, email string) error {
	// Email должен принадлежать зарегистрированному пользователю
	_, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return svc.ErrEmailNotFound
		}
		return err
	}

	resetToken, err := token.GenerateResetToken()
	if err != nil {
		return err
	}

	err = s.userRepo.SetResetToken(ctx, email, resetToken, time.Now().Add(resetTokenTTL))
	if err != nil {
		return err
	}

	// TODO: отправка токена письмом, когда появится почтовый сервис
	log.Printf("password reset token for %s: %s", email, resetToken)

	return nil
}
