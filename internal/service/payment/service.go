package payment

import (
	"spinx_backend/internal/repository"
	svc "spinx_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
}

func NewPaymentService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
) svc.PaymentService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		txRepo:    txRepo,
	}
}
