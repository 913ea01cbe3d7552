package converter

import (
	authDto "spinx_backend/internal/api/dto/auth"
	userDto "spinx_backend/internal/api/dto/user"
	"spinx_backend/internal/model"
)

func RegisterRequestToUserModel(req *authDto.RegisterRequest) *model.User {
	return &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

func ToUserResponse(user *model.User) authDto.UserResponse {
	return authDto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Balance:  user.Balance,
	}
}

func ToPublicUserResponse(user *model.User) userDto.UserResponse {
	return userDto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Balance:  user.Balance,
	}
}

func ToTransactionItems(txs []model.Transaction) []userDto.TransactionItem {
	result := make([]userDto.TransactionItem, len(txs))
	for i, tx := range txs {
		result[i] = userDto.TransactionItem{
			ID:        tx.ID,
			Type:      tx.Type,
			Amount:    tx.Amount,
			Timestamp: tx.Timestamp,
		}
	}
	return result
}
