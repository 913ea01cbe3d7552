package user

import "time"

type TransactionRequest struct {
	Username string `json:"username"`
	Type     string `json:"type"` // deposit | withdraw
	Amount   int    `json:"amount"`
}

type TransactionResponse struct {
	Success bool `json:"success"`
	Balance int  `json:"balance"`
}

type TransactionItem struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Amount    int       `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Balance  int    `json:"balance"`
}
