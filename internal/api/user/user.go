package user

import (
	"errors"
	"log"
	"net/http"

	dto "spinx_backend/internal/api/dto/user"
	"spinx_backend/internal/converter"
	"spinx_backend/internal/service"
	"spinx_backend/pkg/req"
	"spinx_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.PaymentService
}

type Handler struct {
	serv service.PaymentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Transaction — депозит или вывод средств
func (h *Handler) Transaction(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.TransactionRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if requestBody.Username == "" || requestBody.Type == "" || requestBody.Amount == 0 {
		resp.WriteError(w, http.StatusBadRequest, "All fields required")
		return
	}

	balance, err := h.serv.Transaction(r.Context(), requestBody.Username, requestBody.Type, requestBody.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			resp.WriteError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, service.ErrInvalidTransaction):
			resp.WriteError(w, http.StatusBadRequest, "Invalid transaction type")
		case errors.Is(err, service.ErrInsufficientBalance):
			resp.WriteError(w, http.StatusBadRequest, "Insufficient balance")
		case errors.Is(err, service.ErrInvalidAmount):
			resp.WriteError(w, http.StatusBadRequest, "Amount must be positive")
		default:
			log.Println("Transaction error:", err)
			resp.WriteError(w, http.StatusInternalServerError, "Transaction failed")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TransactionResponse{
		Success: true,
		Balance: balance,
	})
}

// ListTransactions — история транзакций, новые сверху
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	txs, err := h.serv.ListTransactions(r.Context(), username)
	if err != nil {
		log.Println("ListTransactions error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "Fetch transactions failed")
		return
	}

	items := converter.ToTransactionItems(txs)
	if items == nil {
		items = []dto.TransactionItem{}
	}

	resp.WriteJSONResponse(w, http.StatusOK, items)
}

// GetUser — карточка пользователя; null если не найден
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.serv.GetUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			resp.WriteJSONResponse(w, http.StatusOK, nil)
			return
		}
		log.Println("GetUser error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "Fetch user failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPublicUserResponse(user))
}
