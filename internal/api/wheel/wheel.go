package wheel

import (
	"errors"
	"net/http"

	dto "spinx_backend/internal/api/dto/wheel"
	"spinx_backend/internal/converter"
	"spinx_backend/internal/service"
	wheelServ "spinx_backend/internal/service/wheel"
	"spinx_backend/pkg/req"
	"spinx_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// SubmitBet принимает ставку на текущий раунд
func (h *Handler) SubmitBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.SubmitBet(payload.Stake, payload.UseFreeSpin)
	if err != nil {
		// Все ошибки ставок — локальные отказы без частичных изменений
		switch {
		case errors.Is(err, wheelServ.ErrBettingClosed),
			errors.Is(err, wheelServ.ErrDuplicateBet),
			errors.Is(err, wheelServ.ErrInvalidStake),
			errors.Is(err, wheelServ.ErrInsufficientFunds),
			errors.Is(err, wheelServ.ErrNoFreeSpins):
			resp.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			resp.WriteError(w, http.StatusInternalServerError, "bet failed")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelStateResponse(h.serv.State()))
}

// ToggleAutoPlay переключает авто-игру
func (h *Handler) ToggleAutoPlay(w http.ResponseWriter, r *http.Request) {
	enabled := h.serv.ToggleAutoPlay()
	resp.WriteJSONResponse(w, http.StatusOK, dto.ToggleResponse{Enabled: enabled})
}

// ToggleSound переключает звук
func (h *Handler) ToggleSound(w http.ResponseWriter, r *http.Request) {
	enabled := h.serv.ToggleSound()
	resp.WriteJSONResponse(w, http.StatusOK, dto.ToggleResponse{Enabled: enabled})
}

// State — снимок состояния раунда и кошелька
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelStateResponse(h.serv.State()))
}

// History — история раундов, новые сверху
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWheelHistory(h.serv.History()))
}

// Feed — лента победителей
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	feed := h.serv.Feed()
	if feed == nil {
		feed = []string{}
	}
	resp.WriteJSONResponse(w, http.StatusOK, feed)
}
