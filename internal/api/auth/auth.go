package auth

import (
	"errors"
	"log"
	"net/http"

	dto "spinx_backend/internal/api/dto/auth"
	"spinx_backend/internal/converter"
	"spinx_backend/internal/service"
	"spinx_backend/pkg/req"
	"spinx_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Register создаёт пользователя, открывает сессию и возвращает
// карточку пользователя; session_id и refresh_token уходят в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if requestBody.Username == "" || requestBody.Email == "" || requestBody.Password == "" {
		resp.WriteError(w, http.StatusBadRequest, "All fields required")
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToUserModel(&requestBody),
	)
	if err != nil {
		if errors.Is(err, service.ErrUserTaken) {
			resp.WriteError(w, http.StatusBadRequest, "Username or email already taken")
			return
		}
		log.Println("Register error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Success:     true,
		User:        converter.ToUserResponse(data.User),
		AccessToken: data.AccessToken,
	})
}

// Login открывает сессию и возвращает карточку пользователя
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if requestBody.Username == "" || requestBody.Password == "" {
		resp.WriteError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			resp.WriteError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, service.ErrWrongPassword):
			resp.WriteError(w, http.StatusBadRequest, "Wrong password")
		default:
			log.Println("Login error:", err)
			resp.WriteError(w, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		Success:     true,
		User:        converter.ToUserResponse(data.User),
		AccessToken: data.AccessToken,
	})
}

// ForgotPassword выписывает токен сброса пароля с часовым сроком жизни
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.ForgotPasswordRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if requestBody.Email == "" {
		resp.WriteError(w, http.StatusBadRequest, "Email required")
		return
	}

	err = h.serv.ForgotPassword(r.Context(), requestBody.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailNotFound) {
			resp.WriteError(w, http.StatusBadRequest, "Email not found")
			return
		}
		log.Println("ForgotPassword error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "Forgot password failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Reset token generated. Check server log for demo purposes.",
	})
}

// ResetPassword меняет пароль по действующему токену сброса
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.ResetPasswordRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if requestBody.Token == "" || requestBody.NewPassword == "" {
		resp.WriteError(w, http.StatusBadRequest, "Token and new password required")
		return
	}

	err = h.serv.ResetPassword(r.Context(), requestBody.Token, requestBody.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			resp.WriteError(w, http.StatusBadRequest, "Invalid or expired token")
			return
		}
		log.Println("ResetPassword error:", err)
		resp.WriteError(w, http.StatusInternalServerError, "Reset password failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Password reset successfully",
	})
}

// Refresh обновляет access_token по session_id
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "no session_id cookie", http.StatusUnauthorized)
		return
	}

	sessionID := c.Value

	accessToken, err := h.serv.Refresh(r.Context(), sessionID)
	if err != nil {
		log.Println("Refresh error:", err)
		http.Error(w, "refresh failed", http.StatusUnauthorized)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"access_token": accessToken,
	})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "no session_id cookie", http.StatusUnauthorized)
		return
	}

	sessionID := c.Value

	err = h.serv.Logout(r.Context(), sessionID)
	if err != nil {
		log.Println("Logout error:", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	deleteSessionIDCookie(w)
	deleteRefreshTokenCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

// setRefreshTokenCookie устанавливает cookie с refresh_token
func setRefreshTokenCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/auth/refresh",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60 * 60 * 24 * 30, // 30 дней
	})
}

// deleteRefreshTokenCookie удаляет cookie с refresh_token
func deleteRefreshTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// setSessionIDCookie устанавливает cookie с session_id
func setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   30 * 24 * 60 * 60, // 30 дней
	})
}

// deleteSessionIDCookie удаляет cookie с session_id
func deleteSessionIDCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
