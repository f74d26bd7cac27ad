package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"agency-backend/internal/auth"
	"agency-backend/internal/httpx"
	"agency-backend/internal/middleware"
	"agency-backend/internal/transport"
	"agency-backend/internal/validation"
)

type LoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

type LoginResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	username     string
	passwordHash string
	manager      *auth.Manager
	cookieSecure bool
	val          *validation.Validator
	log          *slog.Logger
}

func NewHandler(username, passwordHash string, manager *auth.Manager, cookieSecure bool, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		username:     username,
		passwordHash: passwordHash,
		manager:      manager,
		cookieSecure: cookieSecure,
		val:          val,
		log:          log,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	if h.passwordHash == "" || h.manager == nil {
		log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passErr := auth.ComparePassword(h.passwordHash, req.Password)
	if !userOK || passErr != nil {
		log.Warn("admin login: invalid credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := h.manager.NewAccessToken(auth.RoleAdmin)
	if err != nil {
		log.Error("admin login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.manager.AccessTTL.Seconds()),
	})
	log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteJSON(w, http.StatusOK, LoginResponse{Status: "ok"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
		MaxAge:   -1,
	})
	h.logWithRequest(r).Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, LoginResponse{Status: "ok"})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
