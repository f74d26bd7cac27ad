package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"agency-backend/internal/httpx"
	"agency-backend/internal/middleware"
	"agency-backend/internal/transport"
	"agency-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
	// notify runs the post-submit notification; tests replace it to run inline.
	notify func(msg Message)
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	h := &Handler{
		service: service,
		val:     val,
		log:     log,
	}
	h.notify = func(msg Message) { go h.sendNotification(msg) }
	return h
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contact create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.service.Create(ctx, req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			log.Warn("contact create: form rejected", slog.Int("fields", len(verr.Fields)))
			transport.WriteError(w, http.StatusBadRequest, "validation error", verr.Fields)
			return
		}
		log.Error("contact create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.notify(msg)

	log.Info("contact create: stored", slog.String("contact_id", msg.ID))
	transport.WriteJSON(w, http.StatusCreated, msg)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin contacts list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListRecent(ctx, limit, offset)
	if err != nil {
		log.Error("admin contacts list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin contacts list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"contacts": items,
		"limit":    limit,
		"offset":   offset,
		"total":    total,
	})
}

func (h *Handler) sendNotification(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := h.service.Notify(ctx, msg); err != nil {
		h.log.Warn("contact create: notification failed",
			slog.String("contact_id", msg.ID),
			slog.String("error", err.Error()),
		)
	}
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
