package marketing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"agency-backend/internal/cache"
	"agency-backend/internal/middleware"
	"agency-backend/internal/transport"
	"github.com/go-chi/chi/v5"
)

const fallbackErrorMessage = "An unexpected error occurred"

type Handler struct {
	service  *Service
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewHandler(service *Service, c cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		service:  service,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Random serves GET /api/marketing/{type}/random. Method and bearer checks are
// done by middleware mounted in front of it.
func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	raw := strings.TrimSpace(chi.URLParam(r, "type"))
	if raw == "" {
		raw = strings.TrimSpace(r.URL.Query().Get("type"))
	}
	kind := Kind(raw)
	if !kind.Valid() {
		log.Debug("marketing random: invalid type", slog.String("type", raw))
		transport.WriteMessage(w, http.StatusBadRequest, "Invalid type",
			fmt.Sprintf("Invalid type %q. Allowed types: %s", raw, AllowedKinds()))
		return
	}

	item, err := h.service.Random(r.Context(), kind)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoItems):
			log.Debug("marketing random: no items", slog.String("type", raw))
			transport.WriteMessage(w, http.StatusNotFound, "No items found",
				fmt.Sprintf("No %s items are available", raw))
		default:
			log.Error("marketing random: internal error", slog.String("type", raw), slog.String("error", err.Error()))
			transport.WriteMessage(w, http.StatusInternalServerError, "Internal server error", errorMessage(err))
		}
		return
	}

	log.Info("marketing random: ok", slog.String("type", item.ItemType()), slog.String("id", item.ItemID()))
	transport.WriteJSON(w, http.StatusOK, item)
}

func ListCacheKey(kind Kind) string {
	return "marketing:list:" + string(kind)
}

// InvalidateLists drops every cached listing so the next request reloads it.
func InvalidateLists(ctx context.Context, c cache.Cache) error {
	for _, kind := range kinds {
		if err := c.Delete(ctx, ListCacheKey(kind)); err != nil {
			return fmt.Errorf("invalidate %s listing: %w", kind, err)
		}
	}
	return nil
}

// List returns a handler serving every item of kind, cached as encoded JSON.
func (h *Handler) List(kind Kind) http.HandlerFunc {
	cacheKey := ListCacheKey(kind)
	return func(w http.ResponseWriter, r *http.Request) {
		log := h.logWithRequest(r)
		if cached, ok, err := h.cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("marketing list: cache hit", slog.String("type", string(kind)))
			transport.WriteCached(w, http.StatusOK, cached)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := h.service.List(ctx, kind)
		if err != nil {
			log.Error("marketing list: internal error", slog.String("type", string(kind)), slog.String("error", err.Error()))
			transport.WriteMessage(w, http.StatusInternalServerError, "Internal server error", errorMessage(err))
			return
		}

		response := map[string]interface{}{
			"items": items,
		}
		if payload, err := json.Marshal(response); err == nil {
			if err := h.cache.Set(r.Context(), cacheKey, payload, h.cacheTTL); err != nil {
				log.Warn("marketing list: cache write failed", slog.String("error", err.Error()))
			}
		}

		log.Info("marketing list: ok", slog.String("type", string(kind)), slog.Int("count", len(items)))
		transport.WriteJSON(w, http.StatusOK, response)
	}
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("marketing project get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	item, err := h.service.Project(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("marketing project get: not found", slog.String("project_id", id))
			transport.WriteError(w, http.StatusNotFound, "project not found", nil)
			return
		}
		log.Error("marketing project get: internal error", slog.String("error", err.Error()))
		transport.WriteMessage(w, http.StatusInternalServerError, "Internal server error", errorMessage(err))
		return
	}

	log.Info("marketing project get: ok", slog.String("project_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}

func errorMessage(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return fallbackErrorMessage
	}
	return err.Error()
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
