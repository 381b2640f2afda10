package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

// UserResolver resolves a user by ID. *service.Tracker satisfies it.
type UserResolver interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

// DailyStatsSource reads the per-day aggregate rows maintained by the
// event worker. *events.Store satisfies it.
type DailyStatsSource interface {
	GetDailyStats(ctx context.Context, userID string, from, to *time.Time) ([]*model.DailyUserStats, error)
}

// StatsHandler serves per-user daily workout totals.
type StatsHandler struct {
	users  UserResolver
	stats  DailyStatsSource
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(users UserResolver, stats DailyStatsSource, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{users: users, stats: stats, logger: logger}
}

// Daily handles GET /api/v1/users/{id}/stats/daily.
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "User ID is required")
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		h.logger.Error("stats handler error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	query := r.URL.Query()
	var from, to *time.Time
	if raw := query.Get("from"); raw != "" {
		parsed, err := service.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_DATE", "Invalid 'from' date")
			return
		}
		from = &parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := service.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_DATE", "Invalid 'to' date")
			return
		}
		to = &parsed
	}

	stats, err := h.stats.GetDailyStats(r.Context(), user.ID, from, to)
	if err != nil {
		h.logger.Error("stats handler error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDailyStatsResponse(user, stats))
}
