package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

// ExerciseService captures the tracker operations the exercise handler
// needs. *service.Tracker satisfies it.
type ExerciseService interface {
	AddExercise(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error)
	GetLog(ctx context.Context, input service.GetLogInput) (*service.LogResult, error)
}

// ExerciseHandler handles HTTP requests for exercise log operations.
type ExerciseHandler struct {
	svc    ExerciseService
	logger *slog.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(svc ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{svc: svc, logger: logger}
}

// Add handles POST /api/v1/users/{id}/exercises.
func (h *ExerciseHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "User ID is required")
		return
	}

	var req dto.AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, exercise, err := h.svc.AddExercise(r.Context(), service.AddExerciseInput{
		UserID:      userID,
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("exercise_recorded",
		"user_id", user.ID,
		"exercise_id", exercise.ID,
		"duration_min", exercise.Duration,
	)

	writeJSON(w, http.StatusCreated, dto.ToExerciseResponse(user, exercise))
}

// GetLog handles GET /api/v1/users/{id}/logs.
// Query parameters: from, to (YYYY-MM-DD) and limit. Absent parameters
// leave that side of the filter open.
func (h *ExerciseHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "User ID is required")
		return
	}

	input := service.GetLogInput{UserID: userID}
	query := r.URL.Query()

	if raw := query.Get("from"); raw != "" {
		from, err := service.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_DATE", "Invalid 'from' date")
			return
		}
		input.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := service.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_DATE", "Invalid 'to' date")
			return
		}
		input.To = &to
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be a non-negative integer")
			return
		}
		input.Limit = &limit
	}

	result, err := h.svc.GetLog(r.Context(), input)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLogResponse(result.User, result.Entries))
}

// handleServiceError maps service errors to HTTP responses.
func (h *ExerciseHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrMissingDescription):
		writeError(w, http.StatusBadRequest, "MISSING_DESCRIPTION", "Description is required")
	case errors.Is(err, service.ErrInvalidDuration):
		writeError(w, http.StatusBadRequest, "INVALID_DURATION", "Duration must be a number of minutes between 0 and 600")
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "INVALID_DATE", "Date must be in YYYY-MM-DD form")
	default:
		h.logger.Error("exercise handler error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
