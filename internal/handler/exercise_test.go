package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

// stubExerciseService implements ExerciseService with canned results.
type stubExerciseService struct {
	addExercise func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error)
	getLog      func(ctx context.Context, input service.GetLogInput) (*service.LogResult, error)
}

func (s *stubExerciseService) AddExercise(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
	return s.addExercise(ctx, input)
}

func (s *stubExerciseService) GetLog(ctx context.Context, input service.GetLogInput) (*service.LogResult, error) {
	return s.getLog(ctx, input)
}

func newExerciseRouter(svc ExerciseService) http.Handler {
	h := NewExerciseHandler(svc, discardLogger())
	r := chi.NewRouter()
	r.Post("/api/v1/users/{id}/exercises", h.Add)
	r.Get("/api/v1/users/{id}/logs", h.GetLog)
	return r
}

func TestExerciseHandler_Add(t *testing.T) {
	var gotInput service.AddExerciseInput
	svc := &stubExerciseService{
		addExercise: func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
			gotInput = input
			return &model.User{ID: "u1", Username: "alice"},
				&model.Exercise{
					ID:          "e1",
					UserID:      "u1",
					Description: "running",
					Duration:    30,
					Date:        time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
				}, nil
		},
	}
	router := newExerciseRouter(svc)

	body := `{"description":"running","duration":30,"date":"2023-05-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/exercises", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotInput.UserID != "u1" || gotInput.Duration != "30" || gotInput.Date != "2023-05-01" {
		t.Errorf("unexpected service input: %+v", gotInput)
	}

	var response dto.ExerciseResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.ID != "u1" {
		t.Errorf("response ID should be the user ID, got %q", response.ID)
	}
	if response.Date != "Mon May 01 2023" {
		t.Errorf("date = %q, want display form", response.Date)
	}
}

func TestExerciseHandler_Add_DurationAsString(t *testing.T) {
	var gotDuration string
	svc := &stubExerciseService{
		addExercise: func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
			gotDuration = input.Duration
			return &model.User{ID: "u1", Username: "alice"},
				&model.Exercise{ID: "e1", Duration: 45, Date: time.Now()}, nil
		},
	}
	router := newExerciseRouter(svc)

	body := `{"description":"rowing","duration":"45"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/exercises", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if gotDuration != "45" {
		t.Errorf("duration passed to service = %q, want \"45\"", gotDuration)
	}
}

func TestExerciseHandler_Add_Errors(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"user_not_found", service.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"missing_description", service.ErrMissingDescription, http.StatusBadRequest, "MISSING_DESCRIPTION"},
		{"invalid_duration", service.ErrInvalidDuration, http.StatusBadRequest, "INVALID_DURATION"},
		{"invalid_date", service.ErrInvalidDate, http.StatusBadRequest, "INVALID_DATE"},
		{"internal_error", io.ErrUnexpectedEOF, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubExerciseService{
				addExercise: func(ctx context.Context, input service.AddExerciseInput) (*model.User, *model.Exercise, error) {
					return nil, nil, tt.svcErr
				},
			}
			router := newExerciseRouter(svc)

			body := `{"description":"running","duration":30}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/users/u1/exercises", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var response dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", response.Code, tt.wantCode)
			}
		})
	}
}

func TestExerciseHandler_GetLog(t *testing.T) {
	var gotInput service.GetLogInput
	svc := &stubExerciseService{
		getLog: func(ctx context.Context, input service.GetLogInput) (*service.LogResult, error) {
			gotInput = input
			return &service.LogResult{
				User: &model.User{ID: "u1", Username: "alice"},
				Entries: []*model.Exercise{
					{Description: "running", Duration: 30, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
					{Description: "rowing", Duration: 45, Date: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
				},
			}, nil
		},
	}
	router := newExerciseRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/logs?from=2023-01-01&to=2023-01-31&limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if gotInput.From == nil || !gotInput.From.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v, want 2023-01-01", gotInput.From)
	}
	if gotInput.To == nil || !gotInput.To.Equal(time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v, want 2023-01-31", gotInput.To)
	}
	if gotInput.Limit == nil || *gotInput.Limit != 5 {
		t.Errorf("limit = %v, want 5", gotInput.Limit)
	}

	var response dto.LogResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 2 || len(response.Log) != 2 {
		t.Fatalf("expected 2 entries, got count=%d len=%d", response.Count, len(response.Log))
	}
	if response.Log[0].Date != "Sun Jan 01 2023" {
		t.Errorf("log date = %q, want display form", response.Log[0].Date)
	}
}

func TestExerciseHandler_GetLog_OpenEndedRange(t *testing.T) {
	var gotInput service.GetLogInput
	svc := &stubExerciseService{
		getLog: func(ctx context.Context, input service.GetLogInput) (*service.LogResult, error) {
			gotInput = input
			return &service.LogResult{User: &model.User{ID: "u1", Username: "alice"}}, nil
		},
	}
	router := newExerciseRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/logs?from=2023-01-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotInput.From == nil {
		t.Error("lone 'from' should set the lower bound")
	}
	if gotInput.To != nil {
		t.Error("absent 'to' should leave the upper bound open")
	}
	if gotInput.Limit != nil {
		t.Error("absent 'limit' should be nil")
	}
}

func TestExerciseHandler_GetLog_MalformedParams(t *testing.T) {
	svc := &stubExerciseService{
		getLog: func(ctx context.Context, input service.GetLogInput) (*service.LogResult, error) {
			t.Fatal("service should not be called for malformed parameters")
			return nil, nil
		},
	}
	router := newExerciseRouter(svc)

	tests := []struct {
		name     string
		url      string
		wantCode string
	}{
		{"bad_from", "/api/v1/users/u1/logs?from=yesterday", "INVALID_DATE"},
		{"bad_to", "/api/v1/users/u1/logs?to=2023-xx-01", "INVALID_DATE"},
		{"bad_limit", "/api/v1/users/u1/logs?limit=ten", "INVALID_LIMIT"},
		{"negative_limit", "/api/v1/users/u1/logs?limit=-1", "INVALID_LIMIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}

			var response dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", response.Code, tt.wantCode)
			}
		})
	}
}
