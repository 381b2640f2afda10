package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fitlog/fitlog/internal/handler/dto"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubUserService implements UserService with canned results.
type stubUserService struct {
	createUser func(ctx context.Context, username string) (*model.User, error)
	listUsers  func(ctx context.Context) ([]*model.User, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, username string) (*model.User, error) {
	return s.createUser(ctx, username)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.listUsers(ctx)
}

func TestUserHandler_Create(t *testing.T) {
	svc := &stubUserService{
		createUser: func(ctx context.Context, username string) (*model.User, error) {
			return &model.User{ID: "u1", Username: username, CreatedAt: time.Now()}, nil
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var response dto.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.ID != "u1" || response.Username != "alice" {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestUserHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"missing_username", `{"username":""}`, service.ErrMissingUsername, http.StatusBadRequest, "MISSING_USERNAME"},
		{"duplicate_user", `{"username":"alice"}`, service.ErrDuplicateUser, http.StatusConflict, "DUPLICATE_USER"},
		{"internal_error", `{"username":"alice"}`, io.ErrUnexpectedEOF, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"invalid_json", `{"username":`, nil, http.StatusBadRequest, "INVALID_JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubUserService{
				createUser: func(ctx context.Context, username string) (*model.User, error) {
					return nil, tt.svcErr
				},
			}
			h := NewUserHandler(svc, discardLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

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

func TestUserHandler_List(t *testing.T) {
	svc := &stubUserService{
		listUsers: func(ctx context.Context) ([]*model.User, error) {
			return []*model.User{
				{ID: "u1", Username: "alice"},
				{ID: "u2", Username: "alice"}, // duplicate names are separate records
			}, nil
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response dto.UserListResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Count != 2 || len(response.Data) != 2 {
		t.Fatalf("expected 2 users, got count=%d len=%d", response.Count, len(response.Data))
	}
	if response.Data[0].ID != "u1" || response.Data[1].ID != "u2" {
		t.Errorf("insertion order not preserved: %+v", response.Data)
	}
}

func TestUserHandler_List_Empty(t *testing.T) {
	svc := &stubUserService{
		listUsers: func(ctx context.Context) ([]*model.User, error) {
			return nil, nil
		},
	}
	h := NewUserHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"data":[]`) {
		t.Errorf("expected empty data array, got %s", body)
	}
}
