package handler_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
	"github.com/ErlanBelekov/shift-calendar/internal/transport/http/handler"
	"github.com/ErlanBelekov/shift-calendar/internal/usecase"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	register func(ctx context.Context, input usecase.RegisterInput) (*domain.User, error)
	login    func(ctx context.Context, username, password string) (usecase.LoginResult, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error) {
	return f.register(ctx, input)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, username, password string) (usecase.LoginResult, error) {
	return f.login(ctx, username, password)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	h := handler.NewAuthHandler(uc, testLogger())

	r := gin.New()
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- Register ----

func TestRegister_MalformedBody_Returns400(t *testing.T) {
	bodies := map[string]string{
		"invalid json":     `{bad json}`,
		"missing password": `{"username":"bob","email":"b@x.com"}`,
		"missing email":    `{"username":"bob","password":"pw123"}`,
		"invalid email":    `{"username":"bob","email":"not-an-email","password":"pw123"}`,
		"missing username": `{"email":"b@x.com","password":"pw123"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			w := postJSON(newAuthEngine(&fakeAuthUsecase{}), "/api/register", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestRegister_Success_Returns201WithID(t *testing.T) {
	var got usecase.RegisterInput
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, in usecase.RegisterInput) (*domain.User, error) {
			got = in
			return &domain.User{ID: "user-1", Username: in.Username}, nil
		},
	}

	w := postJSON(newAuthEngine(uc), "/api/register", `{"username":"bob","email":"b@x.com","password":"pw123"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"id":"user-1"`) {
		t.Errorf("body = %q", w.Body.String())
	}
	if got.Username != "bob" || got.Email != "b@x.com" || got.Password != "pw123" {
		t.Errorf("usecase input = %+v", got)
	}
}

func TestRegister_UsernameTaken_Returns409(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(context.Context, usecase.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUsernameTaken
		},
	}

	w := postJSON(newAuthEngine(uc), "/api/register", `{"username":"bob","email":"b@x.com","password":"pw123"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestRegister_InternalError_Returns500WithoutDetails(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(context.Context, usecase.RegisterInput) (*domain.User, error) {
			return nil, errors.New("pq: connection refused")
		},
	}

	w := postJSON(newAuthEngine(uc), "/api/register", `{"username":"bob","email":"b@x.com","password":"pw123"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("body leaks internal error: %q", w.Body.String())
	}
}

// ---- Login ----

func TestLogin_MalformedBody_Returns400(t *testing.T) {
	w := postJSON(newAuthEngine(&fakeAuthUsecase{}), "/api/login", `{"username":"bob"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLogin_InvalidCredentials_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(context.Context, string, string) (usecase.LoginResult, error) {
			return usecase.LoginResult{}, domain.ErrInvalidCredentials
		},
	}

	w := postJSON(newAuthEngine(uc), "/api/login", `{"username":"bob","password":"wrongpw"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestLogin_InternalError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(context.Context, string, string) (usecase.LoginResult, error) {
			return usecase.LoginResult{}, errors.New("db down")
		},
	}

	w := postJSON(newAuthEngine(uc), "/api/login", `{"username":"bob","password":"pw123"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestLogin_Success_Returns200WithToken(t *testing.T) {
	const fakeJWT = "header.payload.signature"
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, username, password string) (usecase.LoginResult, error) {
			if username != "bob" || password != "pw123" {
				t.Errorf("login(%q, %q)", username, password)
			}
			return usecase.LoginResult{UserID: "user-1", Token: fakeJWT, ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}

	w := postJSON(newAuthEngine(uc), "/api/login", `{"username":"bob","password":"pw123"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), fakeJWT) {
		t.Errorf("body %q does not contain JWT %q", w.Body.String(), fakeJWT)
	}
	if !strings.Contains(w.Body.String(), `"expires_at"`) {
		t.Errorf("body %q has no expires_at", w.Body.String())
	}
}
