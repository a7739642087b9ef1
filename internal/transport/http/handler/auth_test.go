package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/careerhub/job-board/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	register func(ctx context.Context, name, email, password string) error
	login    func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, name, email, password string) error {
	return f.register(ctx, name, email, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return f.login(ctx, email, password)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewAuthHandler(uc, logger)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- Register ----

func TestRegister_Success_Returns201(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _, _ string) error { return nil },
	}
	w := postJSON(t, newAuthEngine(uc), "/auth/register",
		`{"name":"A","email":"a@x.com","password":"secret-password"}`)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
}

func TestRegister_DuplicateEmail_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _, _ string) error { return domain.ErrEmailTaken },
	}
	w := postJSON(t, newAuthEngine(uc), "/auth/register",
		`{"name":"A","email":"a@x.com","password":"secret-password"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_MissingFields_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{}
	w := postJSON(t, newAuthEngine(uc), "/auth/register", `{"email":"a@x.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_InvalidJSON_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{}
	w := postJSON(t, newAuthEngine(uc), "/auth/register", `{bad json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _, _ string) error { return errors.New("db down") },
	}
	w := postJSON(t, newAuthEngine(uc), "/auth/register",
		`{"name":"A","email":"a@x.com","password":"secret-password"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Error("internal detail leaked to the client")
	}
}

// ---- Login ----

func TestLogin_Success_ReturnsToken(t *testing.T) {
	const fakeJWT = "header.payload.signature"
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) { return fakeJWT, nil },
	}
	w := postJSON(t, newAuthEngine(uc), "/auth/login",
		`{"email":"a@x.com","password":"secret-password"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Token != fakeJWT {
		t.Errorf("token = %q, want %q", resp.Token, fakeJWT)
	}
}

func TestLogin_BadCredentials_Returns401SameBody(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}

	// Wrong password and unknown email go through the same sentinel, so the
	// two responses are byte-identical.
	w1 := postJSON(t, newAuthEngine(uc), "/auth/login", `{"email":"a@x.com","password":"wrong-pass"}`)
	w2 := postJSON(t, newAuthEngine(uc), "/auth/login", `{"email":"nobody@x.com","password":"whatever1"}`)

	if w1.Code != http.StatusUnauthorized || w2.Code != http.StatusUnauthorized {
		t.Errorf("statuses = %d, %d, want 401 for both", w1.Code, w2.Code)
	}
	if w1.Body.String() != w2.Body.String() {
		t.Errorf("bodies differ: %q vs %q", w1.Body.String(), w2.Body.String())
	}
}

func TestLogin_InvalidJSON_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{}
	w := postJSON(t, newAuthEngine(uc), "/auth/login", `{"email":"a@x.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLogin_UsecaseError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("db down")
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/auth/login",
		`{"email":"a@x.com","password":"secret-password"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
