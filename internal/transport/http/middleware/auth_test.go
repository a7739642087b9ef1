package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/careerhub/job-board/internal/token"
	"github.com/careerhub/job-board/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testKey = "middleware-test-secret-32-chars!!"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserFinder struct {
	findByID func(ctx context.Context, id string) (*domain.User, error)
}

func (f *fakeUserFinder) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return f.findByID(ctx, id)
}

var knownUser = &domain.User{ID: "user-1", Name: "A", Email: "a@x.com"}

func findKnownUser(_ context.Context, id string) (*domain.User, error) {
	if id == knownUser.ID {
		return knownUser, nil
	}
	return nil, domain.ErrUserNotFound
}

// newEngine builds a minimal gin engine with the Auth middleware protecting
// GET /protected. The handler writes the principal's email so we can assert
// it was resolved and attached.
func newEngine(users *fakeUserFinder) *gin.Engine {
	tokens := token.NewService([]byte(testKey))

	r := gin.New()
	r.GET("/protected", middleware.Auth(tokens, users), func(c *gin.Context) {
		principal := c.MustGet(middleware.PrincipalKey).(*domain.User)
		c.String(http.StatusOK, principal.Email)
	})
	return r
}

func serve(t *testing.T, users *fakeUserFinder, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	newEngine(users).ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	w := serve(t, &fakeUserFinder{findByID: findKnownUser}, "")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_NonBearerScheme_Returns401(t *testing.T) {
	w := serve(t, &fakeUserFinder{findByID: findKnownUser}, "Basic dXNlcjpwYXNz")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_InvalidToken_Returns403(t *testing.T) {
	w := serve(t, &fakeUserFinder{findByID: findKnownUser}, "Bearer not.a.jwt")

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestAuth_ExpiredToken_Returns403(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   knownUser.ID,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}

	w := serve(t, &fakeUserFinder{findByID: findKnownUser}, "Bearer "+tok)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestAuth_WrongSigningKey_Returns403(t *testing.T) {
	tok, err := token.NewService([]byte("different-key-that-is-32-chars!!")).Issue(knownUser.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := serve(t, &fakeUserFinder{findByID: findKnownUser}, "Bearer "+tok)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestAuth_UnknownSubject_Returns403(t *testing.T) {
	// Valid token, but the user was deleted after issuance.
	tok, err := token.NewService([]byte(testKey)).Issue("ghost")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := serve(t, &fakeUserFinder{findByID: findKnownUser}, "Bearer "+tok)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestAuth_LookupFailure_Returns500(t *testing.T) {
	tok, err := token.NewService([]byte(testKey)).Issue(knownUser.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	users := &fakeUserFinder{
		findByID: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, errors.New("db down")
		},
	}
	w := serve(t, users, "Bearer "+tok)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestAuth_ValidToken_PassesAndSetsPrincipal(t *testing.T) {
	tok, err := token.NewService([]byte(testKey)).Issue(knownUser.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := serve(t, &fakeUserFinder{findByID: findKnownUser}, "Bearer "+tok)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != knownUser.Email {
		t.Errorf("body = %q, want %q", got, knownUser.Email)
	}
}
