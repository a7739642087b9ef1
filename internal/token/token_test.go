package token_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/careerhub/job-board/internal/token"
	"github.com/golang-jwt/jwt/v5"
)

const testKey = "token-test-secret-at-least-32ch!!"

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := token.NewService([]byte(testKey))

	signed, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "user-1" {
		t.Errorf("subject = %q, want %q", subject, "user-1")
	}
}

func TestIssue_ExpiresInOneHour(t *testing.T) {
	svc := token.NewService([]byte(testKey))

	signed, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte(testKey), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}
}

func TestVerify_Malformed_ReturnsInvalid(t *testing.T) {
	svc := token.NewService([]byte(testKey))

	_, err := svc.Verify("not.a.jwt")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerify_WrongKey_ReturnsInvalid(t *testing.T) {
	signed, err := token.NewService([]byte("some-other-32-char-signing-key!!")).Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = token.NewService([]byte(testKey)).Verify(signed)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerify_Tampered_ReturnsInvalid(t *testing.T) {
	svc := token.NewService([]byte(testKey))

	signed, err := svc.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	parts[1] = "eyJzdWIiOiJ1c2VyLTIifQ" // payload swapped, signature untouched
	_, err = svc.Verify(strings.Join(parts, "."))
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestVerify_Expired_ReturnsExpired(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = token.NewService([]byte(testKey)).Verify(signed)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestVerify_MissingSubject_ReturnsInvalid(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = token.NewService([]byte(testKey)).Verify(signed)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
