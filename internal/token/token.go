package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = time.Hour

// Service signs and verifies bearer tokens. Tokens are not stored anywhere:
// validity is purely signature + expiry.
type Service struct {
	key []byte
	ttl time.Duration
}

func NewService(key []byte) *Service {
	return &Service{key: key, ttl: defaultTTL}
}

// Issue returns a signed token carrying subjectID, valid for one hour.
func (s *Service) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject ID.
// Expired tokens yield domain.ErrTokenExpired; anything else wrong with the
// token yields domain.ErrTokenInvalid.
func (s *Service) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
