package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/careerhub/job-board/internal/email"
	"github.com/careerhub/job-board/internal/repository"
	"github.com/careerhub/job-board/internal/token"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *token.Service
	email  email.Sender
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, tokens *token.Service, emailSender email.Sender, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
		email:  emailSender,
		logger: logger.With("component", "auth_usecase"),
	}
}

// Register hashes the password and creates the account. No token is issued;
// the client logs in afterwards. The welcome email is best-effort.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, name, email, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	subject := "Welcome to the job board"
	body := fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Sign in to browse and post jobs.</p>", user.Name)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.WarnContext(ctx, "welcome email", "error", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed bearer token.
// Unknown email and wrong password both map to ErrInvalidCredentials so the
// response never reveals which factor failed.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}
