package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
	"github.com/kashxsh001/SkillStream/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
	log    zerolog.Logger
	cost   int
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, log: log, cost: bcrypt.DefaultCost}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	email := domain.CanonicalEmail(in.Email)
	if isBlank(in.Name) || email == "" || isBlank(in.Password) {
		return nil, domain.Invalid("Invalid payload")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Persistence("registering user", err)
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:      in.Name,
		Email:     email,
		Password:  hash,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		// A concurrent registration can win the race between the lookup above
		// and this insert; the store's unique index reports it as ErrUserExists.
		return nil, domain.Persistence("registering user", err)
	}

	token, err := s.tokens.Issue(created.Email, created.Role)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login verifies credentials. An unknown email and a wrong password produce
// the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if isBlank(password) {
		return nil, domain.Invalid("Password required")
	}

	user, err := s.repo.FindByEmail(ctx, domain.CanonicalEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.Persistence("logging in", err)
	}

	stored := user.Password
	if isBlank(stored) {
		return nil, domain.ErrInvalidCredentials
	}

	upgraded := false
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
		if stored != password {
			return nil, domain.ErrInvalidCredentials
		}
		upgraded = s.upgradeLegacyPassword(ctx, user, password)
	}

	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user, CredentialUpgraded: upgraded}, nil
}

// upgradeLegacyPassword replaces a plaintext credential with its hash. The
// caller has already verified the password, so a failure here is logged and
// the upgrade is retried on the next login.
func (s *AuthService) upgradeLegacyPassword(ctx context.Context, user *domain.User, password string) bool {
	hash, err := s.hash(password)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to hash legacy password")
		return false
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to persist upgraded password")
		return false
	}
	user.Password = hash
	s.log.Info().Str("user_id", user.ID).Msg("legacy password upgraded")
	return true
}

func (s *AuthService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.Invalid("Password must be at most 72 bytes")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
