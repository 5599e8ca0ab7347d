package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pathwise/pathwise-api/internal/domain"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
	"github.com/pathwise/pathwise-api/internal/service/auth"
	"github.com/pathwise/pathwise-api/internal/store"
)

// minPasswordLength is the minimum accepted registration password length.
const minPasswordLength = 8

// Registration creates a bare profile; the questionnaire answers are filled
// in later through the profile endpoint. These placeholders keep the domain
// validation satisfied until then.
const (
	placeholderJob     = "N/A"
	placeholderSector  = "N/A"
	placeholderAILevel = "beginner"
)

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	Profile *domain.Profile
	Token   string
}

// AuthService handles account registration and login.
type AuthService struct {
	profiles store.ProfileStore
	jwt      auth.JWTService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewAuthService creates an AuthService.
// It panics if any required dependency is nil; if log is nil, the default
// logger is used.
func NewAuthService(
	profiles store.ProfileStore,
	jwt auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthService {
	if profiles == nil || jwt == nil || hasher == nil || verifier == nil {
		panic("auth service dependencies cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AuthService{
		profiles: profiles,
		jwt:      jwt,
		hasher:   hasher,
		verifier: verifier,
		logger:   log.With(slog.String("component", "auth_service")),
	}
}

// Register creates a new account with a placeholder profile and returns an
// access token for it.
// Returns ErrPasswordTooShort for weak passwords and store.ErrEmailExists
// when the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile, err := domain.NewProfile(placeholderJob, placeholderSector, placeholderAILevel, nil, "")
	if err != nil {
		return nil, err
	}
	profile.Email = email
	profile.HashedPassword = hashed

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	log.Info("account registered", slog.String("profile_id", profile.ID.String()))
	return &AuthResult{Profile: profile, Token: token}, nil
}

// Login authenticates an account by email and password and returns a fresh
// access token.
// Returns ErrInvalidCredentials when either the email is unknown or the
// password does not match.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			// Burn comparable time so unknown emails are not distinguishable
			// from wrong passwords by latency.
			_ = s.verifier.Compare(
				"$2a$10$0123456789012345678901uGZLCjzCnoYeGdgXyAMKBBxqqTqvpziW", password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Compare(profile.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch",
			slog.String("profile_id", profile.ID.String()))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	log.Info("login succeeded", slog.String("profile_id", profile.ID.String()))
	return &AuthResult{Profile: profile, Token: token}, nil
}
