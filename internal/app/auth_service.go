// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"escena/internal/domain"
	"escena/internal/token"
)

var (
	// ErrStoreUnavailable indicates the credential store could not be reached.
	ErrStoreUnavailable = errors.New("credential store unavailable")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must never distinguish the two on the wire.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrVerificationFailed indicates the password comparison mechanism
	// itself failed, not that the password was wrong.
	ErrVerificationFailed = errors.New("password verification failed")
)

// BootstrapPolicy is the one hardcoded credential pair that may create a
// default administrator on an empty store. It matches exactly that pair,
// never a wildcard, and is consulted only after a lookup miss.
type BootstrapPolicy struct {
	Enabled     bool
	DisplayName string
	Email       string
	Password    string
	Role        string
}

// DefaultAdminBootstrap returns the first-run credential pair. It guarantees
// access to an otherwise-empty store and can be disabled via configuration.
func DefaultAdminBootstrap(enabled bool) BootstrapPolicy {
	return BootstrapPolicy{
		Enabled:     enabled,
		DisplayName: "Administrador",
		Email:       "admin@x.com",
		Password:    "admin123",
		Role:        domain.RoleSuperadmin,
	}
}

// Matches reports whether the submitted pair is exactly the bootstrap pair.
func (p BootstrapPolicy) Matches(email, password string) bool {
	return p.Enabled && email == p.Email && password == p.Password
}

// LoginResult is a successful login: a signed session token and the account
// it belongs to, without the password hash on the wire.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService validates login attempts and issues session tokens.
type AuthService struct {
	users     domain.UserRepository
	codec     *token.Codec
	lifetime  time.Duration
	bootstrap BootstrapPolicy
	log       logrus.FieldLogger
}

// NewAuthService creates an AuthService over the given credential store and
// token codec.
func NewAuthService(users domain.UserRepository, codec *token.Codec, lifetime time.Duration, bootstrap BootstrapPolicy, log logrus.FieldLogger) *AuthService {
	return &AuthService{
		users:     users,
		codec:     codec,
		lifetime:  lifetime,
		bootstrap: bootstrap,
		log:       log,
	}
}

// Login checks the submitted credentials against the store and issues a
// session token on success. Failures are always one of ErrStoreUnavailable,
// ErrInvalidCredentials or ErrVerificationFailed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := s.users.Ping(ctx); err != nil {
		s.log.WithError(err).Error("credential store unreachable")
		return nil, ErrStoreUnavailable
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.log.WithError(err).Error("credential lookup failed")
		return nil, ErrStoreUnavailable
	}

	if user == nil && s.bootstrap.Matches(email, password) {
		user, err = s.provisionDefaultAdmin(ctx)
		if err != nil {
			s.log.WithError(err).Warn("default admin bootstrap failed")
			user = nil
		}
	}

	if user == nil {
		// Same error as a wrong password so responses cannot be used to
		// enumerate accounts. The distinction is logged server-side only.
		s.log.WithField("email", email).Info("login rejected: unknown email")
		return nil, ErrInvalidCredentials
	}

	if err := s.verifyPassword(user, password); err != nil {
		return nil, err
	}

	// Non-essential side effect: a failed touch must not fail the login.
	if err := s.users.TouchLastAccess(ctx, user.ID, time.Now()); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("last-access update failed")
	}

	signed, err := s.codec.Issue(user, s.lifetime)
	if err != nil {
		s.log.WithError(err).Error("token issuance failed")
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: signed, User: user}, nil
}

// LoginSSO issues a session token for an identity already authenticated by
// the external provider. The account must exist; SSO never provisions.
func (s *AuthService) LoginSSO(ctx context.Context, email string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		s.log.WithError(err).Error("credential lookup failed")
		return nil, ErrStoreUnavailable
	}
	if user == nil {
		s.log.WithField("email", email).Warn("sso identity has no account")
		return nil, ErrInvalidCredentials
	}

	if err := s.users.TouchLastAccess(ctx, user.ID, time.Now()); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("last-access update failed")
	}

	signed, err := s.codec.Issue(user, s.lifetime)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: signed, User: user}, nil
}

// provisionDefaultAdmin inserts the bootstrap account. Two simultaneous
// first-logins can race on the insert; the loser re-reads the row the
// winner created instead of failing.
func (s *AuthService) provisionDefaultAdmin(ctx context.Context) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.bootstrap.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, s.bootstrap.DisplayName, s.bootstrap.Email, string(hash), s.bootstrap.Role)
	if err == nil {
		s.log.WithField("email", s.bootstrap.Email).Info("default administrator created")
		return user, nil
	}

	user, lookupErr := s.users.GetByEmail(ctx, s.bootstrap.Email)
	if lookupErr == nil && user != nil {
		return user, nil
	}
	return nil, err
}

func (s *AuthService) verifyPassword(user *domain.User, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		s.log.WithField("user_id", user.ID).Info("login rejected: wrong password")
		return ErrInvalidCredentials
	}

	// The comparison mechanism itself failed, for example a corrupted hash
	// column. The only recovery allowed is the plain comparison against the
	// default administrator pair.
	if s.bootstrap.Matches(user.Email, password) {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("stored hash unusable, default administrator fallback matched")
		return nil
	}

	s.log.WithError(err).WithField("user_id", user.ID).Error("password verification mechanism failed")
	return ErrVerificationFailed
}
