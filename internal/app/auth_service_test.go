package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"escena/internal/domain"
	"escena/internal/token"
)

type mockUserRepo struct {
	pingFn       func(ctx context.Context) error
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	createFn     func(ctx context.Context, displayName, email, passwordHash, role string) (*domain.User, error)
	touchFn      func(ctx context.Context, id int64, at time.Time) error

	getCalls    int
	createCalls int
}

func (m *mockUserRepo) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.getCalls++
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, displayName, email, passwordHash, role string) (*domain.User, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, displayName, email, passwordHash, role)
	}
	return &domain.User{ID: 1, DisplayName: displayName, Email: email, PasswordHash: passwordHash, Role: role}, nil
}

func (m *mockUserRepo) TouchLastAccess(ctx context.Context, id int64, at time.Time) error {
	if m.touchFn != nil {
		return m.touchFn(ctx, id, at)
	}
	return nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(users *mockUserRepo, bootstrap BootstrapPolicy) (*AuthService, *token.Codec) {
	codec := token.NewCodec("auth-service-test-secret")
	return NewAuthService(users, codec, time.Hour, bootstrap, quietLogger()), codec
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 3, DisplayName: "Ana", Email: email, PasswordHash: string(hash), Role: domain.RoleAdmin}, nil
		},
	}

	svc, codec := newTestService(users, DefaultAdminBootstrap(true))
	res, err := svc.Login(ctx, "ana@example.com", "secreto123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Token == "" {
		t.Fatal("expected a token")
	}
	if res.User.PasswordHash == "" {
		t.Error("service should keep the hash internally")
	}

	claims, err := codec.Verify(res.Token)
	if err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
	if claims.UserID() != 3 {
		t.Errorf("expected subject id 3, got %d", claims.UserID())
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correcta"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 3, Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc, _ := newTestService(users, DefaultAdminBootstrap(true))
	_, err := svc.Login(ctx, "ana@example.com", "incorrecta")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}

	svc, _ := newTestService(users, DefaultAdminBootstrap(true))
	_, err := svc.Login(ctx, "nadie@example.com", "loquesea")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if users.createCalls != 0 {
		t.Error("non-bootstrap credentials must never create an account")
	}
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{
		pingFn: func(ctx context.Context) error { return errors.New("dial tcp: refused") },
	}

	svc, _ := newTestService(users, DefaultAdminBootstrap(true))
	_, err := svc.Login(ctx, "ana@example.com", "secreto123")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if users.getCalls != 0 {
		t.Error("no lookup should happen when the store is unreachable")
	}
}

func TestAuthService_Login_BootstrapCreatesDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}

	bootstrap := DefaultAdminBootstrap(true)
	svc, codec := newTestService(users, bootstrap)
	res, err := svc.Login(ctx, bootstrap.Email, bootstrap.Password)
	if err != nil {
		t.Fatalf("expected bootstrap login to succeed, got %v", err)
	}
	if users.createCalls != 1 {
		t.Errorf("expected exactly one insert, got %d", users.createCalls)
	}
	if res.User.Role != domain.RoleSuperadmin {
		t.Errorf("bootstrap account should be superadmin, got %q", res.User.Role)
	}
	if _, err := codec.Verify(res.Token); err != nil {
		t.Errorf("bootstrap token should verify: %v", err)
	}
}

func TestAuthService_Login_BootstrapDisabled(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}

	bootstrap := DefaultAdminBootstrap(false)
	svc, _ := newTestService(users, bootstrap)
	_, err := svc.Login(ctx, bootstrap.Email, bootstrap.Password)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if users.createCalls != 0 {
		t.Error("disabled bootstrap must not insert")
	}
}

func TestAuthService_Login_BootstrapInsertRace(t *testing.T) {
	ctx := context.Background()
	bootstrap := DefaultAdminBootstrap(true)
	hash, _ := bcrypt.GenerateFromPassword([]byte(bootstrap.Password), bcrypt.DefaultCost)

	// The insert loses a race: the repo reports a duplicate key, and the
	// follow-up lookup finds the row the winner created.
	lookups := 0
	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			lookups++
			if lookups == 1 {
				return nil, nil
			}
			return &domain.User{ID: 1, DisplayName: bootstrap.DisplayName, Email: email, PasswordHash: string(hash), Role: bootstrap.Role}, nil
		},
		createFn: func(ctx context.Context, displayName, email, passwordHash, role string) (*domain.User, error) {
			return nil, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)
		},
	}

	svc, codec := newTestService(users, bootstrap)
	res, err := svc.Login(ctx, bootstrap.Email, bootstrap.Password)
	if err != nil {
		t.Fatalf("losing the bootstrap race should still log in, got %v", err)
	}
	claims, err := codec.Verify(res.Token)
	if err != nil {
		t.Fatalf("token should verify: %v", err)
	}
	if claims.UserID() != 1 {
		t.Errorf("expected the winner's account id 1, got %d", claims.UserID())
	}
}

func TestAuthService_Login_CorruptHashFallback(t *testing.T) {
	ctx := context.Background()
	bootstrap := DefaultAdminBootstrap(true)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: bootstrap.Email, PasswordHash: "not-a-bcrypt-hash", Role: bootstrap.Role}, nil
		},
	}

	svc, _ := newTestService(users, bootstrap)

	// The stored hash is unusable; the default pair is the one allowed recovery.
	if _, err := svc.Login(ctx, bootstrap.Email, bootstrap.Password); err != nil {
		t.Fatalf("default pair should recover from a corrupt hash, got %v", err)
	}

	// Any other password against the corrupt hash is a mechanism failure.
	_, err := svc.Login(ctx, bootstrap.Email, "otra-clave")
	if !errors.Is(err, ErrVerificationFailed) {
		t.Fatalf("expected ErrVerificationFailed, got %v", err)
	}
}

func TestAuthService_Login_TouchFailureDoesNotFailLogin(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.DefaultCost)

	users := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 3, Email: email, PasswordHash: string(hash)}, nil
		},
		touchFn: func(ctx context.Context, id int64, at time.Time) error {
			return errors.New("write timeout")
		},
	}

	svc, _ := newTestService(users, DefaultAdminBootstrap(true))
	if _, err := svc.Login(ctx, "ana@example.com", "secreto123"); err != nil {
		t.Fatalf("touch failure must not fail the login, got %v", err)
	}
}
