package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"sync"
	"testing"
	"time"

	"covid_dashboard/internal/models"
	"covid_dashboard/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

const testSigningKey = "test-signing-key"

type mockAuthRepo struct {
	CreateFn        func(username, hash string) (int, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct{ username, hash string }
	getCalls    []string
}

func (m *mockAuthRepo) Create(_ context.Context, username, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct{ username, hash string }{username, hash})
	return m.CreateFn(username, hash)
}

func (m *mockAuthRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

// firstOnlyRepo accepts a single operator, like the users table insert.
type firstOnlyRepo struct {
	mu    sync.Mutex
	users []string
}

func (r *firstOnlyRepo) Create(_ context.Context, username, _ string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.users) > 0 {
		return 0, repository.ErrUsersExist
	}
	r.users = append(r.users, username)
	return len(r.users), nil
}

func (r *firstOnlyRepo) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, nil
}

func newTestAuth(repo *mockAuthRepo) *AuthService {
	return NewAuthService(repo, testSigningKey, time.Hour)
}

func TestAuthService_SignUp_HashesPassword(t *testing.T) {
	repo := &mockAuthRepo{CreateFn: func(string, string) (int, error) { return 42, nil }}
	svc := newTestAuth(repo)

	id, err := svc.SignUp(context.Background(), " alice ", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	if len(repo.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(repo.createCalls))
	}
	call := repo.createCalls[0]
	if call.username != "alice" {
		t.Errorf("username not trimmed: %q", call.username)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("password stored unhashed")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_SignUp_Rejections(t *testing.T) {
	create := func(string, string) (int, error) {
		t.Fatal("Create should not be called")
		return 0, nil
	}
	tests := []struct {
		name     string
		repo     *mockAuthRepo
		key      string
		username string
		password string
		wantErr  error
	}{
		{"auth disabled", &mockAuthRepo{CreateFn: create}, "", "bob", "pw", ErrAuthDisabled},
		{"empty username", &mockAuthRepo{CreateFn: create}, testSigningKey, "  ", "pw", ErrInvalidUsername},
		{"empty password", &mockAuthRepo{CreateFn: create}, testSigningKey, "bob", "   ", ErrInvalidPassword},
		{"operator exists", &mockAuthRepo{CreateFn: func(string, string) (int, error) {
			return 0, repository.ErrUsersExist
		}}, testSigningKey, "bob", "pw", ErrSignUpClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.repo, tt.key, time.Hour)
			_, err := svc.SignUp(context.Background(), tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	repo := &mockAuthRepo{CreateFn: func(string, string) (int, error) { return 0, errors.New("db down") }}
	if _, err := newTestAuth(repo).SignUp(context.Background(), "carl", "pass123"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

func TestAuthService_SignUp_ConcurrentOnlyFirstWins(t *testing.T) {
	repo := &firstOnlyRepo{}
	svc := NewAuthService(repo, testSigningKey, time.Hour)

	names := []string{"alice", "bob", "carol", "dave"}
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			_, errs[i] = svc.SignUp(context.Background(), name, "pw-"+name)
		}(i, name)
	}
	wg.Wait()

	var ok, closed int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrSignUpClosed):
			closed++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || closed != len(names)-1 {
		t.Fatalf("want 1 success and %d closed, got %d and %d", len(names)-1, ok, closed)
	}
	if len(repo.users) != 1 {
		t.Fatalf("want 1 stored operator, got %v", repo.users)
	}
}

func TestAuthService_GenerateToken_RoundTrip(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	repo := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username != "diana" {
				t.Fatalf("unexpected username %q", username)
			}
			return &models.User{ID: 7, Username: "diana", PasswordHash: hash}, nil
		},
	}
	svc := newTestAuth(repo)

	token, err := svc.GenerateToken(context.Background(), "diana", "letmein")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if uid != 7 {
		t.Fatalf("expected user id 7, got %d", uid)
	}
}

func TestAuthService_GenerateToken_Errors(t *testing.T) {
	correct, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	tests := []struct {
		name    string
		get     func(string) (*models.User, error)
		wantErr error
	}{
		{"not found", func(string) (*models.User, error) { return nil, nil }, ErrUserNotFound},
		{"wrong password", func(string) (*models.User, error) {
			return &models.User{ID: 1, Username: "eve", PasswordHash: correct}, nil
		}, ErrInvalidPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuth(&mockAuthRepo{GetByUsernameFn: tt.get})
			_, err := svc.GenerateToken(context.Background(), "eve", "wrong")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	svc := newTestAuth(&mockAuthRepo{GetByUsernameFn: func(string) (*models.User, error) {
		return nil, errors.New("query failed")
	}})
	if _, err := svc.GenerateToken(context.Background(), "john", "pw"); err == nil {
		t.Fatalf("expected repo error")
	}
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc := newTestAuth(&mockAuthRepo{})
	now := time.Now()

	claims := func(exp time.Time) *Claims {
		return &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
				IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
			},
			UserID: 5,
		}
	}

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims(now.Add(time.Hour))).SignedString([]byte("different-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims(now.Add(-time.Hour))).SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa.GenerateKey: %v", err)
	}
	rs256, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims(now.Add(time.Hour))).SignedString(rsaKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	for name, tok := range map[string]string{
		"malformed":    "not-a-jwt",
		"other key":    otherKey,
		"expired":      expired,
		"non-HMAC alg": rs256,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.ParseToken(tok); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestAuthService_ParseToken_Disabled(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, "", 0)
	if _, err := svc.ParseToken("anything"); !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("expected ErrAuthDisabled, got %v", err)
	}
	if svc.tokenTTL != defaultTokenTTL {
		t.Fatalf("expected default ttl, got %v", svc.tokenTTL)
	}
}

func TestAuthService_IssueToken_UsesTTL(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, testSigningKey, 15*time.Minute)
	now := time.Now().Truncate(time.Second)
	tok, err := svc.issueToken(3, now)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, &Claims{})
	if err != nil {
		t.Fatalf("ParseUnverified: %v", err)
	}
	c := parsed.Claims.(*Claims)
	if got := c.ExpiresAt.Time.Sub(c.IssuedAt.Time); got != 15*time.Minute {
		t.Fatalf("expected 15m lifetime, got %v", got)
	}
}
