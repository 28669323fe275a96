package service

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"neopixel_controller/internal/models"
	"neopixel_controller/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

const testSigningKey = "test-key"

// memOperators is an in-memory repository.Authorization keyed by username.
type memOperators struct {
	mu     sync.Mutex
	byName map[string]models.Operator
	getErr error
}

func newMemOperators() *memOperators {
	return &memOperators{byName: map[string]models.Operator{}}
}

func (m *memOperators) Create(username, hash string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[username]; ok {
		return 0, repository.ErrDuplicateOperator
	}
	o := models.Operator{ID: len(m.byName) + 1, Username: username, PasswordHash: hash}
	m.byName[username] = o
	return o.ID, nil
}

func (m *memOperators) GetByUsername(username string) (*models.Operator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	if o, ok := m.byName[username]; ok {
		return &o, nil
	}
	return nil, nil
}

func signedWith(t *testing.T, method jwt.SigningMethod, key interface{}, claims *Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestAuthService_SignUpSignInRoundTrip(t *testing.T) {
	ops := newMemOperators()
	svc := NewAuthService(ops, testSigningKey, time.Hour)

	first, err := svc.SignUp("alice", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp alice: %v", err)
	}
	second, err := svc.SignUp("  bob ", "hunter2")
	if err != nil {
		t.Fatalf("SignUp bob: %v", err)
	}
	if first == second {
		t.Fatalf("operators share id %d", first)
	}
	if ops.byName["bob"].ID != second {
		t.Fatalf("username not trimmed: %+v", ops.byName)
	}
	if h := ops.byName["alice"].PasswordHash; h == "" || h == "s3cr3t" {
		t.Fatalf("password stored as %q", h)
	}

	for name, pass := range map[string]string{"alice": "s3cr3t", "bob": "hunter2"} {
		token, err := svc.GenerateToken(name, pass)
		if err != nil {
			t.Fatalf("GenerateToken %s: %v", name, err)
		}
		id, err := svc.ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken %s: %v", name, err)
		}
		if id != ops.byName[name].ID {
			t.Fatalf("%s token carries operator %d, want %d", name, id, ops.byName[name].ID)
		}
	}
}

func TestAuthService_SignUpRejects(t *testing.T) {
	svc := NewAuthService(newMemOperators(), testSigningKey, time.Hour)
	if _, err := svc.SignUp("alice", "pw"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	cases := []struct {
		name, user, pass string
		want             error
	}{
		{"taken", "alice", "other", ErrOperatorExists},
		{"taken after trim", " alice ", "other", ErrOperatorExists},
		{"blank username", "   ", "pw", ErrEmptyCredentials},
		{"blank password", "carol", " \t", ErrEmptyCredentials},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SignUp(tc.user, tc.pass); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAuthService_GenerateTokenRejects(t *testing.T) {
	ops := newMemOperators()
	svc := NewAuthService(ops, testSigningKey, time.Hour)
	if _, err := svc.SignUp("alice", "s3cr3t"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := svc.GenerateToken("alice", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, err := svc.GenerateToken("mallory", "s3cr3t"); !errors.Is(err, ErrOperatorUnknown) {
		t.Fatalf("unknown operator: got %v", err)
	}

	ops.getErr = errors.New("db down")
	if _, err := svc.GenerateToken("alice", "s3cr3t"); err == nil || errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("store error not passed through: %v", err)
	}
}

func TestAuthService_ParseTokenRejects(t *testing.T) {
	svc := NewAuthService(newMemOperators(), testSigningKey, time.Hour)
	now := time.Now()
	valid := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	key := []byte(testSigningKey)
	expired := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))},
		OperatorID:       1,
	}
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa key: %v", err)
	}

	cases := map[string]string{
		"garbage":     "not-a-jwt",
		"foreign key": signedWith(t, jwt.SigningMethodHS256, []byte("other-key"), &Claims{RegisteredClaims: valid, OperatorID: 1}),
		"expired":     signedWith(t, jwt.SigningMethodHS256, key, expired),
		"no expiry":   signedWith(t, jwt.SigningMethodHS256, key, &Claims{OperatorID: 1}),
		"no operator": signedWith(t, jwt.SigningMethodHS256, key, &Claims{RegisteredClaims: valid}),
		"hs512":       signedWith(t, jwt.SigningMethodHS512, key, &Claims{RegisteredClaims: valid, OperatorID: 1}),
		"rs256":       signedWith(t, jwt.SigningMethodRS256, rsaKey, &Claims{RegisteredClaims: valid, OperatorID: 1}),
		"alg none":    signedWith(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, &Claims{RegisteredClaims: valid, OperatorID: 1}),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			id, err := svc.ParseToken(token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("got id=%d err=%v, want ErrInvalidToken", id, err)
			}
		})
	}
}

func TestAuthService_ExpiredTokenRejected(t *testing.T) {
	ops := newMemOperators()
	svc := NewAuthService(ops, testSigningKey, time.Hour)
	if _, err := svc.SignUp("alice", "s3cr3t"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	svc.tokenTTL = -time.Second

	token, err := svc.GenerateToken("alice", "s3cr3t")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	_, err = svc.ParseToken(token)
	if !errors.Is(err, ErrInvalidToken) || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestNewAuthService_DefaultTTL(t *testing.T) {
	if svc := NewAuthService(newMemOperators(), testSigningKey, 0); svc.tokenTTL != defaultTokenTTL {
		t.Fatalf("tokenTTL=%v, want %v", svc.tokenTTL, defaultTokenTTL)
	}
}
