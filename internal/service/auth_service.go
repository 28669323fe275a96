package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"neopixel_controller/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

var (
	ErrEmptyCredentials = errors.New("username and password must not be empty")
	ErrOperatorExists   = errors.New("operator already exists")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrOperatorUnknown  = errors.New("operator not found")
	ErrInvalidToken     = errors.New("invalid token")
)

// AuthService issues operator tokens. The operator ID carried in a token is
// what broadcasts and peer registrations are attributed to.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
	parser     *jwt.Parser
}

func NewAuthService(repo repository.Authorization, signingKey string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		authRepo:   repo,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
		parser:     jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}
}

// SignUp creates an operator and returns its ID. The username is trimmed
// before it is stored.
func (s *AuthService) SignUp(username, password string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return 0, ErrEmptyCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	id, err := s.authRepo.Create(username, string(hash))
	if errors.Is(err, repository.ErrDuplicateOperator) {
		return 0, ErrOperatorExists
	}
	return id, err
}

type Claims struct {
	jwt.RegisteredClaims
	OperatorID int `json:"operator_id"`
}

// GenerateToken checks the credentials and returns a signed token for the
// operator.
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	o, err := s.authRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", err
	}
	if o == nil {
		return "", ErrOperatorUnknown
	}
	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OperatorID: o.ID,
	})
	return token.SignedString(s.signingKey)
}

// ParseToken returns the operator ID of a valid HS256 token. Every failure
// wraps ErrInvalidToken.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(accessToken, &claims, func(*jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.OperatorID <= 0 {
		return 0, fmt.Errorf("%w: no operator", ErrInvalidToken)
	}
	return claims.OperatorID, nil
}
