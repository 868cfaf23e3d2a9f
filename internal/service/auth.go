package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/hidr4lisk/experimento/internal/models"
	"github.com/hidr4lisk/experimento/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately the same for unknown users and wrong
// passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionTTL = 24 * time.Hour

// SessionClaims is the JWT payload stored in the session cookie.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin checks whether the session carries the admin role
func (c *SessionClaims) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

type AuthService struct {
	userRepo repository.UserRepository
	secret   []byte
	logger   *logrus.Logger
}

func NewAuthService(userRepo repository.UserRepository, secret string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		logger:   logrus.New(),
	}
}

// EnsureAdmin seeds the configured admin account on startup when it does not
// exist yet. An empty username disables seeding.
func (s *AuthService) EnsureAdmin(username, password string) error {
	if username == "" {
		return nil
	}
	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	s.logger.Infof("Admin user %q initialized", username)
	return nil
}

// Login verifies the credentials and issues a signed session token.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := SessionClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, user, nil
}

// ParseToken validates a session token and returns its claims.
func (s *AuthService) ParseToken(token string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// SessionTTL exposes the cookie lifetime to the HTTP layer.
func (s *AuthService) SessionTTL() time.Duration {
	return sessionTTL
}
