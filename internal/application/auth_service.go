package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/procrm-api/internal/domain/entity"
	repo "github.com/oksasatya/procrm-api/internal/domain/repository"
	"github.com/oksasatya/procrm-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService validates credentials against the user directory and issues
// signed, expiring session tokens. Redis is optional; when configured, a
// session record is kept alongside the token so sessions can be inspected
// and the auth middleware can reject revoked ones.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Redis: rdb, Logger: logger}
}

// UserView is the user shape exposed over the API. The password hash never
// leaves the service layer.
type UserView struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AuthResult struct {
	User      UserView
	Token     string
	ExpiresAt time.Time
}

func sessionKey(email string) string {
	return "user:session:" + email
}

// NormalizeEmail lowercases and trims an email before any directory lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, u)
}

func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:     email,
		Name:      name,
		Password:  hash,
		Role:      entity.RoleSales,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("email", u.Email).Info("user signed up")
	}
	return s.issue(ctx, u)
}

// Profile returns the user behind an authenticated request.
func (s *AuthService) Profile(email string) (*UserView, error) {
	u, err := s.Repo.GetByEmail(NormalizeEmail(email))
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return &UserView{Email: u.Email, Name: u.Name, Role: u.Role}, nil
}

func (s *AuthService) issue(ctx context.Context, u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.GenerateToken(u.Email, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("generate token failed")
		}
		return nil, err
	}

	if s.Redis != nil {
		key := sessionKey(u.Email)
		fields := map[string]any{
			"email":      u.Email,
			"name":       u.Name,
			"role":       u.Role,
			"logged_in":  true,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, time.Until(exp))
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return &AuthResult{
		User:      UserView{Email: u.Email, Name: u.Name, Role: u.Role},
		Token:     token,
		ExpiresAt: exp,
	}, nil
}
