package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taskmgmt/task-management-api/internal/config"
	"github.com/taskmgmt/task-management-api/internal/models"
	"github.com/taskmgmt/task-management-api/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService verifies credentials and issues bearer tokens.
type AuthService struct {
	userRepo repository.UserRepository
	jwt      config.JWTConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *AuthService {
	if jwtCfg.TTL <= 0 {
		jwtCfg.TTL = time.Hour
	}
	return &AuthService{
		userRepo: userRepo,
		jwt:      jwtCfg,
	}
}

// Login verifies the credentials and returns a signed, time-limited token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(user.ID, 10),
		"username": user.Username,
		"role":     user.Role,
		"iss":      s.jwt.Issuer,
		"aud":      s.jwt.Audience,
		"iat":      now.Unix(),
		"exp":      now.Add(s.jwt.TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwt.Secret))
}
