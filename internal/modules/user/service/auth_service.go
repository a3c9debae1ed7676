package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/user/dto"
	"anoa.com/nftmarketplace/internal/modules/user/repository"
	"anoa.com/nftmarketplace/pkg/apperror"
	"anoa.com/nftmarketplace/pkg/logger"
	"anoa.com/nftmarketplace/pkg/ratelimiter"
	"anoa.com/nftmarketplace/pkg/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const loginAction = "login"

var errInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid credentials", apperror.ErrUnauthorized)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
}

type authService struct {
	repo        repository.UserRepository
	sessions    *session.Manager
	redisClient *redis.Client
	loginWindow time.Duration
}

func NewAuthService(repo repository.UserRepository, sessions *session.Manager, redisClient *redis.Client, loginWindow time.Duration) AuthService {
	return &authService{
		repo:        repo,
		sessions:    sessions,
		redisClient: redisClient,
		loginWindow: loginWindow,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	exists, err := s.repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.New(http.StatusConflict, "email or username already registered", apperror.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.New(http.StatusConflict, "email or username already registered", apperror.ErrConflict)
		}
		return nil, err
	}

	logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return s.buildAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	email := normalizeEmail(input.Email)

	if err := s.checkLoginRate(ctx, email); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	// successful login resets the window
	if err := ratelimiter.Clear(ctx, s.redisClient, email, loginAction); err != nil {
		logger.Warn("failed to clear login rate limit", zap.Error(err))
	}

	return s.buildAuthResponse(user)
}

// checkLoginRate fails open when redis is unreachable.
func (s *authService) checkLoginRate(ctx context.Context, email string) error {
	if s.loginWindow <= 0 {
		return nil
	}

	allowed, err := ratelimiter.Allow(ctx, s.redisClient, email, loginAction, s.loginWindow)
	if err != nil {
		logger.Warn("login rate limit check failed", zap.Error(err))
		return nil
	}
	if allowed {
		return nil
	}

	retry, err := ratelimiter.RetryAfter(ctx, s.redisClient, email, loginAction)
	if err != nil || retry <= 0 {
		retry = s.loginWindow
	}
	return apperror.New(http.StatusTooManyRequests,
		fmt.Sprintf("too many login attempts, retry in %d seconds", int(math.Ceil(retry.Seconds()))),
		apperror.ErrRateLimitExceeded)
}

func (s *authService) buildAuthResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.sessions.Issue(user.ID.String(), string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	user.PasswordHash = ""

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
