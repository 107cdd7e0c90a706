package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfile, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(userRepo repositories.UserRepository, refreshTokenRepo repositories.RefreshTokenRepository) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Register - регистрация нового пользователя.
// Самостоятельно зарегистрироваться можно только как freelancer или employer.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserProfile, error) {
	if !auth.RegistrableRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		DisplayName:  req.DisplayName,
		Role:         models.UserRole(req.Role),
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return toProfile(user), nil
}

// Login - вход с учетом lockout-счетчиков.
// Неудачная попытка увеличивает счетчик; после N подряд аккаунт
// временно блокируется для входа. Успех сбрасывает счетчики.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	cfg := config.GetConfig()

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsBlocked {
		return nil, apperrors.ErrAccountBlocked
	}
	if user.LockedUntil != nil && user.LockedUntil.After(time.Now()) {
		return nil, apperrors.ErrAccountLocked
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		attempts := user.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if attempts >= cfg.Security.MaxFailedLogins {
			until := time.Now().Add(time.Duration(cfg.Security.LockoutMinutes) * time.Minute)
			lockedUntil = &until
			logger.CtxWarn(ctx, "account locked after failed logins", "user_id", user.ID, "attempts", attempts)
		}
		if err := s.userRepo.RecordFailedLogin(user.ID, attempts, lockedUntil); err != nil {
			logger.CtxWithError(ctx, "failed to record failed login", err, "user_id", user.ID)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.RecordLogin(user.ID); err != nil {
		logger.CtxWithError(ctx, "failed to record login", err, "user_id", user.ID)
	}

	return s.issueTokens(user)
}

// RefreshToken - обновление access token по refresh token (с ротацией)
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if token.ExpiresAt.Before(time.Now()) {
		_ = s.refreshTokenRepo.DeleteByToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.IsBlocked {
		return nil, apperrors.ErrAccountBlocked
	}

	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(refreshToken)
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := generateRandomToken()
	if err := s.refreshTokenRepo.Create(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().AddDate(0, 0, 30),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toProfile(user),
	}, nil
}

func toProfile(user *models.User) *dto.UserProfile {
	return &dto.UserProfile{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
	}
}

func generateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand не должен падать; паника уместна
		panic(err)
	}
	return hex.EncodeToString(b)
}
