package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/config"
	apperrors "maintenance-system/pkg/errors"
	pkgservice "maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	loginAttemptsKeyPrefix = "auth:login_attempts:"
	resetTokenKeyPrefix    = "auth:reset_token:"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Signup(ctx context.Context, payload dto.SignupDTO) (*dto.SignupResponseDTO, error)
	ForgetPassword(ctx context.Context, payload dto.ForgetPasswordDTO) (string, error)
	ResetPassword(ctx context.Context, payload dto.ResetPasswordDTO) error
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService pkgservice.JWTService
	authConfig config.AuthConfig
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService pkgservice.JWTService,
	authConfig config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		authConfig: authConfig,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	attemptsKey := loginAttemptsKeyPrefix + email

	if s.isLockedOut(ctx, attemptsKey) {
		return nil, apperrors.NewHttpError(429,
			"слишком много неудачных попыток входа, попробуйте позже", nil, nil)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.registerFailedAttempt(ctx, attemptsKey)
			return nil, apperrors.NewHttpError(401, "неверная почта или пароль", apperrors.ErrInvalidCredentials, nil)
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.registerFailedAttempt(ctx, attemptsKey)
		return nil, apperrors.NewHttpError(401, "неверная почта или пароль", apperrors.ErrInvalidCredentials, nil)
	}

	if err := s.cacheRepo.Del(ctx, attemptsKey); err != nil {
		s.logger.Warn("не удалось сбросить счётчик попыток входа", zap.Error(err))
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("не удалось выпустить токены", zap.Error(err))
		return nil, err
	}

	s.logger.Info("пользователь вошёл в систему", zap.Uint64("user_id", user.ID))

	return &dto.LoginResponseDTO{
		Success:      true,
		User:         mapUserToAuthDTO(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) Signup(ctx context.Context, payload dto.SignupDTO) (*dto.SignupResponseDTO, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, entities.User{
		Name:     payload.Name,
		Email:    strings.ToLower(strings.TrimSpace(payload.Email)),
		Password: hashed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("зарегистрирован новый пользователь", zap.Uint64("user_id", user.ID))

	return &dto.SignupResponseDTO{Success: true, User: mapUserToAuthDTO(user)}, nil
}

// ForgetPassword возвращает токен сброса. В реальной установке токен
// уходил бы письмом; здесь его отдаёт ответ, чтобы сценарий был
// проверяем без почтового шлюза.
func (s *AuthService) ForgetPassword(ctx context.Context, payload dto.ForgetPasswordDTO) (string, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewNotFoundError("пользователь с такой почтой не найден")
		}
		return "", err
	}

	token := uuid.NewString()
	key := resetTokenKeyPrefix + token
	if err := s.cacheRepo.Set(ctx, key, fmt.Sprintf("%d", user.ID), s.authConfig.ResetTokenTTL); err != nil {
		s.logger.Error("не удалось сохранить токен сброса пароля", zap.Error(err))
		return "", err
	}

	s.logger.Info("выпущен токен сброса пароля", zap.Uint64("user_id", user.ID))
	return token, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, payload dto.ResetPasswordDTO) error {
	key := resetTokenKeyPrefix + payload.Token

	value, err := s.cacheRepo.Get(ctx, key)
	if err != nil || value == "" {
		return apperrors.NewHttpError(401, "токен сброса пароля недействителен или истёк", nil, nil)
	}

	var userID uint64
	if _, err := fmt.Sscanf(value, "%d", &userID); err != nil {
		return apperrors.NewHttpError(401, "токен сброса пароля недействителен или истёк", nil, nil)
	}

	hashed, err := utils.HashPassword(payload.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("пользователь не найден")
		}
		return err
	}

	// Токен одноразовый.
	if err := s.cacheRepo.Del(ctx, key); err != nil {
		s.logger.Warn("не удалось удалить использованный токен сброса", zap.Error(err))
	}

	s.logger.Info("пароль сброшен", zap.Uint64("user_id", userID))
	return nil
}

// isLockedOut читает счётчик из кеша; отсутствие ключа или сбой кеша
// трактуются как "не заблокирован" - вход не должен зависеть от Redis.
func (s *AuthService) isLockedOut(ctx context.Context, attemptsKey string) bool {
	value, err := s.cacheRepo.Get(ctx, attemptsKey)
	if err != nil || value == "" {
		return false
	}
	var attempts int
	if _, err := fmt.Sscanf(value, "%d", &attempts); err != nil {
		return false
	}
	return attempts >= s.authConfig.MaxLoginAttempts
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, attemptsKey string) {
	attempts, err := s.cacheRepo.Incr(ctx, attemptsKey)
	if err != nil {
		s.logger.Warn("не удалось учесть неудачную попытку входа", zap.Error(err))
		return
	}
	if attempts == 1 {
		if _, err := s.cacheRepo.Expire(ctx, attemptsKey, s.authConfig.LockoutDuration); err != nil {
			s.logger.Warn("не удалось выставить срок блокировки", zap.Error(err))
		}
	}
}

func mapUserToAuthDTO(user *entities.User) dto.AuthUserDTO {
	return dto.AuthUserDTO{ID: user.ID, Name: user.Name, Email: user.Email}
}
