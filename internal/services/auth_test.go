package services

import (
	"context"
	"testing"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/pkg/config"
	apperrors "maintenance-system/pkg/errors"
	pkgservice "maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture() (AuthServiceInterface, *fakeUserRepo, *fakeCacheRepo) {
	userRepo := newFakeUserRepo()
	cacheRepo := newFakeCacheRepo()
	jwtSvc := pkgservice.NewJWTService("test-secret", time.Hour, time.Hour*24)
	authConfig := config.AuthConfig{
		MaxLoginAttempts: 3,
		LockoutDuration:  time.Minute,
		ResetTokenTTL:    time.Minute,
	}
	return NewAuthService(userRepo, cacheRepo, jwtSvc, authConfig, zap.NewNop()), userRepo, cacheRepo
}

func TestSignupAndLogin(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	signup, err := service.Signup(ctx, dto.SignupDTO{
		Name: "John Doe", Email: "John@Example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.True(t, signup.Success)
	assert.Equal(t, "john@example.com", signup.User.Email, "почта нормализуется к нижнему регистру")

	login, err := service.Login(ctx, dto.LoginDTO{Email: "JOHN@example.COM", Password: "password123"})
	require.NoError(t, err, "вход не зависит от регистра почты")
	assert.True(t, login.Success)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEmpty(t, login.RefreshToken)
}

func TestSignup_DuplicateEmailConflict(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Signup(ctx, dto.SignupDTO{Name: "John", Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = service.Signup(ctx, dto.SignupDTO{Name: "Double", Email: "john@example.com", Password: "password456"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Signup(ctx, dto.SignupDTO{Name: "John", Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = service.Login(ctx, dto.LoginDTO{Email: "john@example.com", Password: "wrong"})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Code)
}

func TestLogin_LockoutAfterTooManyAttempts(t *testing.T) {
	service, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Signup(ctx, dto.SignupDTO{Name: "John", Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = service.Login(ctx, dto.LoginDTO{Email: "john@example.com", Password: "wrong"})
		require.Error(t, err)
	}

	// Даже верный пароль не пускает, пока действует блокировка.
	_, err = service.Login(ctx, dto.LoginDTO{Email: "john@example.com", Password: "password123"})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 429, httpErr.Code)
}

func TestPasswordResetFlow(t *testing.T) {
	service, userRepo, _ := newAuthFixture()
	ctx := context.Background()

	_, err := service.Signup(ctx, dto.SignupDTO{Name: "John", Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)

	token, err := service.ForgetPassword(ctx, dto.ForgetPasswordDTO{Email: "john@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = service.ResetPassword(ctx, dto.ResetPasswordDTO{Token: token, NewPassword: "newpassword1"})
	require.NoError(t, err)

	user, err := userRepo.FindUserByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePasswords(user.Password, "newpassword1"), "пароль обновлён")

	// Токен одноразовый.
	err = service.ResetPassword(ctx, dto.ResetPasswordDTO{Token: token, NewPassword: "another"})
	require.Error(t, err)
}

func TestForgetPassword_UnknownEmail(t *testing.T) {
	service, _, _ := newAuthFixture()

	_, err := service.ForgetPassword(context.Background(), dto.ForgetPasswordDTO{Email: "nobody@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
