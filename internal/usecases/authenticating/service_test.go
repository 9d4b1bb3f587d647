package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/attribution-insights-api/internal/config"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "segredo-de-teste"}
}

func hashedUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Vinicius",
		Email:        "vinicius@example.com",
		PasswordHash: string(hash),
		RoleID:       3,
		Active:       true,
	}
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "novo@example.com").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "novo@example.com", user.Email)
			assert.True(t, user.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-super-segura")))

			created := *user
			created.ID = 10
			return &created, nil
		})

	service := NewService(userRepo, testConfig())

	created, err := service.CreateUser(context.Background(), &domain.User{
		Name:  "Novo",
		Email: "Novo@Example.com ",
	}, "senha-super-segura")
	require.NoError(t, err)

	assert.Equal(t, 10, created.ID)
	assert.Empty(t, created.PasswordHash)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "vinicius@example.com").
		Return(&domain.User{ID: 7}, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.CreateUser(context.Background(), &domain.User{
		Email: "vinicius@example.com",
	}, "senha-super-segura")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUserWeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	_, err := service.CreateUser(context.Background(), &domain.User{
		Email: "novo@example.com",
	}, "curta")
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginUserGeneratesValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := hashedUser(t, "senha-super-segura")

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "vinicius@example.com").Return(user, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser(context.Background(), " Vinicius@Example.com", "senha-super-segura")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.UserEmail)
	assert.Equal(t, user.RoleID, claims.UserRoleID)
}

func TestLoginUserWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := hashedUser(t, "senha-super-segura")

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "vinicius@example.com").Return(user, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.LoginUser(context.Background(), "vinicius@example.com", "senha-errada")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, user.ID, authErr.UserID)
}

func TestLoginUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ninguem@example.com").Return(nil, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.LoginUser(context.Background(), "ninguem@example.com", "senha-super-segura")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginUserDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := hashedUser(t, "senha-super-segura")
	user.Active = false

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "vinicius@example.com").Return(user, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.LoginUser(context.Background(), "vinicius@example.com", "senha-super-segura")
	require.ErrorIs(t, err, ErrUserDisabled)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := hashedUser(t, "senha-super-segura")

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "vinicius@example.com").Return(user, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser(context.Background(), "vinicius@example.com", "senha-super-segura")
	require.NoError(t, err)

	other := NewService(userRepo, &config.Config{SecretKey: "outro-segredo"})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestGetUserProfileStripsHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := hashedUser(t, "senha-super-segura")

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(gomock.Any(), 7).Return(user, nil)

	service := NewService(userRepo, testConfig())

	profile, err := service.GetUserProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, profile.PasswordHash)
	assert.Equal(t, "vinicius@example.com", profile.Email)
}
