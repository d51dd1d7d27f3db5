package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/igdnd/sales-dashboard-api/internal/config"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "segredo-de-teste"
	return cfg
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository, passwordHash string)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "usuário inexistente",
			email:    "nobody@example.com",
			password: "qualquer",
			setup: func(userRepo *mocks.MockUserRepository, _ string) {
				userRepo.EXPECT().GetUserByEmail("nobody@example.com").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
				assert.Empty(t, token)
			},
		},
		{
			name:     "usuário desativado",
			email:    "inactive@example.com",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository, passwordHash string) {
				userRepo.EXPECT().GetUserByEmail("inactive@example.com").Return(&domain.User{
					ID:           7,
					Email:        "inactive@example.com",
					PasswordHash: passwordHash,
					Active:       false,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)
				assert.Empty(t, token)
			},
		},
		{
			name:     "senha incorreta",
			email:    "user@example.com",
			password: "senha-errada",
			setup: func(userRepo *mocks.MockUserRepository, passwordHash string) {
				userRepo.EXPECT().GetUserByEmail("user@example.com").Return(&domain.User{
					ID:           7,
					Email:        "user@example.com",
					PasswordHash: passwordHash,
					Active:       true,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.True(t, IsCredentialsError(err))
				assert.Empty(t, token)
			},
		},
		{
			name:     "login com sucesso normaliza o email",
			email:    "  User@Example.com ",
			password: "senha123",
			setup: func(userRepo *mocks.MockUserRepository, passwordHash string) {
				userRepo.EXPECT().GetUserByEmail("user@example.com").Return(&domain.User{
					ID:           7,
					Name:         "Usuário",
					Email:        "user@example.com",
					PasswordHash: passwordHash,
					Active:       true,
					RoleID:       2,
				}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo, hashPassword(t, "senha123"))

			service := NewService(userRepo, testConfig())
			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUserByEmail("user@example.com").Return(&domain.User{
		ID:           7,
		Name:         "Usuário",
		Email:        "user@example.com",
		PasswordHash: hashPassword(t, "senha123"),
		Active:       true,
		RoleID:       1,
	}, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser("user@example.com", "senha123")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "user@example.com", claims.UserEmail)
	assert.Equal(t, 1, claims.UserRoleID)

	_, err = service.ValidateToken("token-invalido")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, created *domain.User, err error)
	}{
		{
			name:  "dados obrigatórios ausentes",
			user:  &domain.User{Email: "user@example.com"},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.ErrorIs(t, err, ErrMissingData)
				assert.Nil(t, created)
			},
		},
		{
			name: "email já cadastrado",
			user: &domain.User{Name: "Usuário", Email: "user@example.com", PasswordHash: "senha123"},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("user@example.com").Return(&domain.User{ID: 7}, nil)
			},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
				assert.Nil(t, created)
			},
		},
		{
			name: "criação com papel padrão de operador",
			user: &domain.User{Name: "Usuário", Email: "User@Example.com", PasswordHash: "senha123"},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("user@example.com").Return(nil, nil)
				userRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) (*domain.User, error) {
						assert.Equal(t, "user@example.com", user.Email)
						assert.True(t, user.Active)
						assert.Equal(t, 2, user.RoleID)
						// O hash nunca guarda a senha em claro
						assert.NotEqual(t, "senha123", user.PasswordHash)

						user.ID = 10
						return user, nil
					})
			},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 10, created.ID)
				assert.Empty(t, created.PasswordHash)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())
			created, err := service.CreateUser(tt.user)
			tt.validate(t, created, err)
		})
	}
}

func TestService_GenerateProvisionalPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	stored := &domain.User{ID: 7, Email: "user@example.com", Active: true}
	userRepo.EXPECT().GetUserByID(7).Return(stored, nil)
	userRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.NotEmpty(t, user.PasswordHash)
			return nil
		})

	service := NewService(userRepo, testConfig())

	password, err := service.GenerateProvisionalPassword(7)
	assert.NoError(t, err)
	assert.Len(t, password, provisionalPasswordLength)
}
