package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yhaox11/SaaSBuilder/infrastructure/repository/mocks"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	service := NewService(mockProfileRepo, testConfig())

	activeProfile := func(password string) *domain.Profile {
		return &domain.Profile{
			ID:           "user-1",
			Name:         "Maria",
			Email:        "maria@empresa.com.br",
			Role:         domain.RoleAdmin,
			TenantID:     "tenant-1",
			Status:       "active",
			PasswordHash: hashPassword(t, password),
		}
	}

	t.Run("Login com sucesso - token carrega usuário, tenant e papel", func(t *testing.T) {
		mockProfileRepo.EXPECT().
			GetByEmail("maria@empresa.com.br").
			Return(activeProfile("Senha123"), nil)

		token, err := service.LoginUser("  Maria@Empresa.com.br ", "Senha123")

		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "tenant-1", claims.TenantID)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})

	t.Run("Senha incorreta - credenciais inválidas", func(t *testing.T) {
		mockProfileRepo.EXPECT().
			GetByEmail("maria@empresa.com.br").
			Return(activeProfile("Senha123"), nil)

		token, err := service.LoginUser("maria@empresa.com.br", "errada")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockProfileRepo.EXPECT().
			GetByEmail("naoexiste@empresa.com.br").
			Return(nil, nil)

		token, err := service.LoginUser("naoexiste@empresa.com.br", "Senha123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Conta desativada", func(t *testing.T) {
		profile := activeProfile("Senha123")
		profile.Status = "inactive"

		mockProfileRepo.EXPECT().
			GetByEmail("maria@empresa.com.br").
			Return(profile, nil)

		token, err := service.LoginUser("maria@empresa.com.br", "Senha123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Campos obrigatórios ausentes", func(t *testing.T) {
		token, err := service.LoginUser("", "")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	service := NewService(mockProfileRepo, testConfig())

	t.Run("Registro com sucesso - primeiro usuário vira admin do tenant", func(t *testing.T) {
		mockProfileRepo.EXPECT().
			GetByEmail("joao@empresa.com.br").
			Return(nil, nil)

		mockProfileRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(profile *domain.Profile) (*domain.Profile, error) {
				assert.Equal(t, "joao@empresa.com.br", profile.Email)
				assert.Equal(t, domain.RoleAdmin, profile.Role)
				assert.NotEmpty(t, profile.ID)
				assert.NotEmpty(t, profile.TenantID)
				assert.Equal(t, "active", profile.Status)

				// A senha nunca é persistida em claro
				assert.NotEqual(t, "Senha123", profile.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte("Senha123")))

				return profile, nil
			})

		profile, err := service.RegisterUser("João", "Joao@Empresa.com.br", "Senha123")

		require.NoError(t, err)
		assert.Equal(t, "João", profile.Name)
		assert.Empty(t, profile.PasswordHash)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		mockProfileRepo.EXPECT().
			GetByEmail("joao@empresa.com.br").
			Return(&domain.Profile{ID: "user-1"}, nil)

		profile, err := service.RegisterUser("João", "joao@empresa.com.br", "Senha123")

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Senha fraca - sem número", func(t *testing.T) {
		profile, err := service.RegisterUser("João", "joao@empresa.com.br", "SenhaForte")

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Senha fraca - curta demais", func(t *testing.T) {
		profile, err := service.RegisterUser("João", "joao@empresa.com.br", "Ab1")

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Campos obrigatórios ausentes", func(t *testing.T) {
		profile, err := service.RegisterUser("", "joao@empresa.com.br", "Senha123")

		assert.Nil(t, profile)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfileRepo := mocks.NewMockProfileRepository(ctrl)
	service := NewService(mockProfileRepo, testConfig())

	t.Run("Token adulterado", func(t *testing.T) {
		claims, err := service.ValidateToken("abc.def.ghi")

		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		otherService := NewService(mockProfileRepo, &config.Config{
			Auth: config.Auth{Secret: "outro-segredo"},
		})

		mockProfileRepo.EXPECT().
			GetByEmail("maria@empresa.com.br").
			Return(&domain.Profile{
				ID:           "user-1",
				Email:        "maria@empresa.com.br",
				TenantID:     "tenant-1",
				Role:         domain.RoleUser,
				Status:       "active",
				PasswordHash: hashPassword(t, "Senha123"),
			}, nil)

		token, err := otherService.LoginUser("maria@empresa.com.br", "Senha123")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}
