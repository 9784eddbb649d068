package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfirmino/armazem-api/internal/application/auth"
	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	pkgjwt "github.com/jfirmino/armazem-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake em memória do UserRepository
// ──────────────────────────────────────────────────────────────────────────────

type memUsers struct {
	porID    map[string]*entity.User
	porEmail map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{
		porID:    map[string]*entity.User{},
		porEmail: map[string]*entity.User{},
	}
}

func (r *memUsers) Create(u *entity.User) error {
	cp := *u
	r.porID[u.ID] = &cp
	r.porEmail[u.Email] = &cp
	return nil
}

func (r *memUsers) GetByID(id string) (*entity.User, error) {
	return r.porID[id], nil
}

func (r *memUsers) GetByEmail(email string) (*entity.User, error) {
	return r.porEmail[email], nil
}

var cfgTeste = auth.JWTConfig{
	Secret:     "segredo-de-teste",
	Issuer:     "armazem-api-test",
	ExpMinutes: 60,
}

func registar(t *testing.T, uc *auth.AuthUseCase, email string) *dto.UserResponse {
	t.Helper()
	u, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nome:     "Manuel Firmino",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NormalizaEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), cfgTeste)

	u := registar(t, uc, "  Manuel@Armazem.PT ")

	assert.Equal(t, "manuel@armazem.pt", u.Email,
		"o email deve ficar em minúsculas e sem espaços")
	assert.NotEmpty(t, u.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), cfgTeste)
	registar(t, uc, "manuel@armazem.pt")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Nome:     "Outro",
		Email:    "MANUEL@armazem.pt", // mesmo email com maiúsculas
		Password: "outrapassword",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredenciaisValidas_EmiteToken(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), cfgTeste)
	registado := registar(t, uc, "manuel@armazem.pt")

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "manuel@armazem.pt",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
	assert.Equal(t, registado.ID, out.User.ID)

	// O token deve conter o ID e o email do utilizador.
	userID, email, err := pkgjwt.Parse(cfgTeste.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registado.ID, userID)
	assert.Equal(t, "manuel@armazem.pt", email)
}

func TestLogin_PasswordErrada(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), cfgTeste)
	registar(t, uc, "manuel@armazem.pt")

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "manuel@armazem.pt",
		Password: "errada",
	})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

// Email desconhecido devolve o mesmo erro da password errada, para não
// revelar quais os emails registados.
func TestLogin_EmailDesconhecido(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), cfgTeste)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ninguem@armazem.pt",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestMe(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUsers(), cfgTeste)
	registado := registar(t, uc, "manuel@armazem.pt")

	u, err := uc.Me(context.Background(), registado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Manuel Firmino", u.Nome)

	_, err = uc.Me(context.Background(), "id-inexistente")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
