// Package auth contém os casos de uso de autenticação: registo, login e
// consulta do utilizador autenticado.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jfirmino/armazem-api/internal/application/dto"
	"github.com/jfirmino/armazem-api/internal/domain"
	"github.com/jfirmino/armazem-api/internal/domain/entity"
	"github.com/jfirmino/armazem-api/internal/domain/repository"
	"github.com/jfirmino/armazem-api/pkg/jwt"
)

// JWTConfig parâmetros de emissão de tokens.
type JWTConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// AuthUseCase casos de uso de autenticação.
type AuthUseCase struct {
	repo repository.UserRepository
	cfg  JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(repo repository.UserRepository, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{repo: repo, cfg: cfg}
}

// Register cria um utilizador novo. Email já registado devolve
// ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := normalizarEmail(in.Email)
	existente, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &entity.User{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Email:        email,
		PasswordHash: string(hash),
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Login valida as credenciais e emite um token de acesso. Email desconhecido
// e password errada devolvem o mesmo ErrCredenciaisInvalidas, para não expor
// quais os emails registados.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.repo.GetByEmail(normalizarEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciaisInvalidas
	}

	token, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Email, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		User:        toUserResponse(u),
	}, nil
}

// Me devolve os dados do utilizador autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(u)
	return &resp, nil
}

func normalizarEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
	}
}
