package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrUserNotFound         = errors.New("utilizador não encontrado")
	ErrEmailAlreadyExists   = errors.New("o email já está registado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrQuantidadeInvalida   = errors.New("quantidade inválida")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrForbidden            = errors.New("acesso negado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
)
