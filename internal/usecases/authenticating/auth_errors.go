package authenticating

import (
	"errors"
)

// Erros de autenticação da aplicação
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrUserAlreadyExists  = errors.New("usuário já existe")
	ErrMissingData        = errors.New("dados obrigatórios ausentes")
)

// AuthError é um erro de autenticação com código de API e contexto de usuário
type AuthError struct {
	Err    error  // Erro base
	Code   string // Código de erro para a API
	UserID int    // ID do usuário envolvido (quando aplicável)
}

func (e *AuthError) Error() string {
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string) *AuthError {
	return &AuthError{
		Err:  baseErr,
		Code: code,
	}
}

func NewUserAuthError(baseErr error, code string, userID int) *AuthError {
	return &AuthError{
		Err:    baseErr,
		Code:   code,
		UserID: userID,
	}
}

// IsCredentialsError verifica se o erro está relacionado a credenciais
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled)
}
