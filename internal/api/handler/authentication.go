package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/igdnd/sales-dashboard-api/pkg/apiErrors"
	"github.com/igdnd/sales-dashboard-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// CreateUser registra um novo usuário do painel
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user domain.User
		if !decodeBody(w, r, &user) {
			return
		}

		created, err := service.CreateUser(&user)
		if err != nil {
			switch {
			case errors.Is(err, authenticating.ErrMissingData):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)

			case errors.Is(err, authenticating.ErrUserAlreadyExists):
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Já existe usuário com este email", nil)

			default:
				logrus.WithError(err).Error("Erro ao criar usuário")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar usuário", nil)
			}
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// GetMe retorna o perfil do usuário autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter dados do usuário")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do usuário", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// GeneratePassword gera uma senha provisória para o usuário alvo.
// Restrito a administradores pela rota.
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		targetUserID, err := strconv.Atoi(targetUserIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID do usuário inválido", nil)
			return
		}

		password, err := service.GenerateProvisionalPassword(targetUserID)
		if err != nil {
			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao gerar senha provisória")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar senha provisória", nil)
			return
		}

		writeJSON(w, http.StatusOK, GeneratePasswordResponse{
			Password: password,
		})
	}
}

// handleLoginError mapeia as falhas de login para os códigos da API
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), map[string]any{
			"user_id": authErr.UserID,
		})
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
