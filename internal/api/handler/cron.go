package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/igdnd/sales-dashboard-api/internal/scheduler"
	"github.com/igdnd/sales-dashboard-api/pkg/apiErrors"
	"github.com/igdnd/sales-dashboard-api/pkg/middleware"
)

// CronJobType define o tipo de rotina agendada
const (
	CronJobTypeLowStock = "low-stock"
)

// CronJobServices agrupa as rotinas agendadas que podem ser disparadas à mão
type CronJobServices struct {
	LowStockCheckService *scheduler.LowStockCheckService
}

// RunCronJob dispara manualmente uma rotina agendada específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar rotinas agendadas", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeLowStock:
			if services.LowStockCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Verificação de estoque baixo não disponível", nil)
				return
			}
			services.LowStockCheckService.RunNow()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de rotina inválido. Valores aceitos: low-stock", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron: rotina disparada manualmente")

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Rotina iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o estado das rotinas agendadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar rotinas agendadas", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"low-stock": services.LowStockCheckService.Status(),
		})
	}
}
