package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/internal/usecases/reporting"
	"github.com/igdnd/sales-dashboard-api/pkg/apiErrors"
)

// GetDashboardReport monta o relatório do painel: totais do mês corrente e do
// anterior, o último dia com lançamento e o detalhamento por canal.
func GetDashboardReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GetDashboardReport()
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar relatório do painel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas diárias", nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
