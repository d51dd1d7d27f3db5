package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/internal/usecases/cataloging"
	"github.com/igdnd/sales-dashboard-api/pkg/apiErrors"
)

// GetCatalog retorna canais, produtos e opções para as telas de lançamento
func GetCatalog(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := service.GetCatalog()
		if err != nil {
			logrus.WithError(err).Error("Erro ao carregar catálogo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar catálogo", nil)
			return
		}

		writeJSON(w, http.StatusOK, catalog)
	}
}
