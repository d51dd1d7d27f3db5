package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/pricing"
	"github.com/igdnd/sales-dashboard-api/pkg/apiErrors"
)

type UpsertPricesRequest struct {
	Prices []*domain.ChannelOptionPrice `json:"prices"`
}

// ListPrices retorna a grade de preços completa por canal e opção
func ListPrices(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, err := service.ListPrices()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar preços")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar preços", nil)
			return
		}

		writeJSON(w, http.StatusOK, prices)
	}
}

// UpsertPrices grava a grade de preços inteira em uma transação
func UpsertPrices(service pricing.Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpsertPricesRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.BulkUpsertPrices(r.Context(), req.Prices); err != nil {
			if errors.Is(err, pricing.ErrEmptyPriceList) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum preço informado", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao gravar grade de preços")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar grade de preços", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Grade de preços gravada com sucesso",
			"prices":  len(req.Prices),
		})
	}
}
