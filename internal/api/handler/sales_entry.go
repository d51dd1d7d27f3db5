package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/internal/usecases/selling"
	"github.com/igdnd/sales-dashboard-api/pkg/apiErrors"
)

type SubmitEntryResponse struct {
	Records int `json:"records"`
}

// PreviewSalesEntry recalcula os subtotais do formulário sem gravar nada
func PreviewSalesEntry(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input selling.EntryInput
		if !decodeBody(w, r, &input) {
			return
		}

		projection, err := service.PreviewEntry(&input)
		if err != nil {
			logrus.WithError(err).Error("Erro ao projetar lançamento")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar catálogo para projeção", nil)
			return
		}

		writeJSON(w, http.StatusOK, projection)
	}
}

// SubmitSalesEntry expande o formulário diário em registros de métricas e
// grava o lote.
func SubmitSalesEntry(service selling.Seller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input selling.EntryInput
		if !decodeBody(w, r, &input) {
			return
		}

		records, err := service.SubmitEntry(&input)
		if err != nil {
			handleSubmitError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, SubmitEntryResponse{Records: records})
	}
}

func handleSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, selling.ErrChannelRequired):
		apiErrors.WriteError(w, apiErrors.ErrChannelRequired, "Selecione o canal de venda", nil)

	case errors.Is(err, selling.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data de lançamento inválida, use YYYY-MM-DD", nil)

	default:
		logrus.WithError(err).Error("Erro ao gravar lançamento diário")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar lançamento diário", nil)
	}
}
