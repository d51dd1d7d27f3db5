package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/internal/usecases/restocking"
	"github.com/igdnd/sales-dashboard-api/pkg/apiErrors"
)

type RestockRequest struct {
	Quantity int64 `json:"quantity"`
}

// ListParts retorna as peças com o indicador de estoque baixo
func ListParts(service restocking.Restocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts, err := service.ListParts()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar peças")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar peças", nil)
			return
		}

		writeJSON(w, http.StatusOK, parts)
	}
}

// RestockPart registra uma entrada de estoque para a peça da URL
func RestockPart(service restocking.Restocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		partID, err := strconv.ParseInt(partIDStr, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID da peça inválido", nil)
			return
		}

		var req RestockRequest
		if !decodeBody(w, r, &req) {
			return
		}

		part, err := service.Restock(partID, req.Quantity)
		if err != nil {
			handleRestockError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, part)
	}
}

func handleRestockError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, restocking.ErrInvalidQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidQuantity, "Quantidade de entrada deve ser positiva", nil)

	case errors.Is(err, restocking.ErrPartNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPartNotFound, "Peça não encontrada", nil)

	default:
		logrus.WithError(err).Error("Erro ao registrar entrada de estoque")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar entrada de estoque", nil)
	}
}
