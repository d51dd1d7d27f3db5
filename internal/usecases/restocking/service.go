package restocking

import (
	"errors"
	"fmt"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidQuantity indica entrada de estoque com quantidade não positiva
	ErrInvalidQuantity = errors.New("quantidade de entrada deve ser positiva")
	// ErrPartNotFound indica peça inexistente
	ErrPartNotFound = errors.New("peça não encontrada")
)

// PartStatus é uma peça com o indicador de reposição derivado
type PartStatus struct {
	*domain.Part
	IsLowStock bool `json:"is_low_stock"`
}

// Restocker gerencia as entradas de estoque de peças
type Restocker interface {
	ListParts() ([]*PartStatus, error)
	Restock(partID int64, quantity int64) (*domain.Part, error)
}

type Service struct {
	partRepo repository.PartRepository
}

func NewService(partRepo repository.PartRepository) Restocker {
	return &Service{
		partRepo: partRepo,
	}
}

// ListParts retorna todas as peças com o indicador de estoque baixo
// (saldo atual menor ou igual ao estoque de segurança).
func (s *Service) ListParts() ([]*PartStatus, error) {
	parts, err := s.partRepo.ListParts()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar peças: %w", err)
	}

	statuses := make([]*PartStatus, 0, len(parts))
	for _, part := range parts {
		statuses = append(statuses, &PartStatus{
			Part:       part,
			IsLowStock: part.LowStock(),
		})
	}

	return statuses, nil
}

// Restock soma a quantidade recebida ao saldo atual da peça. O estoque nunca
// é decrementado por esta aplicação. Leitura e gravação não compartilham
// transação: a última escrita vence, limitação conhecida da ferramenta.
func (s *Service) Restock(partID int64, quantity int64) (*domain.Part, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	part, err := s.partRepo.GetPartByID(partID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar peça %d: %w", partID, err)
	}
	if part == nil {
		return nil, ErrPartNotFound
	}

	newStock := part.CurrentStock + quantity
	if err := s.partRepo.UpdateStock(partID, newStock); err != nil {
		return nil, fmt.Errorf("erro ao atualizar estoque da peça %d: %w", partID, err)
	}

	part.CurrentStock = newStock

	logrus.WithFields(logrus.Fields{
		"part_id":   partID,
		"part_name": part.Name,
		"added":     quantity,
		"new_stock": newStock,
	}).Info("inventory: entrada de estoque confirmada")

	return part, nil
}
