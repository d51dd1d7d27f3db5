package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// ErrEmptyPriceList indica gravação em lote sem nenhuma linha de preço
var ErrEmptyPriceList = errors.New("nenhum preço informado")

// Pricer gerencia a tabela de preços por canal e opção
type Pricer interface {
	ListPrices() ([]*domain.ChannelOptionPrice, error)
	BulkUpsertPrices(ctx context.Context, prices []*domain.ChannelOptionPrice) error
}

type Service struct {
	priceRepo repository.PriceRepository
}

func NewService(priceRepo repository.PriceRepository) Pricer {
	return &Service{
		priceRepo: priceRepo,
	}
}

func (s *Service) ListPrices() ([]*domain.ChannelOptionPrice, error) {
	return s.priceRepo.ListPrices()
}

// BulkUpsertPrices grava a grade de preços inteira de uma vez. Pares
// (canal, opção) já cadastrados têm o preço substituído; a última gravação
// vence, sem verificação de concorrência.
func (s *Service) BulkUpsertPrices(ctx context.Context, prices []*domain.ChannelOptionPrice) error {
	if len(prices) == 0 {
		return ErrEmptyPriceList
	}

	for _, price := range prices {
		if price.ChannelID == 0 || price.OptionID == 0 {
			return fmt.Errorf("preço sem canal ou opção: channel_id=%d option_id=%d", price.ChannelID, price.OptionID)
		}
	}

	if err := s.priceRepo.UpsertPrices(ctx, prices); err != nil {
		return fmt.Errorf("erro ao gravar preços em lote: %w", err)
	}

	logrus.WithField("prices", len(prices)).Info("prices: grade de preços gravada")

	return nil
}
