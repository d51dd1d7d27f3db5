package cataloging

import (
	"fmt"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

// Cataloger expõe os dados de referência usados pelas telas de lançamento
type Cataloger interface {
	GetCatalog() (*domain.Catalog, error)
}

type Service struct {
	channelRepo repository.ChannelRepository
	productRepo repository.ProductRepository
}

func NewService(channelRepo repository.ChannelRepository, productRepo repository.ProductRepository) Cataloger {
	return &Service{
		channelRepo: channelRepo,
		productRepo: productRepo,
	}
}

// GetCatalog carrega canais, produtos e opções em uma única resposta.
func (s *Service) GetCatalog() (*domain.Catalog, error) {
	channels, err := s.channelRepo.ListChannels()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar canais: %w", err)
	}

	products, err := s.productRepo.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}

	options, err := s.productRepo.ListOptions()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar opções: %w", err)
	}

	return &domain.Catalog{
		Channels: channels,
		Products: products,
		Options:  options,
	}, nil
}
