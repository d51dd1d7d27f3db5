package cataloging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

func TestService_GetCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	channelRepo := mocks.NewMockChannelRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	channelRepo.EXPECT().ListChannels().Return([]*domain.Channel{
		{ID: 1, Name: "Loja própria"},
	}, nil)
	productRepo.EXPECT().ListProducts().Return([]*domain.Product{
		{ID: 1, Name: "Suporte de monitor"},
	}, nil)
	productRepo.EXPECT().ListOptions().Return([]*domain.ProductOption{
		{ID: 11, ProductID: 1, Name: "Branco"},
	}, nil)

	service := NewService(channelRepo, productRepo)

	catalog, err := service.GetCatalog()
	assert.NoError(t, err)
	assert.Len(t, catalog.Channels, 1)
	assert.Len(t, catalog.Products, 1)
	assert.Len(t, catalog.Options, 1)
}

func TestService_GetCatalog_FalhaDoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	channelRepo := mocks.NewMockChannelRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	channelRepo.EXPECT().ListChannels().Return(nil, errors.New("connection refused"))

	service := NewService(channelRepo, productRepo)

	catalog, err := service.GetCatalog()
	assert.ErrorContains(t, err, "erro ao listar canais")
	assert.Nil(t, catalog)
}
