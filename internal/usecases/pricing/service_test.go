package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_BulkUpsertPrices(t *testing.T) {
	validPrices := []*domain.ChannelOptionPrice{
		{ChannelID: 1, OptionID: 11, Price: 10000},
		{ChannelID: 2, OptionID: 11, Price: 10500},
	}

	tests := []struct {
		name     string
		prices   []*domain.ChannelOptionPrice
		setup    func(priceRepo *mocks.MockPriceRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name:   "lote vazio é rejeitado",
			prices: nil,
			setup:  func(priceRepo *mocks.MockPriceRepository) {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyPriceList)
			},
		},
		{
			name: "preço sem opção é rejeitado antes de gravar",
			prices: []*domain.ChannelOptionPrice{
				{ChannelID: 1, OptionID: 0, Price: 10000},
			},
			setup: func(priceRepo *mocks.MockPriceRepository) {},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:   "lote válido é gravado",
			prices: validPrices,
			setup: func(priceRepo *mocks.MockPriceRepository) {
				priceRepo.EXPECT().UpsertPrices(gomock.Any(), validPrices).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "falha do banco é propagada",
			prices: validPrices,
			setup: func(priceRepo *mocks.MockPriceRepository) {
				priceRepo.EXPECT().
					UpsertPrices(gomock.Any(), validPrices).
					Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "erro ao gravar preços em lote")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			priceRepo := mocks.NewMockPriceRepository(ctrl)
			tt.setup(priceRepo)

			service := NewService(priceRepo)
			tt.validate(t, service.BulkUpsertPrices(context.Background(), tt.prices))
		})
	}
}
