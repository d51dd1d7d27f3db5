package selling

import (
	"testing"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type sellingMocks struct {
	productRepo *mocks.MockProductRepository
	priceRepo   *mocks.MockPriceRepository
	bomRepo     *mocks.MockBomRepository
	metricRepo  *mocks.MockDailyMetricRepository
}

func newSellingService(t *testing.T) (Seller, *sellingMocks) {
	ctrl := gomock.NewController(t)

	m := &sellingMocks{
		productRepo: mocks.NewMockProductRepository(ctrl),
		priceRepo:   mocks.NewMockPriceRepository(ctrl),
		bomRepo:     mocks.NewMockBomRepository(ctrl),
		metricRepo:  mocks.NewMockDailyMetricRepository(ctrl),
	}

	service := NewService(m.productRepo, m.priceRepo, m.bomRepo, m.metricRepo)

	return service, m
}

func (m *sellingMocks) expectCatalog(prices []*domain.ChannelOptionPrice) {
	products, options := catalogFixture()
	m.productRepo.EXPECT().ListProducts().Return(products, nil)
	m.productRepo.EXPECT().ListOptions().Return(options, nil)
	m.priceRepo.EXPECT().ListPrices().Return(prices, nil)
}

func TestService_SubmitEntry(t *testing.T) {
	prices := []*domain.ChannelOptionPrice{
		{ChannelID: 5, OptionID: 11, Price: 10000},
		{ChannelID: 5, OptionID: 12, Price: 12000},
	}

	tests := []struct {
		name     string
		input    *EntryInput
		setup    func(m *sellingMocks)
		validate func(t *testing.T, inserted int, err error, metrics []*domain.DailyMetric)
	}{
		{
			name:  "sem canal selecionado",
			input: &EntryInput{Date: "2025-03-10"},
			setup: func(m *sellingMocks) {},
			validate: func(t *testing.T, inserted int, err error, _ []*domain.DailyMetric) {
				assert.ErrorIs(t, err, ErrChannelRequired)
				assert.Zero(t, inserted)
			},
		},
		{
			name:  "data fora do formato",
			input: &EntryInput{Date: "10/03/2025", ChannelID: 5},
			setup: func(m *sellingMocks) {},
			validate: func(t *testing.T, inserted int, err error, _ []*domain.DailyMetric) {
				assert.ErrorIs(t, err, ErrInvalidDate)
				assert.Zero(t, inserted)
			},
		},
		{
			name:  "data em branco",
			input: &EntryInput{ChannelID: 5},
			setup: func(m *sellingMocks) {},
			validate: func(t *testing.T, inserted int, err error, _ []*domain.DailyMetric) {
				assert.ErrorIs(t, err, ErrInvalidDate)
				assert.Zero(t, inserted)
			},
		},
		{
			name: "formulário sem atividade não grava nada",
			input: &EntryInput{
				Date:      "2025-03-10",
				ChannelID: 5,
			},
			setup: func(m *sellingMocks) {
				m.expectCatalog(prices)
			},
			validate: func(t *testing.T, inserted int, err error, metrics []*domain.DailyMetric) {
				assert.NoError(t, err)
				assert.Zero(t, inserted)
				assert.Nil(t, metrics)
			},
		},
		{
			name: "expansão completa do formulário",
			input: &EntryInput{
				Date:           "2025-03-10",
				ChannelID:      5,
				ChannelAdBoost: 500,
				ProductAds:     map[int64]int64{1: 300},
				SalesCounts:    map[int64]int64{11: 2},
			},
			setup: func(m *sellingMocks) {
				m.expectCatalog(prices)
				m.bomRepo.EXPECT().ListByOptionID(int64(11)).Return([]*domain.BomItem{
					{PartID: 1, Quantity: 1, PartUnitPrice: 150},
				}, nil)
			},
			validate: func(t *testing.T, inserted int, err error, metrics []*domain.DailyMetric) {
				assert.NoError(t, err)
				assert.Equal(t, 3, inserted)
				assert.Len(t, metrics, 3)

				boost := metrics[0]
				assert.Nil(t, boost.ProductID)
				assert.Nil(t, boost.OptionID)
				assert.Equal(t, int64(500), boost.AdSpend)

				productAd := metrics[1]
				assert.Equal(t, int64(1), *productAd.ProductID)
				assert.Nil(t, productAd.OptionID)
				assert.Equal(t, int64(300), productAd.AdSpend)

				sale := metrics[2]
				assert.Equal(t, int64(11), *sale.OptionID)
				assert.Equal(t, int64(2), sale.SalesCount)
				assert.Equal(t, int64(10000), sale.UnitPrice)
				assert.Equal(t, int64(150), sale.TotalCostPrice)
				assert.Equal(t, int64(20000), sale.Revenue)
				assert.Equal(t, "2025-03-10", sale.Date.Format("2006-01-02"))
			},
		},
		{
			name: "opção sem preço grava venda com receita zero",
			input: &EntryInput{
				Date:        "2025-03-10",
				ChannelID:   5,
				SalesCounts: map[int64]int64{21: 4},
			},
			setup: func(m *sellingMocks) {
				m.expectCatalog(prices)
				m.bomRepo.EXPECT().ListByOptionID(int64(21)).Return(nil, nil)
			},
			validate: func(t *testing.T, inserted int, err error, metrics []*domain.DailyMetric) {
				assert.NoError(t, err)
				assert.Equal(t, 1, inserted)

				sale := metrics[0]
				assert.Equal(t, int64(4), sale.SalesCount)
				assert.Equal(t, int64(0), sale.UnitPrice)
				assert.Equal(t, int64(0), sale.Revenue)
				assert.Equal(t, int64(0), sale.TotalCostPrice)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newSellingService(t)
			tt.setup(m)

			var captured []*domain.DailyMetric
			m.metricRepo.EXPECT().
				InsertBatch(gomock.Any()).
				DoAndReturn(func(metrics []*domain.DailyMetric) error {
					captured = metrics
					return nil
				}).
				AnyTimes()

			inserted, err := service.SubmitEntry(tt.input)
			tt.validate(t, inserted, err, captured)
		})
	}
}

func TestService_PreviewEntry(t *testing.T) {
	service, m := newSellingService(t)
	m.expectCatalog([]*domain.ChannelOptionPrice{
		{ChannelID: 5, OptionID: 11, Price: 10000},
	})

	projection, err := service.PreviewEntry(&EntryInput{
		ChannelID:   5,
		SalesCounts: map[int64]int64{11: 3},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), projection.GrandTotalQty)
	assert.Equal(t, int64(30000), projection.GrandTotalRevenue)
}
