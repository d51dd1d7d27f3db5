package selling

import (
	"testing"

	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func catalogFixture() ([]*domain.Product, []*domain.ProductOption) {
	products := []*domain.Product{
		{ID: 1, Name: "Suporte de monitor"},
		{ID: 2, Name: "Organizador de mesa"},
	}
	options := []*domain.ProductOption{
		{ID: 11, ProductID: 1, Name: "Branco"},
		{ID: 12, ProductID: 1, Name: "Preto"},
		{ID: 21, ProductID: 2, Name: "Único"},
	}
	return products, options
}

func TestComputeProjection(t *testing.T) {
	products, options := catalogFixture()

	prices := domain.NewPriceMap([]*domain.ChannelOptionPrice{
		{ChannelID: 5, OptionID: 11, Price: 10000},
		{ChannelID: 5, OptionID: 12, Price: 12000},
		// opção 21 sem preço cadastrado no canal 5
		{ChannelID: 9, OptionID: 11, Price: 99999}, // outro canal, não deve entrar
	})

	input := &EntryInput{
		ChannelID: 5,
		SalesCounts: map[int64]int64{
			11: 3,
			12: 1,
			21: 2,
		},
	}

	projection := ComputeProjection(input, products, options, prices)

	assert.Len(t, projection.Products, 2)

	suporte := projection.Products[0]
	assert.Equal(t, int64(4), suporte.TotalQty)
	assert.Equal(t, int64(42000), suporte.TotalAmount) // 3*10000 + 1*12000

	// Preço ausente contribui com zero, nunca com erro
	organizador := projection.Products[1]
	assert.Equal(t, int64(2), organizador.TotalQty)
	assert.Equal(t, int64(0), organizador.TotalAmount)

	assert.Equal(t, int64(6), projection.GrandTotalQty)
	assert.Equal(t, int64(42000), projection.GrandTotalRevenue)
}

func TestComputeProjection_FormularioVazio(t *testing.T) {
	products, options := catalogFixture()

	projection := ComputeProjection(&EntryInput{ChannelID: 5}, products, options, domain.PriceMap{})

	assert.Equal(t, int64(0), projection.GrandTotalQty)
	assert.Equal(t, int64(0), projection.GrandTotalRevenue)
	for _, subtotal := range projection.Products {
		assert.Equal(t, int64(0), subtotal.TotalQty)
		assert.Equal(t, int64(0), subtotal.TotalAmount)
	}
}

func TestUnitCostFromBom(t *testing.T) {
	items := []*domain.BomItem{
		{PartID: 1, Quantity: 2, PartUnitPrice: 500},
		{PartID: 2, Quantity: 1, PartUnitPrice: 1200},
	}

	assert.Equal(t, int64(2200), UnitCostFromBom(items))
	assert.Equal(t, int64(0), UnitCostFromBom(nil))
}
