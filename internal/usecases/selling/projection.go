package selling

import (
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

// EntryInput é o formulário de lançamento diário de um canal: quantidades
// vendidas por opção, gasto de anúncio por produto e o AD boost do canal.
// Quantidade ou preço ausente contribui com zero, nunca com erro.
type EntryInput struct {
	Date           string          `json:"date"`
	ChannelID      int64           `json:"channel_id"`
	ChannelAdBoost int64           `json:"channel_ad_boost"`
	ProductAds     map[int64]int64 `json:"product_ad_spends"` // por produto
	SalesCounts    map[int64]int64 `json:"sales_counts"`      // por opção
}

// ProductSubtotal é o subtotal projetado de um produto antes da gravação.
type ProductSubtotal struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	TotalQty    int64  `json:"total_qty"`
	TotalAmount int64  `json:"total_amount"`
}

// EntryProjection é o resumo recalculado a cada alteração do formulário.
type EntryProjection struct {
	Products          []*ProductSubtotal `json:"products"`
	GrandTotalQty     int64              `json:"grand_total_qty"`
	GrandTotalRevenue int64              `json:"grand_total_revenue"`
}

// ComputeProjection projeta os totais do formulário contra o mapa de preços
// vigente do canal selecionado. Pura: nenhum estado intermediário é persistido.
func ComputeProjection(
	input *EntryInput,
	products []*domain.Product,
	options []*domain.ProductOption,
	prices domain.PriceMap,
) *EntryProjection {
	projection := &EntryProjection{
		Products: make([]*ProductSubtotal, 0, len(products)),
	}

	optionsByProduct := make(map[int64][]*domain.ProductOption, len(products))
	for _, option := range options {
		optionsByProduct[option.ProductID] = append(optionsByProduct[option.ProductID], option)
	}

	for _, product := range products {
		subtotal := &ProductSubtotal{
			ProductID:   product.ID,
			ProductName: product.Name,
		}

		for _, option := range optionsByProduct[product.ID] {
			qty := input.SalesCounts[option.ID]
			price := prices.Lookup(input.ChannelID, option.ID)

			subtotal.TotalQty += qty
			subtotal.TotalAmount += qty * price
		}

		projection.Products = append(projection.Products, subtotal)
		projection.GrandTotalQty += subtotal.TotalQty
		projection.GrandTotalRevenue += subtotal.TotalAmount
	}

	return projection
}

// UnitCostFromBom calcula o custo unitário de fabricação de uma opção a
// partir da lista de materiais com os preços vigentes das peças.
func UnitCostFromBom(items []*domain.BomItem) int64 {
	var cost int64
	for _, item := range items {
		cost += item.Quantity * item.PartUnitPrice
	}
	return cost
}
