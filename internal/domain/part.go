package domain

import "time"

// Part é um item de estoque (componente/insumo). O estoque só aumenta por
// lançamentos de entrada nesta aplicação; baixas acontecem fora dela.
type Part struct {
	ID               int64     `json:"id"`
	Name             string    `json:"part_name"`
	CurrentStock     int64     `json:"current_stock"`
	SafetyStock      int64     `json:"safety_stock"`
	CurrentUnitPrice int64     `json:"current_unit_price"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LowStock indica se a peça está no limite de reposição.
func (p *Part) LowStock() bool {
	return p.CurrentStock <= p.SafetyStock
}

// BomItem é uma linha da lista de materiais: quantas unidades de uma peça
// entram na fabricação de uma unidade da opção.
type BomItem struct {
	OptionID int64 `json:"option_id"`
	PartID   int64 `json:"part_id"`
	Quantity int64 `json:"quantity"`

	// PartUnitPrice é carregado junto na consulta para o retrato de custo.
	PartUnitPrice int64 `json:"part_unit_price"`
}
