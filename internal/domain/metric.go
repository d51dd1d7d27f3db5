package domain

import "time"

// DailyMetric é uma linha da tabela daily_metrics: o desempenho de um dia
// para um par canal/produto/opção. Linhas com produto e opção nulos carregam
// apenas gasto de anúncio (AD boost de canal); linhas com opção nula carregam
// o gasto de anúncio de um produto. A tabela é insert-only: correções entram
// como novos registros.
type DailyMetric struct {
	ID             int64     `json:"id"`
	Date           time.Time `json:"date"`
	ChannelID      int64     `json:"channel_id"`
	ChannelName    string    `json:"channel_name,omitempty"`
	ProductID      *int64    `json:"product_id"`
	OptionID       *int64    `json:"option_id"`
	SalesCount     int64     `json:"sales_count"`
	UnitPrice      int64     `json:"unit_price"`
	TotalCostPrice int64     `json:"total_cost_price"`
	AdSpend        int64     `json:"ad_spend"`
	Revenue        int64     `json:"revenue"`
	CreatedAt      time.Time `json:"created_at"`
}

// CostContribution é o custo de fabricação da linha. O total_cost_price é um
// retrato do custo unitário no momento do lançamento, então o custo do dia é
// recalculado aqui em vez de confiado a um campo pré-somado.
func (m *DailyMetric) CostContribution() int64 {
	return m.TotalCostPrice * m.SalesCount
}
