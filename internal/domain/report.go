package domain

// PeriodTotals acumula os quatro números do painel para um período
// (mês atual, mês anterior ou o último dia lançado).
type PeriodTotals struct {
	Revenue int64 `json:"revenue"`
	AdSpend int64 `json:"ad_spend"`
	Cost    int64 `json:"cost"`
	Profit  int64 `json:"profit"`
}

// Accumulate soma a contribuição de uma métrica diária. O lucro é derivado
// depois, via DeriveProfit, nunca acumulado linha a linha.
func (t *PeriodTotals) Accumulate(m *DailyMetric) {
	t.Revenue += m.Revenue
	t.AdSpend += m.AdSpend
	t.Cost += m.CostContribution()
}

// DeriveProfit fecha o período: lucro = receita - anúncios - custo.
func (t *PeriodTotals) DeriveProfit() {
	t.Profit = t.Revenue - t.AdSpend - t.Cost
}

// ChannelPerformance é o desempenho de um canal no último dia lançado.
// ROAS é percentual inteiro arredondado; gasto zero resulta em ROAS zero.
type ChannelPerformance struct {
	ChannelName string `json:"channel_name"`
	Revenue     int64  `json:"revenue"`
	AdSpend     int64  `json:"ad_spend"`
	Cost        int64  `json:"cost"`
	Profit      int64  `json:"profit"`
	Roas        int64  `json:"roas"`
}

// DashboardReport é a resposta completa do painel executivo.
type DashboardReport struct {
	ThisMonth  PeriodTotals          `json:"this_month"`
	LastMonth  PeriodTotals          `json:"last_month"`
	LatestDate string                `json:"latest_date,omitempty"`
	LatestDay  PeriodTotals          `json:"latest_day"`
	ByChannel  []*ChannelPerformance `json:"by_channel"`
}
