package reporting

import (
	"time"

	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/igdnd/sales-dashboard-api/pkg/utils"
)

// ComputeDashboardReport agrega as métricas diárias no relatório do painel
// executivo: totais do mês atual e do mês anterior, totais do último dia
// lançado e o detalhamento por canal desse dia.
//
// A função é pura e determinística: não faz I/O, não altera a entrada e nunca
// falha. Registros fora das duas janelas mensais são ignorados em silêncio.
// As datas são dias de calendário; a janela "mês atual" vem do ano/mês de now.
func ComputeDashboardReport(records []*domain.DailyMetric, now time.Time) *domain.DashboardReport {
	report := &domain.DashboardReport{
		ByChannel: make([]*domain.ChannelPerformance, 0),
	}

	thisYear, thisMonth := now.Year(), now.Month()
	lastYear, lastMonth := previousMonth(thisYear, thisMonth)

	for _, record := range records {
		year, month := record.Date.Year(), record.Date.Month()

		switch {
		case year == thisYear && month == thisMonth:
			report.ThisMonth.Accumulate(record)
		case year == lastYear && month == lastMonth:
			report.LastMonth.Accumulate(record)
		}
	}

	report.ThisMonth.DeriveProfit()
	report.LastMonth.DeriveProfit()

	latestDate, ok := latestRecordDate(records)
	if !ok {
		return report
	}
	report.LatestDate = latestDate.Format(time.DateOnly)

	// Detalhamento do último dia lançado, agrupado pelo nome do canal.
	// A ordem dos grupos segue a primeira aparição no conjunto de registros.
	groups := make(map[string]*domain.ChannelPerformance)
	for _, record := range records {
		if !sameCalendarDay(record.Date, latestDate) {
			continue
		}

		report.LatestDay.Accumulate(record)

		name := record.ChannelName
		if name == "" {
			name = domain.UnassignedChannel
		}

		group, exists := groups[name]
		if !exists {
			group = &domain.ChannelPerformance{ChannelName: name}
			groups[name] = group
			report.ByChannel = append(report.ByChannel, group)
		}

		group.Revenue += record.Revenue
		group.AdSpend += record.AdSpend
		group.Cost += record.CostContribution()
	}

	report.LatestDay.DeriveProfit()

	for _, group := range report.ByChannel {
		group.Profit = group.Revenue - group.AdSpend - group.Cost
		group.Roas = utils.RoundRatioAsPercent(group.Revenue, group.AdSpend)
	}

	return report
}

// previousMonth volta um mês de calendário, com virada de ano em janeiro.
func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func latestRecordDate(records []*domain.DailyMetric) (time.Time, bool) {
	if len(records) == 0 {
		return time.Time{}, false
	}

	latest := records[0].Date
	for _, record := range records[1:] {
		if record.Date.After(latest) {
			latest = record.Date
		}
	}

	return latest, true
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
