package reporting

import (
	"time"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Reporter expõe o relatório do painel executivo
type Reporter interface {
	GetDashboardReport() (*domain.DashboardReport, error)
}

type Service struct {
	metricRepo repository.DailyMetricRepository
	now        func() time.Time
}

func NewService(metricRepo repository.DailyMetricRepository) Reporter {
	return &Service{
		metricRepo: metricRepo,
		now:        time.Now,
	}
}

// GetDashboardReport busca todas as métricas diárias e roda a agregação com a
// data corrente no fuso local do servidor.
func (s *Service) GetDashboardReport() (*domain.DashboardReport, error) {
	records, err := s.metricRepo.ListWithChannel()
	if err != nil {
		return nil, err
	}

	report := ComputeDashboardReport(records, s.now())

	logrus.WithFields(logrus.Fields{
		"records":     len(records),
		"latest_date": report.LatestDate,
		"channels":    len(report.ByChannel),
	}).Debug("dashboard: relatório agregado")

	return report, nil
}
