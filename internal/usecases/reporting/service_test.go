package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_GetDashboardReport(t *testing.T) {
	now := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		setup    func(metricRepo *mocks.MockDailyMetricRepository)
		validate func(t *testing.T, report *domain.DashboardReport, err error)
	}{
		{
			name: "falha do banco é propagada",
			setup: func(metricRepo *mocks.MockDailyMetricRepository) {
				metricRepo.EXPECT().ListWithChannel().Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, report *domain.DashboardReport, err error) {
				assert.Error(t, err)
				assert.Nil(t, report)
			},
		},
		{
			name: "sem registros o relatório sai zerado",
			setup: func(metricRepo *mocks.MockDailyMetricRepository) {
				metricRepo.EXPECT().ListWithChannel().Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.DashboardReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), report.ThisMonth.Revenue)
				assert.Empty(t, report.ByChannel)
			},
		},
		{
			name: "registros do mês corrente são agregados",
			setup: func(metricRepo *mocks.MockDailyMetricRepository) {
				metricRepo.EXPECT().ListWithChannel().Return([]*domain.DailyMetric{
					{
						Date:        time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local),
						ChannelID:   1,
						ChannelName: "Loja própria",
						SalesCount:  2,
						Revenue:     20000,
						AdSpend:     1000,
					},
				}, nil)
			},
			validate: func(t *testing.T, report *domain.DashboardReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(20000), report.ThisMonth.Revenue)
				assert.Equal(t, "2025-03-14", report.LatestDate)
				assert.Len(t, report.ByChannel, 1)
				assert.Equal(t, "Loja própria", report.ByChannel[0].ChannelName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			metricRepo := mocks.NewMockDailyMetricRepository(ctrl)
			tt.setup(metricRepo)

			service := &Service{
				metricRepo: metricRepo,
				now:        func() time.Time { return now },
			}

			report, err := service.GetDashboardReport()
			tt.validate(t, report, err)
		})
	}
}
