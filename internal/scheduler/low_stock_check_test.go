package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
)

func TestLowStockCheckService_checkLowStock(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(partRepo *mocks.MockPartRepository)
		validate func(t *testing.T, service *LowStockCheckService)
	}{
		{
			name: "contabiliza apenas as peças abaixo do estoque de segurança",
			setup: func(partRepo *mocks.MockPartRepository) {
				partRepo.EXPECT().ListParts().Return([]*domain.Part{
					{ID: 1, Name: "Parafuso M4", CurrentStock: 5, SafetyStock: 20},
					{ID: 2, Name: "Chapa de aço", CurrentStock: 20, SafetyStock: 20},
					{ID: 3, Name: "Tinta preta", CurrentStock: 80, SafetyStock: 10},
				}, nil)
			},
			validate: func(t *testing.T, service *LowStockCheckService) {
				status := service.Status()
				assert.Equal(t, 2, status["last_low_stock"])
				assert.Equal(t, false, status["running"])
			},
		},
		{
			name: "falha do banco não deixa a varredura travada",
			setup: func(partRepo *mocks.MockPartRepository) {
				partRepo.EXPECT().ListParts().Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, service *LowStockCheckService) {
				status := service.Status()
				assert.Equal(t, false, status["running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			partRepo := mocks.NewMockPartRepository(ctrl)
			tt.setup(partRepo)

			service := &LowStockCheckService{
				partRepo: partRepo,
				config: LowStockCheckConfig{
					CronSchedule: "0 7 * * *",
					Enabled:      true,
				},
			}

			service.checkLowStock()
			tt.validate(t, service)
		})
	}
}

func TestLowStockCheckService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	partRepo := mocks.NewMockPartRepository(ctrl)

	service := &LowStockCheckService{
		partRepo: partRepo,
		config: LowStockCheckConfig{
			CronSchedule: "0 7 * * *",
			Enabled:      false,
		},
	}

	status := service.Status()
	assert.Equal(t, "0 7 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, false, status["running"])
}
