package restocking

import (
	"testing"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Restock(t *testing.T) {
	tests := []struct {
		name     string
		partID   int64
		quantity int64
		setup    func(partRepo *mocks.MockPartRepository)
		validate func(t *testing.T, part *domain.Part, err error)
	}{
		{
			name:     "quantidade zero é rejeitada",
			partID:   1,
			quantity: 0,
			setup:    func(partRepo *mocks.MockPartRepository) {},
			validate: func(t *testing.T, part *domain.Part, err error) {
				assert.ErrorIs(t, err, ErrInvalidQuantity)
				assert.Nil(t, part)
			},
		},
		{
			name:     "quantidade negativa é rejeitada",
			partID:   1,
			quantity: -5,
			setup:    func(partRepo *mocks.MockPartRepository) {},
			validate: func(t *testing.T, part *domain.Part, err error) {
				assert.ErrorIs(t, err, ErrInvalidQuantity)
				assert.Nil(t, part)
			},
		},
		{
			name:     "peça inexistente",
			partID:   99,
			quantity: 10,
			setup: func(partRepo *mocks.MockPartRepository) {
				partRepo.EXPECT().GetPartByID(int64(99)).Return(nil, nil)
			},
			validate: func(t *testing.T, part *domain.Part, err error) {
				assert.ErrorIs(t, err, ErrPartNotFound)
				assert.Nil(t, part)
			},
		},
		{
			name:     "entrada soma ao saldo atual",
			partID:   1,
			quantity: 30,
			setup: func(partRepo *mocks.MockPartRepository) {
				partRepo.EXPECT().GetPartByID(int64(1)).Return(&domain.Part{
					ID:           1,
					Name:         "Parafuso M4",
					CurrentStock: 12,
					SafetyStock:  20,
				}, nil)
				partRepo.EXPECT().UpdateStock(int64(1), int64(42)).Return(nil)
			},
			validate: func(t *testing.T, part *domain.Part, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), part.CurrentStock)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			partRepo := mocks.NewMockPartRepository(ctrl)
			tt.setup(partRepo)

			service := NewService(partRepo)
			part, err := service.Restock(tt.partID, tt.quantity)
			tt.validate(t, part, err)
		})
	}
}

func TestService_ListParts(t *testing.T) {
	ctrl := gomock.NewController(t)
	partRepo := mocks.NewMockPartRepository(ctrl)

	partRepo.EXPECT().ListParts().Return([]*domain.Part{
		{ID: 1, Name: "Parafuso M4", CurrentStock: 12, SafetyStock: 20},
		{ID: 2, Name: "Chapa de aço", CurrentStock: 20, SafetyStock: 20},
		{ID: 3, Name: "Tinta preta", CurrentStock: 50, SafetyStock: 10},
	}, nil)

	service := NewService(partRepo)
	statuses, err := service.ListParts()

	assert.NoError(t, err)
	assert.Len(t, statuses, 3)
	assert.True(t, statuses[0].IsLowStock)
	// Saldo igual ao estoque de segurança também dispara o indicador
	assert.True(t, statuses[1].IsLowStock)
	assert.False(t, statuses[2].IsLowStock)
}
