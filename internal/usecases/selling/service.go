package selling

import (
	"errors"
	"fmt"
	"time"

	"github.com/igdnd/sales-dashboard-api/infrastructure/repository"
	"github.com/igdnd/sales-dashboard-api/internal/domain"
	"github.com/igdnd/sales-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	// ErrChannelRequired indica lançamento sem canal de venda selecionado
	ErrChannelRequired = errors.New("canal de venda não selecionado")
	// ErrInvalidDate indica data de lançamento fora do formato YYYY-MM-DD
	ErrInvalidDate = errors.New("data de lançamento inválida")
)

// Seller grava lançamentos diários e projeta os totais antes da gravação
type Seller interface {
	PreviewEntry(input *EntryInput) (*EntryProjection, error)
	SubmitEntry(input *EntryInput) (int, error)
}

type Service struct {
	productRepo repository.ProductRepository
	priceRepo   repository.PriceRepository
	bomRepo     repository.BomRepository
	metricRepo  repository.DailyMetricRepository
}

func NewService(
	productRepo repository.ProductRepository,
	priceRepo repository.PriceRepository,
	bomRepo repository.BomRepository,
	metricRepo repository.DailyMetricRepository,
) Seller {
	return &Service{
		productRepo: productRepo,
		priceRepo:   priceRepo,
		bomRepo:     bomRepo,
		metricRepo:  metricRepo,
	}
}

// PreviewEntry recalcula os subtotais por produto e os totais gerais do
// formulário sem gravar nada.
func (s *Service) PreviewEntry(input *EntryInput) (*EntryProjection, error) {
	products, options, prices, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	return ComputeProjection(input, products, options, prices), nil
}

// SubmitEntry expande o formulário em registros de daily_metrics e grava o
// lote: uma linha de AD boost do canal, uma linha de anúncio por produto com
// gasto e uma linha de venda por opção com quantidade. Opções sem atividade
// não geram registro. Retorna quantos registros foram gravados.
func (s *Service) SubmitEntry(input *EntryInput) (int, error) {
	if input.ChannelID == 0 {
		return 0, ErrChannelRequired
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil || date.IsZero() {
		return 0, ErrInvalidDate
	}

	products, options, prices, err := s.loadCatalog()
	if err != nil {
		return 0, err
	}

	metrics, err := s.expandEntry(input, *date, products, options, prices)
	if err != nil {
		return 0, err
	}

	if len(metrics) == 0 {
		return 0, nil
	}

	if err := s.metricRepo.InsertBatch(metrics); err != nil {
		return 0, fmt.Errorf("erro ao gravar lançamento diário: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"date":       input.Date,
		"channel_id": input.ChannelID,
		"records":    len(metrics),
	}).Info("sales-entry: lançamento diário gravado")

	return len(metrics), nil
}

func (s *Service) expandEntry(
	input *EntryInput,
	date time.Time,
	products []*domain.Product,
	options []*domain.ProductOption,
	prices domain.PriceMap,
) ([]*domain.DailyMetric, error) {
	metrics := make([]*domain.DailyMetric, 0)

	// AD boost do canal: gasto de anúncio sem produto nem opção
	if input.ChannelAdBoost > 0 {
		metrics = append(metrics, &domain.DailyMetric{
			Date:      date,
			ChannelID: input.ChannelID,
			AdSpend:   input.ChannelAdBoost,
		})
	}

	optionsByProduct := make(map[int64][]*domain.ProductOption, len(products))
	for _, option := range options {
		optionsByProduct[option.ProductID] = append(optionsByProduct[option.ProductID], option)
	}

	for _, product := range products {
		productID := product.ID

		if adSpend := input.ProductAds[productID]; adSpend > 0 {
			metrics = append(metrics, &domain.DailyMetric{
				Date:      date,
				ChannelID: input.ChannelID,
				ProductID: &productID,
				AdSpend:   adSpend,
			})
		}

		for _, option := range optionsByProduct[productID] {
			count := input.SalesCounts[option.ID]
			if count <= 0 {
				continue
			}

			// Retrato do custo unitário no momento do lançamento
			bomItems, err := s.bomRepo.ListByOptionID(option.ID)
			if err != nil {
				return nil, fmt.Errorf("erro ao consultar BOM da opção %d: %w", option.ID, err)
			}
			unitCost := UnitCostFromBom(bomItems)

			optionID := option.ID
			unitPrice := prices.Lookup(input.ChannelID, option.ID)

			metrics = append(metrics, &domain.DailyMetric{
				Date:           date,
				ChannelID:      input.ChannelID,
				ProductID:      &productID,
				OptionID:       &optionID,
				SalesCount:     count,
				UnitPrice:      unitPrice,
				TotalCostPrice: unitCost,
				Revenue:        unitPrice * count,
			})
		}
	}

	return metrics, nil
}

func (s *Service) loadCatalog() ([]*domain.Product, []*domain.ProductOption, domain.PriceMap, error) {
	products, err := s.productRepo.ListProducts()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}

	options, err := s.productRepo.ListOptions()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao listar opções: %w", err)
	}

	prices, err := s.priceRepo.ListPrices()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao listar preços: %w", err)
	}

	return products, options, domain.NewPriceMap(prices), nil
}
