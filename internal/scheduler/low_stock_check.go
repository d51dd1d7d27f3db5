package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/igdnd/sales-dashboard-api/infrastructure/repository"
	"github.com/igdnd/sales-dashboard-api/internal/config"
	"github.com/sirupsen/logrus"
)

// LowStockCheckConfig representa a configuração da varredura de estoque baixo
type LowStockCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// LowStockCheckService agenda a varredura diária das peças abaixo do estoque
// de segurança e registra um resumo de reposição no log.
type LowStockCheckService struct {
	scheduler           *gocron.Scheduler
	config              LowStockCheckConfig
	partRepo            repository.PartRepository
	checkRunning        bool
	checkMutex          sync.Mutex
	lastCheckStartedAt  time.Time
	lastCheckFinishedAt time.Time
	lastLowStockCount   int
}

// NewLowStockCheckService cria o serviço de varredura de estoque baixo
func NewLowStockCheckService(partRepo repository.PartRepository, appConfig *config.Config) *LowStockCheckService {
	checkConfig := LowStockCheckConfig{
		CronSchedule: appConfig.LowStockCheck.CronSchedule,
		Enabled:      appConfig.LowStockCheck.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração da varredura de estoque baixo carregada")

	return &LowStockCheckService{
		scheduler: scheduler,
		config:    checkConfig,
		partRepo:  partRepo,
	}
}

// Start inicia o agendador
func (s *LowStockCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de estoque baixo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de estoque baixo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.checkLowStock()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de estoque baixo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de estoque baixo")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara a varredura manualmente, fora do horário agendado
func (s *LowStockCheckService) RunNow() {
	go s.checkLowStock()
}

// Status retorna o estado corrente da varredura para o endpoint de cron
func (s *LowStockCheckService) Status() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	return map[string]any{
		"running":          s.checkRunning,
		"last_started_at":  s.lastCheckStartedAt,
		"last_finished_at": s.lastCheckFinishedAt,
		"last_low_stock":   s.lastLowStockCount,
		"cron_schedule":    s.config.CronSchedule,
		"enabled":          s.config.Enabled,
	}
}

// checkLowStock varre as peças e registra o resumo das que precisam de reposição
func (s *LowStockCheckService) checkLowStock() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Varredura de estoque baixo já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.lastCheckStartedAt = time.Now()
	s.checkMutex.Unlock()

	defer func() {
		s.checkMutex.Lock()
		s.checkRunning = false
		s.lastCheckFinishedAt = time.Now()
		s.checkMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de peças abaixo do estoque de segurança")

	parts, err := s.partRepo.ListParts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar peças na varredura de estoque baixo")
		return
	}

	lowStock := 0
	for _, part := range parts {
		if !part.LowStock() {
			continue
		}

		lowStock++
		logrus.WithFields(logrus.Fields{
			"part_id":       part.ID,
			"part_name":     part.Name,
			"current_stock": part.CurrentStock,
			"safety_stock":  part.SafetyStock,
		}).Warn("Peça abaixo do estoque de segurança, reposição necessária")
	}

	s.checkMutex.Lock()
	s.lastLowStockCount = lowStock
	s.checkMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"parts_total":     len(parts),
		"parts_low_stock": lowStock,
	}).Info("Varredura de estoque baixo concluída")
}
