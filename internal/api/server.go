package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/internal/api/handler"
	"github.com/igdnd/sales-dashboard-api/internal/api/handler/router"
	"github.com/igdnd/sales-dashboard-api/internal/config"
	"github.com/igdnd/sales-dashboard-api/internal/scheduler"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/cataloging"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/pricing"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/reporting"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/restocking"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/selling"
	"github.com/igdnd/sales-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportingService reporting.Reporter,
	catalogService cataloging.Cataloger,
	pricingService pricing.Pricer,
	sellingService selling.Seller,
	restockingService restocking.Restocker,
	authenticator authenticating.Authenticator,
	lowStockCheckService *scheduler.LowStockCheckService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		LowStockCheckService: lowStockCheckService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Reports(reportingService)...),
		router.WithRoutes(handler.Catalog(catalogService)...),
		router.WithRoutes(handler.Prices(pricingService)...),
		router.WithRoutes(handler.SalesEntries(sellingService)...),
		router.WithRoutes(handler.Inventory(restockingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
