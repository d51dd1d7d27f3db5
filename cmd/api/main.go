package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/igdnd/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/igdnd/sales-dashboard-api/infrastructure/repository"
	"github.com/igdnd/sales-dashboard-api/internal/api"
	"github.com/igdnd/sales-dashboard-api/internal/config"
	"github.com/igdnd/sales-dashboard-api/internal/scheduler"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/cataloging"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/pricing"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/reporting"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/restocking"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/selling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	channelRepo := repository.NewChannelRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	priceRepo := repository.NewPriceRepository(pgConn)
	metricRepo := repository.NewDailyMetricRepository(pgConn)
	partRepo := repository.NewPartRepository(pgConn)
	bomRepo := repository.NewBomRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	reportingService := reporting.NewService(metricRepo)
	catalogService := cataloging.NewService(channelRepo, productRepo)
	pricingService := pricing.NewService(priceRepo)
	sellingService := selling.NewService(productRepo, priceRepo, bomRepo, metricRepo)
	restockingService := restocking.NewService(partRepo)

	lowStockCheckService := scheduler.NewLowStockCheckService(partRepo, cfg)
	if err := lowStockCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a verificação agendada de estoque baixo")
	} else {
		logrus.Info("Verificação agendada de estoque baixo iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		catalogService,
		pricingService,
		sellingService,
		restockingService,
		authenticator,
		lowStockCheckService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
