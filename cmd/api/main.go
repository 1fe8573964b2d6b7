package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/merchant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/merchant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/merchant-analytics-api/internal/api"
	"github.com/vfg2006/merchant-analytics-api/internal/config"
	"github.com/vfg2006/merchant-analytics-api/internal/scheduler"
	"github.com/vfg2006/merchant-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/merchant-analytics-api/internal/usecases/reporting"
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

	if cfg.Database.MigrateOnStartup {
		if err := pgConn.Migrate(); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	activityRepo := repository.NewActivityRepository(pgConn)

	reportService := reporting.NewService(activityRepo)
	ingestService := ingesting.NewService(activityRepo, cfg.Ingestion)

	// Reingestão agendada do diretório de dados (desabilitada por padrão)
	ingestionSyncService := scheduler.NewIngestionSyncService(ingestService, cfg)
	if err := ingestionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão")
	}

	server, err := api.New(cfg, reportService)
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
