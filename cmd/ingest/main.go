// Comando de ingestão em lote dos arquivos de atividade.
// Processo offline: roda, grava o resumo nos logs e termina com exit code
// diferente de zero em qualquer falha.
package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/merchant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/merchant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/merchant-analytics-api/internal/config"
	"github.com/vfg2006/merchant-analytics-api/internal/usecases/ingesting"
)

var (
	flagDataDir           string
	flagBatchSize         int
	flagAbortOnBatchError bool
	flagMigrate           bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "ingest",
		Short:        "Ingere arquivos activities_<YYYYMMDD>.csv no banco de dados",
		RunE:         runIngest,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "diretório com os arquivos de atividade (default: INGEST_DATA_DIR)")
	rootCmd.Flags().IntVar(&flagBatchSize, "batch-size", 0, "tamanho do lote de upsert (default: INGEST_BATCH_SIZE)")
	rootCmd.Flags().BoolVar(&flagAbortOnBatchError, "abort-on-batch-error", false, "interrompe a rodada inteira na primeira falha de lote")
	rootCmd.Flags().BoolVar(&flagMigrate, "migrate", false, "aplica as migrações de schema antes de ingerir")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runIngest(cmd *cobra.Command, _ []string) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	// Flags têm precedência sobre o ambiente
	if flagDataDir != "" {
		cfg.Ingestion.DataDir = flagDataDir
	}
	if flagBatchSize > 0 {
		cfg.Ingestion.BatchSize = flagBatchSize
	}
	if cmd.Flags().Changed("abort-on-batch-error") {
		cfg.Ingestion.AbortOnBatchError = flagAbortOnBatchError
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		return err
	}
	defer conn.Close()

	if flagMigrate {
		if err := conn.Migrate(); err != nil {
			logrus.WithError(err).Error("Erro ao aplicar migrações")
			return err
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	ingestService := ingesting.NewService(repository.NewActivityRepository(conn), cfg.Ingestion)

	summary, err := ingestService.IngestDirectory(ctx)
	if summary != nil {
		logrus.WithFields(logrus.Fields{
			"files_processed":  summary.FilesProcessed,
			"records_ingested": summary.RecordsIngested,
			"records_skipped":  summary.RecordsSkipped,
		}).Info("Resumo da ingestão")
	}
	if err != nil {
		logrus.WithError(err).Error("Ingestão terminou com erro")
		return err
	}

	return nil
}
