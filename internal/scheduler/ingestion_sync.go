package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/merchant-analytics-api/internal/config"
	"github.com/vfg2006/merchant-analytics-api/internal/usecases/ingesting"
)

// IngestionSyncService agenda reexecuções periódicas da ingestão de arquivos
// de atividade. Como a ingestão é idempotente por event_id, reprocessar o
// diretório inteiro é seguro e captura arquivos novos depositados nele.
type IngestionSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.IngestionSync
	ingestService       ingesting.Ingestor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewIngestionSyncService(
	ingestService ingesting.Ingestor,
	appConfig *config.Config,
) *IngestionSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.IngestionSync.CronSchedule,
		"sync_enabled":  appConfig.IngestionSync.Enabled,
	}).Info("Configuração do agendador de ingestão carregada")

	return &IngestionSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        appConfig.IngestionSync,
		ingestService: ingestService,
	}
}

// Start inicia o agendador
func (s *IngestionSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Ingestão agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ingestão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runIngestion(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ingestão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ingestão")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *IngestionSyncService) runIngestion(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Ingestão anterior ainda em execução, pulando esta rodada")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	summary, err := s.ingestService.IngestDirectory(ctx)
	if err != nil {
		logrus.WithError(err).Error("Ingestão agendada terminou com erro")
		return
	}

	logrus.WithFields(logrus.Fields{
		"files_processed":  summary.FilesProcessed,
		"records_ingested": summary.RecordsIngested,
		"records_skipped":  summary.RecordsSkipped,
	}).Info("Ingestão agendada concluída")
}
