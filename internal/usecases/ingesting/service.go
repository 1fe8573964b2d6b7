// Package ingesting implementa a carga em lote de arquivos de atividade para o banco
package ingesting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/merchant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/merchant-analytics-api/internal/config"
	"github.com/vfg2006/merchant-analytics-api/internal/domain"
)

// activityFilePattern casa com activities_<data de 8 dígitos>.csv
var activityFilePattern = regexp.MustCompile(`^activities_\d{8}\.csv$`)

type Ingestor interface {
	IngestDirectory(ctx context.Context) (*domain.IngestionSummary, error)
}

type Service struct {
	activityRepo repository.ActivityRepository
	cfg          config.Ingestion
}

func NewService(activityRepo repository.ActivityRepository, cfg config.Ingestion) Ingestor {
	return &Service{
		activityRepo: activityRepo,
		cfg:          cfg,
	}
}

// IngestDirectory processa todos os arquivos de atividade do diretório
// configurado. A ingestão é idempotente por registro: reexecuções não alteram
// registros já armazenados. Lotes já confirmados nunca são desfeitos; com
// AbortOnBatchError desligado, a falha de um lote encerra o arquivo corrente
// e os demais arquivos ainda são processados, mas a rodada retorna erro.
func (s *Service) IngestDirectory(ctx context.Context) (*domain.IngestionSummary, error) {
	if _, err := os.Stat(s.cfg.DataDir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, s.cfg.DataDir)
	}

	entries, err := os.ReadDir(s.cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar diretório de dados: %w", err)
	}

	files := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() && activityFilePattern.MatchString(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoActivityFiles, s.cfg.DataDir)
	}

	summary := &domain.IngestionSummary{}
	var firstErr error

	for _, file := range files {
		ingested, skipped, err := s.ingestFile(ctx, filepath.Join(s.cfg.DataDir, file))

		summary.FilesProcessed++
		summary.RecordsIngested += ingested
		summary.RecordsSkipped += skipped

		if err != nil {
			err = fmt.Errorf("arquivo %s: %w", file, err)
			if s.cfg.AbortOnBatchError {
				return summary, err
			}

			logrus.WithError(err).Error("Falha ao ingerir arquivo, seguindo para o próximo")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if ingested > 0 {
			logrus.WithFields(logrus.Fields{
				"file":     file,
				"ingested": ingested,
				"skipped":  skipped,
			}).Info("Arquivo ingerido")
		}
	}

	logrus.WithFields(logrus.Fields{
		"files_processed":  summary.FilesProcessed,
		"records_ingested": summary.RecordsIngested,
		"records_skipped":  summary.RecordsSkipped,
	}).Info("Ingestão concluída")

	return summary, firstErr
}

func (s *Service) ingestFile(ctx context.Context, path string) (int, int, error) {
	rows, err := readActivityFile(path)
	if err != nil {
		return 0, 0, err
	}

	valid := make([]*domain.ActivityRecord, 0, len(rows))
	skipped := 0
	for _, raw := range rows {
		record, err := NormalizeActivity(raw)
		if err != nil {
			skipped++
			continue
		}
		valid = append(valid, record)
	}

	if len(valid) == 0 {
		logrus.WithField("file", filepath.Base(path)).Warn("Arquivo sem registros válidos, pulando")
		return 0, skipped, nil
	}

	// Lotes de tamanho fixo para limitar o tamanho de cada transação;
	// cada lote é confirmado atomicamente antes do próximo começar
	batchSize := s.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}

	ingested := 0
	for start := 0; start < len(valid); start += batchSize {
		end := start + batchSize
		if end > len(valid) {
			end = len(valid)
		}

		if err := s.activityRepo.UpsertBatch(ctx, valid[start:end]); err != nil {
			return ingested, skipped, fmt.Errorf("erro ao gravar lote: %w", err)
		}
		ingested += end - start
	}

	return ingested, skipped, nil
}

// readActivityFile lê um CSV com cabeçalho e devolve uma linha bruta por registro.
// Colunas desconhecidas são ignoradas; colunas ausentes ficam vazias e cabem à validação.
func readActivityFile(path string) ([]domain.RawActivity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler cabeçalho: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	rows := make([]domain.RawActivity, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do CSV: %w", err)
		}

		rows = append(rows, domain.RawActivity{
			EventID:        field(record, "event_id"),
			MerchantID:     field(record, "merchant_id"),
			EventTimestamp: field(record, "event_timestamp"),
			Product:        field(record, "product"),
			EventType:      field(record, "event_type"),
			Amount:         field(record, "amount"),
			Status:         field(record, "status"),
			Channel:        field(record, "channel"),
			Region:         field(record, "region"),
			MerchantTier:   field(record, "merchant_tier"),
		})
	}

	return rows, nil
}
