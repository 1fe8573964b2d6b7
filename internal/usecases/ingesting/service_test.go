package ingesting

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/merchant-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/merchant-analytics-api/internal/config"
	"github.com/vfg2006/merchant-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const activityHeader = "event_id,merchant_id,event_timestamp,product,event_type,amount,status,channel,region,merchant_tier"

func activityLine(eventID string) string {
	return eventID + ",MERCH001,2024-03-15T10:30:00Z,PAYMENTS,TRANSACTION,100.00,SUCCESS,WEB,BR-SP,GROWTH"
}

func writeActivityFile(t *testing.T, dir, name string, lines ...string) {
	t.Helper()

	content := strings.Join(append([]string{activityHeader}, lines...), "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestIngestDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("Ingere arquivos válidos e contabiliza linhas rejeitadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeActivityFile(t, dir, "activities_20240315.csv",
			activityLine("EVT001"),
			activityLine("EVT002"),
			",MERCH002,2024-03-15T10:30:00Z,PAYMENTS,TRANSACTION,10,SUCCESS,WEB,BR-SP,GROWTH", // sem event_id
			"EVT003,MERCH003,not-a-timestamp,PAYMENTS,TRANSACTION,10,SUCCESS,WEB,BR-SP,GROWTH",
		)

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		activityRepo.EXPECT().
			UpsertBatch(gomock.Any(), gomock.Len(2)).
			Return(nil)

		service := NewService(activityRepo, config.Ingestion{DataDir: dir, BatchSize: 1000})

		summary, err := service.IngestDirectory(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.FilesProcessed)
		assert.Equal(t, 2, summary.RecordsIngested)
		assert.Equal(t, 2, summary.RecordsSkipped)
	})

	t.Run("Divide os registros em lotes do tamanho configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeActivityFile(t, dir, "activities_20240315.csv",
			activityLine("EVT001"),
			activityLine("EVT002"),
			activityLine("EVT003"),
			activityLine("EVT004"),
			activityLine("EVT005"),
		)

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		gomock.InOrder(
			activityRepo.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(2)).Return(nil),
			activityRepo.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(2)).Return(nil),
			activityRepo.EXPECT().UpsertBatch(gomock.Any(), gomock.Len(1)).Return(nil),
		)

		service := NewService(activityRepo, config.Ingestion{DataDir: dir, BatchSize: 2})

		summary, err := service.IngestDirectory(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, summary.RecordsIngested)
	})

	t.Run("Processa os arquivos em ordem lexicográfica de nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeActivityFile(t, dir, "activities_20240316.csv", activityLine("EVT_DIA16"))
		writeActivityFile(t, dir, "activities_20240315.csv", activityLine("EVT_DIA15"))

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		gomock.InOrder(
			activityRepo.EXPECT().
				UpsertBatch(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, records []*domain.ActivityRecord) error {
					assert.Equal(t, "EVT_DIA15", records[0].EventID)
					return nil
				}),
			activityRepo.EXPECT().
				UpsertBatch(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, records []*domain.ActivityRecord) error {
					assert.Equal(t, "EVT_DIA16", records[0].EventID)
					return nil
				}),
		)

		service := NewService(activityRepo, config.Ingestion{DataDir: dir, BatchSize: 1000})

		summary, err := service.IngestDirectory(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.FilesProcessed)
	})

	t.Run("Ignora arquivos fora do padrão de nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeActivityFile(t, dir, "activities_20240315.csv", activityLine("EVT001"))
		writeActivityFile(t, dir, "activities_backup.csv", activityLine("EVT_IGNORADO"))
		writeActivityFile(t, dir, "notes.txt", activityLine("EVT_IGNORADO"))

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		activityRepo.EXPECT().
			UpsertBatch(gomock.Any(), gomock.Len(1)).
			Return(nil)

		service := NewService(activityRepo, config.Ingestion{DataDir: dir, BatchSize: 1000})

		summary, err := service.IngestDirectory(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.FilesProcessed)
	})

	t.Run("Arquivo sem registros válidos é pulado sem gravar nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeActivityFile(t, dir, "activities_20240315.csv",
			",MERCH001,2024-03-15T10:30:00Z,PAYMENTS,TRANSACTION,10,SUCCESS,WEB,BR-SP,GROWTH",
			"EVT002,MERCH002,2024-03-15T10:30:00Z,CRYPTO,TRANSACTION,10,SUCCESS,WEB,BR-SP,GROWTH",
		)

		activityRepo := mocks.NewMockActivityRepository(ctrl)

		service := NewService(activityRepo, config.Ingestion{DataDir: dir, BatchSize: 1000})

		summary, err := service.IngestDirectory(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.FilesProcessed)
		assert.Equal(t, 0, summary.RecordsIngested)
		assert.Equal(t, 2, summary.RecordsSkipped)
	})

	t.Run("Diretório inexistente retorna ErrDataDirNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		service := NewService(activityRepo, config.Ingestion{DataDir: "/nao/existe", BatchSize: 1000})

		summary, err := service.IngestDirectory(ctx)
		assert.ErrorIs(t, err, ErrDataDirNotFound)
		assert.Nil(t, summary)
	})

	t.Run("Diretório sem arquivos de atividade retorna ErrNoActivityFiles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeActivityFile(t, dir, "notes.txt", activityLine("EVT001"))

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		service := NewService(activityRepo, config.Ingestion{DataDir: dir, BatchSize: 1000})

		summary, err := service.IngestDirectory(ctx)
		assert.ErrorIs(t, err, ErrNoActivityFiles)
		assert.Nil(t, summary)
	})

	t.Run("Falha de lote encerra o arquivo mas os demais ainda são processados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeActivityFile(t, dir, "activities_20240315.csv", activityLine("EVT001"))
		writeActivityFile(t, dir, "activities_20240316.csv", activityLine("EVT002"))

		errBatch := errors.New("deadlock detected")

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		gomock.InOrder(
			activityRepo.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).Return(errBatch),
			activityRepo.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).Return(nil),
		)

		service := NewService(activityRepo, config.Ingestion{DataDir: dir, BatchSize: 1000})

		summary, err := service.IngestDirectory(ctx)
		assert.ErrorIs(t, err, errBatch)
		require.NotNil(t, summary)
		assert.Equal(t, 2, summary.FilesProcessed)
		assert.Equal(t, 1, summary.RecordsIngested)
	})

	t.Run("Com AbortOnBatchError a rodada inteira para na primeira falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		writeActivityFile(t, dir, "activities_20240315.csv", activityLine("EVT001"))
		writeActivityFile(t, dir, "activities_20240316.csv", activityLine("EVT002"))

		errBatch := errors.New("deadlock detected")

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		activityRepo.EXPECT().
			UpsertBatch(gomock.Any(), gomock.Any()).
			Return(errBatch)

		service := NewService(activityRepo, config.Ingestion{
			DataDir:           dir,
			BatchSize:         1000,
			AbortOnBatchError: true,
		})

		summary, err := service.IngestDirectory(ctx)
		assert.ErrorIs(t, err, errBatch)
		require.NotNil(t, summary)
		assert.Equal(t, 1, summary.FilesProcessed)
	})

	t.Run("Cabeçalho fora de ordem e colunas extras são tolerados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dir := t.TempDir()
		content := strings.Join([]string{
			"merchant_id,event_id,extra_col,event_timestamp,product,status,channel",
			"MERCH009,EVT009,whatever,2024-03-15T10:30:00Z,KYC,SUCCESS,MOBILE",
		}, "\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "activities_20240315.csv"), []byte(content), 0o644))

		activityRepo := mocks.NewMockActivityRepository(ctrl)
		activityRepo.EXPECT().
			UpsertBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []*domain.ActivityRecord) error {
				require.Len(t, records, 1)
				assert.Equal(t, "EVT009", records[0].EventID)
				assert.Equal(t, "MERCH009", records[0].MerchantID)
				assert.Equal(t, domain.ProductKYC, records[0].Product)
				assert.Equal(t, "UNKNOWN", records[0].Region)
				assert.Zero(t, records[0].Amount)
				return nil
			})

		service := NewService(activityRepo, config.Ingestion{DataDir: dir, BatchSize: 1000})

		summary, err := service.IngestDirectory(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.RecordsIngested)
	})
}
