// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/merchant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/merchant-analytics-api/internal/domain"
)

const (
	activityRecordsTable = "activity_records a"
)

type ActivityRepository interface {
	UpsertBatch(ctx context.Context, records []*domain.ActivityRecord) error
	TopMerchantByVolume() (*domain.TopMerchant, error)
	MonthlyActiveMerchants() ([]domain.MonthCount, error)
	ProductAdoption() ([]domain.ProductCount, error)
	KycFunnelCounts() ([]domain.EventTypeCount, error)
	ProductOutcomes() ([]domain.ProductOutcome, error)
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

// UpsertBatch insere o lote em uma única transação. Conflitos em event_id são
// ignorados: o registro já armazenado permanece intacto e reexecuções são no-ops.
func (r *activityRepository) UpsertBatch(ctx context.Context, records []*domain.ActivityRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("activity_records").
		Columns(
			"event_id",
			"merchant_id",
			"event_timestamp",
			"product",
			"event_type",
			"amount",
			"status",
			"channel",
			"region",
			"merchant_tier",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		query = query.Values(
			record.EventID,
			record.MerchantID,
			record.EventTimestamp,
			record.Product,
			record.EventType,
			record.Amount,
			record.Status,
			record.Channel,
			record.Region,
			record.MerchantTier,
		)
	}

	query = query.Suffix(`ON CONFLICT (event_id) DO NOTHING`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}
		return nil
	})
}

// TopMerchantByVolume retorna o merchant com o maior volume somado entre
// eventos SUCCESS, ou nil quando não há nenhum evento SUCCESS armazenado.
func (r *activityRepository) TopMerchantByVolume() (*domain.TopMerchant, error) {
	query, args, err := squirrel.
		Select("a.merchant_id", "COALESCE(SUM(a.amount), 0) AS total_volume").
		From(activityRecordsTable).
		Where(squirrel.Eq{"a.status": domain.StatusSuccess}).
		GroupBy("a.merchant_id").
		OrderBy("total_volume DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	top := &domain.TopMerchant{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&top.MerchantID, &top.TotalVolume); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear top merchant: %w", err)
	}

	return top, nil
}

// MonthlyActiveMerchants conta merchants distintos por mês (YYYY-MM) entre
// eventos SUCCESS, excluindo o sentinela de época, em ordem crescente de mês.
func (r *activityRepository) MonthlyActiveMerchants() ([]domain.MonthCount, error) {
	query, args, err := squirrel.
		Select(
			"TO_CHAR(a.event_timestamp, 'YYYY-MM') AS month",
			"COUNT(DISTINCT a.merchant_id) AS active_merchants",
		).
		From(activityRecordsTable).
		Where(squirrel.Eq{"a.status": domain.StatusSuccess}).
		Where(squirrel.NotEq{"a.event_timestamp": domain.EpochSentinel}).
		GroupBy("month").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.MonthCount, 0)
	for rows.Next() {
		var mc domain.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem mensal: %w", err)
		}
		counts = append(counts, mc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// ProductAdoption conta merchants distintos por produto, independente de
// status, em ordem decrescente de contagem.
func (r *activityRepository) ProductAdoption() ([]domain.ProductCount, error) {
	query, args, err := squirrel.
		Select("a.product", "COUNT(DISTINCT a.merchant_id) AS merchants").
		From(activityRecordsTable).
		GroupBy("a.product").
		OrderBy("merchants DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.ProductCount, 0)
	for rows.Next() {
		var pc domain.ProductCount
		if err := rows.Scan(&pc.Product, &pc.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear adoção de produto: %w", err)
		}
		counts = append(counts, pc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// KycFunnelCounts conta merchants distintos por etapa do funil de KYC entre
// eventos KYC com status SUCCESS. Etapas sem eventos não aparecem no resultado.
func (r *activityRepository) KycFunnelCounts() ([]domain.EventTypeCount, error) {
	funnelStages := []domain.EventType{
		domain.EventTypeDocumentSubmitted,
		domain.EventTypeVerificationCompleted,
		domain.EventTypeTierUpgrade,
	}

	query, args, err := squirrel.
		Select("a.event_type", "COUNT(DISTINCT a.merchant_id) AS merchants").
		From(activityRecordsTable).
		Where(squirrel.Eq{
			"a.product":    domain.ProductKYC,
			"a.status":     domain.StatusSuccess,
			"a.event_type": funnelStages,
		}).
		GroupBy("a.event_type").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.EventTypeCount, 0)
	for rows.Next() {
		var ec domain.EventTypeCount
		if err := rows.Scan(&ec.EventType, &ec.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear etapa do funil: %w", err)
		}
		counts = append(counts, ec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// ProductOutcomes conta sucessos e falhas por produto, considerando apenas
// eventos com status SUCCESS ou FAILED.
func (r *activityRepository) ProductOutcomes() ([]domain.ProductOutcome, error) {
	query, args, err := squirrel.
		Select(
			"a.product",
			"COUNT(*) FILTER (WHERE a.status = 'SUCCESS') AS success",
			"COUNT(*) FILTER (WHERE a.status = 'FAILED') AS failed",
		).
		From(activityRecordsTable).
		Where(squirrel.Eq{"a.status": []domain.Status{domain.StatusSuccess, domain.StatusFailed}}).
		GroupBy("a.product").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	outcomes := make([]domain.ProductOutcome, 0)
	for rows.Next() {
		var po domain.ProductOutcome
		if err := rows.Scan(&po.Product, &po.Success, &po.Failed); err != nil {
			return nil, fmt.Errorf("erro ao escanear resultado por produto: %w", err)
		}
		outcomes = append(outcomes, po)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return outcomes, nil
}
