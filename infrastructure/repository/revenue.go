package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yhaox11/SaaSBuilder/infrastructure/database/postgres"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
)

const (
	revenueMetricsTable = "revenue_metrics rm"
)

type RevenueRepository interface {
	ListByTenant(tenantID string, limit uint64) ([]*domain.RevenueRow, error)
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

// ListByTenant retorna as linhas de receita do tenant em ordem cronológica.
// Sem banco configurado retorna vazio, nunca erro.
func (r *revenueRepository) ListByTenant(tenantID string, limit uint64) ([]*domain.RevenueRow, error) {
	if r.conn == nil {
		return []*domain.RevenueRow{}, nil
	}

	query, args, err := squirrel.
		Select("rm.date, rm.value").
		From(revenueMetricsTable).
		Where(squirrel.Eq{"rm.tenant_id": tenantID}).
		OrderBy("rm.date ASC").
		Limit(limit).
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

	entries := make([]*domain.RevenueRow, 0)
	for rows.Next() {
		var (
			date  time.Time
			value float64
		)
		if err := rows.Scan(&date, &value); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita: %w", err)
		}
		entries = append(entries, &domain.RevenueRow{Date: date, Value: value})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
