package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yhaox11/SaaSBuilder/infrastructure/database/postgres"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
)

const (
	subscriptionsTable = "subscriptions s"
)

type SubscriptionRepository interface {
	GetActiveByTenant(tenantID string) (*domain.SubscriptionRecord, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

// GetActiveByTenant busca a assinatura ativa do tenant com o join em plans.
// Retorna (nil, nil) quando não existe assinatura ativa.
func (r *subscriptionRepository) GetActiveByTenant(tenantID string) (*domain.SubscriptionRecord, error) {
	if r.conn == nil {
		return nil, nil
	}

	query, args, err := squirrel.
		Select("s.status, s.current_period_end, pl.id, pl.name, pl.price, pl.interval").
		From(subscriptionsTable).
		LeftJoin("plans pl ON pl.id = s.plan_id").
		Where(squirrel.Eq{"s.tenant_id": tenantID, "s.status": "active"}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		record       domain.SubscriptionRecord
		planID       sql.NullString
		planName     sql.NullString
		planPrice    sql.NullFloat64
		planInterval sql.NullString
	)

	err = r.conn.QueryRow(query, args...).Scan(
		&record.Status,
		&record.CurrentPeriodEnd,
		&planID,
		&planName,
		&planPrice,
		&planInterval,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear assinatura: %w", err)
	}

	// O join pode não encontrar o plano armazenado; o resolvedor decide
	// como tratar esse caso.
	if planID.Valid {
		record.Plan = &domain.PlanRecord{
			ID:       planID.String,
			Name:     planName.String,
			Price:    planPrice.Float64,
			Interval: planInterval.String,
		}
	}

	return &record, nil
}
