package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yhaox11/SaaSBuilder/infrastructure/repository"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"github.com/yhaox11/SaaSBuilder/pkg/utils"
)

// ErrResolutionFailed é a falha dura do resolvedor, distinta do fallback
// suave para o plano gratuito.
var ErrResolutionFailed = errors.New("erro ao resolver assinatura")

// Override de negócio: o plano Lifetime tem preço fixo de exibição,
// independente do valor armazenado.
const lifetimePlanPrice = 297

type SubscriptionResolver interface {
	ResolveSubscription(ctx context.Context, tenantID string) (*domain.Subscription, error)
}

type Service struct {
	cfg              *config.Config
	subscriptionRepo repository.SubscriptionRepository
}

func NewService(cfg *config.Config, subscriptionRepo repository.SubscriptionRepository) SubscriptionResolver {
	return &Service{
		cfg:              cfg,
		subscriptionRepo: subscriptionRepo,
	}
}

// ResolveSubscription mapeia o tenant para a visão normalizada de cobrança.
// Assinatura ausente ou falha de consulta degradam para o plano gratuito
// sintético; apenas um registro encontrado porém inconsistente produz erro.
func (s *Service) ResolveSubscription(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	logger := log.ForContext(ctx)

	record, err := s.subscriptionRepo.GetActiveByTenant(tenantID)
	if err != nil {
		logger.WithError(err).WithField("tenant_id", tenantID).Error("billing: erro ao buscar assinatura")
		return freeTierSubscription(), nil
	}

	if record == nil {
		return freeTierSubscription(), nil
	}

	if record.Plan == nil {
		logger.WithField("tenant_id", tenantID).Error("billing: assinatura ativa sem plano associado")
		return nil, ErrResolutionFailed
	}

	price := record.Plan.Price
	if strings.EqualFold(record.Plan.Name, "lifetime") {
		price = lifetimePlanPrice
	}

	interval := record.Plan.Interval
	if interval == "" {
		interval = "month"
	}

	return &domain.Subscription{
		Status: record.Status,
		Plan: domain.Plan{
			ID:       record.Plan.ID,
			Name:     record.Plan.Name,
			Price:    price,
			Interval: interval,
		},
		NextBillingDate: utils.FormatDateBR(record.CurrentPeriodEnd),
	}, nil
}

// freeTierSubscription é o registro sintético usado quando o tenant não tem
// assinatura ativa.
func freeTierSubscription() *domain.Subscription {
	return &domain.Subscription{
		Status: "inactive",
		Plan: domain.Plan{
			ID:       "free_tier",
			Name:     "Plano Gratuito",
			Price:    0,
			Interval: "month",
		},
		NextBillingDate: utils.FormatDateBR(time.Now()),
	}
}
