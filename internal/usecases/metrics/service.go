package metrics

import (
	"context"

	"github.com/yhaox11/SaaSBuilder/infrastructure/repository"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"github.com/yhaox11/SaaSBuilder/pkg/utils"
)

// Janela fixa da série histórica exibida no dashboard.
const revenueHistoryWindow = 6

// MetricsDeriver deriva o snapshot de métricas do dashboard. O contrato é
// infalível: qualquer falha de dados degrada para o snapshot zerado, nunca
// para um erro estrutural.
type MetricsDeriver interface {
	GetDashboardMetrics(ctx context.Context, tenantID string) *domain.DashboardMetrics
}

type Service struct {
	cfg         *config.Config
	revenueRepo repository.RevenueRepository
	profileRepo repository.ProfileRepository
}

func NewService(
	cfg *config.Config,
	revenueRepo repository.RevenueRepository,
	profileRepo repository.ProfileRepository,
) MetricsDeriver {
	return &Service{
		cfg:         cfg,
		revenueRepo: revenueRepo,
		profileRepo: profileRepo,
	}
}

func (s *Service) GetDashboardMetrics(ctx context.Context, tenantID string) *domain.DashboardMetrics {
	logger := log.ForContext(ctx)

	rows, err := s.revenueRepo.ListByTenant(tenantID, revenueHistoryWindow)
	if err != nil {
		logger.WithError(err).WithField("tenant_id", tenantID).Error("metrics: erro ao buscar receita")
		return emptyMetrics()
	}

	if len(rows) == 0 {
		return emptyMetrics()
	}

	history := make([]domain.MetricPoint, 0, len(rows))
	for _, row := range rows {
		history = append(history, domain.MetricPoint{
			Date:  utils.ShortMonthBR(row.Date),
			Value: row.Value,
		})
	}

	currentRevenue := history[len(history)-1].Value

	var previousRevenue float64
	if len(history) >= 2 {
		previousRevenue = history[len(history)-2].Value
	}

	// Evitar divisão por zero
	var revenueGrowth float64
	if previousRevenue != 0 {
		revenueGrowth = (currentRevenue - previousRevenue) / previousRevenue * 100
	}

	// A contagem de perfis do tenant serve como proxy de clientes neste modelo
	customerCount, err := s.profileRepo.CountByTenant(tenantID)
	if err != nil {
		logger.WithError(err).WithField("tenant_id", tenantID).Error("metrics: erro ao contar clientes")
		customerCount = 0
	}

	var averageTicket float64
	if customerCount > 0 {
		averageTicket = currentRevenue / float64(customerCount)
	}

	return &domain.DashboardMetrics{
		TotalRevenue:  currentRevenue,
		RevenueGrowth: utils.RoundWithOneDecimalPlace(revenueGrowth),
		AverageTicket: utils.RoundWithTwoDecimalPlace(averageTicket),
		// TicketGrowth e CustomerGrowth são emitidos como 0 fixo; ainda não
		// existe comparação histórica para eles.
		TicketGrowth:   0,
		NewCustomers:   customerCount,
		CustomerGrowth: 0,
		RevenueHistory: history,
	}
}

// emptyMetrics é o snapshot zerado com os 6 meses de placeholder.
func emptyMetrics() *domain.DashboardMetrics {
	return &domain.DashboardMetrics{
		RevenueHistory: []domain.MetricPoint{
			{Date: "Jan", Value: 0},
			{Date: "Fev", Value: 0},
			{Date: "Mar", Value: 0},
			{Date: "Abr", Value: 0},
			{Date: "Mai", Value: 0},
			{Date: "Jun", Value: 0},
		},
	}
}
