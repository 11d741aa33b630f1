package analyzing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
)

// MetricsAnalyzer produz o insight executivo exibido no topo do dashboard.
// A análise é best-effort: qualquer falha vira uma resposta fixa de baixo
// risco, nunca um erro para o chamador.
type MetricsAnalyzer interface {
	Analyze(ctx context.Context, metrics *domain.DashboardMetrics) *domain.AIAnalysisResponse
}

type Service struct {
	cfg    *config.Config
	oracle gemini.OracleIntegrator
}

func NewService(cfg *config.Config, oracle gemini.OracleIntegrator) MetricsAnalyzer {
	return &Service{
		cfg:    cfg,
		oracle: oracle,
	}
}

func missingKeyResponse() *domain.AIAnalysisResponse {
	return &domain.AIAnalysisResponse{
		Insight:        "API Key missing. Please configure your Google Cloud API Key to receive AI insights.",
		Recommendation: "Check your environment variables.",
		RiskLevel:      domain.RiskLevelLow,
	}
}

func unavailableResponse() *domain.AIAnalysisResponse {
	return &domain.AIAnalysisResponse{
		Insight:        "Unable to analyze data at this moment.",
		Recommendation: "Please try again later.",
		RiskLevel:      domain.RiskLevelLow,
	}
}

func (s *Service) Analyze(ctx context.Context, metrics *domain.DashboardMetrics) *domain.AIAnalysisResponse {
	if s.cfg.Gemini.APIKey == "" {
		return missingKeyResponse()
	}

	raw, err := s.oracle.AnalyzeMetrics(ctx, buildAnalysisPrompt(metrics))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("analyzing: falha ao analisar métricas")
		return unavailableResponse()
	}

	var analysis domain.AIAnalysisResponse
	if err := json.Unmarshal(raw, &analysis); err != nil {
		log.ForContext(ctx).WithError(err).Error("analyzing: resposta do oráculo fora do formato esperado")
		return unavailableResponse()
	}

	if analysis.Insight == "" || analysis.Recommendation == "" {
		return unavailableResponse()
	}

	analysis.RiskLevel = normalizeRiskLevel(analysis.RiskLevel)

	return &analysis
}

func buildAnalysisPrompt(metrics *domain.DashboardMetrics) string {
	return fmt.Sprintf(`Você é um analista de negócios sênior. Analise as métricas abaixo de um dashboard SaaS e responda em JSON.

Métricas:
- Receita Total: R$ %.2f
- Crescimento de Receita: %.1f%%
- Ticket Médio: R$ %.2f
- Novos Clientes: %d

Responda estritamente em Português do Brasil, com um insight curto sobre a saúde do negócio e uma recomendação prática de próximo passo.`,
		metrics.TotalRevenue,
		metrics.RevenueGrowth,
		metrics.AverageTicket,
		metrics.NewCustomers,
	)
}

// normalizeRiskLevel aceita apenas os três níveis conhecidos; qualquer outro
// valor vindo do modelo cai para "low".
func normalizeRiskLevel(level string) string {
	switch level {
	case domain.RiskLevelLow, domain.RiskLevelMedium, domain.RiskLevelHigh:
		return level
	default:
		return domain.RiskLevelLow
	}
}
