package analyzing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini/mocks"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestAnalyzingService_Analyze(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleIntegrator(ctrl)
	ctx := context.Background()

	metrics := &domain.DashboardMetrics{
		TotalRevenue:  10000,
		RevenueGrowth: 15.5,
		AverageTicket: 500,
		NewCustomers:  20,
	}

	withKey := &config.Config{Gemini: config.Gemini{APIKey: "AIzaSy-valid-key-123"}}

	t.Run("Sem chave de API - fallback de configuração", func(t *testing.T) {
		service := NewService(&config.Config{}, mockOracle)

		result := service.Analyze(ctx, metrics)

		require.NotNil(t, result)
		assert.Equal(t, "API Key missing. Please configure your Google Cloud API Key to receive AI insights.", result.Insight)
		assert.Equal(t, "Check your environment variables.", result.Recommendation)
		assert.Equal(t, domain.RiskLevelLow, result.RiskLevel)
	})

	t.Run("Análise com sucesso - parse do JSON restrito por schema", func(t *testing.T) {
		service := NewService(withKey, mockOracle)

		mockOracle.EXPECT().
			AnalyzeMetrics(ctx, gomock.Any()).
			Return([]byte(`{"insight":"Receita em alta de 15.5%.","recommendation":"Invista em retenção.","riskLevel":"medium"}`), nil)

		result := service.Analyze(ctx, metrics)

		require.NotNil(t, result)
		assert.Equal(t, "Receita em alta de 15.5%.", result.Insight)
		assert.Equal(t, "Invista em retenção.", result.Recommendation)
		assert.Equal(t, domain.RiskLevelMedium, result.RiskLevel)
	})

	t.Run("Nível de risco desconhecido - normalizado para low", func(t *testing.T) {
		service := NewService(withKey, mockOracle)

		mockOracle.EXPECT().
			AnalyzeMetrics(ctx, gomock.Any()).
			Return([]byte(`{"insight":"ok","recommendation":"ok","riskLevel":"catastrophic"}`), nil)

		result := service.Analyze(ctx, metrics)

		assert.Equal(t, domain.RiskLevelLow, result.RiskLevel)
	})

	t.Run("Falha na chamada - fallback de indisponibilidade", func(t *testing.T) {
		service := NewService(withKey, mockOracle)

		mockOracle.EXPECT().
			AnalyzeMetrics(ctx, gomock.Any()).
			Return(nil, errors.New("deadline exceeded"))

		result := service.Analyze(ctx, metrics)

		require.NotNil(t, result)
		assert.Equal(t, "Unable to analyze data at this moment.", result.Insight)
		assert.Equal(t, "Please try again later.", result.Recommendation)
		assert.Equal(t, domain.RiskLevelLow, result.RiskLevel)
	})

	t.Run("JSON inválido na resposta - fallback de indisponibilidade", func(t *testing.T) {
		service := NewService(withKey, mockOracle)

		mockOracle.EXPECT().
			AnalyzeMetrics(ctx, gomock.Any()).
			Return([]byte("análise: tudo certo"), nil)

		result := service.Analyze(ctx, metrics)

		assert.Equal(t, "Unable to analyze data at this moment.", result.Insight)
	})

	t.Run("Campos obrigatórios vazios - fallback de indisponibilidade", func(t *testing.T) {
		service := NewService(withKey, mockOracle)

		mockOracle.EXPECT().
			AnalyzeMetrics(ctx, gomock.Any()).
			Return([]byte(`{"insight":"","recommendation":"","riskLevel":"low"}`), nil)

		result := service.Analyze(ctx, metrics)

		assert.Equal(t, "Unable to analyze data at this moment.", result.Insight)
	})
}
