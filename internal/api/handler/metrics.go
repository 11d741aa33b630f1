package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/analyzing"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/metrics"
	"github.com/yhaox11/SaaSBuilder/pkg/apiErrors"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"github.com/yhaox11/SaaSBuilder/pkg/middleware"
)

// GetDashboardMetrics retorna o snapshot de métricas do tenant. A derivação
// nunca falha: qualquer problema vira o snapshot zerado.
func GetDashboardMetrics(deriver metrics.MetricsDeriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dashboard := deriver.GetDashboardMetrics(r.Context(), userClaims.TenantID)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("metrics: erro ao enviar resposta")
		}
	})
}

// GetMetricsAnalysis deriva o snapshot e o entrega ao analisador. Ambas as
// etapas têm fallback próprio, então a rota sempre responde 200.
func GetMetricsAnalysis(deriver metrics.MetricsDeriver, analyzer analyzing.MetricsAnalyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dashboard := deriver.GetDashboardMetrics(r.Context(), userClaims.TenantID)
		analysis := analyzer.Analyze(r.Context(), dashboard)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analysis); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("metrics: erro ao enviar análise")
		}
	})
}
