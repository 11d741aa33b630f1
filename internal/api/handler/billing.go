package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/billing"
	"github.com/yhaox11/SaaSBuilder/pkg/apiErrors"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"github.com/yhaox11/SaaSBuilder/pkg/middleware"
)

// GetSubscription retorna a visão normalizada da assinatura do tenant.
func GetSubscription(resolver billing.SubscriptionResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		subscription, err := resolver.ResolveSubscription(r.Context(), userClaims.TenantID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("billing: erro ao resolver assinatura")
			apiErrors.WriteError(w, apiErrors.ErrBillingResolution, "Erro ao resolver assinatura", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(subscription)
	})
}
