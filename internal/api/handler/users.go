package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/authenticating"
	"github.com/yhaox11/SaaSBuilder/pkg/apiErrors"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"github.com/yhaox11/SaaSBuilder/pkg/middleware"
)

// ListUsers lista os perfis do tenant do usuário autenticado
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		profiles, err := service.ListProfiles(userClaims.TenantID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("users: erro ao listar perfis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profiles)
	}
}
