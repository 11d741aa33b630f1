package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/prospecting"
	"github.com/yhaox11/SaaSBuilder/pkg/apiErrors"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
)

type SearchLeadsRequest struct {
	State string `json:"state"`
	City  string `json:"city"`
	Niche string `json:"niche"`
}

// SearchLeads dispara a prospecção de estabelecimentos para a praça pedida.
func SearchLeads(searcher prospecting.LeadSearcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req SearchLeadsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.State == "" || req.City == "" || req.Niche == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Estado, cidade e nicho são obrigatórios", nil)
			return
		}

		leads, err := searcher.SearchBusinesses(r.Context(), req.State, req.City, req.Niche)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"state": req.State,
				"city":  req.City,
				"niche": req.Niche,
			}).Error("leads: falha na prospecção")

			handleProspectingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(leads)
	})
}

// handleProspectingError traduz as falhas do pipeline para a resposta padronizada
func handleProspectingError(w http.ResponseWriter, err error) {
	var prospErr *prospecting.ProspectingError
	if errors.As(err, &prospErr) {
		apiErrors.WriteError(w, prospErr.Code, prospErr.Error(), prospErr.Details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar estabelecimentos", nil)
}
