package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/ibge"
	"github.com/yhaox11/SaaSBuilder/pkg/apiErrors"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
)

// ListStateCities retorna os municípios de uma UF em ordem alfabética.
func ListStateCities(service ibge.RegionIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uf := httprouter.ParamsFromContext(r.Context()).ByName("uf")

		cities, err := service.ListCities(uf)
		if err != nil {
			if errors.Is(err, ibge.ErrInvalidState) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Sigla de estado inválida", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).WithField("uf", uf).Error("regions: erro ao listar municípios")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar municípios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cities)
	})
}
