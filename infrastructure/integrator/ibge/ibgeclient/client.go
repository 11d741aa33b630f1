package ibgeclient

import (
	"github.com/yhaox11/SaaSBuilder/internal/config"
)

type Client interface {
	GetMunicipalitiesByState(uf string) ([]Municipality, error)
}

// Municipality é uma entrada da API de localidades do IBGE.
// Apenas o nome interessa ao seletor de região.
type Municipality struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

type IBGEClient struct {
	cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &IBGEClient{
		cfg: cfg,
	}
}
