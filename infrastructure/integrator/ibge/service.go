package ibge

import (
	"errors"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/ibge/ibgeclient"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/sirupsen/logrus"
)

// ErrInvalidState indica uma sigla de UF fora do padrão de duas letras.
var ErrInvalidState = errors.New("sigla de estado inválida")

// O Brasil tem 27 unidades federativas; o cache cobre todas.
const cityCacheSize = 27

type RegionIntegrator interface {
	ListCities(uf string) ([]string, error)
}

type IBGEService struct {
	cfg    *config.Config
	Client ibgeclient.Client
	cache  *lru.Cache[string, []string]
}

func New(cfg *config.Config, client ibgeclient.Client) (RegionIntegrator, error) {
	cache, err := lru.New[string, []string](cityCacheSize)
	if err != nil {
		return nil, err
	}

	return &IBGEService{
		cfg:    cfg,
		Client: client,
		cache:  cache,
	}, nil
}

// ListCities retorna os nomes dos municípios da UF em ordem alfabética.
// Listas de municípios são dados de referência estáveis, então o resultado
// fica em cache pelo tempo de vida do processo.
func (s *IBGEService) ListCities(uf string) ([]string, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if len(uf) != 2 {
		return nil, ErrInvalidState
	}

	if cities, ok := s.cache.Get(uf); ok {
		return cities, nil
	}

	municipalities, err := s.Client.GetMunicipalitiesByState(uf)
	if err != nil {
		logrus.WithError(err).WithField("uf", uf).Error("Erro ao carregar cidades do IBGE")
		return nil, err
	}

	cities := make([]string, 0, len(municipalities))
	for _, municipality := range municipalities {
		if municipality.Nome != "" {
			cities = append(cities, municipality.Nome)
		}
	}
	sort.Strings(cities)

	s.cache.Add(uf, cities)

	return cities, nil
}
