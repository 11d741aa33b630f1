package ibgeclient

import (
	"encoding/json"
	"fmt"

	"github.com/yhaox11/SaaSBuilder/pkg/utils"
)

// GetMunicipalitiesByState consulta os municípios de uma UF na API pública
// de localidades do IBGE.
func (c *IBGEClient) GetMunicipalitiesByState(uf string) ([]Municipality, error) {
	url := fmt.Sprintf("%s/estados/%s/municipios", c.cfg.IBGE.URL, uf)

	body, err := utils.MakeRequest(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar municípios: %w", err)
	}

	var municipalities []Municipality
	if err := json.Unmarshal(body, &municipalities); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta do IBGE: %w", err)
	}

	return municipalities, nil
}
