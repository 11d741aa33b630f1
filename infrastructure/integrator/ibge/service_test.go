package ibge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/ibge/ibgeclient"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/ibge/mocks"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"go.uber.org/mock/gomock"
)

func TestIBGEService_ListCities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	service, err := New(&config.Config{}, mockClient)
	require.NoError(t, err)

	t.Run("Sigla inválida - deve falhar sem consultar o cliente", func(t *testing.T) {
		for _, uf := range []string{"", "S", "SAO", "  "} {
			cities, err := service.ListCities(uf)
			assert.Nil(t, cities)
			assert.ErrorIs(t, err, ErrInvalidState)
		}
	})

	t.Run("Consulta com sucesso - nomes ordenados alfabeticamente", func(t *testing.T) {
		mockClient.EXPECT().
			GetMunicipalitiesByState("SP").
			Return([]ibgeclient.Municipality{
				{ID: 3550308, Nome: "São Paulo"},
				{ID: 3509502, Nome: "Campinas"},
				{ID: 3548500, Nome: "Santos"},
			}, nil)

		cities, err := service.ListCities("sp")

		require.NoError(t, err)
		assert.Equal(t, []string{"Campinas", "Santos", "São Paulo"}, cities)
	})

	t.Run("Segunda consulta da mesma UF - servida pelo cache", func(t *testing.T) {
		// Nenhuma expectativa nova no cliente: o cache da chamada anterior responde
		cities, err := service.ListCities("SP")

		require.NoError(t, err)
		assert.Equal(t, []string{"Campinas", "Santos", "São Paulo"}, cities)
	})

	t.Run("Nomes vazios são descartados", func(t *testing.T) {
		mockClient.EXPECT().
			GetMunicipalitiesByState("RJ").
			Return([]ibgeclient.Municipality{
				{ID: 1, Nome: "Niterói"},
				{ID: 2, Nome: ""},
			}, nil)

		cities, err := service.ListCities("RJ")

		require.NoError(t, err)
		assert.Equal(t, []string{"Niterói"}, cities)
	})

	t.Run("Erro do cliente - deve propagar sem cachear", func(t *testing.T) {
		upstreamErr := errors.New("status 503")

		mockClient.EXPECT().
			GetMunicipalitiesByState("MG").
			Return(nil, upstreamErr)

		cities, err := service.ListCities("MG")

		assert.Nil(t, cities)
		assert.ErrorIs(t, err, upstreamErr)
	})
}
