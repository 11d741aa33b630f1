package prospecting

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini/mocks"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/pkg/apiErrors"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"go.uber.org/mock/gomock"
	genai "google.golang.org/genai"
)

func configWithKey(key string) *config.Config {
	return &config.Config{
		Gemini: config.Gemini{
			APIKey:    key,
			Model:     "gemini-3-flash-preview",
			LeadModel: "gemini-2.5-flash",
		},
	}
}

func TestProspectingService_SearchBusinesses_CredencialInvalida(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleIntegrator(ctrl)
	ctx := context.Background()

	tests := []struct {
		name   string
		apiKey string
	}{
		{name: "Chave vazia", apiKey: ""},
		{name: "Chave com placeholder literal undefined", apiKey: "undefined"},
		{name: "Chave curta demais", apiKey: "abc123"},
		{name: "Chave vazia após trim", apiKey: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(configWithKey(tt.apiKey), mockOracle)

			leads, err := service.SearchBusinesses(ctx, "SP", "São Paulo", "restaurantes")

			assert.Nil(t, leads)
			assert.ErrorIs(t, err, ErrAPIKeyMissing)

			var prospErr *ProspectingError
			require.ErrorAs(t, err, &prospErr)
			assert.Equal(t, apiErrors.ErrLeadAPIKeyMissing, prospErr.Code)
		})
	}
}

func TestProspectingService_SearchBusinesses_ReparoDeResposta(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleIntegrator(ctrl)
	service := NewService(configWithKey("AIzaSy-valid-key-123"), mockOracle)
	ctx := context.Background()

	t.Run("Resposta com cercas de markdown e texto conversacional - deve extrair o array", func(t *testing.T) {
		raw := "Aqui está a lista:\n```json\n[{\"name\": \"A\", \"address\": \"X\"}]\n```\nEspero ter ajudado!"

		mockOracle.EXPECT().
			SearchListing(ctx, gomock.Any()).
			Return(raw, nil)

		leads, err := service.SearchBusinesses(ctx, "SP", "Campinas", "padarias")

		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "A", leads[0].Name)
		assert.Equal(t, "X", leads[0].Address)
		assert.Nil(t, leads[0].Rating)
		assert.Nil(t, leads[0].Phone)
		assert.Nil(t, leads[0].Website)
		assert.Equal(t, "new", leads[0].Status)
		assert.Contains(t, leads[0].ID, "lead-")
	})

	t.Run("Item com todos os campos - deve preservar rating numérico e contatos", func(t *testing.T) {
		raw := `[{"name": "Padaria Central", "address": "Rua Augusta, 100", "rating": 4.5, "phone": "(11) 99999-9999", "website": "https://site.com"}]`

		mockOracle.EXPECT().
			SearchListing(ctx, gomock.Any()).
			Return(raw, nil)

		leads, err := service.SearchBusinesses(ctx, "SP", "São Paulo", "padarias")

		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Padaria Central", leads[0].Name)
		require.NotNil(t, leads[0].Rating)
		assert.Equal(t, 4.5, *leads[0].Rating)
		require.NotNil(t, leads[0].Phone)
		assert.Equal(t, "(11) 99999-9999", *leads[0].Phone)
	})

	t.Run("Rating não numérico - deve ser descartado", func(t *testing.T) {
		raw := `[{"name": "Bar do Zé", "address": "Centro", "rating": "quatro e meio"}]`

		mockOracle.EXPECT().
			SearchListing(ctx, gomock.Any()).
			Return(raw, nil)

		leads, err := service.SearchBusinesses(ctx, "RJ", "Rio de Janeiro", "bares")

		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Nil(t, leads[0].Rating)
	})

	t.Run("Item sem nome e sem endereço - deve receber placeholders", func(t *testing.T) {
		raw := `[{"rating": 3.2}]`

		mockOracle.EXPECT().
			SearchListing(ctx, gomock.Any()).
			Return(raw, nil)

		leads, err := service.SearchBusinesses(ctx, "MG", "Belo Horizonte", "oficinas")

		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Negócio Desconhecido", leads[0].Name)
		assert.Equal(t, "Endereço não disponível", leads[0].Address)
	})

	t.Run("Resposta que não é array - deve falhar com resposta malformada", func(t *testing.T) {
		raw := `{"error": "não consegui listar"}`

		mockOracle.EXPECT().
			SearchListing(ctx, gomock.Any()).
			Return(raw, nil)

		leads, err := service.SearchBusinesses(ctx, "SP", "Santos", "hotéis")

		assert.Nil(t, leads)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("Texto irrecuperável - deve falhar com resposta malformada", func(t *testing.T) {
		raw := "Desculpe, não posso ajudar com isso."

		mockOracle.EXPECT().
			SearchListing(ctx, gomock.Any()).
			Return(raw, nil)

		leads, err := service.SearchBusinesses(ctx, "SP", "Sorocaba", "clínicas")

		assert.Nil(t, leads)
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("Resposta vazia - deve falhar com resposta vazia", func(t *testing.T) {
		mockOracle.EXPECT().
			SearchListing(ctx, gomock.Any()).
			Return("", nil)

		leads, err := service.SearchBusinesses(ctx, "SP", "Osasco", "mercados")

		assert.Nil(t, leads)
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("Array vazio - deve retornar lista vazia sem erro", func(t *testing.T) {
		mockOracle.EXPECT().
			SearchListing(ctx, gomock.Any()).
			Return("[]", nil)

		leads, err := service.SearchBusinesses(ctx, "AC", "Rio Branco", "livrarias")

		require.NoError(t, err)
		assert.Empty(t, leads)
	})
}

func TestProspectingService_SearchBusinesses_ClassificacaoDeErros(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleIntegrator(ctrl)
	service := NewService(configWithKey("AIzaSy-valid-key-123"), mockOracle)
	ctx := context.Background()

	tests := []struct {
		name         string
		upstreamErr  error
		wantSentinel error
		wantCode     string
	}{
		{
			name:         "Upstream 400 com chave rejeitada",
			upstreamErr:  genai.APIError{Code: http.StatusBadRequest, Message: "API key not valid. Please pass a valid API key."},
			wantSentinel: ErrInvalidAPIKey,
			wantCode:     apiErrors.ErrLeadInvalidAPIKey,
		},
		{
			name:         "Upstream 429 de cota excedida",
			upstreamErr:  genai.APIError{Code: http.StatusTooManyRequests, Message: "Resource has been exhausted"},
			wantSentinel: ErrQuotaExceeded,
			wantCode:     apiErrors.ErrLeadQuotaExceeded,
		},
		{
			name:         "Falha genérica do upstream",
			upstreamErr:  errors.New("context deadline exceeded"),
			wantSentinel: ErrOracleFailure,
			wantCode:     apiErrors.ErrLeadUpstreamFailure,
		},
		{
			name:         "Upstream 400 sem mensagem de chave - falha genérica",
			upstreamErr:  genai.APIError{Code: http.StatusBadRequest, Message: "invalid argument"},
			wantSentinel: ErrOracleFailure,
			wantCode:     apiErrors.ErrLeadUpstreamFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOracle.EXPECT().
				SearchListing(ctx, gomock.Any()).
				Return("", tt.upstreamErr)

			leads, err := service.SearchBusinesses(ctx, "SP", "São Paulo", "restaurantes")

			assert.Nil(t, leads)
			assert.ErrorIs(t, err, tt.wantSentinel)

			var prospErr *ProspectingError
			require.ErrorAs(t, err, &prospErr)
			assert.Equal(t, tt.wantCode, prospErr.Code)
		})
	}
}

func TestRepairJSONPayload(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "JSON limpo passa intacto",
			raw:  `[{"name":"A"}]`,
			want: `[{"name":"A"}]`,
		},
		{
			name: "Cerca de markdown removida",
			raw:  "```json\n[1,2]\n```",
			want: "[1,2]",
		},
		{
			name: "Texto antes e depois do array recortado",
			raw:  "Claro! Segue: [1,2] espero que ajude",
			want: "[1,2]",
		},
		{
			name: "Sem array - texto apenas sem cercas",
			raw:  "não há dados",
			want: "não há dados",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSONPayload(tt.raw))
		})
	}
}
