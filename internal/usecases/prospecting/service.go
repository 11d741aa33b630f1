package prospecting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini"
	geminidomain "github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini/domain"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/pkg/apiErrors"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
)

const (
	// Placeholders usados quando o modelo omite campos obrigatórios.
	unknownBusinessName = "Negócio Desconhecido"
	unknownAddress      = "Endereço não disponível"

	// Abaixo disso a credencial é tratada como implausível.
	minAPIKeyLength = 10
)

type LeadSearcher interface {
	SearchBusinesses(ctx context.Context, state, city, niche string) ([]domain.BusinessLead, error)
}

type Service struct {
	cfg    *config.Config
	oracle gemini.OracleIntegrator
}

func NewService(cfg *config.Config, oracle gemini.OracleIntegrator) LeadSearcher {
	return &Service{
		cfg:    cfg,
		oracle: oracle,
	}
}

// SearchBusinesses executa o pipeline de extração de leads: valida a
// credencial, consulta o oráculo com grounding de mapas, repara e parseia o
// texto retornado e coage cada item em um BusinessLead tipado.
//
// Duas chamadas com entradas idênticas não garantem leads idênticos: o
// oráculo continua não-determinístico mesmo em temperatura baixa.
func (s *Service) SearchBusinesses(ctx context.Context, state, city, niche string) ([]domain.BusinessLead, error) {
	logger := log.ForContext(ctx)

	if err := s.validateCredential(); err != nil {
		logger.WithError(err).Warn("prospecting: credencial do oráculo ausente ou inválida")
		return nil, err
	}

	prompt := buildLeadPrompt(state, city, niche)

	text, err := s.oracle.SearchListing(ctx, prompt)
	if err != nil {
		return nil, s.classifyOracleError(ctx, err)
	}

	if text == "" {
		return nil, NewProspectingError(ErrEmptyResponse, apiErrors.ErrLeadEmptyResponse, "A IA não retornou texto.")
	}

	repaired := repairJSONPayload(text)

	var parsed any
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		logger.WithError(err).WithField("repaired_payload", repaired).Error("prospecting: JSON inválido após reparo")
		return nil, NewProspectingError(ErrMalformedResponse, apiErrors.ErrLeadMalformedReply,
			"Falha ao processar a estrutura de dados retornada pela IA. Tente novamente.")
	}

	items, ok := parsed.([]any)
	if !ok {
		logger.WithField("repaired_payload", repaired).Error("prospecting: resposta não é um array")
		return nil, NewProspectingError(ErrMalformedResponse, apiErrors.ErrLeadMalformedReply,
			"Formato de resposta inválido (não é array).")
	}

	return mapLeads(items), nil
}

// validateCredential rejeita a busca antes de qualquer chamada quando a
// credencial está ausente, é um placeholder literal ou é curta demais.
func (s *Service) validateCredential() error {
	key := strings.TrimSpace(s.cfg.Gemini.APIKey)

	if key == "" || key == "undefined" || len(key) < minAPIKeyLength {
		return NewProspectingError(ErrAPIKeyMissing, apiErrors.ErrLeadAPIKeyMissing,
			"Chave de API do Google não configurada ou inválida.")
	}

	return nil
}

// buildLeadPrompt monta a instrução estrita de formatação. O modelo ainda
// pode desobedecer; o reparo em repairJSONPayload cobre esse caso.
func buildLeadPrompt(state, city, niche string) string {
	return fmt.Sprintf(`Atue como um sistema de API estrito.
Tarefa: Listar 20 estabelecimentos do nicho "%s" em %s, %s, Brasil.

Ferramentas: Use o Google Maps para validar nomes e endereços reais.

REGRAS DE FORMATAÇÃO (CRÍTICO):
1. Retorne APENAS o JSON puro. Não use markdown. Não escreva "Aqui está a lista".
2. O formato deve ser um ARRAY DE OBJETOS válido (iniciando com '[' e terminando com ']').
3. Use aspas duplas (") para todas as chaves e valores string.
4. Certifique-se de não deixar vírgulas sobrando no final de objetos ou arrays.

Estrutura do JSON:
[
  {
    "name": "Nome do Local",
    "address": "Endereço Completo",
    "rating": 4.5,
    "phone": "(11) 99999-9999",
    "website": "https://site.com"
  }
]`, niche, city, state)
}

// repairJSONPayload descarta o ruído conversacional que o modelo às vezes
// adiciona apesar das instruções: remove cercas de markdown e recorta do
// primeiro '[' ao último ']'.
func repairJSONPayload(raw string) string {
	cleaned := strings.NewReplacer("```json", "", "```", "").Replace(raw)

	firstOpen := strings.Index(cleaned, "[")
	lastClose := strings.LastIndex(cleaned, "]")

	if firstOpen != -1 && lastClose != -1 && lastClose > firstOpen {
		cleaned = cleaned[firstOpen : lastClose+1]
	}

	return strings.TrimSpace(cleaned)
}

// mapLeads coage cada elemento parseado em um BusinessLead. Campos ausentes
// recebem placeholders; rating só é mantido quando é numérico. O ID usa
// relógio de parede + índice, identidade suficiente para uma lista local de
// exibição.
func mapLeads(items []any) []domain.BusinessLead {
	now := time.Now().UnixMilli()

	leads := make([]domain.BusinessLead, 0, len(items))
	for index, item := range items {
		lead := domain.BusinessLead{
			ID:      fmt.Sprintf("lead-%d-%d", now, index),
			Name:    unknownBusinessName,
			Address: unknownAddress,
			Status:  domain.LeadStatusNew,
		}

		fields, ok := item.(map[string]any)
		if ok {
			if name := stringField(fields, "name"); name != "" {
				lead.Name = name
			}
			if address := stringField(fields, "address"); address != "" {
				lead.Address = address
			}
			if rating, ok := fields["rating"].(float64); ok {
				lead.Rating = &rating
			}
			if phone := stringField(fields, "phone"); phone != "" {
				lead.Phone = &phone
			}
			if website := stringField(fields, "website"); website != "" {
				lead.Website = &website
			}
		}

		leads = append(leads, lead)
	}

	return leads
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}

// classifyOracleError distingue as causas de falha do upstream para as
// mensagens ao usuário, preservando o erro original para log.
func (s *Service) classifyOracleError(ctx context.Context, err error) error {
	logger := log.ForContext(ctx)
	logger.WithError(err).Error("prospecting: falha na chamada ao oráculo")

	switch {
	case geminidomain.IsInvalidCredential(err):
		return NewProspectingError(ErrInvalidAPIKey, apiErrors.ErrLeadInvalidAPIKey,
			"Chave de API inválida. Verifique suas configurações.")

	case geminidomain.IsRateLimited(err):
		return NewProspectingError(ErrQuotaExceeded, apiErrors.ErrLeadQuotaExceeded,
			"Cota de requisições excedida. Tente novamente mais tarde.")

	default:
		return NewProspectingError(fmt.Errorf("%w: %v", ErrOracleFailure, err),
			apiErrors.ErrLeadUpstreamFailure, "")
	}
}
