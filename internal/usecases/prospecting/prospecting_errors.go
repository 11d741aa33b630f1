package prospecting

import (
	"errors"
	"fmt"
)

// Taxonomia de falhas da busca de leads. Nenhuma delas dispara retry
// automático; toda repetição é uma nova ação do usuário.
var (
	// Credencial ausente, placeholder ou implausível. Fatal para a operação.
	ErrAPIKeyMissing = errors.New("chave de API do Google não configurada ou inválida")

	// O oráculo respondeu sem nenhum texto.
	ErrEmptyResponse = errors.New("a IA não retornou texto")

	// O texto não é um array JSON válido mesmo após o reparo.
	ErrMalformedResponse = errors.New("falha ao processar a estrutura de dados retornada pela IA")

	// Classificados a partir do status do upstream, para mensagens ao usuário.
	ErrInvalidAPIKey = errors.New("chave de API inválida")
	ErrQuotaExceeded = errors.New("cota de requisições excedida")
	ErrOracleFailure = errors.New("erro ao consultar o oráculo generativo")
)

// ProspectingError é um erro com contexto adicional da busca de leads.
type ProspectingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProspectingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProspectingError) Unwrap() error {
	return e.Err
}

// NewProspectingError cria um novo erro de prospecção
func NewProspectingError(baseErr error, code string, details string) *ProspectingError {
	return &ProspectingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
