package geminiclient

import (
	"context"

	genai "google.golang.org/genai"
)

// Schema da análise de métricas. A geração restrita por schema devolve
// exatamente os três campos esperados pelo dashboard.
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"insight": {
			Type:        genai.TypeString,
			Description: "Resumo executivo direto da performance (máximo 20 palavras).",
		},
		"recommendation": {
			Type:        genai.TypeString,
			Description: "Uma ação estratégica concreta.",
		},
		"riskLevel": {
			Type:        genai.TypeString,
			Description: "Nível de risco do negócio: low, medium ou high.",
		},
	},
	Required: []string{"insight", "recommendation", "riskLevel"},
}

// GenerateAnalysis executa a chamada single-shot restrita por schema e
// retorna o JSON bruto produzido pelo modelo.
func (c *GeminiClient) GenerateAnalysis(ctx context.Context, prompt string) ([]byte, error) {
	if c.cli == nil {
		return nil, ErrNoCredential
	}

	resp, err := c.cli.Models.GenerateContent(ctx, c.cfg.Gemini.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   analysisSchema,
		},
	)
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, ErrNoText
	}

	return []byte(text), nil
}
