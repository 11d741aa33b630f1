package geminiclient

import (
	"context"

	genai "google.golang.org/genai"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
)

// GenerateLeadListing envia o prompt de prospecção com grounding no Google
// Maps. A temperatura baixa maximiza a conformidade com o formato pedido;
// mesmo assim o texto retornado pode vir sujo e passa pelo reparo do caller.
func (c *GeminiClient) GenerateLeadListing(ctx context.Context, prompt string) (string, error) {
	if c.cli == nil {
		return "", ErrNoCredential
	}

	resp, err := c.cli.Models.GenerateContent(ctx, c.cfg.Gemini.LeadModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Tools:           []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
			MaxOutputTokens: c.cfg.Gemini.MaxOutputTokens,
			Temperature:     genai.Ptr[float32](0.1),
		},
	)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("gemini: falha na geração de leads")
		return "", err
	}

	return firstText(resp), nil
}
