package gemini

import (
	"context"

	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini/geminiclient"
	"github.com/yhaox11/SaaSBuilder/internal/config"
)

// OracleIntegrator é a fachada consumida pelos usecases que dependem do
// oráculo generativo.
type OracleIntegrator interface {
	SearchListing(ctx context.Context, prompt string) (string, error)
	AnalyzeMetrics(ctx context.Context, prompt string) ([]byte, error)
	OpenChat(ctx context.Context, systemInstruction string) (geminiclient.ChatSession, error)
}

type GeminiService struct {
	cfg    *config.Config
	Client geminiclient.Client
}

func New(cfg *config.Config, client geminiclient.Client) OracleIntegrator {
	return &GeminiService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GeminiService) SearchListing(ctx context.Context, prompt string) (string, error) {
	return s.Client.GenerateLeadListing(ctx, prompt)
}

func (s *GeminiService) AnalyzeMetrics(ctx context.Context, prompt string) ([]byte, error) {
	return s.Client.GenerateAnalysis(ctx, prompt)
}

func (s *GeminiService) OpenChat(ctx context.Context, systemInstruction string) (geminiclient.ChatSession, error) {
	return s.Client.StartChat(ctx, systemInstruction)
}
