package geminiclient

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
	"github.com/yhaox11/SaaSBuilder/internal/config"
)

// ErrNoText indica que o oráculo respondeu sem nenhum candidato de texto.
var ErrNoText = errors.New("gemini: resposta sem texto")

// ErrNoCredential indica que o cliente foi criado sem chave de API.
var ErrNoCredential = errors.New("gemini: credencial ausente")

type Client interface {
	GenerateLeadListing(ctx context.Context, prompt string) (string, error)
	GenerateAnalysis(ctx context.Context, prompt string) ([]byte, error)
	StartChat(ctx context.Context, systemInstruction string) (ChatSession, error)
}

// ChatSession é uma sessão de conversa multi-turno com o oráculo.
type ChatSession interface {
	Send(ctx context.Context, message string) (string, error)
}

type GeminiClient struct {
	cfg *config.Config
	cli *genai.Client
}

func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	// Sem credencial o cliente existe mas toda chamada falha com
	// ErrNoCredential; cada usecase aplica seu próprio fallback.
	if cfg.Gemini.APIKey == "" {
		return &GeminiClient{cfg: cfg}, nil
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &GeminiClient{
		cfg: cfg,
		cli: cli,
	}, nil
}

// firstText extrai o texto do primeiro candidato da resposta.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	return candidate.Content.Parts[0].Text
}
