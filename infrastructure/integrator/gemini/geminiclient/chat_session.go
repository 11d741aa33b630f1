package geminiclient

import (
	"context"

	genai "google.golang.org/genai"
)

type geminiChat struct {
	chat *genai.Chat
}

// StartChat abre uma sessão multi-turno com a instrução de sistema fornecida.
// O histórico fica sob custódia do SDK; o transcript exibido ao usuário é
// mantido pela camada de usecases.
func (c *GeminiClient) StartChat(ctx context.Context, systemInstruction string) (ChatSession, error) {
	if c.cli == nil {
		return nil, ErrNoCredential
	}

	chat, err := c.cli.Chats.Create(ctx, c.cfg.Gemini.Model,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.6),
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &geminiChat{chat: chat}, nil
}

func (s *geminiChat) Send(ctx context.Context, message string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", err
	}

	return firstText(resp), nil
}
