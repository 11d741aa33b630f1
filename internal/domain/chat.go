package domain

import "time"

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage é um turno do transcript de uma sessão de chat.
// A sequência é append-only e vive apenas em memória durante a sessão.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
