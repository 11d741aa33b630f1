package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile é uma linha da tabela profiles. O tenant de todas as consultas
// de dados é o tenant_id do usuário autenticado.
type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	TenantID     string    `json:"tenant_id"`
	Status       string    `json:"status"`
	LastActive   time.Time `json:"last_active"`
	AvatarURL    *string   `json:"avatar_url"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Claims struct {
	UserID   string
	TenantID string
	Email    string
	Role     string
	jwt.RegisteredClaims
}
