package geminidomain

import (
	"errors"
	"net/http"
	"strings"

	genai "google.golang.org/genai"
)

// IsInvalidCredential verifica se o erro do upstream indica credencial
// rejeitada. A API responde 400 com a mensagem "API key not valid" nesse caso.
func IsInvalidCredential(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.Code == http.StatusBadRequest &&
		strings.Contains(apiErr.Message, "API key not valid")
}

// IsRateLimited verifica se o upstream respondeu 429 (cota excedida).
func IsRateLimited(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.Code == http.StatusTooManyRequests
}
