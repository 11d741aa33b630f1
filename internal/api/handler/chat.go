package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/chatting"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/metrics"
	"github.com/yhaox11/SaaSBuilder/pkg/apiErrors"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"github.com/yhaox11/SaaSBuilder/pkg/middleware"
)

type OpenChatSessionResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []domain.ChatMessage `json:"messages"`
}

type SendChatMessageRequest struct {
	Text string `json:"text"`
}

// OpenChatSession abre uma sessão de chat já contextualizada com o snapshot
// de métricas do tenant.
func OpenChatSession(chatService chatting.ChatService, deriver metrics.MetricsDeriver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		dashboard := deriver.GetDashboardMetrics(r.Context(), userClaims.TenantID)

		session, err := chatService.OpenSession(r.Context(), dashboard)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("chat: erro ao abrir sessão")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao abrir sessão de chat", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(OpenChatSessionResponse{
			SessionID: session.ID,
			Messages:  session.Messages(),
		})
	})
}

// SendChatMessage envia um turno do usuário e retorna a resposta do modelo.
func SendChatMessage(chatService chatting.ChatService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if sessionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sessão não fornecido", nil)
			return
		}

		var req SendChatMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Text == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Texto da mensagem é obrigatório", nil)
			return
		}

		reply, err := chatService.SendMessage(r.Context(), sessionID, req.Text)
		if err != nil {
			handleChatError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	})
}

// GetChatHistory retorna o transcript completo da sessão.
func GetChatHistory(chatService chatting.ChatService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if sessionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sessão não fornecido", nil)
			return
		}

		messages, err := chatService.History(sessionID)
		if err != nil {
			handleChatError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messages)
	})
}

func handleChatError(w http.ResponseWriter, err error) {
	if errors.Is(err, chatting.ErrSessionNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrChatSessionNotFound, "Sessão de chat não encontrada", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro no serviço de chat", nil)
}
