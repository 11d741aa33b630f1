package chatting

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"github.com/yhaox11/SaaSBuilder/pkg/utils"
)

var ErrSessionNotFound = errors.New("sessão de chat não encontrada")

const welcomeMessage = "Dashboard conectado. Analisando métricas em tempo real. O que você precisa saber?"

// Resposta exibida como turno do modelo quando a chamada ao oráculo falha.
const connectionErrorReply = "Erro de conexão. Tente novamente."

const emptyModelReply = "Sem resposta do modelo."

// Persona fixa do assistente. As regras de estilo vêm junto com a instrução
// de sistema em toda sessão.
const baseInstruction = `Atue como um CFO e Estrategista de Dados Sênior para este SaaS Enterprise.
Seu objetivo é fornecer respostas diretas, analíticas e funcionais.

REGRAS RÍGIDAS DE RESPOSTA:
1. ZERO PREENCHIMENTO: NUNCA inicie respostas com "Com certeza", "Claro", "Entendi", "Olá", "Como modelo de linguagem" ou "Baseado nos dados". Comece respondendo a pergunta imediatamente.
2. OBJETIVIDADE: Se o usuário perguntar um número, entregue o número e uma breve análise de contexto. Não conte a história da empresa a menos que perguntado.
3. NÃO SEJA ROBÓTICO: Evite padrões repetitivos como "Para otimizar X, sugiro Y". Varie a estrutura das frases. Fale como um executivo conversando com outro executivo.
4. CONTEXTO INTELIGENTE: Use os dados fornecidos, mas não os vomite de volta para o usuário a menos que sirva para embasar um argumento.
5. IDIOMA: Responda estritamente em Português do Brasil.`

const formattingInstruction = `
FORMATAÇÃO:
- Use **negrito** para destacar KPIs e números importantes.
- Use listas (* item) apenas quando houver 3 ou mais pontos de ação.
- Seja conciso.`

type ChatService interface {
	OpenSession(ctx context.Context, metrics *domain.DashboardMetrics) (*Session, error)
	SendMessage(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error)
	History(sessionID string) ([]domain.ChatMessage, error)
	RemoveIdleSessions(maxIdle time.Duration) int
	ActiveSessions() int
}

type Service struct {
	cfg    *config.Config
	oracle gemini.OracleIntegrator
	store  *sessionStore
}

func NewService(cfg *config.Config, oracle gemini.OracleIntegrator) ChatService {
	return &Service{
		cfg:    cfg,
		oracle: oracle,
		store:  newSessionStore(),
	}
}

// OpenSession abre uma sessão com a persona fixa e, quando o snapshot de
// métricas está disponível, um bloco de contexto factual. Métricas
// indisponíveis não bloqueiam o usuário: a sessão abre sem contexto.
func (s *Service) OpenSession(ctx context.Context, metrics *domain.DashboardMetrics) (*Session, error) {
	instruction := baseInstruction + formattingInstruction
	if metrics != nil {
		instruction += "\n\nDADOS ATUAIS (Use para análise factual):\n" + formatMetricsContext(metrics)
	}

	oracleChat, err := s.oracle.OpenChat(ctx, instruction)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("chat: falha ao abrir sessão com o oráculo")
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:     id,
		oracle: oracleChat,
	}
	session.append(domain.ChatMessage{
		ID:        "welcome",
		Role:      domain.ChatRoleModel,
		Text:      welcomeMessage,
		Timestamp: time.Now(),
	})

	s.store.put(session)

	log.ForContext(ctx).WithFields(log.Fields{
		"session_id":   id,
		"with_context": metrics != nil,
	}).Info("chat: sessão aberta")

	return session, nil
}

// SendMessage registra o turno do usuário, consulta o oráculo e registra a
// resposta. Falha na chamada vira um turno do modelo com a mensagem genérica
// de erro de conexão, nunca um erro estrutural.
func (s *Service) SendMessage(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error) {
	session, ok := s.store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	now := time.Now()
	session.append(domain.ChatMessage{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Role:      domain.ChatRoleUser,
		Text:      text,
		Timestamp: now,
	})

	replyText, err := session.oracle.Send(ctx, text)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", sessionID).Error("chat: falha ao enviar mensagem")
		replyText = connectionErrorReply
	} else if replyText == "" {
		replyText = emptyModelReply
	}

	reply := domain.ChatMessage{
		ID:        strconv.FormatInt(now.UnixMilli()+1, 10),
		Role:      domain.ChatRoleModel,
		Text:      replyText,
		Timestamp: time.Now(),
	}
	session.append(reply)

	return &reply, nil
}

func (s *Service) History(sessionID string) ([]domain.ChatMessage, error) {
	session, ok := s.store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session.Messages(), nil
}

func (s *Service) RemoveIdleSessions(maxIdle time.Duration) int {
	return s.store.removeIdle(maxIdle)
}

func (s *Service) ActiveSessions() int {
	return s.store.size()
}

// formatMetricsContext monta o bloco factual enviado na instrução de sistema,
// com valores monetários no formato brasileiro.
func formatMetricsContext(metrics *domain.DashboardMetrics) string {
	return fmt.Sprintf(`Total Revenue: R$ %s
Revenue Growth: %.1f%%
Average Ticket: R$ %s
New Customers: %d
Customer Growth: %.1f%%`,
		utils.FormatMoneyBR(metrics.TotalRevenue),
		metrics.RevenueGrowth,
		utils.FormatMoneyBR(metrics.AverageTicket),
		metrics.NewCustomers,
		metrics.CustomerGrowth,
	)
}
