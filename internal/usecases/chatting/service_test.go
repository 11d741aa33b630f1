package chatting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini/geminiclient"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini/mocks"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/domain"
	"github.com/yhaox11/SaaSBuilder/pkg/log"
	"go.uber.org/mock/gomock"
)

func sampleMetrics() *domain.DashboardMetrics {
	return &domain.DashboardMetrics{
		TotalRevenue:  12500.50,
		RevenueGrowth: 12.5,
		AverageTicket: 250.75,
		NewCustomers:  8,
	}
}

func TestChatService_OpenSession(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleIntegrator(ctrl)
	mockChat := mocks.NewMockChatSession(ctrl)

	service := NewService(&config.Config{}, mockOracle)
	ctx := context.Background()

	t.Run("Sessão com métricas - instrução de sistema inclui o bloco de contexto", func(t *testing.T) {
		var captured string
		mockOracle.EXPECT().
			OpenChat(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, instruction string) (geminiclient.ChatSession, error) {
				captured = instruction
				return mockChat, nil
			})

		session, err := service.OpenSession(ctx, sampleMetrics())

		require.NoError(t, err)
		require.NotNil(t, session)
		assert.NotEmpty(t, session.ID)

		assert.Contains(t, captured, "CFO e Estrategista de Dados Sênior")
		assert.Contains(t, captured, "DADOS ATUAIS")
		assert.Contains(t, captured, "R$ 12.500,50")
		assert.Contains(t, captured, "New Customers: 8")

		messages := session.Messages()
		require.Len(t, messages, 1)
		assert.Equal(t, "welcome", messages[0].ID)
		assert.Equal(t, domain.ChatRoleModel, messages[0].Role)
		assert.Equal(t, "Dashboard conectado. Analisando métricas em tempo real. O que você precisa saber?", messages[0].Text)
	})

	t.Run("Sessão sem métricas - instrução de sistema sem bloco de contexto", func(t *testing.T) {
		var captured string
		mockOracle.EXPECT().
			OpenChat(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, instruction string) (geminiclient.ChatSession, error) {
				captured = instruction
				return mockChat, nil
			})

		session, err := service.OpenSession(ctx, nil)

		require.NoError(t, err)
		require.NotNil(t, session)
		assert.NotContains(t, captured, "DADOS ATUAIS")
	})

	t.Run("Falha ao abrir sessão com o oráculo - deve propagar o erro", func(t *testing.T) {
		mockOracle.EXPECT().
			OpenChat(ctx, gomock.Any()).
			Return(nil, errors.New("upstream indisponível"))

		session, err := service.OpenSession(ctx, nil)

		assert.Nil(t, session)
		assert.Error(t, err)
	})
}

func TestChatService_SendMessage(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleIntegrator(ctrl)
	mockChat := mocks.NewMockChatSession(ctrl)

	service := NewService(&config.Config{}, mockOracle)
	ctx := context.Background()

	openSession := func(t *testing.T) *Session {
		mockOracle.EXPECT().
			OpenChat(ctx, gomock.Any()).
			Return(mockChat, nil)

		session, err := service.OpenSession(ctx, nil)
		require.NoError(t, err)
		return session
	}

	t.Run("Envio com sucesso - transcript ganha turno do usuário e do modelo", func(t *testing.T) {
		session := openSession(t)

		mockChat.EXPECT().
			Send(ctx, "Qual foi a receita do mês?").
			Return("A receita foi de **R$ 12.500,50**.", nil)

		reply, err := service.SendMessage(ctx, session.ID, "Qual foi a receita do mês?")

		require.NoError(t, err)
		assert.Equal(t, domain.ChatRoleModel, reply.Role)
		assert.Equal(t, "A receita foi de **R$ 12.500,50**.", reply.Text)

		messages := session.Messages()
		require.Len(t, messages, 3) // welcome + usuário + modelo
		assert.Equal(t, domain.ChatRoleUser, messages[1].Role)
		assert.Equal(t, "Qual foi a receita do mês?", messages[1].Text)
		assert.Equal(t, reply.Text, messages[2].Text)
	})

	t.Run("Falha na chamada - turno do modelo vira mensagem de erro de conexão", func(t *testing.T) {
		session := openSession(t)

		mockChat.EXPECT().
			Send(ctx, "oi").
			Return("", errors.New("deadline exceeded"))

		reply, err := service.SendMessage(ctx, session.ID, "oi")

		require.NoError(t, err)
		assert.Equal(t, "Erro de conexão. Tente novamente.", reply.Text)
		assert.Equal(t, domain.ChatRoleModel, reply.Role)

		// A falha não remove o turno do usuário do transcript
		messages := session.Messages()
		require.Len(t, messages, 3)
		assert.Equal(t, "oi", messages[1].Text)
	})

	t.Run("Resposta vazia do modelo - placeholder de sem resposta", func(t *testing.T) {
		session := openSession(t)

		mockChat.EXPECT().
			Send(ctx, "oi").
			Return("", nil)

		reply, err := service.SendMessage(ctx, session.ID, "oi")

		require.NoError(t, err)
		assert.Equal(t, "Sem resposta do modelo.", reply.Text)
	})

	t.Run("Sessão inexistente - deve falhar com sessão não encontrada", func(t *testing.T) {
		reply, err := service.SendMessage(ctx, "nao-existe", "oi")

		assert.Nil(t, reply)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestChatService_History(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleIntegrator(ctrl)
	mockChat := mocks.NewMockChatSession(ctrl)

	service := NewService(&config.Config{}, mockOracle)
	ctx := context.Background()

	mockOracle.EXPECT().
		OpenChat(ctx, gomock.Any()).
		Return(mockChat, nil)

	session, err := service.OpenSession(ctx, nil)
	require.NoError(t, err)

	messages, err := service.History(session.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	_, err = service.History("nao-existe")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestChatService_RemoveIdleSessions(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockOracleIntegrator(ctrl)
	mockChat := mocks.NewMockChatSession(ctrl)

	service := NewService(&config.Config{}, mockOracle)
	ctx := context.Background()

	mockOracle.EXPECT().
		OpenChat(ctx, gomock.Any()).
		Return(mockChat, nil).
		Times(2)

	_, err := service.OpenSession(ctx, nil)
	require.NoError(t, err)
	_, err = service.OpenSession(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, service.ActiveSessions())

	// Com limite generoso nada é removido
	removed := service.RemoveIdleSessions(time.Hour)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 2, service.ActiveSessions())

	// Com limite zero tudo está ocioso
	removed = service.RemoveIdleSessions(0)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, service.ActiveSessions())
}
