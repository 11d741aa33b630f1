package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/chatting"
)

// ChatSessionSweeperConfig representa a configuração da varredura de sessões ociosas
type ChatSessionSweeperConfig struct {
	CronSchedule string
	MaxIdle      time.Duration
	Enabled      bool
}

// ChatSessionSweeperService descarta periodicamente sessões de chat sem
// atividade, já que o estado vive só em memória e cresceria sem limite.
type ChatSessionSweeperService struct {
	scheduler   *gocron.Scheduler
	config      ChatSessionSweeperConfig
	chatService chatting.ChatService
	lastSweepAt time.Time
}

// NewChatSessionSweeperService cria uma nova instância do serviço de varredura de sessões
func NewChatSessionSweeperService(chatService chatting.ChatService, appConfig *config.Config) *ChatSessionSweeperService {
	sweeperConfig := ChatSessionSweeperConfig{
		CronSchedule: appConfig.ChatSweep.CronSchedule,
		MaxIdle:      time.Duration(appConfig.ChatSweep.MaxIdleMinutes) * time.Minute,
		Enabled:      appConfig.ChatSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    sweeperConfig.CronSchedule,
		"max_idle_minutes": appConfig.ChatSweep.MaxIdleMinutes,
		"sweep_enabled":    sweeperConfig.Enabled,
	}).Info("Configuração da varredura de sessões de chat carregada")

	return &ChatSessionSweeperService{
		scheduler:   scheduler,
		config:      sweeperConfig,
		chatService: chatService,
	}
}

// Start inicia o agendador
func (s *ChatSessionSweeperService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de sessões de chat desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de varredura de sessões de chat")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepIdleSessions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de sessões de chat: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de sessões de chat")
		s.scheduler.Stop()
	}()

	return nil
}

// sweepIdleSessions remove sessões sem atividade além do limite configurado
func (s *ChatSessionSweeperService) sweepIdleSessions() {
	s.lastSweepAt = time.Now()

	removed := s.chatService.RemoveIdleSessions(s.config.MaxIdle)

	logrus.WithFields(logrus.Fields{
		"removed_sessions": removed,
		"active_sessions":  s.chatService.ActiveSessions(),
	}).Info("Varredura de sessões de chat concluída")
}
