package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yhaox11/SaaSBuilder/infrastructure/database/postgres"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/gemini/geminiclient"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/ibge"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/ibge/ibgeclient"
	"github.com/yhaox11/SaaSBuilder/infrastructure/repository"
	"github.com/yhaox11/SaaSBuilder/internal/api"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/scheduler"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/analyzing"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/authenticating"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/billing"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/chatting"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/metrics"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/prospecting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	if pgConn != nil {
		defer pgConn.Close()
	}

	profileRepo := repository.NewProfileRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)

	authenticator := authenticating.NewService(profileRepo, cfg)

	geminiClient, err := geminiclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cliente Gemini")
	}
	oracleIntegrator := gemini.New(cfg, geminiClient)

	ibgeClient := ibgeclient.NewClient(cfg)
	regionIntegrator, err := ibge.New(cfg, ibgeClient)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o integrador do IBGE")
	}

	metricsService := metrics.NewService(cfg, revenueRepo, profileRepo)
	billingService := billing.NewService(cfg, subscriptionRepo)
	prospectingService := prospecting.NewService(cfg, oracleIntegrator)
	chatService := chatting.NewService(cfg, oracleIntegrator)
	analyzerService := analyzing.NewService(cfg, oracleIntegrator)

	chatSweeper := scheduler.NewChatSessionSweeperService(chatService, cfg)
	if err := chatSweeper.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a varredura de sessões de chat")
	} else {
		logrus.Info("Varredura de sessões de chat iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		metricsService,
		billingService,
		prospectingService,
		chatService,
		analyzerService,
		regionIntegrator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria a conexão com o banco. A ausência ou falha do banco não impede
// o startup: os repositórios degradam para resultados vazios com conexão nil.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	if dbConfig.DSN == "" {
		logrus.Warn("DATABASE_URL ausente, consultas ao banco degradadas para resultados vazios")
		return nil
	}

	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao conectar ao PostgreSQL, consultas degradadas para resultados vazios")
		return nil
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
