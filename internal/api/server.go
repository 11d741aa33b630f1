package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/ibge"
	"github.com/yhaox11/SaaSBuilder/internal/api/handler"
	"github.com/yhaox11/SaaSBuilder/internal/api/handler/router"
	"github.com/yhaox11/SaaSBuilder/internal/config"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/analyzing"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/authenticating"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/billing"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/chatting"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/metrics"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/prospecting"
	"github.com/yhaox11/SaaSBuilder/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	metricsService metrics.MetricsDeriver,
	billingService billing.SubscriptionResolver,
	prospectingService prospecting.LeadSearcher,
	chatService chatting.ChatService,
	analyzerService analyzing.MetricsAnalyzer,
	regionService ibge.RegionIntegrator,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Users(authenticator)...),
		router.WithRoutes(handler.Metrics(metricsService, analyzerService)...),
		router.WithRoutes(handler.Billing(billingService)...),
		router.WithRoutes(handler.Prospecting(prospectingService)...),
		router.WithRoutes(handler.Chat(chatService, metricsService)...),
		router.WithRoutes(handler.Regions(regionService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
