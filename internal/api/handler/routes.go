package handler

import (
	"net/http"

	"github.com/yhaox11/SaaSBuilder/infrastructure/integrator/ibge"
	"github.com/yhaox11/SaaSBuilder/internal/api/handler/router"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/analyzing"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/authenticating"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/billing"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/chatting"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/metrics"
	"github.com/yhaox11/SaaSBuilder/internal/usecases/prospecting"
	"github.com/yhaox11/SaaSBuilder/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Metrics(deriver metrics.MetricsDeriver, analyzer analyzing.MetricsAnalyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     GetDashboardMetrics(deriver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/analysis",
			Method:      http.MethodGet,
			Handler:     GetMetricsAnalysis(deriver, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Billing(resolver billing.SubscriptionResolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/billing/subscription",
			Method:      http.MethodGet,
			Handler:     GetSubscription(resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Prospecting(searcher prospecting.LeadSearcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads/search",
			Method:      http.MethodPost,
			Handler:     SearchLeads(searcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Chat(chatService chatting.ChatService, deriver metrics.MetricsDeriver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chat/sessions",
			Method:      http.MethodPost,
			Handler:     OpenChatSession(chatService, deriver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/sessions/:id/messages",
			Method:      http.MethodPost,
			Handler:     SendChatMessage(chatService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/sessions/:id/messages",
			Method:      http.MethodGet,
			Handler:     GetChatHistory(chatService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Regions(service ibge.RegionIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/regions/states/:uf/cities",
			Method:      http.MethodGet,
			Handler:     ListStateCities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
