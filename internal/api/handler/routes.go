package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository"
	"github.com/vfg2006/attribution-insights-api/internal/api/handler/router"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/attributing"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/attribution-insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

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
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Attribution(
	attributor attributing.Attributor,
	exporter reporting.Exporter,
	results repository.AttributionResultRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/attribution/models",
			Method:      http.MethodGet,
			Handler:     ListModels(attributor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/attribution/export",
			Method:      http.MethodGet,
			Handler:     ExportAttribution(exporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/attribution/report/:model",
			Method:      http.MethodGet,
			Handler:     GetAttributionReport(attributor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/attribution/snapshot/:model",
			Method:      http.MethodGet,
			Handler:     GetAttributionSnapshot(results),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Touchpoints(importer ingesting.Importer, repo repository.TouchpointRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/touchpoints/import",
			Method:      http.MethodPost,
			Handler:     ImportTouchpoints(importer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/touchpoints/stats",
			Method:      http.MethodGet,
			Handler:     GetTouchpointStats(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
