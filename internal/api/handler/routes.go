package handler

import (
	"net/http"

	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/datasets"
	"github.com/vfg2006/retail-analytics-api/pkg/middleware"
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Datasets(service datasets.DatasetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets",
			Method:      http.MethodGet,
			Handler:     ListDatasets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasets",
			Method:      http.MethodPost,
			Handler:     UploadDataset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/datasets/:id/summary",
			Method:      http.MethodGet,
			Handler:     GetDatasetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func UploadHistory(uploadRepo repository.UploadRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/uploads",
			Method:      http.MethodGet,
			Handler:     ListUploadHistory(uploadRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Insights(datasetService datasets.DatasetService, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets/:id/overview",
			Method:      http.MethodGet,
			Handler:     GetDatasetOverview(datasetService, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasets/:id/performance",
			Method:      http.MethodGet,
			Handler:     GetDatasetPerformance(datasetService, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasets/:id/categories",
			Method:      http.MethodGet,
			Handler:     GetDatasetCategories(datasetService, analyzer),
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
