package handler

import (
	"net/http"

	"github.com/igdnd/sales-dashboard-api/internal/api/handler/router"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/cataloging"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/pricing"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/reporting"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/restocking"
	"github.com/igdnd/sales-dashboard-api/internal/usecases/selling"
	"github.com/igdnd/sales-dashboard-api/pkg/middleware"
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
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Catalog(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/catalog",
			Method:      http.MethodGet,
			Handler:     GetCatalog(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Prices(service pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/prices",
			Method:      http.MethodGet,
			Handler:     ListPrices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prices",
			Method:      http.MethodPut,
			Handler:     UpsertPrices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func SalesEntries(service selling.Seller) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales-entries",
			Method:      http.MethodPost,
			Handler:     SubmitSalesEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales-entries/preview",
			Method:      http.MethodPost,
			Handler:     PreviewSalesEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Inventory(service restocking.Restocker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/parts",
			Method:      http.MethodGet,
			Handler:     ListParts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/parts/:id/restock",
			Method:      http.MethodPost,
			Handler:     RestockPart(service),
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
