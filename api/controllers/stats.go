package controllers

import (
	"net/http"

	"github.com/angelmondragon/storegate/api/middleware"
	"github.com/angelmondragon/storegate/api/responses"
	"github.com/angelmondragon/storegate/api/validators"
	"github.com/angelmondragon/storegate/internal/catalog"
	"github.com/angelmondragon/storegate/internal/dashboard"
	"github.com/angelmondragon/storegate/internal/stats"
	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
)

// StatsSales serves the per-category revenue aggregates.
func StatsSales(svc *stats.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.SessionFromContext(ctx).BearerToken()

		sales, err := svc.Sales(ctx, token)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, sales)
	}
}

// StatsProducts serves the per-product performance aggregates.
func StatsProducts(svc *stats.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.SessionFromContext(ctx).BearerToken()

		products, err := svc.Products(ctx, token)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// DashboardOverview serves the landing screen: a product page and the
// category strip, fetched in parallel.
func DashboardOverview(svc *dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		params, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		filter := catalog.ProductFilter{CategoryID: r.URL.Query().Get("categoryId")}

		token := middleware.SessionFromContext(ctx).BearerToken()
		overview, err := svc.Overview(ctx, token, filter, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, overview)
	}
}

// DashboardReport serves the admin reporting screen, both aggregate sets
// joined.
func DashboardReport(svc *dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		report, err := svc.Report(ctx, token)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, report)
	}
}
