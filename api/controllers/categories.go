package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storegate/api/middleware"
	"github.com/angelmondragon/storegate/api/responses"
	"github.com/angelmondragon/storegate/api/validators"
	"github.com/angelmondragon/storegate/internal/catalog"
	"github.com/angelmondragon/storegate/pkg/cache"
	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/metrics"
	"github.com/angelmondragon/storegate/pkg/pagination"
)

// CategoryList serves one canonical page of categories, memoized like the
// product listing.
func CategoryList(svc *catalog.Client, pages *cache.PageCache, m *metrics.GatewayMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		params, err := validators.ParsePageParams(r)
		if err != nil {
			m.IncRequest("categories", http.StatusBadRequest)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var page pagination.Page[catalog.Category]
		key := pages.Key("categories", "", params)
		if pages.Get(ctx, key, &page) {
			m.IncCacheHit("categories")
			m.IncRequest("categories", http.StatusOK)
			responses.WriteList(w, page, params)
			return
		}
		m.IncCacheMiss("categories")

		token := middleware.SessionFromContext(ctx).BearerToken()
		start := time.Now()
		page, err = svc.ListCategories(ctx, token, params)
		m.ObserveUpstream("categories", time.Since(start))
		if err != nil {
			m.IncRequest("categories", http.StatusBadGateway)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		pages.Set(ctx, key, page)
		m.IncRequest("categories", http.StatusOK)
		responses.WriteList(w, page, params)
	}
}

// CategoryGet serves one category by id.
func CategoryGet(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.SessionFromContext(ctx).BearerToken()

		category, err := svc.GetCategory(ctx, token, chi.URLParam(r, "categoryId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, category)
	}
}

// CategoryCreate creates a category through the admin surface.
func CategoryCreate(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input catalog.CreateCategoryInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		category, err := svc.CreateCategory(ctx, token, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

// CategoryUpdate applies a partial update to a category.
func CategoryUpdate(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input catalog.UpdateCategoryInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		category, err := svc.UpdateCategory(ctx, token, chi.URLParam(r, "categoryId"), input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, category)
	}
}

// CategoryDelete removes a category.
func CategoryDelete(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.SessionFromContext(ctx).BearerToken()

		if err := svc.DeleteCategory(ctx, token, chi.URLParam(r, "categoryId")); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
