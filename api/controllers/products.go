package controllers

import (
	"net/http"
	"strings"
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

// ProductList serves one canonical page of products. Pages are memoized in
// the short-TTL cache keyed by filter and page; the cache only shortcuts, it
// never blocks the fetch path.
func ProductList(svc *catalog.Client, pages *cache.PageCache, m *metrics.GatewayMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		params, err := validators.ParsePageParams(r)
		if err != nil {
			m.IncRequest("products", http.StatusBadRequest)
			responses.WriteError(ctx, logg, w, err)
			return
		}
		filter := catalog.ProductFilter{CategoryID: strings.TrimSpace(r.URL.Query().Get("categoryId"))}

		var page pagination.Page[catalog.Product]
		key := pages.Key("products", filter.CategoryID, params)
		if pages.Get(ctx, key, &page) {
			m.IncCacheHit("products")
			m.IncRequest("products", http.StatusOK)
			responses.WriteList(w, page, params)
			return
		}
		m.IncCacheMiss("products")

		token := middleware.SessionFromContext(ctx).BearerToken()
		start := time.Now()
		page, err = svc.ListProducts(ctx, token, filter, params)
		m.ObserveUpstream("products", time.Since(start))
		if err != nil {
			m.IncRequest("products", http.StatusBadGateway)
			responses.WriteError(ctx, logg, w, err)
			return
		}

		pages.Set(ctx, key, page)
		m.IncRequest("products", http.StatusOK)
		responses.WriteList(w, page, params)
	}
}

// ProductGet serves one product by id.
func ProductGet(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.SessionFromContext(ctx).BearerToken()

		product, err := svc.GetProduct(ctx, token, chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductCreate creates a product through the admin surface.
func ProductCreate(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input catalog.CreateProductInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		product, err := svc.CreateProduct(ctx, token, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// ProductUpdate applies a partial update to a product.
func ProductUpdate(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input catalog.UpdateProductInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		product, err := svc.UpdateProduct(ctx, token, chi.URLParam(r, "productId"), input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductDelete removes a product.
func ProductDelete(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.SessionFromContext(ctx).BearerToken()

		if err := svc.DeleteProduct(ctx, token, chi.URLParam(r, "productId")); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ProductAddReview posts a review onto a product.
func ProductAddReview(svc *catalog.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input catalog.AddReviewInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		product, err := svc.AddReview(ctx, token, chi.URLParam(r, "productId"), input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}
