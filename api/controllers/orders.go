package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storegate/api/middleware"
	"github.com/angelmondragon/storegate/api/responses"
	"github.com/angelmondragon/storegate/api/validators"
	"github.com/angelmondragon/storegate/internal/orders"
	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
)

// OrderList serves one canonical page of the caller's orders.
func OrderList(svc *orders.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		params, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		page, err := svc.List(ctx, token, params)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteList(w, page, params)
	}
}

// OrderGet serves one order by id.
func OrderGet(svc *orders.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.SessionFromContext(ctx).BearerToken()

		order, err := svc.Get(ctx, token, chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// OrderCreate places a new order for the caller.
func OrderCreate(svc *orders.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input orders.CreateOrderInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		order, err := svc.Create(ctx, token, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// OrderUpdateStatus moves an order to a new lifecycle state.
func OrderUpdateStatus(svc *orders.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input orders.UpdateStatusInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if !input.Status.IsValid() {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status").
				WithDetails(map[string]any{"status": input.Status}))
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		order, err := svc.UpdateStatus(ctx, token, chi.URLParam(r, "orderId"), input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// OrderFind runs the admin order search.
func OrderFind(svc *orders.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input orders.FindInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		page, err := svc.Find(ctx, token, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// OrderDelete removes an order.
func OrderDelete(svc *orders.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := middleware.SessionFromContext(ctx).BearerToken()

		if err := svc.Delete(ctx, token, chi.URLParam(r, "orderId")); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
