package controllers

import (
	"net/http"

	"github.com/angelmondragon/storegate/api/middleware"
	"github.com/angelmondragon/storegate/api/responses"
	"github.com/angelmondragon/storegate/api/validators"
	"github.com/angelmondragon/storegate/internal/accounts"
	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
)

type sessionPayload struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Login exchanges credentials for a session token and user snapshot.
func Login(svc *accounts.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable"))
			return
		}

		var input accounts.LoginInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sess, err := svc.Login(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, sessionPayload{Token: sess.Token, User: sess.User})
	}
}

// Register creates an account and returns the minted session.
func Register(svc *accounts.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable"))
			return
		}

		var input accounts.RegisterInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sess, err := svc.Register(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sessionPayload{Token: sess.Token, User: sess.User})
	}
}

// AdminRegister creates an admin account, authorized by the caller's own
// admin session.
func AdminRegister(svc *accounts.Client, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "accounts service unavailable"))
			return
		}

		var input accounts.RegisterInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		token := middleware.SessionFromContext(ctx).BearerToken()
		sess, err := svc.RegisterAdmin(ctx, token, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sessionPayload{Token: sess.Token, User: sess.User})
	}
}
