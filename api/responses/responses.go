package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/angelmondragon/storegate/pkg/errors"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/pagination"
	"github.com/angelmondragon/storegate/pkg/types"
	"github.com/angelmondragon/storegate/pkg/upstream"
)

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, types.SuccessEnvelope{Data: data})
}

// WriteList serves one canonical page under the stable list envelope.
func WriteList[T any](w http.ResponseWriter, page pagination.Page[T], params pagination.Params) {
	writeJSON(w, http.StatusOK, types.ListEnvelope[T]{
		Items: page.Items,
		Total: page.Total,
		Page:  params.Page,
		Limit: params.Limit,
	})
}

// WriteError maps an error onto the wire. A backend StatusError passes its
// status through verbatim; the gateway reports what the backend said, it does
// not reinterpret it. Everything else goes through the code taxonomy.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	logError(ctx, logg, err)

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		writeJSON(w, statusErr.StatusCode, types.ErrorEnvelope{
			Error: types.APIError{
				Code:    string(pkgerrors.CodeUpstream),
				Message: "upstream service error",
				Details: map[string]any{"upstream_status": statusErr.StatusCode},
			},
		})
		return
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeForbidden,
		pkgerrors.CodeUnauthorized,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := types.ErrorEnvelope{
		Error: types.APIError{
			Code:    string(typed.Code()),
			Message: msg,
		},
	}

	if meta.DetailsAllowed {
		if details := typed.Details(); details != nil {
			payload.Error.Details = details
		}
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

func logError(ctx context.Context, logg *logger.Logger, err error) {
	if logg == nil {
		return
	}
	dump := pkgerrors.Dump(err)
	fields := map[string]any{
		"error":       dump.TopMessage,
		"error_code":  dump.Code,
		"error_chain": dump.Chain,
	}
	if dump.UpstreamStatus != 0 {
		fields["upstream_status"] = dump.UpstreamStatus
		fields["upstream_method"] = dump.UpstreamMethod
		fields["upstream_path"] = dump.UpstreamPath
		fields["upstream_body"] = dump.UpstreamBody
	}
	ctx = logg.WithFields(ctx, fields)
	logg.Error(ctx, "request.error", err)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
