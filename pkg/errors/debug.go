package errors

import (
	"errors"
	"fmt"

	"github.com/angelmondragon/storegate/pkg/upstream"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	UpstreamStatus int    `json:"upstream_status,omitempty"`
	UpstreamMethod string `json:"upstream_method,omitempty"`
	UpstreamPath   string `json:"upstream_path,omitempty"`
	UpstreamBody   string `json:"upstream_body,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		d.UpstreamStatus = statusErr.StatusCode
		d.UpstreamMethod = statusErr.Method
		d.UpstreamPath = statusErr.Path
		d.UpstreamBody = statusErr.BodySnippet
	}

	return d
}
