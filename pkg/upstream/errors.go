package upstream

import "fmt"

// StatusError is a non-2xx backend response, carried to the caller untouched.
// The normalization layer never reinterprets it; only the response writer maps
// it onto the gateway's own status.
type StatusError struct {
	StatusCode  int
	Method      string
	Path        string
	BodySnippet string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s %s returned %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether the backend answered 404.
func (e *StatusError) IsNotFound() bool {
	return e != nil && e.StatusCode == 404
}

// IsAuth reports whether the backend rejected the credentials.
func (e *StatusError) IsAuth() bool {
	return e != nil && (e.StatusCode == 401 || e.StatusCode == 403)
}
