package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// ListEnvelope is the canonical list payload the gateway serves for every
// entity: the stable contract the legacy backend never managed to converge on.
type ListEnvelope[T any] struct {
	Items []T  `json:"items"`
	Total *int `json:"total,omitempty"`
	Page  int  `json:"page"`
	Limit int  `json:"limit"`
}
