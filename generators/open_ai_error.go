package generators

// ProviderError carries a provider-side failure together with the request
// that triggered it. It is logged and passed through unchanged, never
// retried.
type ProviderError struct {
	Err     error
	Request ChatCompletionRequest
}

var _ error = ProviderError{}

func (p ProviderError) Error() string {
	return p.Err.Error()
}

func (p ProviderError) Unwrap() error {
	return p.Err
}

type ErrorResponse struct {
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code           any     `json:"code,omitempty"`
	Message        string  `json:"message,omitempty"`
	Param          *string `json:"param,omitempty"`
	Type           string  `json:"type,omitempty"`
	HTTPStatusCode int     `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}
