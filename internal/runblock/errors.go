package runblock

import (
	"errors"

	"go.uber.org/multierr"
)

// ErrorKind classifies a field-scoped validation failure.
type ErrorKind string

const (
	// KindStructural is a wrong field type or a missing required field.
	KindStructural ErrorKind = "structural"
	// KindProxyURLFormat is a proxy URL that fails the scheme or grammar check.
	KindProxyURLFormat ErrorKind = "proxy_url_format"
	// KindModelOverride is a broken op_model/op_api_key pairing for the current defaults.
	KindModelOverride ErrorKind = "model_override_constraint"
	// KindCredentialType is a missing or unrecognized credential_type on a login request.
	KindCredentialType ErrorKind = "credential_type"
)

// ErrMalformedPayload is returned when the body is not a JSON object at all.
// No field-level validation is attempted in that case.
var ErrMalformedPayload = errors.New("payload must be a JSON object")

// FieldError names the offending field and why it was rejected.
type FieldError struct {
	Field   string    `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors flattens an error returned by one of the Validate functions
// into its field errors. Errors that are not field-scoped are skipped.
func FieldErrors(err error) []*FieldError {
	var out []*FieldError
	for _, e := range multierr.Errors(err) {
		var fe *FieldError
		if errors.As(e, &fe) {
			out = append(out, fe)
		}
	}
	return out
}

// IsValidationError reports whether err carries at least one field error.
func IsValidationError(err error) bool {
	return len(FieldErrors(err)) > 0
}
