package runblock

import (
	"strings"

	"go.uber.org/multierr"
)

const (
	openRouterPrefix = "openrouter/"

	modelIDRequiredMessage     = "op_model is required when no default OpenRouter model is configured"
	modelAPIKeyRequiredMessage = "op_api_key is required when no default OpenRouter API key is configured"
)

// ModelDefaults is the process-wide default model configuration. It is read
// only during validation.
type ModelDefaults struct {
	Model  string
	APIKey string
}

// NormalizeModelID strips the openrouter/ provider prefix.
func NormalizeModelID(id string) string {
	return strings.TrimPrefix(id, openRouterPrefix)
}

// ValidateModelOverride checks the op_model/op_api_key pairing against the
// defaults. Both rules read the raw sibling values, so the result does not
// depend on which field is checked first. On success the normalized model
// id is returned.
func ValidateModelOverride(modelID, apiKey string, defaults ModelDefaults) (string, error) {
	var err error
	if apiKey != "" && modelID == "" && defaults.Model == "" {
		err = multierr.Append(err, &FieldError{Field: FieldModelAPIKey, Kind: KindModelOverride, Message: modelIDRequiredMessage})
	}
	if modelID != "" && apiKey == "" && defaults.APIKey == "" {
		err = multierr.Append(err, &FieldError{Field: FieldModelID, Kind: KindModelOverride, Message: modelAPIKeyRequiredMessage})
	}
	if err != nil {
		return "", err
	}
	return NormalizeModelID(modelID), nil
}
