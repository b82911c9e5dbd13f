package runblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateModelOverride(t *testing.T) {
	tests := []struct {
		name      string
		modelID   string
		apiKey    string
		defaults  ModelDefaults
		want      string
		wantField string
	}{
		{name: "nothing set", want: ""},
		{name: "pair set", modelID: "openai/gpt-4o-mini", apiKey: "sk-1", want: "openai/gpt-4o-mini"},
		{name: "openrouter prefix stripped", modelID: "openrouter/foo", apiKey: "sk-1", want: "foo"},
		{name: "only prefix stripped once", modelID: "openrouter/openrouter/foo", apiKey: "sk-1", want: "openrouter/foo"},
		{name: "key without model or default", apiKey: "sk-1", wantField: FieldModelAPIKey},
		{name: "key with default model", apiKey: "sk-1", defaults: ModelDefaults{Model: "default"}, want: ""},
		{name: "model without key or default", modelID: "foo", wantField: FieldModelID},
		{name: "model with default key", modelID: "openrouter/foo", defaults: ModelDefaults{APIKey: "sk-default"}, want: "foo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateModelOverride(tt.modelID, tt.apiKey, tt.defaults)
			if tt.wantField != "" {
				errs := FieldErrors(err)
				require.Len(t, errs, 1)
				assert.Equal(t, tt.wantField, errs[0].Field)
				assert.Equal(t, KindModelOverride, errs[0].Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateModelOverride_Messages(t *testing.T) {
	_, err := ValidateModelOverride("", "sk-1", ModelDefaults{})
	require.Error(t, err)
	assert.Equal(t, "op_model is required when no default OpenRouter model is configured", FieldErrors(err)[0].Message)

	_, err = ValidateModelOverride("foo", "", ModelDefaults{})
	require.Error(t, err)
	assert.Equal(t, "op_api_key is required when no default OpenRouter API key is configured", FieldErrors(err)[0].Message)
}
