package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"github.com/tidwall/gjson"
)

func TestDocRegistered(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	require.True(t, gjson.Valid(doc))

	assert.Equal(t, "Run Block Gateway API", gjson.Get(doc, "info.title").String())
	assert.True(t, gjson.Get(doc, `paths./run-blocks/login.post`).Exists())
	assert.Equal(t, "#/definitions/dto.RejectionResponse",
		gjson.Get(doc, `paths./run-blocks/validate.post.responses.422.schema.allOf.1.properties.data.$ref`).String())
	assert.Len(t, gjson.Get(doc, "definitions.runblock\\.ErrorKind.enum").Array(), 4)
}
