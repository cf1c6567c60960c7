package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/pns-helper/payload"
)

func TestResponseBuilder_BuildJSONKeepsOrder(t *testing.T) {
	rb := NewResponseBuilder()
	out, err := rb.BuildJSON(mustJSON(t, `{"z": 1, "a": [true]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":[true]}`, string(out))
}

func TestResponseBuilder_BuildIndentedJSON(t *testing.T) {
	rb := NewResponseBuilder()
	out, err := rb.BuildIndentedJSON(payload.FromMapping(payload.NewMapping(payload.Field{Key: "k", Value: payload.String("v")})))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": \"v\"\n}", string(out))
}

func TestResponseBuilder_BuildXML(t *testing.T) {
	tree, err := BuildDocument(mustJSON(t, `{"k": "v"}`), "doc")
	require.NoError(t, err)

	out, err := NewResponseBuilder().BuildXML(tree)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<doc><k>v</k></doc>")
}
