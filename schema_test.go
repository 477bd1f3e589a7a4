package oasprune_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reiwata/oasprune"
)

func TestAdditionalProperties_JSON(t *testing.T) {
	var s oasprune.Schema
	require.NoError(t, json.Unmarshal([]byte(`{"type":"object","additionalProperties":false}`), &s))
	require.NotNil(t, s.AdditionalProperties)
	require.NotNil(t, s.AdditionalProperties.Bool)
	assert.False(t, *s.AdditionalProperties.Bool)
	assert.Nil(t, s.AdditionalProperties.Schema)

	var s2 oasprune.Schema
	require.NoError(t, json.Unmarshal([]byte(`{"type":"object","additionalProperties":{"$ref":"#/components/schemas/V"}}`), &s2))
	require.NotNil(t, s2.AdditionalProperties)
	require.NotNil(t, s2.AdditionalProperties.Schema)
	assert.Equal(t, "#/components/schemas/V", s2.AdditionalProperties.Schema.Ref)

	out, err := json.Marshal(&s2)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"additionalProperties":{"$ref":"#/components/schemas/V"}`)
}

func TestAdditionalProperties_YAML(t *testing.T) {
	var s oasprune.Schema
	require.NoError(t, yaml.Unmarshal([]byte("type: object\nadditionalProperties: true\n"), &s))
	require.NotNil(t, s.AdditionalProperties)
	require.NotNil(t, s.AdditionalProperties.Bool)
	assert.True(t, *s.AdditionalProperties.Bool)

	var s2 oasprune.Schema
	require.NoError(t, yaml.Unmarshal([]byte("type: object\nadditionalProperties:\n  type: string\n"), &s2))
	require.NotNil(t, s2.AdditionalProperties)
	require.NotNil(t, s2.AdditionalProperties.Schema)
	assert.Equal(t, "string", s2.AdditionalProperties.Schema.Type)

	out, err := yaml.Marshal(&s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "additionalProperties: true")
}

func TestPathItem_Operations_FixedOrder(t *testing.T) {
	item := &oasprune.PathItem{
		Post: &oasprune.Operation{OperationID: "create"},
		Get:  &oasprune.Operation{OperationID: "list"},
	}
	ops := item.Operations()
	require.Len(t, ops, 2)
	assert.Equal(t, "get", ops[0].Method)
	assert.Equal(t, "post", ops[1].Method)
}
