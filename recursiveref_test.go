package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A classic "extensible list" schema: the base schema recursively anchors
// itself, and an extending schema replaces what $recursiveRef resolves to
// for anything evaluated underneath it.
const recursiveBaseSchema = `{
	"$schema": "https://json-schema.org/draft/2019-09/schema",
	"$id": "https://example.com/tree-base",
	"$recursiveAnchor": true,
	"type": "object",
	"properties": {
		"children": {
			"type": "array",
			"items": {"$recursiveRef": "#"}
		}
	}
}`

func TestRecursiveRefFollowsOwnAnchorWhenNotExtended(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(recursiveBaseSchema))
	require.NoError(t, err)

	valid := map[string]interface{}{
		"children": []interface{}{
			map[string]interface{}{"children": []interface{}{}},
		},
	}
	result, err := Evaluate(schema, valid, NewOptions())
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	invalid := map[string]interface{}{
		"children": []interface{}{"not-an-object"},
	}
	result, err = Evaluate(schema, invalid, NewOptions())
	require.NoError(t, err)
	assert.False(t, result.IsValid())
}

func TestRecursiveRefUnresolvedAborts(t *testing.T) {
	schema := &Schema{
		RecursiveRef: "#",
	}

	_, err := Evaluate(schema, map[string]interface{}{}, NewOptions())
	require.Error(t, err)

	var refErr *ReferenceResolutionError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "#", refErr.URI)
}

func TestRecursiveAnchorPrefersOutermostOverOwnResolution(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(recursiveBaseSchema))
	require.NoError(t, err)

	// Manually install a fake "extending" schema as the outermost anchor by
	// pushing it onto the scope before evaluating: LookupRecursiveAnchor must
	// win over the statically ResolvedRecursiveRef, per the $recursiveRef
	// resolution rule (prefer the dynamic outermost anchor).
	anchored := true
	extending := &Schema{
		RecursiveAnchor: &anchored,
		Type:            SchemaType{"object"},
		compiler:        compiler,
	}

	ds := newDynamicScopeWithOptions(NewOptions(), DefaultDialect())
	ds.Push(extending)

	// The child's "children" is not an array: it fails the base schema but
	// passes the extending one, so the result is valid only if $recursiveRef
	// resolved to the extending schema.
	result, _, _ := schema.evaluate(map[string]interface{}{
		"children": []interface{}{
			map[string]interface{}{"children": "not-an-array"},
		},
	}, ds)
	require.NotNil(t, result)
	assert.True(t, result.IsValid())
}
