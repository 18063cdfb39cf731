package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runLocalInline(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	LocalInline(prog)
	return jsgen.Generate(prog)
}

func TestLocalInlineArrayAccessUnpack(t *testing.T) {
	got := runLocalInline(t, `var x = ["a", "b", "c"][1];`)
	assert.Equal(t, "var x = \"b\";\n", got)
}

func TestLocalInlineArrayAccessOutOfBoundsLeftAlone(t *testing.T) {
	got := runLocalInline(t, `var x = ["a", "b"][5];`)
	assert.Contains(t, got, `["a", "b"][5]`)
}

func TestLocalInlineDynamicPropertyToDot(t *testing.T) {
	got := runLocalInline(t, `var x = obj["name"];`)
	assert.Equal(t, "var x = obj.name;\n", got)
}

func TestLocalInlineDynamicPropertyConcatToDot(t *testing.T) {
	got := runLocalInline(t, `var x = obj["na" + "me"];`)
	assert.Equal(t, "var x = obj.name;\n", got)
}

func TestLocalInlineLeavesInvalidIdentifierKeyAlone(t *testing.T) {
	got := runLocalInline(t, `var x = obj["not valid"];`)
	assert.Contains(t, got, `obj["not valid"]`)
}
