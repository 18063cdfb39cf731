package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runOperatorProxy(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	InlineOperatorProxies(prog)
	return jsgen.Generate(prog)
}

func TestInlineOperatorProxiesRewritesEveryCallSite(t *testing.T) {
	src := `function _0xop(a, b) { return a + b; }
var x = _0xop(1, 2);
var y = _0xop(3, 4);`
	got := runOperatorProxy(t, src)
	assert.Equal(t, "var x = 1 + 2;\nvar y = 3 + 4;\n", got)
}

func TestInlineOperatorProxiesLeavesWrongArityCallAlone(t *testing.T) {
	src := `function _0xop(a, b) { return a + b; }
var x = _0xop(1, 2, 3);`
	got := runOperatorProxy(t, src)
	assert.Contains(t, got, "_0xop(1, 2, 3)")
}

func TestInlineOperatorProxiesLeavesNonBinaryBodyAlone(t *testing.T) {
	src := `function _0xop(a, b) { return a; }
var x = _0xop(1, 2);`
	got := runOperatorProxy(t, src)
	assert.Contains(t, got, "function _0xop(a, b)")
	assert.Contains(t, got, "_0xop(1, 2)")
}
