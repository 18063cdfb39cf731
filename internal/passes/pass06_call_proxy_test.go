package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runCallProxy(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	InlineCallProxies(prog)
	return jsgen.Generate(prog)
}

func TestInlineCallProxiesRewritesSingleCallSite(t *testing.T) {
	src := `function _0xp(a, b) { return target(a, b); }
var x = _0xp(1, 2);`
	got := runCallProxy(t, src)
	assert.Equal(t, "var x = target(1, 2);\n", got)
}

func TestInlineCallProxiesLeavesMultiCallSiteProxyAlone(t *testing.T) {
	src := `function _0xp(a, b) { return target(a, b); }
var x = _0xp(1, 2);
var y = _0xp(3, 4);`
	got := runCallProxy(t, src)
	assert.Contains(t, got, "function _0xp(a, b)")
	assert.Contains(t, got, "_0xp(1, 2)")
	assert.Contains(t, got, "_0xp(3, 4)")
}

func TestInlineCallProxiesLeavesMismatchedArgOrderAlone(t *testing.T) {
	src := `function _0xp(a, b) { return target(b, a); }
var x = _0xp(1, 2);`
	got := runCallProxy(t, src)
	assert.Contains(t, got, "function _0xp(a, b)")
	assert.Contains(t, got, "_0xp(1, 2)")
}
