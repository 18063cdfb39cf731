package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runDispatcher(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	InlineDispatcherObjects(prog)
	return jsgen.Generate(prog)
}

func TestInlineDispatcherObjectsRewritesDotAndBracketCalls(t *testing.T) {
	src := `var _0xops = {
  add: function(a, b) { return 1; },
  name: function() { return "hello"; }
};
var x = _0xops.name();
var y = _0xops["name"]();`
	got := runDispatcher(t, src)
	assert.Contains(t, got, `var x = "hello";`)
	assert.Contains(t, got, `var y = "hello";`)
}

func TestInlineDispatcherObjectsLeavesCallsWithArgumentsAlone(t *testing.T) {
	src := `var _0xops = {
  name: function() { return "hello"; }
};
var x = _0xops.name(1);`
	got := runDispatcher(t, src)
	assert.Contains(t, got, "_0xops.name(1)")
}

func TestInlineDispatcherObjectsSkipsNonTrivialBody(t *testing.T) {
	src := `var _0xops = {
  calc: function(a) { console.log(a); return a; }
};
var x = _0xops.calc();`
	got := runDispatcher(t, src)
	assert.Contains(t, got, "_0xops.calc()")
}
