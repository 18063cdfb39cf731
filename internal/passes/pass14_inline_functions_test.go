package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runInlineFunctions(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	InlineFunctions(prog)
	return jsgen.Generate(prog)
}

func TestInlineFunctionsInlinesSingleUseSimpleFunction(t *testing.T) {
	got := runInlineFunctions(t, "function add(a, b) { return a + b; } console.log(add(1, 2));")
	assert.Equal(t, "console.log(1 + 2);\n", got)
	assert.NotContains(t, got, "function add")
}

func TestInlineFunctionsLeavesMultiUseFunctionAlone(t *testing.T) {
	got := runInlineFunctions(t, "function add(a, b) { return a + b; } console.log(add(1, 2)); console.log(add(3, 4));")
	assert.Contains(t, got, "function add")
}

func TestInlineFunctionsLeavesComplexBodyAlone(t *testing.T) {
	got := runInlineFunctions(t, "function f(a) { console.log(a); return a; } console.log(f(1));")
	assert.Contains(t, got, "function f")
}

func TestInlineFunctionsLeavesMismatchedArityAlone(t *testing.T) {
	got := runInlineFunctions(t, "function add(a, b) { return a + b; } console.log(add(1));")
	assert.Contains(t, got, "function add")
}

func TestInlineFunctionsLeavesFunctionWithBareReferenceAlone(t *testing.T) {
	got := runInlineFunctions(t, "function add(a, b) { return a + b; } console.log(add(1, 2)); var g = add;")
	assert.Contains(t, got, "function add")
	assert.Contains(t, got, "add(1, 2)")
}
