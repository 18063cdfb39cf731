package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runIIFEUnwrap(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	IIFEUnwrap(prog)
	return jsgen.Generate(prog)
}

func TestIIFEUnwrapSplicesParameterlessWrapper(t *testing.T) {
	got := runIIFEUnwrap(t, `(function(){ foo(); bar(); })();`)
	assert.Equal(t, "foo();\nbar();\n", got)
}

func TestIIFEUnwrapAcceptsBareUnparenthesizedForm(t *testing.T) {
	got := runIIFEUnwrap(t, `function(){ foo(); }();`)
	assert.Equal(t, "foo();\n", got)
}

func TestIIFEUnwrapLeavesCallWithArgumentsAlone(t *testing.T) {
	got := runIIFEUnwrap(t, `(function(x){ foo(x); })(1);`)
	assert.Contains(t, got, "function")
}

func TestIIFEUnwrapAbortsOnNameCollision(t *testing.T) {
	got := runIIFEUnwrap(t, `var x = 1; (function(){ var x = 2; foo(x); })();`)
	assert.Contains(t, got, "function")
}

func TestIIFEUnwrapLeavesNamedFunctionCallAlone(t *testing.T) {
	got := runIIFEUnwrap(t, `function f(){ foo(); } f();`)
	assert.Contains(t, got, "function f")
	assert.Contains(t, got, "f();")
}
