package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runDeadCode(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	EliminateDeadCode(prog)
	return jsgen.Generate(prog)
}

func TestEliminateDeadCodeConstantIf(t *testing.T) {
	got := runDeadCode(t, "if (true) { foo(); } else { bar(); }")
	assert.Equal(t, "{\n  foo();\n}\n", got)
}

func TestEliminateDeadCodeConstantIfFalse(t *testing.T) {
	got := runDeadCode(t, "if (false) { foo(); } else { bar(); }")
	assert.Equal(t, "{\n  bar();\n}\n", got)
}

func TestEliminateDeadCodeConstantWhileFalse(t *testing.T) {
	got := runDeadCode(t, "while (false) { foo(); }")
	assert.Equal(t, ";\n", got)
}

func TestEliminateDeadCodeUnreachableAfterReturn(t *testing.T) {
	got := runDeadCode(t, "function f() { return 1; foo(); }")
	assert.Equal(t, "function f() {\n  return 1;\n}\n", got)
}

func TestEliminateDeadCodeDoesNotTouchDynamicCondition(t *testing.T) {
	src := "if (x) { foo(); } else { bar(); }"
	got := runDeadCode(t, src)
	assert.Equal(t, "if (x) {\n  foo();\n}\nelse {\n  bar();\n}\n", got)
}
