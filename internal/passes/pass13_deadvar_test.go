package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runDeadVar(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	EliminateDeadVariables(prog)
	return jsgen.Generate(prog)
}

func TestEliminateDeadVariablesStripsUnreadPureDeclarator(t *testing.T) {
	got := runDeadVar(t, "var x = 1; console.log(2);")
	assert.NotContains(t, got, "var x")
	assert.Contains(t, got, "console.log(2);")
}

func TestEliminateDeadVariablesKeepsReadDeclarator(t *testing.T) {
	got := runDeadVar(t, "var x = 1; console.log(x);")
	assert.Contains(t, got, "var x = 1;")
}

func TestEliminateDeadVariablesKeepsImpureInitializer(t *testing.T) {
	got := runDeadVar(t, "var x = foo();")
	assert.Contains(t, got, "var x = foo();")
}

func TestEliminateDeadVariablesDropsOneDeclaratorFromMultiDecl(t *testing.T) {
	got := runDeadVar(t, "var x = 1, y = 2; console.log(y);")
	assert.NotContains(t, got, "x = 1")
	assert.Contains(t, got, "y = 2")
}

func TestEliminateDeadVariablesReplacesEmptyDeclarationWithEmptyStatement(t *testing.T) {
	got := runDeadVar(t, "var x = 1;")
	assert.Equal(t, ";\n", got)
}

func TestEliminateDeadVariablesKeepsParameter(t *testing.T) {
	got := runDeadVar(t, "function f(x) { return 1; }")
	assert.Contains(t, got, "function f(x)")
}
