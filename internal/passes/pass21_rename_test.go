package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runRename(t *testing.T, src string, strategy RenameStrategy) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	RenameVariables(prog, strategy)
	return jsgen.Generate(prog)
}

func TestRenameVariablesSequential(t *testing.T) {
	got := runRename(t, "var _0x1f2a = 1; console.log(_0x1f2a);", Sequential)
	assert.Equal(t, "var a = 1;\nconsole.log(a);\n", got)
}

func TestRenameVariablesSequentialKeepsDeclarationAndReferenceInSync(t *testing.T) {
	// The declarator's own binding name must come out identical to every
	// reference to it: renaming only the reads (and not the declaration
	// pattern itself, or vice versa) would desync the program.
	got := runRename(t, "function f(_0xaaa) { return _0xaaa + 1; }", Sequential)
	assert.Equal(t, "function f(a) {\n  return a + 1;\n}\n", got)
}

func TestRenameVariablesHashBasedDeterministic(t *testing.T) {
	got1 := runRename(t, "var _0x1f2a = 1; console.log(_0x1f2a);", HashBased)
	got2 := runRename(t, "var _0x1f2a = 1; console.log(_0x1f2a);", HashBased)
	assert.Equal(t, got1, got2)
	assert.NotContains(t, got1, "_0x1f2a")
}

func TestRenameVariablesNoBindingsIsNoOp(t *testing.T) {
	got := runRename(t, "console.log(1);", Sequential)
	assert.Equal(t, "console.log(1);\n", got)
}
