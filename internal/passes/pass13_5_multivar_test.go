package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runMultiVarSplit(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	SplitMultiVarDeclarations(prog)
	return jsgen.Generate(prog)
}

func TestSplitMultiVarDeclarationsSplitsEachDeclarator(t *testing.T) {
	got := runMultiVarSplit(t, "var a = 1, b = 2, c = 3;")
	assert.Equal(t, "var a = 1;\nvar b = 2;\nvar c = 3;\n", got)
}

func TestSplitMultiVarDeclarationsLeavesSingleDeclaratorAlone(t *testing.T) {
	got := runMultiVarSplit(t, "var a = 1;")
	assert.Equal(t, "var a = 1;\n", got)
}

func TestSplitMultiVarDeclarationsPreservesKind(t *testing.T) {
	got := runMultiVarSplit(t, "let a = 1, b = 2;")
	assert.Equal(t, "let a = 1;\nlet b = 2;\n", got)
}
