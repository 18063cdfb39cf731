package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runNormalizeLiterals(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	NormalizeLiterals(prog)
	return jsgen.Generate(prog)
}

func TestNormalizeLiteralsVoidZeroBecomesUndefined(t *testing.T) {
	got := runNormalizeLiterals(t, "var x = void 0;")
	assert.Equal(t, "var x = undefined;\n", got)
}

func TestNormalizeLiteralsHexBecomesDecimal(t *testing.T) {
	got := runNormalizeLiterals(t, "var x = 0xff;")
	assert.Equal(t, "var x = 255;\n", got)
}

func TestNormalizeLiteralsBinaryBecomesDecimal(t *testing.T) {
	got := runNormalizeLiterals(t, "var x = 0b101;")
	assert.Equal(t, "var x = 5;\n", got)
}

func TestNormalizeLiteralsOctalBecomesDecimal(t *testing.T) {
	got := runNormalizeLiterals(t, "var x = 0o17;")
	assert.Equal(t, "var x = 15;\n", got)
}

func TestNormalizeLiteralsLeavesDecimalAlone(t *testing.T) {
	got := runNormalizeLiterals(t, "var x = 42;")
	assert.Equal(t, "var x = 42;\n", got)
}
