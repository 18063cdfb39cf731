package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runStrength(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	ReduceStrength(prog)
	return jsgen.Generate(prog)
}

func TestReduceStrengthMultiplyByPowerOfTwo(t *testing.T) {
	got := runStrength(t, "var y = x * 8;")
	assert.Equal(t, "var y = x << 3;\n", got)
}

func TestReduceStrengthDivideByPowerOfTwo(t *testing.T) {
	got := runStrength(t, "var y = x / 4;")
	assert.Equal(t, "var y = x >> 2;\n", got)
}

func TestReduceStrengthModuloByPowerOfTwo(t *testing.T) {
	got := runStrength(t, "var y = x % 4;")
	assert.Equal(t, "var y = x & 3;\n", got)
}

func TestReduceStrengthLeavesNonPowerOfTwoAlone(t *testing.T) {
	got := runStrength(t, "var y = x * 6;")
	assert.Equal(t, "var y = x * 6;\n", got)
}
