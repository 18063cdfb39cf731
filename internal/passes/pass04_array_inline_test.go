package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
	"github.com/aledsdavies/deobfjs/internal/state"
)

func TestInlineArrayIndexReplacesInBoundsAccess(t *testing.T) {
	src := `var _0xabc = ["foo", "bar"]; var x = _0xabc[1];`
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)

	st := state.New()
	DetectStringArrays(prog, st)
	InlineArrayIndex(prog, st)

	got := jsgen.Generate(prog)
	assert.Contains(t, got, `var x = "bar";`)
}

func TestInlineArrayIndexLeavesOutOfRangeAccessAlone(t *testing.T) {
	src := `var _0xabc = ["foo", "bar"]; var x = _0xabc[5];`
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)

	st := state.New()
	DetectStringArrays(prog, st)
	InlineArrayIndex(prog, st)

	got := jsgen.Generate(prog)
	assert.Contains(t, got, "var x = _0xabc[5];")
}

func TestInlineArrayIndexLeavesNegativeIndexAlone(t *testing.T) {
	src := `var _0xabc = ["foo", "bar"]; var x = _0xabc[-1];`
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)

	st := state.New()
	DetectStringArrays(prog, st)
	InlineArrayIndex(prog, st)

	got := jsgen.Generate(prog)
	assert.Contains(t, got, "_0xabc[-1]")
}
