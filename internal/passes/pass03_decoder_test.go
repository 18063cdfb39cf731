package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
	"github.com/aledsdavies/deobfjs/internal/state"
)

func TestDetectAndInlineDecoderWithOffset(t *testing.T) {
	src := `var _0xabc = ["foo", "bar", "baz"];
function _0xdec(p) {
  p = p - 1;
  return _0xabc[p];
}
var x = _0xdec(2);`
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)

	st := state.New()
	DetectStringArrays(prog, st)
	DetectDecoders(prog, st)
	InlineDecoderCalls(prog, st)

	got := jsgen.Generate(prog)
	assert.Contains(t, got, `var x = "bar";`)
}

func TestInlineDecoderCallsLeavesOutOfRangeCallAlone(t *testing.T) {
	src := `var _0xabc = ["foo"];
function _0xdec(p) {
  return _0xabc[p];
}
var x = _0xdec(5);`
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)

	st := state.New()
	DetectStringArrays(prog, st)
	DetectDecoders(prog, st)
	InlineDecoderCalls(prog, st)

	got := jsgen.Generate(prog)
	assert.Contains(t, got, "var x = _0xdec(5);")
}
