package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
	"github.com/aledsdavies/deobfjs/internal/state"
)

func TestDetectAndInlineStringArrayIndex(t *testing.T) {
	src := `var _0xabc = ["foo", "bar"]; var x = _0xabc[0]; var y = _0xabc[1];`
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)

	st := state.New()
	DetectStringArrays(prog, st)
	InlineArrayIndex(prog, st)

	got := jsgen.Generate(prog)
	assert.Equal(t, "var _0xabc = [\"foo\", \"bar\"];\nvar x = \"foo\";\nvar y = \"bar\";\n", got)
}

func TestDetectStringArrayIgnoresNonObfuscatedName(t *testing.T) {
	src := `var words = ["foo", "bar"]; var x = words[0];`
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)

	st := state.New()
	DetectStringArrays(prog, st)
	InlineArrayIndex(prog, st)

	got := jsgen.Generate(prog)
	assert.Equal(t, "var words = [\"foo\", \"bar\"];\nvar x = words[0];\n", got)
}

func TestRotateStringArraysAppliesRotation(t *testing.T) {
	src := `var _0xabc = ["foo", "bar", "baz"];
(function(arr) {
  for (var i = 0; i < 1; i++) {
    arr.push(arr.shift());
  }
})(_0xabc);`
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)

	st := state.New()
	DetectStringArrays(prog, st)
	RotateStringArrays(prog, st)

	require.True(t, st.StringArrays["_0xabc"].Rotated)
	assert.Equal(t, []string{"bar", "baz", "foo"}, st.StringArrays["_0xabc"].Strings)
}
