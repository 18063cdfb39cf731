package deobfuscate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jserrors"
	"github.com/aledsdavies/deobfjs/internal/passes"
)

func TestDeobfuscateFoldsAndCleansUpSimpleExpression(t *testing.T) {
	out, err := Deobfuscate("var x = 2 + 3; console.log(x); if (false) { unused(); }")
	require.NoError(t, err)
	assert.Equal(t, "var x = 5;\nconsole.log(x);\n;\n", out)
}

func TestDeobfuscatePropagatesParseFailureWithoutPartialOutput(t *testing.T) {
	out, err := Deobfuscate("var x = ;")
	require.Error(t, err)
	assert.Empty(t, out)

	var deobfErr *jserrors.DeobfuscateError
	require.True(t, errors.As(err, &deobfErr))
	assert.Equal(t, jserrors.KindParseFailure, deobfErr.Kind)
}

func TestDeobfuscateWithOptionsPrettyRenamesBindings(t *testing.T) {
	out, err := DeobfuscateWithOptions("var _0xfee1 = 1; console.log(_0xfee1);", Options{
		Pretty:         true,
		RenameStrategy: passes.Sequential,
	})
	require.NoError(t, err)
	assert.Equal(t, "var a = 1;\nconsole.log(a);\n", out)
}

func TestDeobfuscateDefaultOptionsSkipRename(t *testing.T) {
	out, err := Deobfuscate("var _0xfee1 = 1; console.log(_0xfee1);")
	require.NoError(t, err)
	assert.Contains(t, out, "_0xfee1")
}

func TestVerifyIdempotentHoldsOnFoldableInput(t *testing.T) {
	ok, diff, err := VerifyIdempotent("var x = 2 + 3; console.log(x);")
	require.NoError(t, err)
	assert.True(t, ok, "expected idempotence, got diff:\n%s", diff)
}
