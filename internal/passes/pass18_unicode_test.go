package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runUnicode(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	NormalizeUnicode(prog)
	return jsgen.Generate(prog)
}

func TestNormalizeUnicodeStripsZeroWidthJoiners(t *testing.T) {
	// f​‌oo is "foo" seasoned with a zero-width space and a
	// zero-width non-joiner between the letters.
	src := "var f​‌oo = 1; console.log(f​‌oo);"
	got := runUnicode(t, src)
	assert.Equal(t, "var foo = 1;\nconsole.log(foo);\n", got)
}

func TestNormalizeUnicodeReplacesConfusableHomoglyphs(t *testing.T) {
	// the second letter of "fаoo" is Cyrillic а (U+0430), not Latin a.
	src := "var fаoo = 1; console.log(fаoo);"
	got := runUnicode(t, src)
	assert.Equal(t, "var faoo = 1;\nconsole.log(faoo);\n", got)
}

func TestNormalizeUnicodeCleansStringLiteralsWithoutRename(t *testing.T) {
	src := "var x = \"a​b\";"
	got := runUnicode(t, src)
	assert.Equal(t, "var x = \"ab\";\n", got)
}

func TestNormalizeUnicodeLeavesCleanIdentifiersAlone(t *testing.T) {
	src := "var foo = 1; console.log(foo);"
	got := runUnicode(t, src)
	assert.Equal(t, "var foo = 1;\nconsole.log(foo);\n", got)
}
