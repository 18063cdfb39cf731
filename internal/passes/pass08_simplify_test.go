package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runSimplify(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	SimplifyExpressions(prog)
	return jsgen.Generate(prog)
}

func TestSimplifyExpressionsBooleanIdioms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"not-zero", "var x = !0;", "var x = true;\n"},
		{"not-one", "var x = !1;", "var x = false;\n"},
		{"double-not-empty-array", "var x = !![];", "var x = true;\n"},
		{"not-empty-array", "var x = ![];", "var x = false;\n"},
		{"plus-empty-array", "var x = +[];", "var x = 0;\n"},
		{"void-expr", "var x = void 0;", "var x = undefined;\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := runSimplify(t, tc.src)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSimplifyExpressionsBracketToDot(t *testing.T) {
	got := runSimplify(t, `var x = obj["name"];`)
	assert.Equal(t, "var x = obj.name;\n", got)
}

func TestSimplifyExpressionsLeavesNonIdentifierBracketAlone(t *testing.T) {
	got := runSimplify(t, `var x = obj["not valid"];`)
	assert.Contains(t, got, `obj["not valid"]`)
}

func TestSimplifyExpressionsAdjacentStringConcat(t *testing.T) {
	got := runSimplify(t, `var x = "foo" + "bar";`)
	assert.Equal(t, `var x = "foobar";`+"\n", got)
}

func TestSimplifyExpressionsRemovesDebugger(t *testing.T) {
	got := runSimplify(t, `debugger;`)
	assert.Equal(t, ";\n", got)
}
