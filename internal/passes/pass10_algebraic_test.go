package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runAlgebraic(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	SimplifyAlgebraic(prog)
	return jsgen.Generate(prog)
}

func TestSimplifyAlgebraicIdentities(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"self-subtract", "var y = x - x;", "var y = 0;\n"},
		{"mul-zero", "var y = x * 0;", "var y = 0;\n"},
		{"mul-one-right", "var y = x * 1;", "var y = x;\n"},
		{"mul-one-left", "var y = 1 * x;", "var y = x;\n"},
		{"self-divide", "var y = x / x;", "var y = 1;\n"},
		{"div-one", "var y = x / 1;", "var y = x;\n"},
		{"self-mod", "var y = x % x;", "var y = 0;\n"},
		{"self-xor", "var y = x ^ x;", "var y = 0;\n"},
		{"add-zero-right", "var y = x + 0;", "var y = x;\n"},
		{"add-zero-left", "var y = 0 + x;", "var y = x;\n"},
		{"logical-and-true-left", "var y = true && x;", "var y = x;\n"},
		{"logical-and-false-left", "var y = false && x;", "var y = false;\n"},
		{"logical-or-false-left", "var y = false || x;", "var y = x;\n"},
		{"logical-or-true-left", "var y = true || x;", "var y = true;\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := runAlgebraic(t, tc.src)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSimplifyAlgebraicDoesNotFoldDifferentIdents(t *testing.T) {
	got := runAlgebraic(t, "var y = x - z;")
	assert.Equal(t, "var y = x - z;\n", got)
}
