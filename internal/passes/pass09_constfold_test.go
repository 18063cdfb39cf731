package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runFold(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	FoldConstants(prog)
	return jsgen.Generate(prog)
}

func TestFoldConstants(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"addition", "var x = 2 + 3;", "var x = 5;\n"},
		{"comparison", "var x = 5 > 3;", "var x = true;\n"},
		{"strict-equality", "var x = 1 === 1;", "var x = true;\n"},
		{"bitwise-or", "var x = 5 | 2;", "var x = 7;\n"},
		{"division-by-zero-preserved", "var x = 5 / 0;", "var x = 5 / 0;\n"},
		{"logical-and-both-literal", "var x = true && false;", "var x = false;\n"},
		{"logical-or-not-folded-on-call", "var x = false || foo();", "var x = false || foo();\n"},
		{"unary-minus", "var x = -(3 + 4);", "var x = -7;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runFold(t, tt.src)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFoldConstantsOverflowPreservesExpression(t *testing.T) {
	// 2^62 is exactly representable as float64 (a power of two); doubling
	// it overflows int64, so the original addition must survive
	// untouched rather than folding to a wrapped or wrong value.
	src := "var x = 4611686018427387904 + 4611686018427387904;"
	got := runFold(t, src)
	assert.Equal(t, "var x = 4611686018427387904 + 4611686018427387904;\n", got)
}
