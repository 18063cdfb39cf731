package deobfuscate

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/deobfjs/internal/jsparser"
	"github.com/aledsdavies/deobfjs/internal/token"
)

// positionTransformer makes cmp.Equal ignore token.Position everywhere it
// appears in the tree: two trees built from different source text (one
// from the original input, one from the pipeline's own regenerated
// output) never share positions even when they're otherwise identical,
// so checking the output is a fixed point needs structural equality
// modulo position, not a byte-for-byte AST comparison.
var positionTransformer = cmp.Transformer("ast.Position", func(token.Position) token.Position {
	return token.Position{}
})

// VerifyIdempotent checks that running the pipeline twice produces the
// same tree as running it once: deobfuscate(deobfuscate(s)) must be
// textually, and therefore structurally, equivalent to deobfuscate(s).
// It runs the pipeline twice and diffs the two resulting trees with
// cmp.Equal, returning a human-readable diff when they differ. This
// backs the CLI's --verify-idempotent flag.
func VerifyIdempotent(source string) (ok bool, diff string, err error) {
	once, err := Deobfuscate(source)
	if err != nil {
		return false, "", fmt.Errorf("first pass: %w", err)
	}
	twice, err := Deobfuscate(once)
	if err != nil {
		return false, "", fmt.Errorf("second pass: %w", err)
	}

	onceTree, err := jsparser.Parse(once)
	if err != nil {
		return false, "", fmt.Errorf("reparsing first-pass output: %w", err)
	}
	twiceTree, err := jsparser.Parse(twice)
	if err != nil {
		return false, "", fmt.Errorf("reparsing second-pass output: %w", err)
	}

	if cmp.Equal(onceTree, twiceTree, positionTransformer) {
		return true, "", nil
	}
	return false, cmp.Diff(onceTree, twiceTree, positionTransformer), nil
}
