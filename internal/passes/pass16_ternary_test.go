package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runTernarySimplify(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	SimplifyTernary(prog)
	return jsgen.Generate(prog)
}

func TestSimplifyTernaryTrueBranch(t *testing.T) {
	got := runTernarySimplify(t, "var x = true ? 1 : 2;")
	assert.Equal(t, "var x = 1;\n", got)
}

func TestSimplifyTernaryFalseBranch(t *testing.T) {
	got := runTernarySimplify(t, "var x = false ? 1 : 2;")
	assert.Equal(t, "var x = 2;\n", got)
}

func TestSimplifyTernaryLeavesNonConstantTestAlone(t *testing.T) {
	got := runTernarySimplify(t, "var x = cond ? 1 : 2;")
	assert.Contains(t, got, "cond ? 1 : 2")
}

func runTernaryToIf(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	TernaryToIf(prog)
	return jsgen.Generate(prog)
}

func TestTernaryToIfRewritesStandaloneTernaryStatement(t *testing.T) {
	got := runTernaryToIf(t, "cond ? doA() : doB();")
	assert.Contains(t, got, "if (cond)")
	assert.Contains(t, got, "doA();")
	assert.Contains(t, got, "else")
	assert.Contains(t, got, "doB();")
}

func TestTernaryToIfLeavesAssignedTernaryAlone(t *testing.T) {
	got := runTernaryToIf(t, "var x = cond ? doA() : doB();")
	assert.Contains(t, got, "cond ? doA() : doB()")
	assert.NotContains(t, got, "if (cond)")
}

func TestTernaryToIfLeavesArrowImplicitReturnAlone(t *testing.T) {
	got := runTernaryToIf(t, "var f = () => cond ? doA() : doB();")
	assert.Contains(t, got, "cond ? doA() : doB()")
	assert.NotContains(t, got, "if (cond)")
}

func runShortCircuitToIf(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	ShortCircuitToIf(prog)
	return jsgen.Generate(prog)
}

func TestShortCircuitToIfRewritesAnd(t *testing.T) {
	got := runShortCircuitToIf(t, "cond && doA();")
	assert.Contains(t, got, "if (cond)")
	assert.Contains(t, got, "doA();")
}

func TestShortCircuitToIfRewritesOrWithNegation(t *testing.T) {
	got := runShortCircuitToIf(t, "cond || doA();")
	assert.Contains(t, got, "if (!cond)")
	assert.Contains(t, got, "doA();")
}

func TestShortCircuitToIfLeavesNullishCoalescingAlone(t *testing.T) {
	got := runShortCircuitToIf(t, "cond ?? doA();")
	assert.Contains(t, got, "cond ?? doA();")
}
