package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runUnwrapEmptyTryCatch(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	UnwrapEmptyTryCatch(prog)
	return jsgen.Generate(prog)
}

func TestUnwrapEmptyTryCatchHoistsTryBody(t *testing.T) {
	got := runUnwrapEmptyTryCatch(t, "try { foo(); } catch (e) {}")
	assert.Equal(t, "foo();\n", got)
	assert.NotContains(t, got, "try")
	assert.NotContains(t, got, "catch")
}

func TestUnwrapEmptyTryCatchLeavesNonEmptyCatchAlone(t *testing.T) {
	got := runUnwrapEmptyTryCatch(t, "try { foo(); } catch (e) { bar(); }")
	assert.Contains(t, got, "try")
	assert.Contains(t, got, "catch")
}

func TestUnwrapEmptyTryCatchLeavesFinallyAlone(t *testing.T) {
	got := runUnwrapEmptyTryCatch(t, "try { foo(); } catch (e) {} finally { cleanup(); }")
	assert.Contains(t, got, "try")
	assert.Contains(t, got, "finally")
}
