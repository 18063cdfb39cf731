package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runConsolidateObjectSparsing(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	ConsolidateObjectSparsing(prog)
	return jsgen.Generate(prog)
}

func TestConsolidateObjectSparsingMergesContiguousAssignments(t *testing.T) {
	got := runConsolidateObjectSparsing(t, `var obj = {}; obj.a = 1; obj.b = 2;`)
	assert.Equal(t, "var obj = { a: 1, b: 2 };\n", got)
}

func TestConsolidateObjectSparsingLeavesSingleAssignmentAlone(t *testing.T) {
	got := runConsolidateObjectSparsing(t, `var obj = {}; obj.a = 1; other();`)
	assert.Contains(t, got, "var obj = {};")
	assert.Contains(t, got, "obj.a = 1;")
}

func TestConsolidateObjectSparsingStopsAtNonAssignmentStatement(t *testing.T) {
	got := runConsolidateObjectSparsing(t, `var obj = {}; obj.a = 1; other(); obj.b = 2;`)
	assert.Contains(t, got, "var obj = {};")
	assert.Contains(t, got, "obj.a = 1;")
	assert.Contains(t, got, "obj.b = 2;")
}

func TestConsolidateObjectSparsingIgnoresComputedAssignment(t *testing.T) {
	got := runConsolidateObjectSparsing(t, `var obj = {}; obj["a"] = 1; obj.b = 2;`)
	assert.Contains(t, got, "var obj = {};")
}
