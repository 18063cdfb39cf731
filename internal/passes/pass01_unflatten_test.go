package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/deobfjs/internal/jsgen"
	"github.com/aledsdavies/deobfjs/internal/jsparser"
)

func runUnflatten(t *testing.T, src string) string {
	t.Helper()
	prog, err := jsparser.Parse(src)
	require.NoError(t, err)
	Unflatten(prog)
	return jsgen.Generate(prog)
}

func TestUnflattenDispatcherLoop(t *testing.T) {
	src := `var _seq = "1|0|2".split("|");
var _idx = 0;
while (true) {
  switch (_seq[_idx++]) {
    case "0":
      b();
      continue;
    case "1":
      a();
      continue;
    case "2":
      c();
      continue;
  }
  break;
}`
	got := runUnflatten(t, src)
	assert.Equal(t, "a();\nb();\nc();\n", got)
}

func TestUnflattenLeavesLoopAloneWhenSeqUsedElsewhere(t *testing.T) {
	src := `var _seq = "1|0".split("|");
var _idx = 0;
while (true) {
  switch (_seq[_idx++]) {
    case "0":
      b();
      continue;
    case "1":
      a();
      continue;
  }
  break;
}
console.log(_seq);`
	got := runUnflatten(t, src)
	assert.Contains(t, got, "while (true)")
}
