package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// UnwrapEmptyTryCatch replaces `try B catch(_) {}` — a try whose catch
// block is empty — with B's statements hoisted directly into the
// enclosing list. `try ... finally ...` is untouched, since removing the
// try there would drop the finally's guarantee to run.
func UnwrapEmptyTryCatch(prog *ast.Program) {
	WalkBlocks(prog, unwrapEmptyTryCatchList)
}

func unwrapEmptyTryCatchList(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		if body, ok := emptyCatchBody(s); ok {
			out = append(out, body...)
			continue
		}
		out = append(out, s)
	}
	return out
}

func emptyCatchBody(s ast.Statement) ([]ast.Statement, bool) {
	t, ok := s.(*ast.TryStatement)
	if !ok || t.Handler == nil || t.Finalizer != nil {
		return nil, false
	}
	if len(t.Handler.Body.Body) != 0 {
		return nil, false
	}
	return t.Block.Body, true
}
