package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// EliminateDeadCode works bottom-up: `if`/`while` on a syntactic
// constant collapse to whichever branch survives, and any statement
// following a `return`/`throw`/`break`/`continue` inside the same block
// is unreachable and dropped. Truthiness here is syntactic — only
// boolean and numeric literals qualify — never evaluated.
func EliminateDeadCode(prog *ast.Program) {
	prog.Body = dropUnreachable(prog.Body)
	WalkBlocks(prog, deadCodeList)
	ast.RewriteProgram(prog, deadCodeStmt, nil)
}

func deadCodeList(stmts []ast.Statement) []ast.Statement {
	return dropUnreachable(stmts)
}

// dropUnreachable discards every statement in a block after the first
// return/throw/break/continue at that block's own nesting level.
func dropUnreachable(stmts []ast.Statement) []ast.Statement {
	for i, s := range stmts {
		if isTerminator(s) {
			return stmts[:i+1]
		}
	}
	return stmts
}

func isTerminator(s ast.Statement) bool {
	switch s.(type) {
	case *ast.ReturnStatement, *ast.ThrowStatement, *ast.BreakStatement, *ast.ContinueStatement:
		return true
	}
	return false
}

func deadCodeStmt(s ast.Statement) ast.Statement {
	switch n := s.(type) {
	case *ast.IfStatement:
		if truthy, ok := syntacticTruthy(n.Test); ok {
			if truthy {
				if b, ok := n.Consequent.(*ast.BlockStatement); ok {
					return b
				}
				return &ast.BlockStatement{Body: []ast.Statement{n.Consequent}, Position: n.Position}
			}
			if n.Alternate != nil {
				return n.Alternate
			}
			return &ast.EmptyStatement{Position: n.Position}
		}
	case *ast.WhileStatement:
		if truthy, ok := syntacticTruthy(n.Test); ok && !truthy {
			return &ast.EmptyStatement{Position: n.Position}
		}
	}
	return s
}

// syntacticTruthy reports (truthy, true) only for boolean and numeric
// literals, never attempting evaluation of anything else.
func syntacticTruthy(e ast.Expression) (bool, bool) {
	switch n := ast.Unwrap(e).(type) {
	case *ast.BooleanLiteral:
		return n.Value, true
	case *ast.NumberLiteral:
		return n.Value != 0, true
	}
	return false, false
}
