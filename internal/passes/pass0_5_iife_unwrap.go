package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// IIFEUnwrap splices the body of a parameterless, immediately-invoked
// function expression statement directly into its enclosing statement
// list, dropping the wrapper once nothing inside it depends on being
// hidden from the surrounding scope.
//
// `(function(){ ...body... })();` is the single most common bundler/
// obfuscator wrapper; once nothing inside needs the extra scope it hides,
// flattening it out lets every later pass (control-flow unflattening in
// particular) see the wrapped statements at the same statement-list level
// as everything else instead of one block deeper.
func IIFEUnwrap(prog *ast.Program) {
	declaredOutside := topLevelNames(prog.Body)
	WalkBlocks(prog, func(stmts []ast.Statement) []ast.Statement {
		out := make([]ast.Statement, 0, len(stmts))
		for _, s := range stmts {
			if body, ok := iifeBody(s); ok && safeToUnwrap(body, declaredOutside) {
				out = append(out, body.Body...)
				continue
			}
			out = append(out, s)
		}
		return out
	})
}

// iifeBody reports whether s is `(function(){...})();` (or the bare,
// unparenthesized `function(){...}();` form some generators emit) with
// no parameters and no call arguments, returning its body block.
func iifeBody(s ast.Statement) (*ast.BlockStatement, bool) {
	es, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return nil, false
	}
	call, ok := ast.Unwrap(es.Expr).(*ast.CallExpression)
	if !ok || len(call.Args) != 0 {
		return nil, false
	}
	fn, ok := ast.Unwrap(call.Callee).(*ast.FunctionExpression)
	if !ok || fn.IsAsync || fn.IsGen || len(fn.Params) != 0 {
		return nil, false
	}
	return fn.Body, true
}

// topLevelNames collects every name directly declared at this statement
// list's own level (not inside nested blocks), the set an unwrapped
// IIFE's own top-level bindings must avoid colliding with.
func topLevelNames(stmts []ast.Statement) map[string]bool {
	names := map[string]bool{}
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.VarDeclaration:
			for _, d := range n.Declarators {
				for _, name := range ast.BindingNames(d.Id) {
					names[name] = true
				}
			}
		case *ast.FunctionDeclaration:
			if n.Name != "" {
				names[n.Name] = true
			}
		}
	}
	return names
}

func safeToUnwrap(body *ast.BlockStatement, outer map[string]bool) bool {
	inner := topLevelNames(body.Body)
	for name := range inner {
		if outer[name] {
			return false
		}
	}
	return true
}
