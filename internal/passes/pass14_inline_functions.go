package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// simpleFunction is a collector-phase record: a function
// declaration whose body reduces to a single `return <expr>` built from
// the supported node set, with parameter identifiers recorded by
// positional index so the inliner can substitute call arguments without
// re-deriving the mapping.
type simpleFunction struct {
	params []string
	expr   ast.Expression
}

// InlineFunctions collects every function declaration with a "simple"
// body shape, then inlines each one that has exactly one call site,
// substituting call arguments for parameter references in a fresh clone
// of the body expression and deleting the declaration.
func InlineFunctions(prog *ast.Program) {
	simple := map[string]*simpleFunction{}
	for _, s := range prog.Body {
		fd, ok := s.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}
		if sf, ok := classifySimple(fd); ok {
			simple[fd.Name] = sf
		}
	}
	if len(simple) == 0 {
		return
	}

	callSites := map[string]int{}
	arityMismatch := map[string]bool{}
	for _, s := range prog.Body {
		if fd, ok := s.(*ast.FunctionDeclaration); ok {
			if _, isSimple := simple[fd.Name]; isSimple {
				continue
			}
		}
		ast.VisitStmt(s, ast.Visitor{Expr: func(e ast.Expression) {
			call, ok := e.(*ast.CallExpression)
			if !ok {
				return
			}
			if name, ok := ast.IdentName(call.Callee); ok {
				if sf, isSimple := simple[name]; isSimple {
					callSites[name]++
					if len(call.Args) != len(sf.params) {
						arityMismatch[name] = true
					}
				}
			}
		}})
	}

	// A bare (non-call) reference to a simple function's name — passed as
	// a value, assigned, etc. — must keep the declaration alive even if
	// there's exactly one call site, since inlining would delete the
	// declaration out from under that other reference. Every identifier
	// occurrence of the name, including the one used as a call's own
	// callee, is visited as its own node by VisitExpr's bottom-up walk, so
	// a name with no bare references has exactly as many total identifier
	// occurrences as it has call sites.
	identRefs := map[string]int{}
	for _, s := range prog.Body {
		if fd, ok := s.(*ast.FunctionDeclaration); ok {
			if _, isSimple := simple[fd.Name]; isSimple {
				continue
			}
		}
		ast.VisitStmt(s, ast.Visitor{Expr: func(e ast.Expression) {
			id, ok := e.(*ast.Identifier)
			if !ok {
				return
			}
			if _, isSimple := simple[id.Name]; isSimple {
				identRefs[id.Name]++
			}
		}})
	}

	toInline := map[string]*simpleFunction{}
	for name, sf := range simple {
		if callSites[name] == 1 && !arityMismatch[name] && identRefs[name] == callSites[name] {
			toInline[name] = sf
		}
	}
	if len(toInline) == 0 {
		return
	}

	ast.RewriteProgram(prog, nil, func(e ast.Expression) ast.Expression {
		call, ok := e.(*ast.CallExpression)
		if !ok {
			return e
		}
		name, ok := ast.IdentName(call.Callee)
		if !ok {
			return e
		}
		sf, ok := toInline[name]
		if !ok || len(call.Args) != len(sf.params) {
			return e
		}
		return substituteParams(sf.expr, sf.params, call.Args)
	})

	prog.Body = filterStmts(prog.Body, func(s ast.Statement) bool {
		fd, ok := s.(*ast.FunctionDeclaration)
		if !ok {
			return true
		}
		_, drop := toInline[fd.Name]
		return !drop
	})
}

const maxInlineStatements = 5
const maxInlineParams = 10

// classifySimple reports whether fd qualifies as "simple": synchronous,
// non-generator, at most 5 statements, at
// most 10 bare-identifier parameters, body a single `return <expr>` built
// from the supported grammar.
func classifySimple(fd *ast.FunctionDeclaration) (*simpleFunction, bool) {
	if fd.IsAsync || fd.IsGen {
		return nil, false
	}
	if len(fd.Body.Body) == 0 || len(fd.Body.Body) > maxInlineStatements {
		return nil, false
	}
	if len(fd.Params) > maxInlineParams {
		return nil, false
	}
	params := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		name, ok := ast.SimpleName(p)
		if !ok {
			return nil, false
		}
		params[i] = name
	}
	if len(fd.Body.Body) != 1 {
		return nil, false
	}
	ret, ok := fd.Body.Body[0].(*ast.ReturnStatement)
	if !ok || ret.Argument == nil {
		return nil, false
	}
	if !isSupportedInlineExpr(ret.Argument) {
		return nil, false
	}
	return &simpleFunction{params: params, expr: ret.Argument}, true
}

// isSupportedInlineExpr restricts the inlinable return expression to a
// fixed grammar: identifiers, literals, binary over arithmetic/
// bitwise/equality/relational operators, unary (! - + ~), parens, and a
// call whose callee is a bare identifier with supported arguments.
func isSupportedInlineExpr(e ast.Expression) bool {
	switch n := ast.Unwrap(e).(type) {
	case *ast.Identifier, *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return true
	case *ast.BinaryExpression:
		switch n.Operator {
		case ast.BinEq, ast.BinNeq, ast.BinSeq, ast.BinSneq, ast.BinLt, ast.BinLe, ast.BinGt, ast.BinGe,
			ast.BinAdd, ast.BinSub, ast.BinMul, ast.BinDiv, ast.BinMod, ast.BinPow,
			ast.BinAnd, ast.BinOr, ast.BinXor, ast.BinShl, ast.BinShr, ast.BinUShr:
			return isSupportedInlineExpr(n.Left) && isSupportedInlineExpr(n.Right)
		}
		return false
	case *ast.UnaryExpression:
		switch n.Operator {
		case ast.UnaryNot, ast.UnaryMinus, ast.UnaryPlus, ast.UnaryBNot:
			return isSupportedInlineExpr(n.Argument)
		}
		return false
	case *ast.CallExpression:
		if _, ok := ast.IdentName(n.Callee); !ok {
			return false
		}
		for _, a := range n.Args {
			if !isSupportedInlineExpr(a) {
				return false
			}
		}
		return true
	}
	return false
}

// substituteParams clones expr, replacing every identifier reference to
// one of params with a fresh clone of the corresponding call argument.
func substituteParams(expr ast.Expression, params []string, args []ast.Expression) ast.Expression {
	index := map[string]ast.Expression{}
	for i, p := range params {
		index[p] = args[i]
	}
	clone := ast.CloneExpr(expr)
	return ast.RewriteExpr(clone, func(e ast.Expression) ast.Expression {
		id, ok := e.(*ast.Identifier)
		if !ok {
			return e
		}
		if arg, ok := index[id.Name]; ok {
			return ast.CloneExpr(arg)
		}
		return e
	})
}
