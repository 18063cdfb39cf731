package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// InlineCallProxies recognizes `function P(a1, ..., an) { return
// Q(a1, ..., an); }` passthrough wrappers. Only proxies with exactly one
// call site elsewhere in the program are rewritten: every occurrence of
// P (call or bare reference) becomes a reference to Q, and the
// declaration is deleted.
func InlineCallProxies(prog *ast.Program) {
	candidates := map[string]string{} // proxy name -> target name
	for _, s := range prog.Body {
		fd, ok := s.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}
		if target, ok := callProxyTarget(fd); ok {
			candidates[fd.Name] = target
		}
	}
	if len(candidates) == 0 {
		return
	}

	callSites := map[string]int{}
	for _, s := range prog.Body {
		if fd, ok := s.(*ast.FunctionDeclaration); ok {
			if _, isCandidate := candidates[fd.Name]; isCandidate {
				continue // don't count the proxy's own self-describing body
			}
		}
		ast.VisitStmt(s, ast.Visitor{Expr: func(e ast.Expression) {
			call, ok := e.(*ast.CallExpression)
			if !ok {
				return
			}
			if name, ok := ast.IdentName(call.Callee); ok {
				if _, isCandidate := candidates[name]; isCandidate {
					callSites[name]++
				}
			}
		}})
	}

	toInline := map[string]string{}
	for name, target := range candidates {
		if callSites[name] == 1 {
			toInline[name] = target
		}
	}
	if len(toInline) == 0 {
		return
	}

	ast.RewriteProgram(prog, nil, func(e ast.Expression) ast.Expression {
		id, ok := e.(*ast.Identifier)
		if !ok {
			return e
		}
		if target, ok := toInline[id.Name]; ok {
			return &ast.Identifier{Name: target, Position: id.Position}
		}
		return e
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

// callProxyTarget reports (targetName, true) if fd's body is exactly
// `return Q(a1, ..., an);` with Q a bare identifier and the call
// arguments the function's own parameters, in declaration order.
func callProxyTarget(fd *ast.FunctionDeclaration) (string, bool) {
	if fd.IsAsync || fd.IsGen || len(fd.Body.Body) != 1 {
		return "", false
	}
	ret, ok := fd.Body.Body[0].(*ast.ReturnStatement)
	if !ok || ret.Argument == nil {
		return "", false
	}
	call, ok := ast.Unwrap(ret.Argument).(*ast.CallExpression)
	if !ok || len(call.Args) != len(fd.Params) {
		return "", false
	}
	target, ok := ast.IdentName(call.Callee)
	if !ok {
		return "", false
	}
	for i, p := range fd.Params {
		pname, ok := ast.SimpleName(p)
		if !ok {
			return "", false
		}
		aname, ok := ast.IdentName(call.Args[i])
		if !ok || aname != pname {
			return "", false
		}
	}
	return target, true
}

func filterStmts(stmts []ast.Statement, keep func(ast.Statement) bool) []ast.Statement {
	out := stmts[:0]
	for _, s := range stmts {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
