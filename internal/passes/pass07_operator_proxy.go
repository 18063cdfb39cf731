package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// InlineOperatorProxies recognizes `function P(a, b) { return a OP b; }`
// — a binary operation wrapped in a one-line passthrough — and replaces
// every call `P(x, y)` with `x OP y`. Unlike call-proxy inlining there is
// no single-use restriction: a binary operator has no observable
// identity to preserve by keeping the wrapper around.
func InlineOperatorProxies(prog *ast.Program) {
	candidates := map[string]*ast.BinaryExpression{}
	for _, s := range prog.Body {
		fd, ok := s.(*ast.FunctionDeclaration)
		if !ok {
			continue
		}
		if bin, ok := operatorProxyBody(fd); ok {
			candidates[fd.Name] = bin
		}
	}
	if len(candidates) == 0 {
		return
	}

	ast.RewriteProgram(prog, nil, func(e ast.Expression) ast.Expression {
		call, ok := e.(*ast.CallExpression)
		if !ok || len(call.Args) != 2 {
			return e
		}
		name, ok := ast.IdentName(call.Callee)
		if !ok {
			return e
		}
		bin, ok := candidates[name]
		if !ok {
			return e
		}
		return &ast.BinaryExpression{
			Operator: bin.Operator,
			Left:     ast.CloneExpr(call.Args[0]),
			Right:    ast.CloneExpr(call.Args[1]),
			Position: call.Position,
		}
	})

	prog.Body = filterStmts(prog.Body, func(s ast.Statement) bool {
		fd, ok := s.(*ast.FunctionDeclaration)
		if !ok {
			return true
		}
		_, drop := candidates[fd.Name]
		return !drop
	})
}

// operatorProxyBody reports (binExpr, true) if fd's body is exactly
// `return a OP b;` with a, b the function's own two parameters in the
// same order they're declared in.
func operatorProxyBody(fd *ast.FunctionDeclaration) (*ast.BinaryExpression, bool) {
	if fd.IsAsync || fd.IsGen || len(fd.Params) != 2 || len(fd.Body.Body) != 1 {
		return nil, false
	}
	ret, ok := fd.Body.Body[0].(*ast.ReturnStatement)
	if !ok || ret.Argument == nil {
		return nil, false
	}
	bin, ok := ast.Unwrap(ret.Argument).(*ast.BinaryExpression)
	if !ok {
		return nil, false
	}
	pa, ok := ast.SimpleName(fd.Params[0])
	if !ok {
		return nil, false
	}
	pb, ok := ast.SimpleName(fd.Params[1])
	if !ok {
		return nil, false
	}
	la, ok := ast.IdentName(bin.Left)
	if !ok || la != pa {
		return nil, false
	}
	ra, ok := ast.IdentName(bin.Right)
	if !ok || ra != pb {
		return nil, false
	}
	return bin, true
}
