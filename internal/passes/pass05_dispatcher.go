package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// InlineDispatcherObjects recognizes `var OBJ = { k: function(){ return
// <lit|ident>; }, ... };` maps of trivial thunks and replaces calls
// `OBJ.k()` / `OBJ["k"]()` with the catalogued literal or identifier.
// Calls carrying arguments, or keys the object doesn't define, are left
// alone.
func InlineDispatcherObjects(prog *ast.Program) {
	catalog := map[string]map[string]ast.Expression{}
	ast.VisitProgram(prog, ast.Visitor{Stmt: func(s ast.Statement) {
		vd, ok := s.(*ast.VarDeclaration)
		if !ok {
			return
		}
		for _, d := range vd.Declarators {
			name, ok := ast.SimpleName(d.Id)
			if !ok || d.Init == nil {
				continue
			}
			obj, ok := ast.Unwrap(d.Init).(*ast.ObjectExpression)
			if !ok {
				continue
			}
			entries, ok := dispatcherEntries(obj)
			if !ok {
				continue
			}
			catalog[name] = entries
		}
	}})
	if len(catalog) == 0 {
		return
	}
	ast.RewriteProgram(prog, nil, func(e ast.Expression) ast.Expression {
		call, ok := e.(*ast.CallExpression)
		if !ok || len(call.Args) != 0 {
			return e
		}
		member, ok := ast.Unwrap(call.Callee).(*ast.MemberExpression)
		if !ok {
			return e
		}
		objName, ok := ast.IdentName(member.Object)
		if !ok {
			return e
		}
		entries, ok := catalog[objName]
		if !ok {
			return e
		}
		key, ok := memberKeyString(member)
		if !ok {
			return e
		}
		recovered, ok := entries[key]
		if !ok {
			return e
		}
		return ast.CloneExpr(recovered)
	})
}

// dispatcherEntries reports (entries, true) if every property of obj is a
// function or arrow whose body trivially reduces to a literal or plain
// identifier reference, keyed by the property's literal key text.
func dispatcherEntries(obj *ast.ObjectExpression) (map[string]ast.Expression, bool) {
	entries := map[string]ast.Expression{}
	for _, p := range obj.Properties {
		if p.Key == nil || p.Computed {
			return nil, false
		}
		key, ok := literalPropertyKey(p.Key)
		if !ok {
			return nil, false
		}
		expr, ok := trivialBody(p.Value)
		if !ok {
			return nil, false
		}
		entries[key] = expr
	}
	return entries, true
}

func literalPropertyKey(key ast.Expression) (string, bool) {
	switch k := ast.Unwrap(key).(type) {
	case *ast.Identifier:
		return k.Name, true
	case *ast.StringLiteral:
		return k.Value, true
	}
	return "", false
}

// trivialBody reduces a function/arrow value to the single literal or
// identifier it always returns, or reports false if it does anything
// else. A function expression qualifies only when its body is a single
// return statement. For an arrow with a block body, the last expression
// statement is the candidate return value provided no earlier statement
// is a return.
func trivialBody(v ast.Expression) (ast.Expression, bool) {
	switch fn := v.(type) {
	case *ast.FunctionExpression:
		if len(fn.Body.Body) != 1 {
			return nil, false
		}
		if _, ok := fn.Body.Body[0].(*ast.ReturnStatement); !ok {
			return nil, false
		}
		return trivialReturn(fn.Body)
	case *ast.ArrowFunctionExpression:
		if fn.ExprBody != nil {
			return trivialValue(fn.ExprBody)
		}
		return trivialReturn(fn.Body)
	}
	return nil, false
}

func trivialReturn(body *ast.BlockStatement) (ast.Expression, bool) {
	if len(body.Body) == 0 {
		return nil, false
	}
	for _, s := range body.Body[:len(body.Body)-1] {
		if _, ok := s.(*ast.ReturnStatement); ok {
			return nil, false
		}
	}
	last := body.Body[len(body.Body)-1]
	if ret, ok := last.(*ast.ReturnStatement); ok {
		if ret.Argument == nil {
			return nil, false
		}
		return trivialValue(ret.Argument)
	}
	if es, ok := last.(*ast.ExpressionStatement); ok {
		return trivialValue(es.Expr)
	}
	return nil, false
}

func trivialValue(e ast.Expression) (ast.Expression, bool) {
	switch ast.Unwrap(e).(type) {
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.Identifier:
		return e, true
	}
	return nil, false
}

func memberKeyString(m *ast.MemberExpression) (string, bool) {
	if !m.Computed {
		return m.PropertyName, true
	}
	if s, ok := ast.AsStringLiteral(m.Property); ok {
		return s, true
	}
	if name, ok := ast.IdentName(m.Property); ok {
		return name, true
	}
	return "", false
}
