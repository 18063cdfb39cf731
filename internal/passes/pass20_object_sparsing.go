package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// ConsolidateObjectSparsing handles an empty object literal
// assigned to a variable, immediately followed by a contiguous run of at
// least two `obj.key = expr;` assignment statements, collapses into a
// single object-literal initializer carrying every one of those
// properties; the consolidated assignment statements are removed. Any
// non-assignment statement, or an assignment through anything but a
// plain dot property, breaks the run.
func ConsolidateObjectSparsing(prog *ast.Program) {
	WalkBlocks(prog, consolidateList)
}

func consolidateList(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	i := 0
	for i < len(stmts) {
		name, obj, ok := emptyObjectDecl(stmts[i])
		if !ok {
			out = append(out, stmts[i])
			i++
			continue
		}
		j := i + 1
		var props []*ast.Property
		for j < len(stmts) {
			key, val, ok := dotAssignTo(stmts[j], name)
			if !ok {
				break
			}
			props = append(props, &ast.Property{
				Key:      ast.SynthIdent(key),
				Value:    val,
				Position: stmts[j].Pos(),
			})
			j++
		}
		if len(props) < 2 {
			out = append(out, stmts[i])
			i++
			continue
		}
		obj.Properties = props
		out = append(out, stmts[i])
		i = j
	}
	return out
}

// emptyObjectDecl reports whether s is `var NAME = {};` with a single
// declarator, returning the bound name and the (empty) object literal so
// the caller can populate it in place.
func emptyObjectDecl(s ast.Statement) (string, *ast.ObjectExpression, bool) {
	vd, ok := s.(*ast.VarDeclaration)
	if !ok || len(vd.Declarators) != 1 {
		return "", nil, false
	}
	d := vd.Declarators[0]
	name, ok := ast.SimpleName(d.Id)
	if !ok || d.Init == nil {
		return "", nil, false
	}
	obj, ok := ast.Unwrap(d.Init).(*ast.ObjectExpression)
	if !ok || len(obj.Properties) != 0 {
		return "", nil, false
	}
	return name, obj, true
}

// dotAssignTo reports whether s is `NAME.key = expr;` (a plain, non-
// computed dot-property assignment on NAME) and returns the key and
// right-hand side.
func dotAssignTo(s ast.Statement, name string) (string, ast.Expression, bool) {
	es, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return "", nil, false
	}
	assign, ok := es.Expr.(*ast.AssignmentExpression)
	if !ok || assign.Operator != ast.AssignPlain {
		return "", nil, false
	}
	member, ok := assign.Left.(*ast.MemberExpression)
	if !ok || member.Computed {
		return "", nil, false
	}
	objName, ok := ast.IdentName(member.Object)
	if !ok || objName != name {
		return "", nil, false
	}
	return member.PropertyName, assign.Right, true
}
