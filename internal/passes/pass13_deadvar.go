package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// varUsage is a side table built in a collector pass before any rewrite
// happens: one entry per identifier name. Tracking is name-based rather
// than scope-aware, so two same-named bindings in disjoint scopes
// collapse together into one entry — a known, accepted limitation rather
// than an oversight.
type varUsage struct {
	reads     int
	isParam   bool
	isExport  bool
}

// EliminateDeadVariables runs the collect/strip pair: Phase A builds a
// read-reference table (declarations themselves don't count as a read),
// Phase B removes any var/let/const declarator whose name is never read,
// isn't a parameter, and isn't exported, provided its initializer is
// pure; a declarator with an impure initializer is kept unchanged (its
// side effect must survive).
func EliminateDeadVariables(prog *ast.Program) {
	usage := collectVarUsage(prog)
	stripDeadDeclarators(prog, usage)
}

func collectVarUsage(prog *ast.Program) map[string]*varUsage {
	usage := map[string]*varUsage{}
	get := func(name string) *varUsage {
		u, ok := usage[name]
		if !ok {
			u = &varUsage{}
			usage[name] = u
		}
		return u
	}

	ast.VisitProgram(prog, ast.Visitor{
		Stmt: func(s ast.Statement) {
			switch n := s.(type) {
			case *ast.VarDeclaration:
				for _, d := range n.Declarators {
					for _, name := range ast.BindingNames(d.Id) {
						get(name) // ensure an entry exists even with zero reads
					}
				}
			case *ast.FunctionDeclaration:
				for _, p := range n.Params {
					for _, name := range ast.BindingNames(p) {
						get(name).isParam = true
					}
				}
			case *ast.ExportNamedDeclaration:
				markExported(n, get)
			}
		},
	})

	// A second, expression-level pass counts reads; identifiers appearing
	// as a declarator's own Id are never visited as expressions (Id is a
	// Pattern, not an Expression), so no special-casing is needed here.
	ast.VisitProgram(prog, ast.Visitor{
		Expr: func(e ast.Expression) {
			id, ok := e.(*ast.Identifier)
			if !ok {
				return
			}
			if u, ok := usage[id.Name]; ok {
				u.reads++
			}
		},
	})

	return usage
}

func markExported(n *ast.ExportNamedDeclaration, get func(string) *varUsage) {
	if vd, ok := n.Declaration.(*ast.VarDeclaration); ok {
		for _, d := range vd.Declarators {
			for _, name := range ast.BindingNames(d.Id) {
				get(name).isExport = true
			}
		}
	}
	for _, spec := range n.Specifiers {
		get(spec.Local).isExport = true
	}
}

func stripDeadDeclarators(prog *ast.Program, usage map[string]*varUsage) {
	ast.RewriteProgram(prog, func(s ast.Statement) ast.Statement {
		vd, ok := s.(*ast.VarDeclaration)
		if !ok {
			return s
		}
		kept := vd.Declarators[:0]
		for _, d := range vd.Declarators {
			if keepDeclarator(d, usage) {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			return &ast.EmptyStatement{Position: vd.Position}
		}
		vd.Declarators = kept
		return vd
	}, nil)
}

// keepDeclarator reports whether d's declarator should survive: it is
// kept if any bound name is read, a parameter, or exported, or if its
// initializer has a side effect that must be preserved.
func keepDeclarator(d *ast.Declarator, usage map[string]*varUsage) bool {
	for _, name := range ast.BindingNames(d.Id) {
		u := usage[name]
		if u == nil {
			continue
		}
		if u.reads > 0 || u.isParam || u.isExport {
			return true
		}
	}
	if d.Init == nil {
		return false
	}
	return !isPureExpr(d.Init)
}

// isPureExpr reports whether e can be dropped without losing an
// observable side effect.
func isPureExpr(e ast.Expression) bool {
	switch n := ast.Unwrap(e).(type) {
	case *ast.Identifier, *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.RegExpLiteral, *ast.TemplateLiteral:
		return true
	case *ast.ArrayExpression:
		for _, el := range n.Elements {
			if el != nil && !isPureExpr(el) {
				return false
			}
		}
		return true
	case *ast.ObjectExpression:
		for _, p := range n.Properties {
			if p.Computed && !isPureExpr(p.Key) {
				return false
			}
			if !isPureExpr(p.Value) {
				return false
			}
		}
		return true
	case *ast.FunctionExpression, *ast.ArrowFunctionExpression:
		return true
	case *ast.UnaryExpression:
		if n.Operator == ast.UnaryDelete || n.Operator == ast.UnaryAwait {
			return false
		}
		return isPureExpr(n.Argument)
	case *ast.BinaryExpression:
		return isPureExpr(n.Left) && isPureExpr(n.Right)
	case *ast.ConditionalExpression:
		return isPureExpr(n.Test) && isPureExpr(n.Consequent) && isPureExpr(n.Alternate)
	case *ast.SequenceExpression:
		for _, sub := range n.Expressions {
			if !isPureExpr(sub) {
				return false
			}
		}
		return true
	}
	// CallExpression, NewExpression, AssignmentExpression, UpdateExpression,
	// TaggedTemplateExpression, LogicalExpression (short-circuits, may
	// hide a side effect on either side) are all treated as impure.
	return false
}
