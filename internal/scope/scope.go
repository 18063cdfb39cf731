// Package scope builds a binding table for a whole program: which names
// are declared anywhere in it and how often each name is referenced. The
// table is name-based and flat; it does not separate block or function
// scopes. The rename pass consults a *Table; dead-variable elimination
// and function inlining walk the tree themselves.
//
// Scope info is a derived, read-only snapshot of the tree at the moment
// it was built. Callers never mutate a *Table in place; they call Build
// again after any tree edit that could change bindings.
package scope

import "github.com/aledsdavies/deobfjs/internal/ast"

// Table records, per name, how many declarations of it and how many
// expression-position references to it appear anywhere in the program (a
// coarse use-count, not full resolution — passes only need "is this name
// used", which RefCount answers without needing true lexical resolution).
type Table struct {
	declared map[string]int
	refs     map[string]int
}

// Build walks program and records every declared binding name
// (var/let/const declarators, function declarations and their
// parameters, catch parameters) and every identifier reference seen
// anywhere in an expression position.
func Build(program *ast.Program) *Table {
	t := &Table{declared: map[string]int{}, refs: map[string]int{}}
	ast.VisitProgram(program, ast.Visitor{
		Stmt: func(s ast.Statement) {
			switch n := s.(type) {
			case *ast.VarDeclaration:
				for _, d := range n.Declarators {
					for _, name := range ast.BindingNames(d.Id) {
						t.declared[name]++
					}
				}
			case *ast.FunctionDeclaration:
				if n.Name != "" {
					t.declared[n.Name]++
				}
				for _, p := range n.Params {
					for _, name := range ast.BindingNames(p) {
						t.declared[name]++
					}
				}
			case *ast.TryStatement:
				if n.Handler != nil && n.Handler.Param != nil {
					for _, name := range ast.BindingNames(n.Handler.Param) {
						t.declared[name]++
					}
				}
			}
		},
		Expr: func(e ast.Expression) {
			if id, ok := e.(*ast.Identifier); ok {
				t.refs[id.Name]++
			}
		},
	})
	return t
}

// Declared reports whether name is bound anywhere in the scanned tree.
func (t *Table) Declared(name string) bool {
	return t.declared[name] > 0
}

// RefCount returns how many identifier occurrences of name were seen in
// expression position. Declaration sites are patterns and are not
// counted, so a declared var with RefCount 0 is never referenced.
func (t *Table) RefCount(name string) int {
	return t.refs[name]
}
