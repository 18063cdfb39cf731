package passes

import "github.com/aledsdavies/deobfjs/internal/ast"

// SplitMultiVarDeclarations splits `var a = 1, b = 2, c = 3;` into one
// declaration per declarator,
// `var a = 1; var b = 2; var c = 3;`, undoing the obfuscator habit of
// packing unrelated bindings onto a single statement to defeat line-based
// diffing. Runs after dead-variable elimination (so dead declarators
// never get split) and before function inlining.
func SplitMultiVarDeclarations(prog *ast.Program) {
	WalkBlocks(prog, splitMultiVarList)
}

func splitMultiVarList(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		vd, ok := s.(*ast.VarDeclaration)
		if !ok || len(vd.Declarators) < 2 {
			out = append(out, s)
			continue
		}
		for _, d := range vd.Declarators {
			out = append(out, &ast.VarDeclaration{
				Kind:        vd.Kind,
				Declarators: []*ast.Declarator{d},
				Position:    d.Position,
			})
		}
	}
	return out
}
