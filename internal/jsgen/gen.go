// Package jsgen turns an internal/ast.Program back into JavaScript source
// text, symmetric with internal/jsparser: the driver only depends on
// Generate(*ast.Program) -> string.
//
// The printer is precedence-aware rather than wrapping every nested
// expression in parentheses, favoring minimal, readable output over a
// mechanically safe-but-noisy one.
package jsgen

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/deobfjs/internal/ast"
)

// Generate renders program as JavaScript source text.
func Generate(program *ast.Program) string {
	g := &printer{}
	for _, s := range program.Body {
		g.stmt(s, 0)
	}
	return g.sb.String()
}

type printer struct {
	sb strings.Builder
}

func (g *printer) indent(level int) {
	for i := 0; i < level; i++ {
		g.sb.WriteString("  ")
	}
}

func (g *printer) line(level int, s string) {
	g.indent(level)
	g.sb.WriteString(s)
	g.sb.WriteString("\n")
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

func (g *printer) stmt(s ast.Statement, level int) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		g.line(level, "{")
		for _, sub := range n.Body {
			g.stmt(sub, level+1)
		}
		g.line(level, "}")
	case *ast.ExpressionStatement:
		g.line(level, g.expr(n.Expr, 0)+";")
	case *ast.VarDeclaration:
		g.line(level, g.varDeclText(n)+";")
	case *ast.FunctionDeclaration:
		g.funcHeader(level, "function", n.Name, n.IsAsync, n.IsGen, n.Params)
		g.blockBody(n.Body, level)
	case *ast.IfStatement:
		g.indent(level)
		g.sb.WriteString("if (" + g.expr(n.Test, 0) + ") ")
		g.inlineOrBlock(n.Consequent, level)
		if n.Alternate != nil {
			g.indent(level)
			g.sb.WriteString("else ")
			g.inlineOrBlock(n.Alternate, level)
		}
	case *ast.WhileStatement:
		g.indent(level)
		g.sb.WriteString("while (" + g.expr(n.Test, 0) + ") ")
		g.inlineOrBlock(n.Body, level)
	case *ast.DoWhileStatement:
		g.indent(level)
		g.sb.WriteString("do ")
		g.inlineOrBlock(n.Body, level)
		g.sb.WriteString(" while (" + g.expr(n.Test, 0) + ");\n")
	case *ast.ForStatement:
		g.indent(level)
		g.sb.WriteString("for (" + g.forClause(n.Init) + "; ")
		if n.Test != nil {
			g.sb.WriteString(g.expr(n.Test, 0))
		}
		g.sb.WriteString("; ")
		if n.Update != nil {
			g.sb.WriteString(g.expr(n.Update, 0))
		}
		g.sb.WriteString(") ")
		g.inlineOrBlock(n.Body, level)
	case *ast.ForInStatement:
		g.indent(level)
		g.sb.WriteString("for (" + g.forClause(n.Left) + " in " + g.expr(n.Right, 0) + ") ")
		g.inlineOrBlock(n.Body, level)
	case *ast.ForOfStatement:
		g.indent(level)
		await := ""
		if n.IsAwait {
			await = "await "
		}
		g.sb.WriteString("for " + await + "(" + g.forClause(n.Left) + " of " + g.expr(n.Right, 0) + ") ")
		g.inlineOrBlock(n.Body, level)
	case *ast.SwitchStatement:
		g.line(level, "switch ("+g.expr(n.Discriminant, 0)+") {")
		for _, c := range n.Cases {
			if c.Test != nil {
				g.line(level+1, "case "+g.expr(c.Test, 0)+":")
			} else {
				g.line(level+1, "default:")
			}
			for _, sub := range c.Consequent {
				g.stmt(sub, level+2)
			}
		}
		g.line(level, "}")
	case *ast.ReturnStatement:
		if n.Argument == nil {
			g.line(level, "return;")
		} else {
			g.line(level, "return "+g.expr(n.Argument, 0)+";")
		}
	case *ast.BreakStatement:
		if n.Label != "" {
			g.line(level, "break "+n.Label+";")
		} else {
			g.line(level, "break;")
		}
	case *ast.ContinueStatement:
		if n.Label != "" {
			g.line(level, "continue "+n.Label+";")
		} else {
			g.line(level, "continue;")
		}
	case *ast.ThrowStatement:
		g.line(level, "throw "+g.expr(n.Argument, 0)+";")
	case *ast.TryStatement:
		g.indent(level)
		g.sb.WriteString("try ")
		g.blockBodyInline(n.Block, level)
		if n.Handler != nil {
			g.indent(level)
			if n.Handler.Param != nil {
				g.sb.WriteString("catch (" + g.pattern(n.Handler.Param) + ") ")
			} else {
				g.sb.WriteString("catch ")
			}
			g.blockBodyInline(n.Handler.Body, level)
		}
		if n.Finalizer != nil {
			g.indent(level)
			g.sb.WriteString("finally ")
			g.blockBodyInline(n.Finalizer, level)
		}
	case *ast.LabeledStatement:
		g.indent(level)
		g.sb.WriteString(n.Label + ": ")
		g.inlineOrBlock(n.Body, level)
	case *ast.EmptyStatement:
		g.line(level, ";")
	case *ast.DebuggerStatement:
		g.line(level, "debugger;")
	case *ast.ImportDeclaration:
		g.line(level, importText(n)+";")
	case *ast.ExportNamedDeclaration:
		g.exportNamed(n, level)
	case *ast.ExportDefaultDeclaration:
		g.exportDefault(n, level)
	default:
		g.line(level, "/* unknown statement */")
	}
}

// inlineOrBlock prints a block inline after its header, or a single
// statement on its own indented line, matching how if/while/for bodies
// round-trip depending on whether the source used braces.
func (g *printer) inlineOrBlock(s ast.Statement, level int) {
	if b, ok := s.(*ast.BlockStatement); ok {
		g.blockBodyInline(b, level)
		return
	}
	g.sb.WriteString("\n")
	g.stmt(s, level+1)
}

func (g *printer) blockBodyInline(b *ast.BlockStatement, level int) {
	g.sb.WriteString("{\n")
	for _, sub := range b.Body {
		g.stmt(sub, level+1)
	}
	g.indent(level)
	g.sb.WriteString("}\n")
}

func (g *printer) blockBody(b *ast.BlockStatement, level int) {
	g.indent(level)
	g.blockBodyInline(b, level)
}

func (g *printer) funcHeader(level int, kw, name string, isAsync, isGen bool, params []ast.Pattern) {
	g.indent(level)
	if isAsync {
		g.sb.WriteString("async ")
	}
	g.sb.WriteString(kw)
	if isGen {
		g.sb.WriteString("*")
	}
	if name != "" {
		g.sb.WriteString(" " + name)
	}
	g.sb.WriteString("(" + g.paramList(params) + ") ")
}

func (g *printer) paramList(params []ast.Pattern) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = g.pattern(p)
	}
	return strings.Join(parts, ", ")
}

func (g *printer) varDeclText(n *ast.VarDeclaration) string {
	parts := make([]string, len(n.Declarators))
	for i, d := range n.Declarators {
		if d.Init != nil {
			parts[i] = g.pattern(d.Id) + " = " + g.expr(d.Init, 0)
		} else {
			parts[i] = g.pattern(d.Id)
		}
	}
	return n.Kind.String() + " " + strings.Join(parts, ", ")
}

func (g *printer) forClause(n ast.Node) string {
	switch v := n.(type) {
	case nil:
		return ""
	case *ast.VarDeclaration:
		return g.varDeclText(v)
	case ast.Pattern:
		return g.pattern(v)
	case ast.Expression:
		return g.expr(v, 0)
	default:
		return ""
	}
}

func importText(n *ast.ImportDeclaration) string {
	if len(n.Specifiers) == 0 {
		return "import " + strconv.Quote(n.Source)
	}
	var defaultPart, nsPart string
	var named []string
	for _, s := range n.Specifiers {
		switch {
		case s.Imported == "default":
			defaultPart = s.Local
		case s.Imported == "*":
			nsPart = "* as " + s.Local
		case s.Imported == s.Local:
			named = append(named, s.Local)
		default:
			named = append(named, s.Imported+" as "+s.Local)
		}
	}
	var parts []string
	if defaultPart != "" {
		parts = append(parts, defaultPart)
	}
	if nsPart != "" {
		parts = append(parts, nsPart)
	}
	if len(named) > 0 {
		parts = append(parts, "{ "+strings.Join(named, ", ")+" }")
	}
	return "import " + strings.Join(parts, ", ") + " from " + strconv.Quote(n.Source)
}

func (g *printer) exportNamed(n *ast.ExportNamedDeclaration, level int) {
	if n.Declaration != nil {
		g.indent(level)
		g.sb.WriteString("export ")
		switch d := n.Declaration.(type) {
		case *ast.FunctionDeclaration:
			g.funcHeader(0, "function", d.Name, d.IsAsync, d.IsGen, d.Params)
			g.blockBodyInline(d.Body, level)
		case *ast.VarDeclaration:
			g.sb.WriteString(g.varDeclText(d) + ";\n")
		default:
			g.sb.WriteString("\n")
			g.stmt(d, level)
		}
		return
	}
	var specs []string
	for _, s := range n.Specifiers {
		if s.Imported == s.Local {
			specs = append(specs, s.Local)
		} else {
			specs = append(specs, s.Local+" as "+s.Imported)
		}
	}
	line := "export { " + strings.Join(specs, ", ") + " }"
	if n.Source != "" {
		line += " from " + strconv.Quote(n.Source)
	}
	g.line(level, line+";")
}

func (g *printer) exportDefault(n *ast.ExportDefaultDeclaration, level int) {
	switch d := n.Declaration.(type) {
	case *ast.FunctionDeclaration:
		g.indent(level)
		g.sb.WriteString("export default ")
		g.funcHeader(0, "function", d.Name, d.IsAsync, d.IsGen, d.Params)
		g.blockBodyInline(d.Body, level)
	case ast.Expression:
		g.line(level, "export default "+g.expr(d, 0)+";")
	}
}
