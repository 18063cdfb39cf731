package passes

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/deobfjs/internal/ast"
)

// Unflatten recognizes the `SEQ.split("|")` + numeric `IDX` + `while(true)
// { switch(SEQ[IDX++]) {...} }` dispatcher loop and replaces the whole
// thing with its cases' bodies concatenated in SEQ token order, dropping
// the two driver variables and the loop.
func Unflatten(prog *ast.Program) {
	WalkBlocks(prog, unflattenList)
}

func unflattenList(stmts []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	i := 0
	for i < len(stmts) {
		if i+2 < len(stmts) {
			if body, ok := tryUnflatten(stmts, i); ok {
				out = append(out, body...)
				i += 3
				continue
			}
		}
		out = append(out, stmts[i])
		i++
	}
	return out
}

func tryUnflatten(stmts []ast.Statement, i int) ([]ast.Statement, bool) {
	seqDecl, idxDecl, loop := stmts[i], stmts[i+1], stmts[i+2]
	seqName, tokens, ok := matchSeqDecl(seqDecl)
	if !ok {
		return nil, false
	}
	idxName, ok := matchIdxDecl(idxDecl)
	if !ok {
		return nil, false
	}
	sw, ok := matchDispatchLoop(loop, seqName, idxName)
	if !ok {
		return nil, false
	}
	if seqReferencedOutside(seqName, stmts) {
		return nil, false
	}

	byToken := map[string]*ast.SwitchCase{}
	for _, c := range sw.Cases {
		if c.Test == nil {
			continue
		}
		tok, ok := caseToken(c.Test)
		if !ok {
			continue
		}
		byToken[tok] = c
	}

	var flat []ast.Statement
	for _, tok := range tokens {
		c, ok := byToken[tok]
		if !ok {
			return nil, false // a SEQ token has no matching case: abort
		}
		flat = append(flat, stripTrailingControl(c.Consequent)...)
	}
	return flat, true
}

// matchSeqDecl recognizes `var SEQ = "a|b|c".split("|");` and returns the
// bound name and the ordered token list.
func matchSeqDecl(s ast.Statement) (string, []string, bool) {
	vd, ok := s.(*ast.VarDeclaration)
	if !ok || len(vd.Declarators) != 1 {
		return "", nil, false
	}
	d := vd.Declarators[0]
	name, ok := ast.SimpleName(d.Id)
	if !ok || d.Init == nil {
		return "", nil, false
	}
	call, ok := ast.Unwrap(d.Init).(*ast.CallExpression)
	if !ok || len(call.Args) != 1 {
		return "", nil, false
	}
	member, ok := ast.Unwrap(call.Callee).(*ast.MemberExpression)
	if !ok || member.Computed || member.PropertyName != "split" {
		return "", nil, false
	}
	str, ok := ast.AsStringLiteral(member.Object)
	if !ok {
		return "", nil, false
	}
	sep, ok := ast.AsStringLiteral(call.Args[0])
	if !ok || sep != "|" {
		return "", nil, false
	}
	tokens := strings.Split(str, "|")
	for _, t := range tokens {
		if t == "" {
			return "", nil, false
		}
	}
	return name, tokens, true
}

// matchIdxDecl recognizes `var IDX = 0;`.
func matchIdxDecl(s ast.Statement) (string, bool) {
	vd, ok := s.(*ast.VarDeclaration)
	if !ok || len(vd.Declarators) != 1 {
		return "", false
	}
	d := vd.Declarators[0]
	name, ok := ast.SimpleName(d.Id)
	if !ok || d.Init == nil {
		return "", false
	}
	n, ok := ast.AsIntLiteral(d.Init)
	if !ok || n != 0 {
		return "", false
	}
	return name, true
}

// matchDispatchLoop recognizes `while (true) { switch (SEQ[...]) {...} }`
// (or the `for(;;)` spelling) whose switch discriminant indexes seqName
// by either the bare idxName or idxName's post-increment.
func matchDispatchLoop(s ast.Statement, seqName, idxName string) (*ast.SwitchStatement, bool) {
	var body *ast.BlockStatement
	switch n := s.(type) {
	case *ast.WhileStatement:
		b, ok := ast.AsBoolLiteral(n.Test)
		if !ok || !b {
			return nil, false
		}
		body, ok = n.Body.(*ast.BlockStatement)
		if !ok {
			return nil, false
		}
	case *ast.ForStatement:
		if n.Init != nil || n.Test != nil || n.Update != nil {
			return nil, false
		}
		var ok bool
		body, ok = n.Body.(*ast.BlockStatement)
		if !ok {
			return nil, false
		}
	default:
		return nil, false
	}
	for _, sub := range body.Body {
		sw, ok := sub.(*ast.SwitchStatement)
		if !ok {
			continue
		}
		member, ok := ast.Unwrap(sw.Discriminant).(*ast.MemberExpression)
		if !ok || !member.Computed {
			continue
		}
		obj, ok := ast.IdentName(member.Object)
		if !ok || obj != seqName {
			continue
		}
		if name, ok := ast.IdentName(member.Property); ok && name == idxName {
			return sw, true
		}
		if up, ok := ast.Unwrap(member.Property).(*ast.UpdateExpression); ok && !up.Prefix && up.Operator == ast.UpdateInc {
			if name, ok := ast.IdentName(up.Argument); ok && name == idxName {
				return sw, true
			}
		}
	}
	return nil, false
}

// caseToken reports the textual token a case label represents: the exact
// string for a string literal, or the decimal/original textual form for
// a numeric literal.
func caseToken(test ast.Expression) (string, bool) {
	if s, ok := ast.AsStringLiteral(test); ok {
		return s, true
	}
	if n, ok := ast.Unwrap(test).(*ast.NumberLiteral); ok {
		if n.Raw != "" {
			return n.Raw, true
		}
		return strconv.FormatFloat(n.Value, 'f', -1, 64), true
	}
	return "", false
}

func stripTrailingControl(stmts []ast.Statement) []ast.Statement {
	for len(stmts) > 0 {
		last := stmts[len(stmts)-1]
		switch n := last.(type) {
		case *ast.BreakStatement:
			if n.Label != "" {
				return stmts
			}
		case *ast.ContinueStatement:
			if n.Label != "" {
				return stmts
			}
		default:
			return stmts
		}
		stmts = stmts[:len(stmts)-1]
	}
	return stmts
}

// seqReferencedOutside aborts the rewrite when SEQ is referenced anywhere
// in the enclosing statement list other than inside the dispatch loop's
// own discriminant, per the ambiguity failure policy.
func seqReferencedOutside(seqName string, stmts []ast.Statement) bool {
	count := 0
	visitor := ast.Visitor{Expr: func(e ast.Expression) {
		if name, ok := ast.IdentName(e); ok && name == seqName {
			count++
		}
	}}
	for _, s := range stmts {
		ast.VisitStmt(s, visitor)
	}
	// One reference is expected: SEQ in the discriminant's member object.
	return count > 1
}
