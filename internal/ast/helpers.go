package ast

// BindingNames returns every plain identifier name a pattern binds,
// including nested destructuring. Passes that only care "does this
// pattern bind name X" (dead-variable elimination, parameter detection in
// function inlining) use this instead of switching on Pattern themselves.
func BindingNames(p Pattern) []string {
	switch n := p.(type) {
	case *IdentifierPattern:
		return []string{n.Name}
	case *ArrayPattern:
		var names []string
		for _, el := range n.Elements {
			if el.Pattern != nil {
				names = append(names, BindingNames(el.Pattern)...)
			}
		}
		return names
	case *ObjectPattern:
		var names []string
		for _, prop := range n.Properties {
			names = append(names, BindingNames(prop.Value)...)
		}
		if n.Rest != nil {
			names = append(names, n.Rest.Name)
		}
		return names
	case *RestElement:
		return BindingNames(n.Argument)
	case *AssignmentPattern:
		return BindingNames(n.Left)
	default:
		return nil
	}
}

// RenameBindingPattern applies rename in place to every identifier name p
// binds, including nested destructuring and a trailing rest element.
// Declarator/parameter patterns sit outside RewriteStmt/RewriteExpr's
// reach (they're never evaluated, so the generic rewriters skip them),
// so any pass that renames bindings — not just their reads — must walk
// the declaration site's pattern explicitly with this helper alongside
// renaming the Identifier reference nodes.
func RenameBindingPattern(p Pattern, rename func(string) string) {
	switch n := p.(type) {
	case *IdentifierPattern:
		n.Name = rename(n.Name)
	case *ArrayPattern:
		for _, el := range n.Elements {
			if el.Pattern != nil {
				RenameBindingPattern(el.Pattern, rename)
			}
		}
	case *ObjectPattern:
		for _, prop := range n.Properties {
			RenameBindingPattern(prop.Value, rename)
		}
		if n.Rest != nil {
			n.Rest.Name = rename(n.Rest.Name)
		}
	case *RestElement:
		RenameBindingPattern(n.Argument, rename)
	case *AssignmentPattern:
		RenameBindingPattern(n.Left, rename)
	}
}

// SimpleName returns (name, true) if p is a bare identifier binding with
// no default and no destructuring, the shape function-inlining requires
// every parameter to have before it can substitute call arguments
// directly for parameter references.
func SimpleName(p Pattern) (string, bool) {
	id, ok := p.(*IdentifierPattern)
	if !ok {
		return "", false
	}
	return id.Name, true
}

// IsValidIdentifierName reports whether s could stand unchanged as a bare
// property name, the precondition both the obj["name"] -> obj.name
// rewrite and dynamic-property-to-static conversion require before
// dropping the bracket form.
func IsValidIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !(r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
				return false
			}
			continue
		}
		if !(r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return !reservedWords[s]
}

var reservedWords = map[string]bool{
	"var": true, "let": true, "const": true, "function": true, "return": true,
	"if": true, "else": true, "while": true, "do": true, "for": true, "in": true, "of": true,
	"switch": true, "case": true, "default": true, "break": true, "continue": true,
	"throw": true, "try": true, "catch": true, "finally": true, "new": true, "delete": true,
	"typeof": true, "void": true, "instanceof": true, "null": true, "true": true, "false": true,
	"this": true, "debugger": true, "export": true, "import": true, "class": true, "extends": true,
	"super": true, "yield": true,
}

// AsIntLiteral reports whether e is, syntactically, an integer-valued
// numeric literal (zero fractional part), including any number of
// nested unary minus prefixes so `-5` folds the same as `5`. It
// never evaluates arbitrary expressions.
func AsIntLiteral(e Expression) (int64, bool) {
	e = Unwrap(e)
	switch n := e.(type) {
	case *NumberLiteral:
		if n.Value != float64(int64(n.Value)) {
			return 0, false
		}
		return int64(n.Value), true
	case *UnaryExpression:
		if n.Operator != UnaryMinus {
			return 0, false
		}
		v, ok := AsIntLiteral(n.Argument)
		if !ok {
			return 0, false
		}
		return -v, true
	}
	return 0, false
}

// AsStringLiteral unwraps parens to check for a string literal.
func AsStringLiteral(e Expression) (string, bool) {
	if s, ok := Unwrap(e).(*StringLiteral); ok {
		return s.Value, true
	}
	return "", false
}

// AsBoolLiteral unwraps parens to check for a boolean literal.
func AsBoolLiteral(e Expression) (bool, bool) {
	if b, ok := Unwrap(e).(*BooleanLiteral); ok {
		return b.Value, true
	}
	return false, false
}

// IdentName returns (name, true) if e is a bare identifier reference.
func IdentName(e Expression) (string, bool) {
	if id, ok := Unwrap(e).(*Identifier); ok {
		return id.Name, true
	}
	return "", false
}
