// Pass 18 normalizes Unicode mangling: obfuscators frequently season
// identifiers and string literals with zero-width joiners or swap in
// visually-identical Cyrillic/Greek homoglyphs for Latin letters to
// defeat naive text search while looking unchanged on screen.
package passes

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/aledsdavies/deobfjs/internal/ast"
)

// zeroWidthStrip is a golang.org/x/text/runes.Remove transformer that drops
// zero-width joiners/non-joiners, zero-width space, the byte-order mark
// and the word joiner in one pass over each string, rather than a
// hand-rolled rune-by-rune filter.
const (
	zwsp = '​'      // zero-width space
	zwnj = '‌'      // zero-width non-joiner
	zwj  = '‍'      // zero-width joiner
	wj   = '⁠'      // word joiner
	bom  = '\uFEFF' // byte order mark
)

var zeroWidthStrip = runes.Remove(runes.Predicate(func(r rune) bool {
	switch r {
	case zwsp, zwnj, zwj, wj, bom:
		return true
	}
	return false
}))

// confusables maps homoglyphs obfuscators substitute into identifiers —
// Cyrillic and Greek letters that render identically to a Latin letter —
// back to their Latin counterpart.
var confusables = map[rune]rune{
	'А': 'A', 'В': 'B', 'Е': 'E', 'К': 'K', 'М': 'M',
	'Н': 'H', 'О': 'O', 'Р': 'P', 'С': 'C', 'Т': 'T',
	'Х': 'X', 'а': 'a', 'е': 'e', 'о': 'o', 'р': 'p',
	'с': 'c', 'у': 'y', 'х': 'x',
	'Α': 'A', 'Β': 'B', 'Ε': 'E', 'Ζ': 'Z', 'Η': 'H',
	'Ι': 'I', 'Κ': 'K', 'Μ': 'M', 'Ν': 'N', 'Ο': 'O',
	'Ρ': 'P', 'Τ': 'T', 'Υ': 'Y', 'Χ': 'X',
}

// NormalizeUnicode strips zero-width mangling and replaces confusable
// homoglyphs in every identifier and string literal. NFKC normalization
// (golang.org/x/text/unicode/norm) runs first so composed/decomposed
// forms of the same visible character collapse before the confusable
// table is applied, then identifiers are additionally renamed to a fresh
// clean form, consistently across every reference, via a name-remap
// table built in encounter order. String values are normalized in place
// with no remap.
func NormalizeUnicode(prog *ast.Program) {
	remap := map[string]string{}
	order := []string{}

	rename := func(name string) string {
		cleaned := cleanText(name)
		if cleaned == name {
			return name
		}
		if existing, ok := remap[name]; ok {
			return existing
		}
		candidate := cleaned
		suffix := 1
		for usedByOther(candidate, remap) {
			candidate = cleaned + "_" + itoa(suffix)
			suffix++
		}
		remap[name] = candidate
		order = append(order, name)
		return candidate
	}
	_ = order

	ast.RewriteProgram(prog, func(s ast.Statement) ast.Statement {
		switch n := s.(type) {
		case *ast.FunctionDeclaration:
			if n.Name != "" {
				n.Name = rename(n.Name)
			}
			for _, p := range n.Params {
				ast.RenameBindingPattern(p, rename)
			}
		case *ast.VarDeclaration:
			for _, d := range n.Declarators {
				ast.RenameBindingPattern(d.Id, rename)
			}
		case *ast.TryStatement:
			if n.Handler != nil && n.Handler.Param != nil {
				ast.RenameBindingPattern(n.Handler.Param, rename)
			}
		}
		return s
	}, func(e ast.Expression) ast.Expression {
		switch n := e.(type) {
		case *ast.Identifier:
			n.Name = rename(n.Name)
		case *ast.StringLiteral:
			n.Value = cleanText(n.Value)
		case *ast.FunctionExpression:
			if n.Name != "" {
				n.Name = rename(n.Name)
			}
			for _, p := range n.Params {
				ast.RenameBindingPattern(p, rename)
			}
		case *ast.ArrowFunctionExpression:
			for _, p := range n.Params {
				ast.RenameBindingPattern(p, rename)
			}
		case *ast.MemberExpression:
			if !n.Computed && n.PropertyName != "" {
				// property names are never remapped: they aren't local
				// bindings, only the mangling itself is stripped.
				n.PropertyName = cleanText(n.PropertyName)
			}
		}
		return e
	})
}

func usedByOther(candidate string, remap map[string]string) bool {
	for _, v := range remap {
		if v == candidate {
			return true
		}
	}
	return false
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// cleanText runs NFKC normalization, strips zero-width mangling and
// replaces confusable homoglyphs, in that order.
func cleanText(s string) string {
	normalized, _, err := transform.String(norm.NFKC, s)
	if err != nil {
		normalized = s
	}
	stripped, _, err := transform.String(zeroWidthStrip, normalized)
	if err != nil {
		stripped = normalized
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if latin, ok := confusables[r]; ok {
			b.WriteRune(latin)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
