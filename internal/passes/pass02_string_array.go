package passes

import (
	"strings"

	"github.com/aledsdavies/deobfjs/internal/ast"
	"github.com/aledsdavies/deobfjs/internal/state"
)

// obfuscatedNameHeuristic reports whether name carries the `_0x`/`_0X`
// prefix obfuscator-generated identifiers for string arrays commonly use.
func obfuscatedNameHeuristic(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "_0x")
}

// DetectStringArrays registers every top-level `var NAME = ["a", "b", ...];`
// whose name matches the obfuscated-name heuristic and whose elements are
// all string literals.
func DetectStringArrays(prog *ast.Program, st *state.DeobfuscateState) {
	for _, s := range prog.Body {
		vd, ok := s.(*ast.VarDeclaration)
		if !ok {
			continue
		}
		for _, d := range vd.Declarators {
			name, ok := ast.SimpleName(d.Id)
			if !ok || !obfuscatedNameHeuristic(name) || d.Init == nil {
				continue
			}
			arr, ok := ast.Unwrap(d.Init).(*ast.ArrayExpression)
			if !ok {
				continue
			}
			strs := make([]string, 0, len(arr.Elements))
			allStrings := true
			for _, el := range arr.Elements {
				v, ok := ast.AsStringLiteral(el)
				if !ok {
					allStrings = false
					break
				}
				strs = append(strs, v)
			}
			if !allStrings {
				continue
			}
			st.StringArrays[name] = &state.StringArrayInfo{Strings: strs}
		}
	}
}

// RotateStringArrays finds rotation IIFEs — `(function(arr){ ...push/shift
// loop with a small literal k... })(SEQ)` — for each registered array and
// applies the rotation to the stored sequence.
func RotateStringArrays(prog *ast.Program, st *state.DeobfuscateState) {
	for _, s := range prog.Body {
		es, ok := s.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		call, ok := ast.Unwrap(es.Expr).(*ast.CallExpression)
		if !ok || len(call.Args) == 0 {
			continue
		}
		arrName, ok := ast.IdentName(call.Args[0])
		if !ok {
			continue
		}
		info, ok := st.StringArrays[arrName]
		if !ok || info.Rotated {
			continue
		}
		fn, ok := ast.Unwrap(call.Callee).(*ast.FunctionExpression)
		if !ok || len(fn.Params) == 0 {
			continue
		}
		param, ok := ast.SimpleName(fn.Params[0])
		if !ok {
			continue
		}
		if k, ok := findRotationDriver(fn.Body, param); ok {
			info.Strings = state.Rotate(info.Strings, k)
			info.Rotated = true
			info.RotationCount = k
		}
	}
}

// findRotationDriver reports whether body calls param.push and
// param.shift (in either order, possibly nested in a while loop or local
// helper) and returns the first in-range literal (1 <= k < 1000) met in
// the bottom-up visit order of the body as the rotation count.
func findRotationDriver(body *ast.BlockStatement, param string) (int, bool) {
	sawPush, sawShift := false, false
	var count int
	found := false
	ast.VisitStmt(body, ast.Visitor{Expr: func(e ast.Expression) {
		if call, ok := e.(*ast.CallExpression); ok {
			if m, ok := call.Callee.(*ast.MemberExpression); ok && !m.Computed {
				if obj, ok := ast.IdentName(m.Object); ok && obj == param {
					switch m.PropertyName {
					case "push":
						sawPush = true
					case "shift":
						sawShift = true
					}
				}
			}
		}
		if n, ok := ast.AsIntLiteral(e); ok && n >= 1 && n < 1000 && !found {
			count = int(n)
			found = true
		}
	}})
	if sawPush && sawShift && found {
		return count, true
	}
	return 0, false
}
