package passes

import (
	"github.com/aledsdavies/deobfjs/internal/ast"
	"github.com/aledsdavies/deobfjs/internal/state"
)

// DetectDecoders finds top-level `function NAME(p) { ...; return
// ARRAY[expr]; }` decoder wrappers and registers their offset semantics.
func DetectDecoders(prog *ast.Program, st *state.DeobfuscateState) {
	for _, s := range prog.Body {
		fd, ok := s.(*ast.FunctionDeclaration)
		if !ok || fd.IsAsync || fd.IsGen || len(fd.Params) != 1 {
			continue
		}
		param, ok := ast.SimpleName(fd.Params[0])
		if !ok {
			continue
		}
		info, ok := decoderShape(fd.Body, param, st)
		if !ok {
			continue
		}
		st.Decoders[fd.Name] = info
	}
}

// decoderShape inspects a candidate decoder body for the return-indexing
// shape, preferring an explicit `p = p - C;`/`p = p + C;` assignment
// offset over an inline `ARRAY[p - C]` offset when both are present.
func decoderShape(body *ast.BlockStatement, param string, st *state.DeobfuscateState) (*state.DecoderInfo, bool) {
	var assignOp state.OffsetOp
	var assignOffset int
	haveAssign := false

	for _, s := range body.Body {
		es, ok := s.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		assign, ok := es.Expr.(*ast.AssignmentExpression)
		if !ok || assign.Operator != ast.AssignPlain {
			continue
		}
		name, ok := ast.IdentName(assign.Left)
		if !ok || name != param {
			continue
		}
		if op, offset, ok := matchOffsetExpr(assign.Right, param); ok {
			assignOp, assignOffset, haveAssign = op, offset, true
		}
	}

	for _, s := range body.Body {
		ret, ok := s.(*ast.ReturnStatement)
		if !ok || ret.Argument == nil {
			continue
		}
		member, ok := ast.Unwrap(ret.Argument).(*ast.MemberExpression)
		if !ok || !member.Computed {
			continue
		}
		arrName, ok := ast.IdentName(member.Object)
		if !ok {
			continue
		}
		if _, known := st.StringArrays[arrName]; !known {
			continue
		}
		if haveAssign {
			if name, ok := ast.IdentName(member.Property); ok && name == param {
				return &state.DecoderInfo{ArrayName: arrName, Offset: assignOffset, OffsetOp: assignOp}, true
			}
		}
		if op, offset, ok := matchOffsetExpr(member.Property, param); ok {
			return &state.DecoderInfo{ArrayName: arrName, Offset: offset, OffsetOp: op}, true
		}
	}
	return nil, false
}

// matchOffsetExpr recognizes `p`, `p - C`, `p + C` for integer literal C.
func matchOffsetExpr(e ast.Expression, param string) (state.OffsetOp, int, bool) {
	e = ast.Unwrap(e)
	if name, ok := ast.IdentName(e); ok && name == param {
		return state.OffsetNone, 0, true
	}
	bin, ok := e.(*ast.BinaryExpression)
	if !ok {
		return state.OffsetNone, 0, false
	}
	name, ok := ast.IdentName(bin.Left)
	if !ok || name != param {
		return state.OffsetNone, 0, false
	}
	c, ok := ast.AsIntLiteral(bin.Right)
	if !ok {
		return state.OffsetNone, 0, false
	}
	switch bin.Operator {
	case ast.BinSub:
		return state.OffsetSub, int(c), true
	case ast.BinAdd:
		return state.OffsetAdd, int(c), true
	default:
		return state.OffsetNone, 0, false
	}
}

// InlineDecoderCalls replaces every `NAME(n)` call (n a numeric literal)
// where NAME is a registered decoder with the string literal it resolves
// to. Bounds violations and non-literal arguments leave the call alone.
func InlineDecoderCalls(prog *ast.Program, st *state.DeobfuscateState) {
	ast.RewriteProgram(prog, nil, func(e ast.Expression) ast.Expression {
		call, ok := e.(*ast.CallExpression)
		if !ok || len(call.Args) != 1 {
			return e
		}
		name, ok := ast.IdentName(call.Callee)
		if !ok {
			return e
		}
		dec, ok := st.Decoders[name]
		if !ok {
			return e
		}
		n, ok := ast.AsIntLiteral(call.Args[0])
		if !ok {
			return e
		}
		idx := dec.Index(n)
		val, ok := st.Lookup(dec.ArrayName, idx)
		if !ok {
			return e
		}
		return &ast.StringLiteral{Value: val, Position: call.Position}
	})
}
