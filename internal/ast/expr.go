package ast

import "github.com/aledsdavies/deobfjs/internal/token"

// Expression is the tagged variant for every expression form the parser
// produces.
type Expression interface {
	Node
	exprNode()
}

type Identifier struct {
	Name     string
	Position token.Position
}

// NumberLiteral carries both the numeric value and (optionally) the
// original textual form plus base tag, so a pass that only cares about
// the value doesn't have to reparse Raw, while the printer can still
// reproduce 0x1F rather than silently renumbering it to 31.
type NumberLiteral struct {
	Value    float64
	Raw      string // original source text; "" for synthesized literals
	Base     token.NumberBase
	Position token.Position
}

type StringLiteral struct {
	Value    string
	Position token.Position
}

type BooleanLiteral struct {
	Value    bool
	Position token.Position
}

type NullLiteral struct {
	Position token.Position
}

type RegExpLiteral struct {
	Pattern  string
	Flags    string
	Position token.Position
}

// TemplateLiteral stores the raw text between backticks verbatim; no pass
// in this pipeline decomposes template substitutions (see lexer.readTemplate).
type TemplateLiteral struct {
	Raw      string
	Position token.Position
}

type UnaryOperator string

const (
	UnaryMinus  UnaryOperator = "-"
	UnaryPlus   UnaryOperator = "+"
	UnaryNot    UnaryOperator = "!"
	UnaryBNot   UnaryOperator = "~"
	UnaryTypeof UnaryOperator = "typeof"
	UnaryVoid   UnaryOperator = "void"
	UnaryDelete UnaryOperator = "delete"
	UnaryAwait  UnaryOperator = "await"
)

type UnaryExpression struct {
	Operator UnaryOperator
	Argument Expression
	Position token.Position
}

type UpdateOperator string

const (
	UpdateInc UpdateOperator = "++"
	UpdateDec UpdateOperator = "--"
)

type UpdateExpression struct {
	Operator UpdateOperator
	Argument Expression
	Prefix   bool
	Position token.Position
}

// BinaryOperator enumerates arithmetic, bitwise, shift, comparison and
// equality operators, with both strict and loose equality present.
type BinaryOperator string

const (
	BinAdd      BinaryOperator = "+"
	BinSub      BinaryOperator = "-"
	BinMul      BinaryOperator = "*"
	BinDiv      BinaryOperator = "/"
	BinMod      BinaryOperator = "%"
	BinPow      BinaryOperator = "**"
	BinAnd      BinaryOperator = "&"
	BinOr       BinaryOperator = "|"
	BinXor      BinaryOperator = "^"
	BinShl      BinaryOperator = "<<"
	BinShr      BinaryOperator = ">>"
	BinUShr     BinaryOperator = ">>>"
	BinLt       BinaryOperator = "<"
	BinGt       BinaryOperator = ">"
	BinLe       BinaryOperator = "<="
	BinGe       BinaryOperator = ">="
	BinEq       BinaryOperator = "=="
	BinNeq      BinaryOperator = "!="
	BinSeq      BinaryOperator = "==="
	BinSneq     BinaryOperator = "!=="
	BinIn       BinaryOperator = "in"
	BinInstOf   BinaryOperator = "instanceof"
)

type BinaryExpression struct {
	Operator BinaryOperator
	Left     Expression
	Right    Expression
	Position token.Position
}

// LogicalOperator is kept distinct from BinaryOperator because &&/||/??
// short-circuit: algebraic simplification and the short-circuit-to-if
// rewrite both depend on being able to tell a logical op from a bitwise
// or arithmetic one.
type LogicalOperator string

const (
	LogicalAnd     LogicalOperator = "&&"
	LogicalOr      LogicalOperator = "||"
	LogicalNullish LogicalOperator = "??"
)

type LogicalExpression struct {
	Operator LogicalOperator
	Left     Expression
	Right    Expression
	Position token.Position
}

type ConditionalExpression struct {
	Test       Expression
	Consequent Expression
	Alternate  Expression
	Position   token.Position
}

// AssignmentOperator covers plain `=` and every compound-assignment form.
type AssignmentOperator string

const (
	AssignPlain   AssignmentOperator = "="
	AssignAdd     AssignmentOperator = "+="
	AssignSub     AssignmentOperator = "-="
	AssignMul     AssignmentOperator = "*="
	AssignDiv     AssignmentOperator = "/="
	AssignMod     AssignmentOperator = "%="
	AssignPow     AssignmentOperator = "**="
	AssignShl     AssignmentOperator = "<<="
	AssignShr     AssignmentOperator = ">>="
	AssignUShr    AssignmentOperator = ">>>="
	AssignAnd     AssignmentOperator = "&="
	AssignOr      AssignmentOperator = "|="
	AssignXor     AssignmentOperator = "^="
	AssignLAnd    AssignmentOperator = "&&="
	AssignLOr     AssignmentOperator = "||="
	AssignNullish AssignmentOperator = "??="
)

type AssignmentExpression struct {
	Operator AssignmentOperator
	Left     Expression // Identifier or MemberExpression, or Pattern on destructuring
	Right    Expression
	Position token.Position
}

type CallExpression struct {
	Callee   Expression
	Args     []Expression
	Optional bool // `?.()`
	Position token.Position
}

type NewExpression struct {
	Callee   Expression
	Args     []Expression
	Position token.Position
}

// MemberExpression covers both `obj.name` (Computed == false, Property is
// an *Identifier-as-name, stored as PropertyName) and `obj["name"]`
// (Computed == true, Property is an arbitrary Expression).
type MemberExpression struct {
	Object       Expression
	Property     Expression // only meaningful when Computed
	PropertyName string     // only meaningful when !Computed
	Computed     bool
	Optional     bool // `?.`
	Position     token.Position
}

type ArrayExpression struct {
	Elements []Expression // nil element = elision (sparse array hole)
	Position token.Position
}

type Property struct {
	Key      Expression // *Identifier (key.Name used as literal key) or *StringLiteral or *NumberLiteral
	Computed bool
	Value    Expression
	Shorthand bool
	Position token.Position
}

type ObjectExpression struct {
	Properties []*Property
	Position   token.Position
}

type FunctionExpression struct {
	Name     string // empty for anonymous
	Params   []Pattern
	Body     *BlockStatement
	IsAsync  bool
	IsGen    bool
	Position token.Position
}

// ArrowFunctionExpression has either a block body (Body != nil) or a
// concise expression body (ExprBody != nil); the ternary-to-if
// rewrite needs to tell these apart to avoid turning a concise-body
// ternary into a statement.
type ArrowFunctionExpression struct {
	Params   []Pattern
	Body     *BlockStatement
	ExprBody Expression
	IsAsync  bool
	Position token.Position
}

type SequenceExpression struct {
	Expressions []Expression
	Position    token.Position
}

// ParenthesizedExpression preserves explicit source parens through passes
// that care about them (object-sparsing, printer precedence); passes that
// don't care look through it via Unwrap.
type ParenthesizedExpression struct {
	Expr     Expression
	Position token.Position
}

func Unwrap(e Expression) Expression {
	for {
		p, ok := e.(*ParenthesizedExpression)
		if !ok {
			return e
		}
		e = p.Expr
	}
}

type SpreadElement struct {
	Argument Expression
	Position token.Position
}

type TaggedTemplateExpression struct {
	Tag      Expression
	Quasi    *TemplateLiteral
	Position token.Position
}

func (e *Identifier) Pos() token.Position               { return e.Position }
func (e *NumberLiteral) Pos() token.Position             { return e.Position }
func (e *StringLiteral) Pos() token.Position             { return e.Position }
func (e *BooleanLiteral) Pos() token.Position            { return e.Position }
func (e *NullLiteral) Pos() token.Position               { return e.Position }
func (e *RegExpLiteral) Pos() token.Position             { return e.Position }
func (e *TemplateLiteral) Pos() token.Position           { return e.Position }
func (e *UnaryExpression) Pos() token.Position           { return e.Position }
func (e *UpdateExpression) Pos() token.Position          { return e.Position }
func (e *BinaryExpression) Pos() token.Position          { return e.Position }
func (e *LogicalExpression) Pos() token.Position         { return e.Position }
func (e *ConditionalExpression) Pos() token.Position     { return e.Position }
func (e *AssignmentExpression) Pos() token.Position      { return e.Position }
func (e *CallExpression) Pos() token.Position            { return e.Position }
func (e *NewExpression) Pos() token.Position             { return e.Position }
func (e *MemberExpression) Pos() token.Position          { return e.Position }
func (e *ArrayExpression) Pos() token.Position           { return e.Position }
func (e *ObjectExpression) Pos() token.Position          { return e.Position }
func (e *FunctionExpression) Pos() token.Position        { return e.Position }
func (e *ArrowFunctionExpression) Pos() token.Position   { return e.Position }
func (e *SequenceExpression) Pos() token.Position        { return e.Position }
func (e *ParenthesizedExpression) Pos() token.Position   { return e.Position }
func (e *SpreadElement) Pos() token.Position             { return e.Position }
func (e *TaggedTemplateExpression) Pos() token.Position  { return e.Position }

func (*Identifier) exprNode()               {}
func (*NumberLiteral) exprNode()            {}
func (*StringLiteral) exprNode()            {}
func (*BooleanLiteral) exprNode()           {}
func (*NullLiteral) exprNode()              {}
func (*RegExpLiteral) exprNode()            {}
func (*TemplateLiteral) exprNode()          {}
func (*UnaryExpression) exprNode()          {}
func (*UpdateExpression) exprNode()         {}
func (*BinaryExpression) exprNode()         {}
func (*LogicalExpression) exprNode()        {}
func (*ConditionalExpression) exprNode()    {}
func (*AssignmentExpression) exprNode()     {}
func (*CallExpression) exprNode()           {}
func (*NewExpression) exprNode()            {}
func (*MemberExpression) exprNode()         {}
func (*ArrayExpression) exprNode()          {}
func (*ObjectExpression) exprNode()         {}
func (*FunctionExpression) exprNode()       {}
func (*ArrowFunctionExpression) exprNode()  {}
func (*SequenceExpression) exprNode()       {}
func (*ParenthesizedExpression) exprNode()  {}
func (*SpreadElement) exprNode()            {}
func (*TaggedTemplateExpression) exprNode() {}
