// Package ast defines the syntax tree the deobfuscation pipeline operates
// on. Every node family is an exhaustive tagged variant: a Go interface
// implemented by a closed set of concrete struct types, switched over
// exhaustively by every pass rather than dispatched through overridden
// methods.
//
// Positions are advisory only: rewrite passes are free to build nodes
// carrying token.Synthetic, and the printer never depends on a node's
// position to decide how to render it.
package ast

import "github.com/aledsdavies/deobfjs/internal/token"

// Node is implemented by every tree node: statements, expressions and
// patterns alike, so that generic tree-walking utilities (VisitExpr,
// RewriteExpr, CloneExpr and their statement counterparts) can
// operate without knowing which family they're looking at.
type Node interface {
	Pos() token.Position
}

// Program is the root of the tree produced by Parse and consumed by
// Generate.
type Program struct {
	Body     []Statement
	Position token.Position
}

func (p *Program) Pos() token.Position { return p.Position }

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

// Statement is the tagged variant for every statement form the parser
// produces.
type Statement interface {
	Node
	stmtNode()
}

type BlockStatement struct {
	Body     []Statement
	Position token.Position
}

type ExpressionStatement struct {
	Expr     Expression
	Position token.Position
}

// VarKind distinguishes var/let/const, all represented by one
// VarDeclaration node.
type VarKind int

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	default:
		return "var"
	}
}

type Declarator struct {
	Id       Pattern
	Init     Expression // nil if uninitialized
	Position token.Position
}

type VarDeclaration struct {
	Kind        VarKind
	Declarators []*Declarator
	Position    token.Position
}

type FunctionDeclaration struct {
	Name      string // empty for anonymous (export default function () {})
	Params    []Pattern
	Body      *BlockStatement
	IsAsync   bool
	IsGen     bool
	Position  token.Position
}

type IfStatement struct {
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if no else
	Position   token.Position
}

type WhileStatement struct {
	Test     Expression
	Body     Statement
	Position token.Position
}

type DoWhileStatement struct {
	Body     Statement
	Test     Expression
	Position token.Position
}

// ForStatement covers the classic `for(init; test; update)`. All three
// clauses are optional (`for(;;)` is a valid, empty-clause loop).
type ForStatement struct {
	Init     Node // *VarDeclaration or Expression, or nil
	Test     Expression
	Update   Expression
	Body     Statement
	Position token.Position
}

type ForInStatement struct {
	Left     Node // *VarDeclaration or Pattern
	Right    Expression
	Body     Statement
	Position token.Position
}

type ForOfStatement struct {
	Left     Node
	Right    Expression
	Body     Statement
	IsAwait  bool
	Position token.Position
}

type SwitchCase struct {
	Test       Expression // nil for default
	Consequent []Statement
	Position   token.Position
}

type SwitchStatement struct {
	Discriminant Expression
	Cases        []*SwitchCase
	Position     token.Position
}

type ReturnStatement struct {
	Argument Expression // nil for bare `return;`
	Position token.Position
}

type BreakStatement struct {
	Label    string // empty if unlabeled
	Position token.Position
}

type ContinueStatement struct {
	Label    string
	Position token.Position
}

type ThrowStatement struct {
	Argument Expression
	Position token.Position
}

type CatchClause struct {
	Param    Pattern // nil for `catch {}` with no binding
	Body     *BlockStatement
	Position token.Position
}

type TryStatement struct {
	Block     *BlockStatement
	Handler   *CatchClause // nil if no catch
	Finalizer *BlockStatement // nil if no finally
	Position  token.Position
}

type LabeledStatement struct {
	Label    string
	Body     Statement
	Position token.Position
}

type EmptyStatement struct {
	Position token.Position
}

type DebuggerStatement struct {
	Position token.Position
}

// ExportSpecifier/ImportSpecifier model the handful of module-syntax
// shapes the parser accepts; the deobfuscation passes do not rewrite
// these, they only need to round-trip them.
type ImportSpecifier struct {
	Imported string // source-side name ("default" for default import)
	Local    string
}

type ImportDeclaration struct {
	Specifiers []ImportSpecifier
	Source     string
	Position   token.Position
}

type ExportNamedDeclaration struct {
	Declaration Statement // may be nil when exporting only specifiers
	Specifiers  []ImportSpecifier
	Source      string // re-export source, empty if none
	Position    token.Position
}

type ExportDefaultDeclaration struct {
	Declaration Node // Expression or *FunctionDeclaration
	Position    token.Position
}

func (s *BlockStatement) Pos() token.Position              { return s.Position }
func (s *ExpressionStatement) Pos() token.Position         { return s.Position }
func (s *VarDeclaration) Pos() token.Position              { return s.Position }
func (s *FunctionDeclaration) Pos() token.Position         { return s.Position }
func (s *IfStatement) Pos() token.Position                 { return s.Position }
func (s *WhileStatement) Pos() token.Position              { return s.Position }
func (s *DoWhileStatement) Pos() token.Position            { return s.Position }
func (s *ForStatement) Pos() token.Position                { return s.Position }
func (s *ForInStatement) Pos() token.Position              { return s.Position }
func (s *ForOfStatement) Pos() token.Position              { return s.Position }
func (s *SwitchStatement) Pos() token.Position             { return s.Position }
func (s *ReturnStatement) Pos() token.Position             { return s.Position }
func (s *BreakStatement) Pos() token.Position              { return s.Position }
func (s *ContinueStatement) Pos() token.Position           { return s.Position }
func (s *ThrowStatement) Pos() token.Position              { return s.Position }
func (s *TryStatement) Pos() token.Position                { return s.Position }
func (s *LabeledStatement) Pos() token.Position            { return s.Position }
func (s *EmptyStatement) Pos() token.Position              { return s.Position }
func (s *DebuggerStatement) Pos() token.Position           { return s.Position }
func (s *ImportDeclaration) Pos() token.Position           { return s.Position }
func (s *ExportNamedDeclaration) Pos() token.Position      { return s.Position }
func (s *ExportDefaultDeclaration) Pos() token.Position    { return s.Position }

func (*BlockStatement) stmtNode()           {}
func (*ExpressionStatement) stmtNode()      {}
func (*VarDeclaration) stmtNode()           {}
func (*FunctionDeclaration) stmtNode()      {}
func (*IfStatement) stmtNode()              {}
func (*WhileStatement) stmtNode()           {}
func (*DoWhileStatement) stmtNode()         {}
func (*ForStatement) stmtNode()             {}
func (*ForInStatement) stmtNode()           {}
func (*ForOfStatement) stmtNode()           {}
func (*SwitchStatement) stmtNode()          {}
func (*ReturnStatement) stmtNode()          {}
func (*BreakStatement) stmtNode()           {}
func (*ContinueStatement) stmtNode()        {}
func (*ThrowStatement) stmtNode()           {}
func (*TryStatement) stmtNode()             {}
func (*LabeledStatement) stmtNode()         {}
func (*EmptyStatement) stmtNode()           {}
func (*DebuggerStatement) stmtNode()        {}
func (*ImportDeclaration) stmtNode()        {}
func (*ExportNamedDeclaration) stmtNode()   {}
func (*ExportDefaultDeclaration) stmtNode() {}
