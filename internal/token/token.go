// Package token defines the lexical token vocabulary shared by the JS
// lexer and parser.
package token

import "fmt"

// Type identifies the lexical category of a Token.
type Type int

const (
	EOF Type = iota
	ILLEGAL

	IDENT  // foo, _0x1a2b, $bar
	NUMBER // 123, 0x1F, 0b101, 0o17, 3.14, 1e10
	STRING // "a", 'a'
	TEMPLATE
	REGEXP

	// Punctuation
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	SEMI     // ;
	COMMA    // ,
	DOT      // .
	ELLIPSIS // ...
	COLON    // :
	ARROW    // =>
	QUESTION // ?
	QDOT     // ?.
	NULLISH  // ??

	// Assignment
	ASSIGN       // =
	PLUS_ASSIGN  // +=
	MINUS_ASSIGN // -=
	MUL_ASSIGN   // *=
	DIV_ASSIGN   // /=
	MOD_ASSIGN   // %=
	POW_ASSIGN   // **=
	SHL_ASSIGN   // <<=
	SHR_ASSIGN   // >>=
	USHR_ASSIGN  // >>>=
	AND_ASSIGN   // &=
	OR_ASSIGN    // |=
	XOR_ASSIGN   // ^=
	LAND_ASSIGN  // &&=
	LOR_ASSIGN   // ||=
	NULLISH_ASSIGN // ??=

	// Operators
	PLUS     // +
	MINUS    // -
	MUL      // *
	DIV      // /
	MOD      // %
	POW      // **
	INC      // ++
	DEC      // --
	NOT      // !
	BNOT     // ~
	AND      // &
	OR       // |
	XOR      // ^
	SHL      // <<
	SHR      // >>
	USHR     // >>>
	LAND     // &&
	LOR      // ||
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	EQ       // ==
	NEQ      // !=
	SEQ      // ===
	SNEQ     // !==

	// Keywords
	KW_VAR
	KW_LET
	KW_CONST
	KW_FUNCTION
	KW_RETURN
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_DO
	KW_FOR
	KW_IN
	KW_OF
	KW_SWITCH
	KW_CASE
	KW_DEFAULT
	KW_BREAK
	KW_CONTINUE
	KW_THROW
	KW_TRY
	KW_CATCH
	KW_FINALLY
	KW_NEW
	KW_DELETE
	KW_TYPEOF
	KW_VOID
	KW_INSTANCEOF
	KW_NULL
	KW_TRUE
	KW_FALSE
	KW_THIS
	KW_DEBUGGER
	KW_EXPORT
	KW_IMPORT
	KW_DEFAULT_EXPORT
	KW_FROM
	KW_AS
	KW_ASYNC
	KW_AWAIT
	KW_YIELD
	KW_STATIC
	KW_GET
	KW_SET
)

var names = map[Type]string{
	EOF: "EOF", ILLEGAL: "ILLEGAL",
	IDENT: "IDENT", NUMBER: "NUMBER", STRING: "STRING", TEMPLATE: "TEMPLATE", REGEXP: "REGEXP",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
	SEMI: ";", COMMA: ",", DOT: ".", ELLIPSIS: "...", COLON: ":", ARROW: "=>",
	QUESTION: "?", QDOT: "?.", NULLISH: "??",
	ASSIGN: "=", PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", MUL_ASSIGN: "*=", DIV_ASSIGN: "/=",
	MOD_ASSIGN: "%=", POW_ASSIGN: "**=", SHL_ASSIGN: "<<=", SHR_ASSIGN: ">>=", USHR_ASSIGN: ">>>=",
	AND_ASSIGN: "&=", OR_ASSIGN: "|=", XOR_ASSIGN: "^=", LAND_ASSIGN: "&&=", LOR_ASSIGN: "||=",
	NULLISH_ASSIGN: "??=",
	PLUS: "+", MINUS: "-", MUL: "*", DIV: "/", MOD: "%", POW: "**", INC: "++", DEC: "--",
	NOT: "!", BNOT: "~", AND: "&", OR: "|", XOR: "^", SHL: "<<", SHR: ">>", USHR: ">>>",
	LAND: "&&", LOR: "||", LT: "<", GT: ">", LE: "<=", GE: ">=", EQ: "==", NEQ: "!=", SEQ: "===", SNEQ: "!==",
	KW_VAR: "var", KW_LET: "let", KW_CONST: "const", KW_FUNCTION: "function", KW_RETURN: "return",
	KW_IF: "if", KW_ELSE: "else", KW_WHILE: "while", KW_DO: "do", KW_FOR: "for", KW_IN: "in", KW_OF: "of",
	KW_SWITCH: "switch", KW_CASE: "case", KW_DEFAULT: "default", KW_BREAK: "break", KW_CONTINUE: "continue",
	KW_THROW: "throw", KW_TRY: "try", KW_CATCH: "catch", KW_FINALLY: "finally",
	KW_NEW: "new", KW_DELETE: "delete", KW_TYPEOF: "typeof", KW_VOID: "void", KW_INSTANCEOF: "instanceof",
	KW_NULL: "null", KW_TRUE: "true", KW_FALSE: "false", KW_THIS: "this", KW_DEBUGGER: "debugger",
	KW_EXPORT: "export", KW_IMPORT: "import", KW_FROM: "from", KW_AS: "as",
	KW_ASYNC: "async", KW_AWAIT: "await", KW_YIELD: "yield", KW_STATIC: "static", KW_GET: "get", KW_SET: "set",
}

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords maps the reserved-word spelling to its Type. Identifiers that
// don't appear here lex as IDENT.
var Keywords = map[string]Type{
	"var": KW_VAR, "let": KW_LET, "const": KW_CONST, "function": KW_FUNCTION,
	"return": KW_RETURN, "if": KW_IF, "else": KW_ELSE, "while": KW_WHILE, "do": KW_DO,
	"for": KW_FOR, "in": KW_IN, "of": KW_OF, "switch": KW_SWITCH, "case": KW_CASE,
	"default": KW_DEFAULT, "break": KW_BREAK, "continue": KW_CONTINUE, "throw": KW_THROW,
	"try": KW_TRY, "catch": KW_CATCH, "finally": KW_FINALLY, "new": KW_NEW, "delete": KW_DELETE,
	"typeof": KW_TYPEOF, "void": KW_VOID, "instanceof": KW_INSTANCEOF, "null": KW_NULL,
	"true": KW_TRUE, "false": KW_FALSE, "this": KW_THIS, "debugger": KW_DEBUGGER,
	"export": KW_EXPORT, "import": KW_IMPORT, "from": KW_FROM, "as": KW_AS,
	"async": KW_ASYNC, "await": KW_AWAIT, "yield": KW_YIELD, "static": KW_STATIC,
	"get": KW_GET, "set": KW_SET,
}

// NumberBase records how a numeric literal was written in the source, so
// passes that need to preserve or normalize the original radix can.
type NumberBase int

const (
	BaseDecimal NumberBase = iota
	BaseHex
	BaseBinary
	BaseOctal
)

// Position is advisory source location: spans exist for diagnostics and
// source mapping, but passes are free to emit synthetic nodes carrying a
// sentinel span when there's no real source location to attach.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Synthetic is the sentinel position used for nodes manufactured by a
// rewrite pass rather than read from source text.
var Synthetic = Position{Line: -1, Column: -1, Offset: -1}

func (p Position) IsSynthetic() bool { return p.Line < 0 }

// Token is one lexical unit together with its source text and position.
type Token struct {
	Type    Type
	Literal string
	Pos     Position

	// NumBase is only meaningful when Type == NUMBER.
	NumBase NumberBase
	// NewlineBefore records whether a line terminator appeared between
	// this token and the previous one; the parser needs this for
	// automatic-semicolon-insertion decisions.
	NewlineBefore bool
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Literal, t.Pos.Line, t.Pos.Column)
}
