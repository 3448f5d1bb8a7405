// Package ast defines the syntax tree produced by pkg/parser.
//
// Every node is a concrete struct implementing one of the two sealed
// interfaces below (Stmt, Expr). Dispatch throughout the compiler and
// evaluator is a type switch over these concrete types, not a virtual
// method table — mirroring the tagged-union style the rest of this
// codebase uses for runtime values.
package ast

import "github.com/JangRuBin2/rulang/pkg/lexer"

// Node is anything that can report the token it starts at, for error
// reporting.
type Node interface {
	Pos() lexer.Token
}

// Stmt is a top-level or block-level statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is anything that evaluates to a Value.
type Expr interface {
	Node
	exprNode()
}

// Program is the root of a parsed source file: an ordered list of
// top-level statements.
type Program struct {
	Body []Stmt
}

// ---- Statements ----

// State declares a finite set of named states; States[0] is initial.
type State struct {
	Token  lexer.Token
	Name   string
	States []string
}

func (s *State) Pos() lexer.Token { return s.Token }
func (*State) stmtNode()          {}

// TransitionRule is one `FROM -> TO when EVENT` rule inside a
// transition declaration.
type TransitionRule struct {
	From  string
	To    string
	Event string
}

// Transition declares the legal (from, event) -> to rules for a
// previously declared state machine.
type Transition struct {
	Token     lexer.Token
	StateName string
	Rules     []TransitionRule
}

func (t *Transition) Pos() lexer.Token { return t.Token }
func (*Transition) stmtNode()          {}

// Let binds the result of an expression to a name in the current scope.
type Let struct {
	Token lexer.Token
	Name  string
	Value Expr
}

func (l *Let) Pos() lexer.Token { return l.Token }
func (*Let) stmtNode()          {}

// Fn declares a named function in the current scope.
type Fn struct {
	Token  lexer.Token
	Name   string
	Params []string
	Body   *Block
}

func (f *Fn) Pos() lexer.Token { return f.Token }
func (*Fn) stmtNode()          {}

// If is a conditional. A nested `else if` is represented by Else
// holding the next If directly, not wrapped in a Block — see the parser
// for why the chain head does not open a fresh scope.
type If struct {
	Token lexer.Token
	Cond  Expr
	Then  *Block
	Else  Stmt // *Block, *If, or nil
}

func (i *If) Pos() lexer.Token { return i.Token }
func (*If) stmtNode()          {}

// Return unwinds to the nearest enclosing function call.
type Return struct {
	Token lexer.Token
	Arg   Expr // nil for a bare `return`
}

func (r *Return) Pos() lexer.Token { return r.Token }
func (*Return) stmtNode()          {}

// Print evaluates Arg, stringifies it, and emits it to the host sink.
type Print struct {
	Token lexer.Token
	Arg   Expr
}

func (p *Print) Pos() lexer.Token { return p.Token }
func (*Print) stmtNode()          {}

// Block is a brace-delimited statement sequence; evaluating one opens
// a child scope.
type Block struct {
	Token lexer.Token
	Body  []Stmt
}

func (b *Block) Pos() lexer.Token { return b.Token }
func (*Block) stmtNode()          {}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Token lexer.Token
	Expr  Expr
}

func (e *ExpressionStmt) Pos() lexer.Token { return e.Token }
func (*ExpressionStmt) stmtNode()          {}

// Endpoint declares an HTTP handler, forwarded to the host registry.
type Endpoint struct {
	Token       lexer.Token
	Method      string
	Path        string
	Middlewares []string
	Body        *Block
}

func (e *Endpoint) Pos() lexer.Token { return e.Token }
func (*Endpoint) stmtNode()          {}

// Middleware declares a reusable block invoked before endpoint bodies.
type Middleware struct {
	Token lexer.Token
	Name  string
	Body  *Block
}

func (m *Middleware) Pos() lexer.Token { return m.Token }
func (*Middleware) stmtNode()          {}

// Use registers one or more middleware names to apply globally, in order.
type Use struct {
	Token       lexer.Token
	Middlewares []string
}

func (u *Use) Pos() lexer.Token { return u.Token }
func (*Use) stmtNode()          {}

// ValidationField is one declared field of a `validate` schema.
type ValidationField struct {
	Name     string
	Type     string // string | number | boolean | array | object
	Optional bool
	Nested   []ValidationField // only set when Type == "object"
}

// Validate declares a request-body (or other object) schema check.
type Validate struct {
	Token  lexer.Token
	Target Expr
	Fields []ValidationField
}

func (v *Validate) Pos() lexer.Token { return v.Token }
func (*Validate) stmtNode()          {}

// Server declares the port the HTTP adapter should listen on.
type Server struct {
	Token lexer.Token
	Port  Expr
}

func (s *Server) Pos() lexer.Token { return s.Token }
func (*Server) stmtNode()          {}

// ---- Expressions ----

type NumberLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *NumberLiteral) Pos() lexer.Token { return n.Token }
func (*NumberLiteral) exprNode()          {}

type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) Pos() lexer.Token { return s.Token }
func (*StringLiteral) exprNode()          {}

type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) Pos() lexer.Token { return b.Token }
func (*BoolLiteral) exprNode()          {}

type NullLiteral struct {
	Token lexer.Token
}

func (n *NullLiteral) Pos() lexer.Token { return n.Token }
func (*NullLiteral) exprNode()          {}

type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) Pos() lexer.Token { return i.Token }
func (*Identifier) exprNode()          {}

// Binary covers arithmetic, comparison, equality, logical, and
// assignment operators — Op is the lexeme ("+", "==", "and", "=", ...).
type Binary struct {
	Token lexer.Token
	Op    string
	Left  Expr
	Right Expr
}

func (b *Binary) Pos() lexer.Token { return b.Token }
func (*Binary) exprNode()          {}

// Unary is prefix negation; Rulang has no other prefix operator.
type Unary struct {
	Token lexer.Token
	Op    string
	Right Expr
}

func (u *Unary) Pos() lexer.Token { return u.Token }
func (*Unary) exprNode()          {}

type Call struct {
	Token  lexer.Token
	Callee Expr
	Args   []Expr
}

func (c *Call) Pos() lexer.Token { return c.Token }
func (*Call) exprNode()          {}

// Member is `Object.Property`; Property may be a keyword lexeme.
type Member struct {
	Token    lexer.Token
	Object   Expr
	Property string
}

func (m *Member) Pos() lexer.Token { return m.Token }
func (*Member) exprNode()          {}

type ArrayLiteral struct {
	Token    lexer.Token
	Elements []Expr
}

func (a *ArrayLiteral) Pos() lexer.Token { return a.Token }
func (*ArrayLiteral) exprNode()          {}

// ObjectEntry is one `key: value` pair; order is preserved.
type ObjectEntry struct {
	Key   string
	Value Expr
}

type ObjectLiteral struct {
	Token   lexer.Token
	Entries []ObjectEntry
}

func (o *ObjectLiteral) Pos() lexer.Token { return o.Token }
func (*ObjectLiteral) exprNode()          {}

// FunctionLiteral is an anonymous `fn(params) { body }` expression.
type FunctionLiteral struct {
	Token  lexer.Token
	Params []string
	Body   *Block
}

func (f *FunctionLiteral) Pos() lexer.Token { return f.Token }
func (*FunctionLiteral) exprNode()          {}
