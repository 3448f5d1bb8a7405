package dsl

import "github.com/JangRuBin2/rulang/pkg/ast"

// Num, Str, Bool, and Null build literal expressions for use in Let,
// Server, and call-argument positions without a parser in the loop.
func Num(n float64) ast.Expr     { return &ast.NumberLiteral{Value: n} }
func Str(s string) ast.Expr      { return &ast.StringLiteral{Value: s} }
func Bool(v bool) ast.Expr       { return &ast.BoolLiteral{Value: v} }
func Null() ast.Expr             { return &ast.NullLiteral{} }
func Ident(name string) ast.Expr { return &ast.Identifier{Name: name} }

// Member builds `obj.prop`.
func Member(obj ast.Expr, prop string) ast.Expr {
	return &ast.Member{Object: obj, Property: prop}
}

// Call builds `callee(args...)`.
func Call(callee ast.Expr, args ...ast.Expr) ast.Expr {
	return &ast.Call{Callee: callee, Args: args}
}

// Binary builds a `left op right` expression (arithmetic, comparison,
// equality, logical, or assignment — whatever op's lexeme means to the
// evaluator).
func Binary(left ast.Expr, op string, right ast.Expr) ast.Expr {
	return &ast.Binary{Op: op, Left: left, Right: right}
}

// Obj builds an object literal from ordered key/value pairs.
func Obj(entries ...ast.ObjectEntry) ast.Expr {
	return &ast.ObjectLiteral{Entries: entries}
}

// Entry is a convenience constructor for an Obj argument.
func Entry(key string, value ast.Expr) ast.ObjectEntry {
	return ast.ObjectEntry{Key: key, Value: value}
}

// Arr builds an array literal.
func Arr(elems ...ast.Expr) ast.Expr {
	return &ast.ArrayLiteral{Elements: elems}
}

// Block wraps a statement sequence for use as a Fn/Endpoint/Middleware
// body.
func Block(stmts ...ast.Stmt) *ast.Block {
	return &ast.Block{Body: stmts}
}

// ExprStmt wraps an expression as a statement, discarding its value —
// the shape a bare `next()` or `res.json(...)` call takes at
// statement position.
func ExprStmt(e ast.Expr) ast.Stmt {
	return &ast.ExpressionStmt{Expr: e}
}

// PrintStmt builds a `print(arg)` statement.
func PrintStmt(arg ast.Expr) ast.Stmt {
	return &ast.Print{Arg: arg}
}

// ReturnStmt builds a `return` (arg may be nil for a bare return).
func ReturnStmt(arg ast.Expr) ast.Stmt {
	return &ast.Return{Arg: arg}
}

// IfStmt builds an `if (cond) { then } else elseBranch` statement;
// elseBranch may be nil, a *ast.Block, or another *ast.If.
func IfStmt(cond ast.Expr, then *ast.Block, elseBranch ast.Stmt) ast.Stmt {
	return &ast.If{Cond: cond, Then: then, Else: elseBranch}
}
