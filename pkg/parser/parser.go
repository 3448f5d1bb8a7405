// Package parser turns a token stream into an ast.Program via
// recursive descent with Pratt-style expression parsing.
package parser

import (
	"strconv"

	"github.com/JangRuBin2/rulang/pkg/ast"
	"github.com/JangRuBin2/rulang/pkg/lexer"
)

// Precedence levels, lowest to highest, one consecutive value per tier,
// in the same order as spec's precedence list.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // =
	LOGICAL_OR  // or
	LOGICAL_AND // and
	EQUALITY    // == !=
	COMPARISON  // < > <= >=
	ADDITIVE    // + -
	MULTIPLICATIVE
	UNARY
	CALL // ( ) .
)

var precedences = map[lexer.Kind]int{
	lexer.ASSIGN:  ASSIGNMENT,
	lexer.OR:      LOGICAL_OR,
	lexer.AND:     LOGICAL_AND,
	lexer.EQ:      EQUALITY,
	lexer.NOT_EQ:  EQUALITY,
	lexer.LT:      COMPARISON,
	lexer.GT:      COMPARISON,
	lexer.LT_EQ:   COMPARISON,
	lexer.GT_EQ:   COMPARISON,
	lexer.PLUS:    ADDITIVE,
	lexer.MINUS:   ADDITIVE,
	lexer.STAR:    MULTIPLICATIVE,
	lexer.SLASH:   MULTIPLICATIVE,
	lexer.PERCENT: MULTIPLICATIVE,
	lexer.LPAREN:  CALL,
	lexer.DOT:     CALL,
}

// httpMethods is the fixed set of keyword kinds legal after `endpoint`.
var httpMethods = map[lexer.Kind]string{
	lexer.GET:    "GET",
	lexer.POST:   "POST",
	lexer.PUT:    "PUT",
	lexer.DELETE: "DELETE",
	lexer.PATCH:  "PATCH",
}

// Parser holds a two-token lookahead (cur, peek) over a Scanner.
type Parser struct {
	scan *lexer.Scanner

	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser reading from scan. It primes cur/peek by
// scanning the first two tokens.
func New(scan *lexer.Scanner) (*Parser, error) {
	p := &Parser{scan: scan}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse scans src with a fresh Scanner and parses it into a Program.
func Parse(src string) (*ast.Program, error) {
	p, err := New(lexer.NewScanner(src))
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.scan.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) errorf(msg string) *ParseError {
	return &ParseError{Line: p.cur.Line, Msg: msg, Actual: p.cur.Kind.String()}
}

// expect checks cur.Kind, advances past it, and reports a ParseError
// (including the lexer's own error, if advancing triggers one) on
// mismatch.
func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	if p.cur.Kind != k {
		return lexer.Token{}, p.errorf("expected " + k.String())
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

// ParseProgram consumes the entire token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.cur.Kind != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur.Kind {
	case lexer.STATE:
		return p.parseState()
	case lexer.TRANSITION:
		return p.parseTransition()
	case lexer.LET:
		return p.parseLet()
	case lexer.FN:
		return p.parseFn()
	case lexer.IF:
		return p.parseIf()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.ENDPOINT:
		return p.parseEndpoint()
	case lexer.MIDDLEWARE:
		return p.parseMiddleware()
	case lexer.USE:
		return p.parseUse()
	case lexer.VALIDATE:
		return p.parseValidate()
	case lexer.SERVER:
		return p.parseServer()
	default:
		return p.parseExpressionStatement()
	}
}

// parseIdentifierName consumes an IDENTIFIER and returns its lexeme.
func (p *Parser) parseIdentifierName() (string, error) {
	tok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return "", err
	}
	return tok.Lexeme, nil
}

// parsePropertyName consumes a property/key name: any identifier or
// keyword lexeme, per spec §4.2's keyword-as-property-name allowance.
func (p *Parser) parsePropertyName() (string, error) {
	if p.cur.Kind == lexer.IDENTIFIER || p.cur.Kind.IsKeyword() {
		lexeme := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return "", err
		}
		return lexeme, nil
	}
	return "", p.errorf("expected property name")
}

// parseDottedIdentifier parses one or more identifiers joined by '.'
// and returns the joined event name.
func (p *Parser) parseDottedIdentifier() (string, error) {
	name, err := p.parseIdentifierName()
	if err != nil {
		return "", err
	}
	for p.cur.Kind == lexer.DOT {
		if err := p.advance(); err != nil {
			return "", err
		}
		part, err := p.parseIdentifierName()
		if err != nil {
			return "", err
		}
		name += "." + part
	}
	return name, nil
}

// ---- state / transition ----

func (p *Parser) parseState() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var states []string
	for p.cur.Kind != lexer.RBRACE {
		id, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		states = append(states, id)
		if p.cur.Kind == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.State{Token: tok, Name: name, States: states}, nil
}

func (p *Parser) parseTransition() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	var rules []ast.TransitionRule
	for p.cur.Kind != lexer.RBRACE {
		from, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.ARROW); err != nil {
			return nil, err
		}
		to, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.WHEN); err != nil {
			return nil, err
		}
		event, err := p.parseDottedIdentifier()
		if err != nil {
			return nil, err
		}
		rules = append(rules, ast.TransitionRule{From: from, To: to, Event: event})
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Transition{Token: tok, StateName: name, Rules: rules}, nil
}

// ---- let / fn / if / return / print ----

func (p *Parser) parseLet() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.Let{Token: tok, Name: name, Value: value}, nil
}

func (p *Parser) parseFn() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockRaw()
	if err != nil {
		return nil, err
	}
	return &ast.Fn{Token: tok, Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseParamList() ([]string, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for p.cur.Kind != lexer.RPAREN {
		name, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		params = append(params, name)
		if p.cur.Kind == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlockRaw()
	if err != nil {
		return nil, err
	}

	node := &ast.If{Token: tok, Cond: cond, Then: then}
	if p.cur.Kind == lexer.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.IF {
			// `else if`: the chain head runs in the current scope, not a
			// fresh child one, so it is stored as a bare *If, not wrapped
			// in a Block.
			elseIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			node.Else = elseIf
		} else {
			elseBlock, err := p.parseBlockRaw()
			if err != nil {
				return nil, err
			}
			node.Else = elseBlock
		}
	}
	return node, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind == lexer.SEMICOLON || p.cur.Kind == lexer.RBRACE || p.cur.Kind == lexer.EOF {
		p.skipSemicolon()
		return &ast.Return{Token: tok}, nil
	}
	arg, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.Return{Token: tok, Arg: arg}, nil
}

func (p *Parser) parsePrint() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	arg, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.Print{Token: tok, Arg: arg}, nil
}

func (p *Parser) parseBlock() (ast.Stmt, error) {
	return p.parseBlockRaw()
}

func (p *Parser) parseBlockRaw() (*ast.Block, error) {
	tok := p.cur
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	block := &ast.Block{Token: tok}
	for p.cur.Kind != lexer.RBRACE {
		if p.cur.Kind == lexer.EOF {
			return nil, p.errorf("unterminated block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Body = append(block.Body, stmt)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseExpressionStatement() (ast.Stmt, error) {
	tok := p.cur
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.ExpressionStmt{Token: tok, Expr: expr}, nil
}

func (p *Parser) skipSemicolon() {
	if p.cur.Kind == lexer.SEMICOLON {
		_ = p.advance()
	}
}

// ---- endpoint / middleware / use / validate / server ----

func (p *Parser) parseEndpoint() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	method, ok := httpMethods[p.cur.Kind]
	if !ok {
		return nil, p.errorf("expected HTTP method")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	pathTok, err := p.expect(lexer.STRING)
	if err != nil {
		return nil, err
	}

	var middlewares []string
	if p.cur.Kind == lexer.USE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		middlewares, err = p.parseBracketedIdentifierList()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlockRaw()
	if err != nil {
		return nil, err
	}
	return &ast.Endpoint{
		Token: tok, Method: method, Path: pathTok.Lexeme,
		Middlewares: middlewares, Body: body,
	}, nil
}

func (p *Parser) parseBracketedIdentifierList() ([]string, error) {
	if _, err := p.expect(lexer.LBRACKET); err != nil {
		return nil, err
	}
	var names []string
	for p.cur.Kind != lexer.RBRACKET {
		name, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		if p.cur.Kind == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return names, nil
}

func (p *Parser) parseMiddleware() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockRaw()
	if err != nil {
		return nil, err
	}
	return &ast.Middleware{Token: tok, Name: name, Body: body}, nil
}

func (p *Parser) parseUse() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cur.Kind == lexer.LBRACKET {
		names, err := p.parseBracketedIdentifierList()
		if err != nil {
			return nil, err
		}
		return &ast.Use{Token: tok, Middlewares: names}, nil
	}
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	return &ast.Use{Token: tok, Middlewares: []string{name}}, nil
}

func (p *Parser) parseValidate() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	target, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseValidationFieldBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Validate{Token: tok, Target: target, Fields: fields}, nil
}

func (p *Parser) parseValidationFieldBlock() ([]ast.ValidationField, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	var fields []ast.ValidationField
	for p.cur.Kind != lexer.RBRACE {
		field, err := p.parseValidationField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
		if p.cur.Kind == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return fields, nil
}

func (p *Parser) parseValidationField() (ast.ValidationField, error) {
	name, err := p.parseIdentifierName()
	if err != nil {
		return ast.ValidationField{}, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return ast.ValidationField{}, err
	}
	optional := false
	if p.cur.Kind == lexer.OPTIONAL {
		optional = true
		if err := p.advance(); err != nil {
			return ast.ValidationField{}, err
		}
	}
	// TYPENAME is parsed as a plain identifier, not a keyword, per spec.
	typeName, err := p.parseIdentifierName()
	if err != nil {
		return ast.ValidationField{}, err
	}

	field := ast.ValidationField{Name: name, Type: typeName, Optional: optional}
	if typeName == "object" && p.cur.Kind == lexer.LBRACE {
		nested, err := p.parseValidationFieldBlock()
		if err != nil {
			return ast.ValidationField{}, err
		}
		field.Nested = nested
	}
	return field, nil
}

func (p *Parser) parseServer() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	port, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return &ast.Server{Token: tok, Port: port}, nil
}

// ---- expressions (Pratt) ----

func (p *Parser) parseExpression(precedence int) (ast.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind != lexer.SEMICOLON && precedence < p.curPrecedence() {
		switch p.cur.Kind {
		case lexer.ASSIGN:
			left, err = p.parseAssignment(left)
		case lexer.LPAREN:
			left, err = p.parseCall(left)
		case lexer.DOT:
			left, err = p.parseMember(left)
		default:
			left, err = p.parseBinary(left)
		}
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) parsePrefix() (ast.Expr, error) {
	switch p.cur.Kind {
	case lexer.NUMBER:
		return p.parseNumberLiteral()
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBoolLiteral()
	case lexer.NULL:
		return p.parseNullLiteral()
	case lexer.IDENTIFIER, lexer.NEXT:
		// `next` is a keyword, but in an expression it names the
		// host-bound native like any other identifier.
		return p.parseIdentifierExpr()
	case lexer.LBRACE:
		return p.parseObjectLiteral()
	case lexer.LBRACKET:
		return p.parseArrayLiteral()
	case lexer.LPAREN:
		return p.parseGroupedExpression()
	case lexer.FN:
		return p.parseFunctionLiteral()
	case lexer.MINUS:
		return p.parseUnary()
	default:
		return nil, p.errorf("unexpected token in expression")
	}
}

func (p *Parser) parseNumberLiteral() (ast.Expr, error) {
	tok := p.cur
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		return nil, p.errorf("invalid number literal")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.NumberLiteral{Token: tok, Value: value}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}, nil
}

func (p *Parser) parseBoolLiteral() (ast.Expr, error) {
	tok := p.cur
	value := tok.Kind == lexer.TRUE
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.BoolLiteral{Token: tok, Value: value}, nil
}

func (p *Parser) parseNullLiteral() (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.NullLiteral{Token: tok}, nil
}

func (p *Parser) parseIdentifierExpr() (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Identifier{Token: tok, Name: tok.Lexeme}, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(UNARY)
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Token: tok, Op: tok.Lexeme, Right: right}, nil
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	var elems []ast.Expr
	for p.cur.Kind != lexer.RBRACKET {
		elem, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.cur.Kind == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ArrayLiteral{Token: tok, Elements: elems}, nil
}

func (p *Parser) parseObjectLiteral() (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	var entries []ast.ObjectEntry
	for p.cur.Kind != lexer.RBRACE {
		var key string
		var err error
		if p.cur.Kind == lexer.STRING {
			key = p.cur.Lexeme
			if err = p.advance(); err != nil {
				return nil, err
			}
		} else {
			key, err = p.parsePropertyName()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.ObjectEntry{Key: key, Value: value})
		if p.cur.Kind == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return &ast.ObjectLiteral{Token: tok, Entries: entries}, nil
}

func (p *Parser) parseFunctionLiteral() (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockRaw()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionLiteral{Token: tok, Params: params, Body: body}, nil
}

func (p *Parser) parseAssignment(left ast.Expr) (ast.Expr, error) {
	tok := p.cur
	if _, ok := left.(*ast.Identifier); !ok {
		return nil, &ParseError{Line: tok.Line, Msg: "assignment target must be an identifier", Actual: tok.Kind.String()}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	// Right-associative: same precedence recurses through parseExpression
	// at one level below ASSIGNMENT so a chain `a = b = c` nests right.
	right, err := p.parseExpression(ASSIGNMENT - 1)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Token: tok, Op: "=", Left: left, Right: right}, nil
}

func (p *Parser) parseBinary(left ast.Expr) (ast.Expr, error) {
	tok := p.cur
	precedence := p.curPrecedence()
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Token: tok, Op: tok.Lexeme, Left: left, Right: right}, nil
}

func (p *Parser) parseCall(callee ast.Expr) (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.cur.Kind != lexer.RPAREN {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Kind == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Call{Token: tok, Callee: callee, Args: args}, nil
}

func (p *Parser) parseMember(object ast.Expr) (ast.Expr, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	property, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	return &ast.Member{Token: tok, Object: object, Property: property}, nil
}
