// Package parser implements the syntax analysis for YoptaScript.
// It uses Pratt parsing (precedence climbing) for expressions and recursive
// descent for statements, with panic-mode recovery at statement boundaries.
package parser

import (
	"yoptascript/internal/ast"
	"yoptascript/internal/diag"
	"yoptascript/internal/span"
	"yoptascript/internal/token"
)

// ============================================================
// Binding power (precedence) levels — higher binds tighter
// ============================================================

const (
	bpNone       = 0
	bpAssign     = 1 // =
	bpOr         = 2 // ||
	bpAnd        = 3 // &&
	bpEquality   = 4 // == === != !==
	bpComparison = 5 // < <= > >=
	bpAdditive   = 6 // + -
	bpMultiply   = 7 // * / %
	bpPrefix     = 8 // unary + - !
	bpPostfix    = 9 // call ()
)

// infixBP returns the binding power for an infix/postfix operator, or
// bpNone if the kind starts no infix form. Prefix '!' is never infix.
func infixBP(kind token.Kind) int {
	switch kind {
	case token.ASSIGN:
		return bpAssign
	case token.OR:
		return bpOr
	case token.AND:
		return bpAnd
	case token.EQ, token.EQ_STRICT, token.NEQ, token.NEQ_STRICT:
		return bpEquality
	case token.LT, token.LTE, token.GT, token.GTE:
		return bpComparison
	case token.PLUS, token.MINUS:
		return bpAdditive
	case token.STAR, token.SLASH, token.PERCENT:
		return bpMultiply
	case token.LPAREN:
		return bpPostfix
	default:
		return bpNone
	}
}

// ============================================================
// Parser
// ============================================================

// Parser performs syntax analysis on a stream of tokens. The token slice
// must end with an EOF token, which the lexer guarantees.
type Parser struct {
	tokens []token.Token
	pos    int
	diags  []diag.Diagnostic
}

// New creates a new parser from a token slice.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{{Kind: token.EOF}}
	}
	return &Parser{tokens: tokens}
}

// ParseProgram parses the entire token stream and returns the AST root and
// diagnostics. A Program is always returned; when diagnostics are present
// the tree may be degraded but remains well-formed.
func (p *Parser) ParseProgram() (*ast.Program, []diag.Diagnostic) {
	program := &ast.Program{}
	startPos := p.peek().Span.Start

	for !p.isAtEnd() {
		stmt := p.parseStmt()
		if stmt != nil {
			program.Items = append(program.Items, stmt)
		} else {
			p.synchronize()
		}
	}

	program.Span = span.New(startPos, p.peek().Span.End)
	return program, p.diags
}

// ---- navigation helpers ----

// peek returns the token at the cursor, falling back to the trailing EOF
// on overrun.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekKind() token.Kind {
	return p.peek().Kind
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peekKind() == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind, or reports msg at the current
// token without advancing.
func (p *Parser) expect(kind token.Kind, msg string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	p.error(p.peek().Span, msg)
	return p.peek(), false
}

func (p *Parser) isAtEnd() bool {
	return p.peekKind() == token.EOF
}

func (p *Parser) error(s span.Span, msg string) {
	p.diags = append(p.diags, diag.Errorf(s, "%s", msg))
}

// ============================================================
// Error recovery
// ============================================================

// synchronize skips tokens until a likely statement boundary: just past a
// ';' or '}', or right before a keyword or '{'. Terminates at EOF.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.pos > 0 {
			prev := p.tokens[p.pos-1].Kind
			if prev == token.SEMICOLON || prev == token.RBRACE {
				return
			}
		}
		kind := p.peekKind()
		if kind.IsKeyword() || kind == token.LBRACE {
			return
		}
		p.advance()
	}
}

// ============================================================
// Statement parsing
// ============================================================

// parseStmt parses one statement. It returns nil on failure after
// reporting a diagnostic; the caller synchronizes.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.peekKind() {
	case token.KW_GYY, token.KW_UCHASTKOVIY, token.KW_YASEN_HUY:
		return p.parseVarDecl()
	case token.KW_VILKOYVGLAZ:
		return p.parseIfStmt()
	case token.KW_POTRESHCHIM:
		return p.parseWhileStmt()
	case token.KW_GO:
		return p.parseForStmt()
	case token.KW_HARE:
		start := p.advance()
		p.expectSemi()
		return &ast.BreakStmt{StmtBase: makeStmtBase(start.Span.Start, p.prevEnd())}
	case token.KW_DVIGAY:
		start := p.advance()
		p.expectSemi()
		return &ast.ContinueStmt{StmtBase: makeStmtBase(start.Span.Start, p.prevEnd())}
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		tok := p.advance()
		return &ast.EmptyStmt{StmtBase: makeStmtBase(tok.Span.Start, tok.Span.End)}
	default:
		return p.parseExprStmt()
	}
}

// parseVarDecl parses: (гыы | участковый | ясенХуй) IDENT = expr ;
func (p *Parser) parseVarDecl() ast.Stmt {
	start := p.advance() // declaration keyword

	nameTok, ok := p.expect(token.IDENT, "Ожидался идентификатор")
	if !ok {
		return nil
	}
	name := &ast.Ident{
		ExprBase: makeExprBase(nameTok.Span.Start, nameTok.Span.End),
		Name:     nameTok.Lexeme,
	}

	if _, ok := p.expect(token.ASSIGN, "Ожидался '='"); !ok {
		return nil
	}

	init := p.parseExpr(bpNone)
	if init == nil {
		return nil
	}

	p.expectSemi()
	return &ast.VarDeclStmt{
		StmtBase: makeStmtBase(start.Span.Start, p.prevEnd()),
		Keyword:  start.Kind,
		Name:     name,
		Init:     init,
	}
}

// parseIfStmt parses: вилкойвглаз ( expr ) stmt [ иливжопураз stmt ]
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.advance() // вилкойвглаз

	if _, ok := p.expect(token.LPAREN, "Ожидался '('"); !ok {
		return nil
	}
	cond := p.parseExpr(bpNone)
	if cond == nil {
		return nil
	}
	p.expect(token.RPAREN, "Ожидался ')'")

	then := p.parseStmt()
	if then == nil {
		return nil
	}

	var elseBranch ast.Stmt
	if p.check(token.KW_ILIVZHOPURAZ) {
		p.advance()
		elseBranch = p.parseStmt()
		if elseBranch == nil {
			return nil
		}
	}

	return &ast.IfStmt{
		StmtBase:  makeStmtBase(start.Span.Start, p.prevEnd()),
		Condition: cond,
		Then:      then,
		Else:      elseBranch,
	}
}

// parseWhileStmt parses: потрещим ( expr ) stmt
func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.advance() // потрещим

	if _, ok := p.expect(token.LPAREN, "Ожидался '('"); !ok {
		return nil
	}
	cond := p.parseExpr(bpNone)
	if cond == nil {
		return nil
	}
	p.expect(token.RPAREN, "Ожидался ')'")

	body := p.parseStmt()
	if body == nil {
		return nil
	}

	return &ast.WhileStmt{
		StmtBase:  makeStmtBase(start.Span.Start, p.prevEnd()),
		Condition: cond,
		Body:      body,
	}
}

// parseForStmt parses: го ( [init] ; [cond] ; [update] ) stmt
// The init clause is a var-decl or an expression statement; each clause is
// optional.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.advance() // го

	if _, ok := p.expect(token.LPAREN, "Ожидался '('"); !ok {
		return nil
	}

	// Init: a var-decl consumes its own ';'.
	var init ast.Stmt
	switch {
	case p.check(token.SEMICOLON):
		p.advance()
	case p.match(token.KW_GYY, token.KW_UCHASTKOVIY, token.KW_YASEN_HUY):
		init = p.parseVarDecl()
		if init == nil {
			return nil
		}
	default:
		expr := p.parseExpr(bpNone)
		if expr == nil {
			return nil
		}
		init = &ast.ExprStmt{
			StmtBase: makeStmtBase(expr.GetSpan().Start, expr.GetSpan().End),
			Expr:     expr,
		}
		p.expectSemi()
	}

	// Condition (optional)
	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpr(bpNone)
		if cond == nil {
			return nil
		}
	}
	p.expectSemi()

	// Update (optional)
	var update ast.Expr
	if !p.check(token.RPAREN) {
		update = p.parseExpr(bpNone)
		if update == nil {
			return nil
		}
	}
	p.expect(token.RPAREN, "Ожидался ')'")

	body := p.parseStmt()
	if body == nil {
		return nil
	}

	return &ast.ForStmt{
		StmtBase:  makeStmtBase(start.Span.Start, p.prevEnd()),
		Init:      init,
		Condition: cond,
		Update:    update,
		Body:      body,
	}
}

// parseBlock parses: { stmts } — each inner statement recovers
// independently, so one bad statement does not poison the block.
func (p *Parser) parseBlock() ast.Stmt {
	start, ok := p.expect(token.LBRACE, "Ожидалась '{'")
	if !ok {
		return nil
	}
	block := &ast.BlockStmt{}

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt := p.parseStmt()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		} else {
			p.synchronize()
		}
	}

	if _, ok := p.expect(token.RBRACE, "Ожидалась '}'"); !ok {
		return nil
	}
	block.Span = span.New(start.Span.Start, p.prevEnd())
	return block
}

// parseExprStmt parses: expr ;
func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr(bpNone)
	if expr == nil {
		return nil
	}
	p.expectSemi()
	return &ast.ExprStmt{
		StmtBase: makeStmtBase(expr.GetSpan().Start, p.prevEnd()),
		Expr:     expr,
	}
}

// expectSemi reports a missing ';' without failing the statement; recovery
// happens at the next boundary anyway.
func (p *Parser) expectSemi() {
	p.expect(token.SEMICOLON, "Ожидалась ';'")
}

// ============================================================
// Expression parsing (Pratt / precedence climbing)
// ============================================================

// parseExpr parses an expression whose operators all bind at least as
// tightly as minBP. Left associativity comes from re-entering the right
// operand at bp + 1.
func (p *Parser) parseExpr(minBP int) ast.Expr {
	left := p.nud()
	if left == nil {
		return nil
	}

	for {
		bp := infixBP(p.peekKind())
		if bp == bpNone || bp < minBP {
			break
		}
		left = p.led(left, bp)
		if left == nil {
			return nil
		}
	}

	return left
}

// nud handles prefix (null denotation) parsing: literals, identifiers,
// grouping, unary operators, array and object literals.
func (p *Parser) nud() ast.Expr {
	tok := p.peek()

	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		return &ast.NumberLit{
			ExprBase: makeExprBase(tok.Span.Start, tok.Span.End),
			Raw:      tok.Lexeme,
		}

	case token.STRING:
		p.advance()
		return &ast.StringLit{
			ExprBase: makeExprBase(tok.Span.Start, tok.Span.End),
			Value:    tok.Lexeme,
		}

	case token.IDENT:
		p.advance()
		return &ast.Ident{
			ExprBase: makeExprBase(tok.Span.Start, tok.Span.End),
			Name:     tok.Lexeme,
		}

	case token.LPAREN:
		p.advance()
		inner := p.parseExpr(bpNone)
		if inner == nil {
			return nil
		}
		p.expect(token.RPAREN, "Ожидался ')'")
		return &ast.GroupingExpr{
			ExprBase: makeExprBase(tok.Span.Start, p.prevEnd()),
			Expr:     inner,
		}

	case token.PLUS, token.MINUS, token.BANG:
		p.advance()
		operand := p.parseExpr(bpPrefix)
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpr{
			ExprBase: makeExprBase(tok.Span.Start, operand.GetSpan().End),
			Op:       tok.Kind,
			Operand:  operand,
		}

	case token.LBRACKET:
		return p.parseArrayLit()

	case token.LBRACE:
		return p.parseObjectLit()

	default:
		// Consume the offending token so that recovery always makes
		// progress, even when the token is a keyword synchronize would
		// otherwise stop at.
		p.advance()
		p.error(tok.Span, "Неожиданный токен: "+tok.Kind.String())
		return nil
	}
}

// led handles infix/postfix (left denotation) parsing for the operator at
// the cursor with binding power bp.
func (p *Parser) led(left ast.Expr, bp int) ast.Expr {
	tok := p.peek()

	if tok.Kind == token.LPAREN {
		return p.parseCallExpr(left)
	}

	// Binary infix operator, left-associative.
	p.advance()
	right := p.parseExpr(bp + 1)
	if right == nil {
		return nil
	}
	return &ast.BinaryExpr{
		ExprBase: makeExprBase(left.GetSpan().Start, right.GetSpan().End),
		Op:       tok.Kind,
		Left:     left,
		Right:    right,
	}
}

// parseCallExpr parses: callee ( args )
func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	p.advance() // '('
	var args []ast.Expr

	if !p.check(token.RPAREN) {
		arg := p.parseExpr(bpNone)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		for p.check(token.COMMA) {
			p.advance()
			arg = p.parseExpr(bpNone)
			if arg == nil {
				return nil
			}
			args = append(args, arg)
		}
	}
	p.expect(token.RPAREN, "Ожидался ')'")

	return &ast.CallExpr{
		ExprBase: makeExprBase(callee.GetSpan().Start, p.prevEnd()),
		Callee:   callee,
		Args:     args,
	}
}

// parseArrayLit parses: [ expr, expr, ... ] with optional trailing comma.
func (p *Parser) parseArrayLit() ast.Expr {
	start := p.advance() // '['
	var elements []ast.Expr

	if !p.check(token.RBRACKET) {
		elem := p.parseExpr(bpNone)
		if elem == nil {
			return nil
		}
		elements = append(elements, elem)
		for p.check(token.COMMA) {
			p.advance()
			if p.check(token.RBRACKET) {
				break
			}
			elem = p.parseExpr(bpNone)
			if elem == nil {
				return nil
			}
			elements = append(elements, elem)
		}
	}
	p.expect(token.RBRACKET, "Ожидалась ']'")

	return &ast.ArrayLit{
		ExprBase: makeExprBase(start.Span.Start, p.prevEnd()),
		Elements: elements,
	}
}

// parseObjectLit parses: { IDENT : expr, ... } with optional trailing comma.
func (p *Parser) parseObjectLit() ast.Expr {
	start := p.advance() // '{'
	var props []ast.Property

	for !p.check(token.RBRACE) {
		keyTok, ok := p.expect(token.IDENT, "Ожидался идентификатор")
		if !ok {
			return nil
		}
		key := &ast.Ident{
			ExprBase: makeExprBase(keyTok.Span.Start, keyTok.Span.End),
			Name:     keyTok.Lexeme,
		}

		if _, ok := p.expect(token.COLON, "Ожидался ':'"); !ok {
			return nil
		}

		value := p.parseExpr(bpNone)
		if value == nil {
			return nil
		}
		props = append(props, ast.Property{Key: key, Value: value})

		if !p.check(token.COMMA) {
			break
		}
		p.advance()
	}
	p.expect(token.RBRACE, "Ожидалась '}'")

	return &ast.ObjectLit{
		ExprBase:   makeExprBase(start.Span.Start, p.prevEnd()),
		Properties: props,
	}
}

// ============================================================
// Span helpers
// ============================================================

func (p *Parser) prevEnd() int {
	if p.pos > 0 && p.pos-1 < len(p.tokens) {
		return p.tokens[p.pos-1].Span.End
	}
	return p.peek().Span.Start
}

func makeExprBase(start, end int) ast.ExprBase {
	return ast.ExprBase{NodeBase: ast.NodeBase{Span: span.New(start, end)}}
}

func makeStmtBase(start, end int) ast.StmtBase {
	return ast.StmtBase{NodeBase: ast.NodeBase{Span: span.New(start, end)}}
}
