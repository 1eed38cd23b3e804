package parser

import (
	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/token"
)

// expectDeclName consumes an identifier meant to name a declaration
// (var/let/const/function/struct/parameter), rejecting reserved type
// keywords with ParseReservedTypeName rather than the generic
// ParseExpectIdentifier — spec.md §6 reserves int/double/string/bool/
// void so they can never shadow a type name.
func (p *Parser) expectDeclName() string {
	if p.cur.Kind.IsReservedTypeName() {
		diag.Error(p.rep, diag.ParseReservedTypeName, p.cur.Span,
			"'"+p.cur.Text+"' is a reserved type name and cannot be used here")
		text := p.cur.Text
		p.advance()
		return text
	}
	tok := p.cur
	p.expect(token.Ident, diag.ParseExpectIdentifier, "an identifier")
	return tok.Text
}

func (p *Parser) parseFunction() ast.Stmt {
	from := p.markOff()
	p.advance() // 'function'
	name := p.expectDeclName()
	p.expect(token.LParen, diag.ParseUnexpectedToken, "'('")
	var params []string
	if !p.at(token.RParen) {
		for {
			params = append(params, p.expectDeclName())
			if !p.accept(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RParen, diag.ParseUnexpectedToken, "')'")
	body := p.parseBlock()
	return ast.NewFunctionDecl(p.span(from), name, params, body)
}

func (p *Parser) parseStruct() ast.Stmt {
	from := p.markOff()
	p.advance() // 'struct'
	name := p.expectDeclName()
	p.expect(token.LBrace, diag.ParseUnexpectedToken, "'{'")
	var fields []ast.FieldDecl
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fieldName := p.expectDeclName()
		var def ast.Expr
		if p.accept(token.Colon) {
			def = p.parseAssignment()
		}
		fields = append(fields, ast.FieldDecl{Name: fieldName, Default: def})
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, diag.ParseUnexpectedToken, "'}'")
	return ast.NewStructDecl(p.span(from), name, fields)
}

func (p *Parser) parseBlock() *ast.Block {
	from := p.markOff()
	p.expect(token.LBrace, diag.ParseUnexpectedToken, "'{'")
	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	p.expect(token.RBrace, diag.ParseUnexpectedToken, "'}'")
	return ast.NewBlock(p.span(from), stmts)
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Kind {
	case token.KwVar:
		return p.parseVarOrLet(ast.DeclVar)
	case token.KwLet:
		return p.parseVarOrLet(ast.DeclLet)
	case token.KwConst:
		return p.parseConst()
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwFunction:
		return p.parseFunction()
	case token.KwStruct:
		return p.parseStruct()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseVarOrLet(kind ast.DeclKind) ast.Stmt {
	from := p.markOff()
	p.advance() // 'var'/'let'
	name := p.expectDeclName()
	p.expect(token.Assign, diag.ParseUnexpectedToken, "'='")
	init := p.parseExpr()
	p.expect(token.Semicolon, diag.ParseExpectSemicolon, "';'")
	return ast.NewVarDecl(p.span(from), kind, name, init)
}

func (p *Parser) parseConst() ast.Stmt {
	from := p.markOff()
	p.advance() // 'const'
	name := p.expectDeclName()
	p.expect(token.Assign, diag.ParseUnexpectedToken, "'='")
	init := p.parseExpr()
	p.expect(token.Semicolon, diag.ParseExpectSemicolon, "';'")
	return ast.NewConstDecl(p.span(from), name, init)
}

func (p *Parser) parseIf() ast.Stmt {
	from := p.markOff()
	p.advance() // 'if'
	p.expect(token.LParen, diag.ParseUnexpectedToken, "'('")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.ParseUnexpectedToken, "')'")
	then := p.parseStmt()
	var els ast.Stmt
	if p.accept(token.KwElse) {
		els = p.parseStmt()
	}
	return ast.NewIf(p.span(from), cond, then, els)
}

func (p *Parser) parseWhile() ast.Stmt {
	from := p.markOff()
	p.advance() // 'while'
	p.expect(token.LParen, diag.ParseUnexpectedToken, "'('")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.ParseUnexpectedToken, "')'")
	body := p.parseStmt()
	return ast.NewWhile(p.span(from), cond, body)
}

func (p *Parser) parseFor() ast.Stmt {
	from := p.markOff()
	p.advance() // 'for'
	p.expect(token.LParen, diag.ParseUnexpectedToken, "'('")

	var init ast.Stmt
	switch p.cur.Kind {
	case token.Semicolon:
		p.advance()
	case token.KwVar:
		init = p.parseVarOrLet(ast.DeclVar)
	case token.KwLet:
		init = p.parseVarOrLet(ast.DeclLet)
	default:
		init = p.parseExprStmt()
	}

	var cond ast.Expr
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.ParseExpectSemicolon, "';'")

	var post ast.Stmt
	if !p.at(token.RParen) {
		postFrom := p.markOff()
		post = ast.NewExprStmt(p.span(postFrom), p.parseExpr())
	}
	p.expect(token.RParen, diag.ParseUnexpectedToken, "')'")

	body := p.parseStmt()
	return ast.NewFor(p.span(from), init, cond, post, body)
}

func (p *Parser) parseReturn() ast.Stmt {
	from := p.markOff()
	p.advance() // 'return'
	var value ast.Expr
	if !p.at(token.Semicolon) {
		value = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.ParseExpectSemicolon, "';'")
	return ast.NewReturn(p.span(from), value)
}

func (p *Parser) parseExprStmt() ast.Stmt {
	from := p.markOff()
	x := p.parseExpr()
	p.expect(token.Semicolon, diag.ParseExpectSemicolon, "';'")
	return ast.NewExprStmt(p.span(from), x)
}
