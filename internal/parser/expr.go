package parser

import (
	"strconv"

	"github.com/nanov/jsasta/internal/ast"
	"github.com/nanov/jsasta/internal/diag"
	"github.com/nanov/jsasta/internal/token"
)

// precedence gives each left-associative binary operator its climbing
// level (low to high), matching ordinary C precedence restricted to
// the operator set spec.md §6 actually defines (no `| ^ <<`).
func precedence(k token.Kind) (int, bool) {
	switch k {
	case token.OrOr:
		return 1, true
	case token.AndAnd:
		return 2, true
	case token.Amp:
		return 3, true
	case token.EqEq, token.BangEq:
		return 4, true
	case token.Lt, token.Gt, token.LtEq, token.GtEq:
		return 5, true
	case token.Shr:
		return 6, true
	case token.Plus, token.Minus:
		return 7, true
	case token.Star, token.Slash, token.Percent:
		return 8, true
	default:
		return 0, false
	}
}

func binOpFor(k token.Kind) ast.BinaryOp {
	switch k {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMul
	case token.Slash:
		return ast.OpDiv
	case token.Percent:
		return ast.OpMod
	case token.Amp:
		return ast.OpBitAnd
	case token.Shr:
		return ast.OpShr
	case token.Lt:
		return ast.OpLt
	case token.Gt:
		return ast.OpGt
	case token.LtEq:
		return ast.OpLe
	case token.GtEq:
		return ast.OpGe
	case token.EqEq:
		return ast.OpEq
	case token.BangEq:
		return ast.OpNe
	case token.AndAnd:
		return ast.OpAnd
	case token.OrOr:
		return ast.OpOr
	default:
		return ast.OpAdd
	}
}

func compoundOpFor(k token.Kind) *ast.BinaryOp {
	var op ast.BinaryOp
	switch k {
	case token.PlusAssign:
		op = ast.OpAdd
	case token.MinusAssign:
		op = ast.OpSub
	case token.StarAssign:
		op = ast.OpMul
	case token.SlashAssign:
		op = ast.OpDiv
	default:
		return nil
	}
	return &op
}

// parseExpr parses the full expression grammar: assignment (including
// compound) at the top, down through ternary, binary operators, unary,
// and postfix/primary forms.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Expr {
	from := p.markOff()
	lhs := p.parseTernary()

	switch p.cur.Kind {
	case token.Assign:
		p.advance()
		rhs := p.parseAssignment()
		return ast.NewAssign(p.span(from), lhs, nil, rhs)
	case token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign:
		op := compoundOpFor(p.cur.Kind)
		p.advance()
		rhs := p.parseAssignment()
		return ast.NewAssign(p.span(from), lhs, op, rhs)
	default:
		return lhs
	}
}

func (p *Parser) parseTernary() ast.Expr {
	from := p.markOff()
	cond := p.parseBinary(1)
	if !p.accept(token.Question) {
		return cond
	}
	then := p.parseAssignment()
	p.expect(token.Colon, diag.ParseExpectExpression, "':' in ternary expression")
	els := p.parseAssignment()
	return ast.NewTernary(p.span(from), cond, then, els)
}

func (p *Parser) parseBinary(minPrec int) ast.Expr {
	from := p.markOff()
	left := p.parseUnary()
	for {
		prec, ok := precedence(p.cur.Kind)
		if !ok || prec < minPrec {
			return left
		}
		opTok := p.cur
		p.advance()
		right := p.parseBinary(prec + 1)
		left = ast.NewBinary(p.span(from), binOpFor(opTok.Kind), left, right)
	}
}

func (p *Parser) parseUnary() ast.Expr {
	from := p.markOff()
	switch p.cur.Kind {
	case token.Minus:
		p.advance()
		return ast.NewUnary(p.span(from), ast.OpNeg, p.parseUnary())
	case token.Bang:
		p.advance()
		return ast.NewUnary(p.span(from), ast.OpNot, p.parseUnary())
	case token.PlusPlus, token.MinusMinus:
		inc := p.cur.Kind == token.PlusPlus
		p.advance()
		target := p.parseUnary()
		return ast.NewIncDec(p.span(from), target, inc, false)
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() ast.Expr {
	from := p.markOff()
	expr := p.parsePrimary()
	for {
		switch p.cur.Kind {
		case token.Dot:
			p.advance()
			nameTok := p.cur
			p.expect(token.Ident, diag.ParseExpectIdentifier, "a member name")
			expr = ast.NewMember(p.span(from), expr, nameTok.Text)
		case token.LBracket:
			p.advance()
			idx := p.parseExpr()
			p.expect(token.RBracket, diag.ParseUnexpectedToken, "']'")
			expr = ast.NewIndex(p.span(from), expr, idx)
		case token.LParen:
			p.advance()
			args := p.parseArgs()
			expr = ast.NewCall(p.span(from), expr, args)
		case token.PlusPlus, token.MinusMinus:
			inc := p.cur.Kind == token.PlusPlus
			p.advance()
			expr = ast.NewIncDec(p.span(from), expr, inc, true)
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	if p.at(token.RParen) {
		p.advance()
		return args
	}
	for {
		args = append(args, p.parseAssignment())
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.ParseUnexpectedToken, "')'")
	return args
}

func (p *Parser) parsePrimary() ast.Expr {
	from := p.markOff()
	tok := p.cur
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		n, _ := strconv.ParseInt(tok.Text, 10, 32)
		return ast.NewIntLit(p.span(from), int32(n))
	case token.DoubleLit:
		p.advance()
		f, _ := strconv.ParseFloat(tok.Text, 64)
		return ast.NewDoubleLit(p.span(from), f)
	case token.StringLit:
		p.advance()
		return ast.NewStringLit(p.span(from), tok.Text)
	case token.KwTrue:
		p.advance()
		return ast.NewBoolLit(p.span(from), true)
	case token.KwFalse:
		p.advance()
		return ast.NewBoolLit(p.span(from), false)
	case token.Ident:
		p.advance()
		if tok.Text == "Array" && p.at(token.LParen) {
			p.advance()
			size := p.parseAssignment()
			p.expect(token.RParen, diag.ParseUnexpectedToken, "')'")
			return ast.NewArrayNew(p.span(from), size)
		}
		return ast.NewIdent(p.span(from), tok.Text)
	case token.LParen:
		p.advance()
		e := p.parseExpr()
		p.expect(token.RParen, diag.ParseUnexpectedToken, "')'")
		return e
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		return p.parseObjectLit()
	default:
		diag.Error(p.rep, diag.ParseExpectExpression, tok.Span, "expected an expression, found "+tok.Kind.String())
		p.advance()
		return ast.NewIntLit(tok.Span, 0)
	}
}

func (p *Parser) parseArrayLit() ast.Expr {
	from := p.markOff()
	p.advance() // '['
	var elems []ast.Expr
	if !p.at(token.RBracket) {
		for {
			elems = append(elems, p.parseAssignment())
			if !p.accept(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RBracket, diag.ParseUnexpectedToken, "']'")
	return ast.NewArrayLit(p.span(from), elems)
}

func (p *Parser) parseObjectLit() ast.Expr {
	from := p.markOff()
	p.advance() // '{'
	var fields []ast.ObjectField
	if !p.at(token.RBrace) {
		for {
			nameTok := p.cur
			p.expect(token.Ident, diag.ParseExpectIdentifier, "an object field name")
			p.expect(token.Colon, diag.ParseExpectExpression, "':' after field name")
			val := p.parseAssignment()
			fields = append(fields, ast.ObjectField{Name: nameTok.Text, Value: val})
			if !p.accept(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RBrace, diag.ParseUnexpectedToken, "'}'")
	return ast.NewObjectLit(p.span(from), fields)
}
