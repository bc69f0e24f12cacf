// Package parser implements Hawk's combinator-style, backtracking LL
// parser (spec.md §4.2). The checkpoint/restore/commit shape follows the
// teacher's recursive-descent pkg/compiler.Parser, generalised to the
// tagged-tree ast.Node and to Hawk's smaller, right-associative grammar.
package parser

import (
	"hawk/internal/ast"
	"hawk/internal/diag"
	"hawk/internal/token"
)

type parser struct {
	cur    *token.Cursor
	bag    *diag.Bag
	path   string
	lastAt diag.Pos // end position of the most recently consumed token
}

// Parse runs the grammar's start symbol, File := Let, over tokens and
// returns the resulting AST. ok is false exactly when a fatal (non
// speculative) parse failure occurred; the failure's diagnostic has
// already been added to bag.
func Parse(tokens []token.Token, bag *diag.Bag, path string) (*ast.Node, bool) {
	p := &parser{cur: token.NewCursor(tokens), bag: bag, path: path}
	if len(tokens) > 0 {
		p.lastAt = tokens[0].Start
	}
	return p.parseLet(false)
}

// here returns the range a diagnostic should point to when the parser
// expected a token but found none or found the wrong kind: the offending
// token's span, or the end of the last consumed token at end of stream.
func (p *parser) here() diag.Range {
	if tok, ok := p.cur.Peek(); ok {
		return diag.Range{Start: tok.Start, End: tok.End}
	}
	return diag.Range{Start: p.lastAt, End: p.lastAt}
}

func (p *parser) next() (token.Token, bool) {
	tok, ok := p.cur.Next()
	if ok {
		p.lastAt = tok.End
	}
	return tok, ok
}

func (p *parser) fail(canFail bool, format string, args ...any) {
	if canFail {
		return
	}
	p.bag.Add(p.here(), format, args...)
}

// isKeyword reports whether tok is an Identifier token whose text matches
// one of Hawk's two keywords, which are ordinary identifier tokens
// matched by text rather than a distinct token kind (spec.md §4.2).
func isKeyword(tok token.Token, text string) bool {
	return tok.Kind == token.Identifier && tok.Name == text
}

// parseLet implements Let := 'let' Var* Do.
func (p *parser) parseLet(canFail bool) (*ast.Node, bool) {
	tok, ok := p.cur.Peek()
	if !ok || !isKeyword(tok, "let") {
		p.fail(canFail, "expected 'let'")
		return nil, false
	}
	p.next()
	start := tok.Start

	var children []*ast.Node
	for {
		peeked, ok := p.cur.Peek()
		if ok && isKeyword(peeked, "do") {
			break
		}
		if !ok {
			break // let parseDo below report the missing 'do'
		}
		v, ok := p.parseVar(canFail)
		if !ok {
			return nil, false
		}
		children = append(children, v)
	}

	doNode, ok := p.parseDo(canFail)
	if !ok {
		return nil, false
	}
	children = append(children, doNode)

	return ast.New(ast.Let, start, doNode.End, children...), true
}

// parseVar implements Var := IDENT '=' Expr.
func (p *parser) parseVar(canFail bool) (*ast.Node, bool) {
	tok, ok := p.cur.Peek()
	if !ok || tok.Kind != token.Identifier {
		p.fail(canFail, "expected identifier")
		return nil, false
	}
	p.next()
	ident := ast.NewLeaf(ast.Identifier, tok.Name, tok.Start, tok.End)

	eq, ok := p.cur.Peek()
	if !ok || eq.Kind != token.Equal {
		p.fail(canFail, "expected '='")
		return nil, false
	}
	p.next()

	expr, ok := p.parseExpr(false)
	if !ok {
		return nil, false
	}
	return ast.New(ast.Var, tok.Start, expr.End, ident, expr), true
}

// parseDo implements Do := 'do' Expr.
func (p *parser) parseDo(canFail bool) (*ast.Node, bool) {
	tok, ok := p.cur.Peek()
	if !ok || !isKeyword(tok, "do") {
		p.fail(canFail, "missing 'do'")
		return nil, false
	}
	p.next()

	expr, ok := p.parseExpr(false)
	if !ok {
		return nil, false
	}
	return ast.New(ast.Do, tok.Start, expr.End, expr), true
}

// binaryKindOf maps an operator token kind to its AST node kind, or false
// if tok is not one of the four arithmetic operators.
func binaryKindOf(k token.Kind) (ast.Kind, bool) {
	switch k {
	case token.Plus:
		return ast.BinaryPlus, true
	case token.Hyphen:
		return ast.BinaryMinus, true
	case token.Star:
		return ast.BinaryMul, true
	case token.FSlash:
		return ast.BinaryDiv, true
	default:
		return 0, false
	}
}

// tryBinaryContinuation attempts Op Expr against an already-parsed left
// operand. Absence of an operator is not a failure worth reporting (the
// caller falls back to the bare operand); once an operator is consumed,
// a missing right-hand expression is a fatal, reported failure.
func (p *parser) tryBinaryContinuation(left *ast.Node) (*ast.Node, bool) {
	tok, ok := p.cur.Peek()
	if !ok {
		return nil, false
	}
	kind, ok := binaryKindOf(tok.Kind)
	if !ok {
		return nil, false
	}
	p.next()

	right, ok := p.parseExpr(false)
	if !ok {
		return nil, false
	}
	return ast.New(kind, left.Start, right.End, left, right), true
}

// parseExpr implements Expr := Atom ((Plus|Hyphen|Star|FSlash) Expr)? | Let,
// following the checkpoint/restore choreography of spec.md §4.2 exactly:
// an Integer or Identifier atom is consumed first, then a binary
// continuation is attempted and rolled back on failure; an Identifier
// additionally gets first refusal at a nested Let.
func (p *parser) parseExpr(canFail bool) (*ast.Node, bool) {
	tok, ok := p.cur.Peek()
	if !ok {
		p.fail(canFail, "expected expression")
		return nil, false
	}

	switch tok.Kind {
	case token.Integer:
		p.next()
		left := ast.NewLeaf(ast.IntLiteral, tok.Value, tok.Start, tok.End)

		p.cur.Checkpoint()
		if bin, ok := p.tryBinaryContinuation(left); ok {
			p.cur.Commit()
			return bin, true
		}
		p.cur.Restore()
		return left, true

	case token.Identifier:
		p.cur.Checkpoint()
		if letNode, ok := p.parseLet(true); ok {
			p.cur.Commit()
			return letNode, true
		}
		p.cur.Restore()

		p.next()
		left := ast.NewLeaf(ast.VarRef, tok.Name, tok.Start, tok.End)

		p.cur.Checkpoint()
		if bin, ok := p.tryBinaryContinuation(left); ok {
			p.cur.Commit()
			return bin, true
		}
		p.cur.Restore()
		return left, true

	default:
		p.fail(canFail, "expected expression")
		return nil, false
	}
}
