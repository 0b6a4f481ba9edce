// Package interpreter — recursive-descent parser with all type checking at
// parse time.
package interpreter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Sentinel errors for parsing.
var (
	// ErrSyntax indicates malformed source; the message carries the offset.
	ErrSyntax = errors.New("interpreter: syntax error")

	// ErrUnknownField indicates a field outside kind/fuel/make/year/mileage.
	ErrUnknownField = errors.New("interpreter: unknown field")

	// ErrBadLiteral indicates a literal that does not fit the field's type.
	ErrBadLiteral = errors.New("interpreter: bad literal")

	// ErrBadComparison indicates an ordering operator on an unordered field.
	ErrBadComparison = errors.New("interpreter: comparison not defined for field")
)

// parser walks the token stream.
type parser struct {
	toks []token
	pos  int
}

// Parse compiles a query into an evaluable expression tree. All field,
// operator and literal checking happens here; Eval never fails on a tree
// Parse accepted.
//
// Complexity: O(len(src)).
func Parse(src string) (Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, tok.text, tok.off)
	}

	return expr, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}

	return tok
}

// keyword reports whether the next token is the given keyword
// (case-insensitive) and consumes it if so.
func (p *parser) keyword(word string) bool {
	tok := p.peek()
	if tok.kind == tokWord && strings.EqualFold(tok.text, word) {
		p.pos++
		return true
	}

	return false
}

// parseOr := and { "or" and }
func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.keyword("or") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{l: left, r: right}
	}

	return left, nil
}

// parseAnd := unary { "and" unary }
func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.keyword("and") {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{l: left, r: right}
	}

	return left, nil
}

// parseUnary := "not" unary | primary
func (p *parser) parseUnary() (Expr, error) {
	if p.keyword("not") {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return notNode{x: x}, nil
	}

	return p.parsePrimary()
}

// parsePrimary := "(" expr ")" | comparison
func (p *parser) parsePrimary() (Expr, error) {
	if tok := p.peek(); tok.kind == tokLParen {
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')' at offset %d", ErrSyntax, closing.off)
		}

		return inner, nil
	}

	return p.parseComparison()
}

// parseComparison := field op literal
func (p *parser) parseComparison() (Expr, error) {
	fieldTok := p.next()
	if fieldTok.kind != tokWord {
		return nil, fmt.Errorf("%w: expected field at offset %d, got %q", ErrSyntax, fieldTok.off, fieldTok.text)
	}
	field := strings.ToLower(fieldTok.text)

	opTok := p.next()
	if opTok.kind != tokOp {
		return nil, fmt.Errorf("%w: expected operator at offset %d, got %q", ErrSyntax, opTok.off, opTok.text)
	}
	op := opText[opTok.text]

	litTok := p.next()
	if litTok.kind != tokWord && litTok.kind != tokNumber {
		return nil, fmt.Errorf("%w: expected literal at offset %d, got %q", ErrSyntax, litTok.off, litTok.text)
	}

	switch field {
	case "kind":
		if op.ordered() {
			return nil, fmt.Errorf("%w: kind takes only == and !=", ErrBadComparison)
		}
		k, err := vehicle.ParseKind(litTok.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadLiteral, err)
		}

		return cmpKind{op: op, want: k}, nil

	case "fuel":
		if op.ordered() {
			return nil, fmt.Errorf("%w: fuel takes only == and !=", ErrBadComparison)
		}
		f, err := vehicle.ParseFuel(litTok.text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadLiteral, err)
		}

		return cmpFuel{op: op, want: f}, nil

	case "make":
		if op.ordered() {
			return nil, fmt.Errorf("%w: make takes only == and !=", ErrBadComparison)
		}

		return cmpMake{op: op, want: strings.ToLower(litTok.text)}, nil

	case "year", "mileage":
		n, err := strconv.ParseInt(litTok.text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s needs a number, got %q", ErrBadLiteral, field, litTok.text)
		}
		f := fieldMileage
		if field == "year" {
			f = fieldYear
		}

		return cmpInt{field: f, op: op, want: n}, nil

	default:
		return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownField, fieldTok.text, fieldTok.off)
	}
}

// Filter evaluates the query against every vehicle and returns the matches
// in input order.
//
// Complexity: O(len(vs) × nodes).
func Filter(vs []vehicle.Vehicle, src string) ([]vehicle.Vehicle, error) {
	expr, err := Parse(src)
	if err != nil {
		return nil, err
	}

	var out []vehicle.Vehicle
	for _, v := range vs {
		ok, err := expr.Eval(v)
		if err != nil {
			return nil, fmt.Errorf("interpreter: eval %s: %w", v.VIN, err)
		}
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}
