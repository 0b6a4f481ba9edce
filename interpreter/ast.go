// Package interpreter — AST: one node type per grammar rule, each
// interpreting itself against a vehicle.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Expr is a parsed query. Eval interprets it against one vehicle; String
// renders the canonical, fully parenthesized form (stable per source).
type Expr interface {
	Eval(v vehicle.Vehicle) (bool, error)
	String() string
}

// orNode interprets "l or r" (short-circuit).
type orNode struct {
	l, r Expr
}

func (n orNode) Eval(v vehicle.Vehicle) (bool, error) {
	ok, err := n.l.Eval(v)
	if err != nil || ok {
		return ok, err
	}

	return n.r.Eval(v)
}

func (n orNode) String() string { return fmt.Sprintf("(%s or %s)", n.l, n.r) }

// andNode interprets "l and r" (short-circuit).
type andNode struct {
	l, r Expr
}

func (n andNode) Eval(v vehicle.Vehicle) (bool, error) {
	ok, err := n.l.Eval(v)
	if err != nil || !ok {
		return ok, err
	}

	return n.r.Eval(v)
}

func (n andNode) String() string { return fmt.Sprintf("(%s and %s)", n.l, n.r) }

// notNode interprets "not x".
type notNode struct {
	x Expr
}

func (n notNode) Eval(v vehicle.Vehicle) (bool, error) {
	ok, err := n.x.Eval(v)

	return !ok, err
}

func (n notNode) String() string { return fmt.Sprintf("(not %s)", n.x) }

// cmpOp is a comparison operator.
type cmpOp int

const (
	opEq cmpOp = iota
	opNe
	opLt
	opLe
	opGt
	opGe
)

// opText maps operator text to cmpOp; parse-side only.
var opText = map[string]cmpOp{
	"==": opEq, "!=": opNe, "<": opLt, "<=": opLe, ">": opGt, ">=": opGe,
}

func (o cmpOp) String() string {
	switch o {
	case opEq:
		return "=="
	case opNe:
		return "!="
	case opLt:
		return "<"
	case opLe:
		return "<="
	case opGt:
		return ">"
	default:
		return ">="
	}
}

// ordered reports whether the operator needs an ordered field.
func (o cmpOp) ordered() bool { return o != opEq && o != opNe }

// cmpKind interprets "kind ==/!= <literal>".
type cmpKind struct {
	op   cmpOp
	want vehicle.Kind
}

func (n cmpKind) Eval(v vehicle.Vehicle) (bool, error) {
	return eqResult(n.op, v.Kind == n.want), nil
}

func (n cmpKind) String() string { return fmt.Sprintf("kind %s %s", n.op, n.want) }

// cmpFuel interprets "fuel ==/!= <literal>".
type cmpFuel struct {
	op   cmpOp
	want vehicle.Fuel
}

func (n cmpFuel) Eval(v vehicle.Vehicle) (bool, error) {
	return eqResult(n.op, v.Fuel == n.want), nil
}

func (n cmpFuel) String() string { return fmt.Sprintf("fuel %s %s", n.op, n.want) }

// cmpMake interprets "make ==/!= <literal>", case-insensitively.
type cmpMake struct {
	op   cmpOp
	want string // lowercased at parse time
}

func (n cmpMake) Eval(v vehicle.Vehicle) (bool, error) {
	return eqResult(n.op, strings.ToLower(v.Make) == n.want), nil
}

func (n cmpMake) String() string { return fmt.Sprintf("make %s %s", n.op, n.want) }

// eqResult applies == / != to an equality outcome.
func eqResult(op cmpOp, equal bool) bool {
	if op == opNe {
		return !equal
	}

	return equal
}

// intField selects the numeric field of a cmpInt node.
type intField int

const (
	fieldYear intField = iota
	fieldMileage
)

func (f intField) String() string {
	if f == fieldYear {
		return "year"
	}

	return "mileage"
}

// cmpInt interprets "year|mileage <op> <number>".
type cmpInt struct {
	field intField
	op    cmpOp
	want  int64
}

func (n cmpInt) Eval(v vehicle.Vehicle) (bool, error) {
	var got int64
	if n.field == fieldYear {
		got = int64(v.Year)
	} else {
		got = v.Mileage
	}

	switch n.op {
	case opEq:
		return got == n.want, nil
	case opNe:
		return got != n.want, nil
	case opLt:
		return got < n.want, nil
	case opLe:
		return got <= n.want, nil
	case opGt:
		return got > n.want, nil
	default:
		return got >= n.want, nil
	}
}

func (n cmpInt) String() string { return fmt.Sprintf("%s %s %d", n.field, n.op, n.want) }
