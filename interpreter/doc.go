// Package interpreter teaches the Interpreter pattern: defining a small
// language as a grammar, representing each grammar rule as an AST node
// type, and evaluating sentences by walking the tree.
//
// The language
//
//	A boolean query over the fleet:
//
//	    kind == truck and mileage < 50000
//	    not (fuel == diesel) or year >= 2020
//	    make == volvo and (year > 2015 or mileage <= 120000)
//
//	expr   := or
//	or     := and { "or" and }
//	and    := unary { "and" unary }
//	unary  := "not" unary | primary
//	primary:= "(" expr ")" | field op literal
//	field  := kind | fuel | make | year | mileage
//	op     := == != < <= > >=
//
//	"and" binds tighter than "or"; "not" binds tightest. Keywords and
//	literals are case-insensitive.
//
// The pipeline
//
//	source ─lexer─► tokens ─parser─► Expr tree ─Eval(v)─► bool
//
//	Each node type interprets itself: a comparison checks one field, and/
//	or/not combine children. The whole pattern is that the tree IS the
//	program.
//
// Static checking (all at Parse time, none at Eval time)
//
//   - Unknown field          → ErrUnknownField.
//   - Enum fields (kind, fuel) take only == and != — "kind < truck" is
//     meaningless → ErrBadComparison.
//   - Literals are parsed against the field's type: "kind == hovercraft"
//     → ErrBadLiteral wrapping vehicle.ErrUnknownKind; "year == soon"
//     → ErrBadLiteral.
//   - Anything malformed → ErrSyntax, with the byte offset in the message.
//
// Usage
//
//	expr, err := interpreter.Parse("kind == truck and mileage < 50000")
//	ok, _ := expr.Eval(v)
//	match, err := interpreter.Filter(fleet, "not (fuel == diesel)")
//
// Determinism: the same source always yields the same tree (expr.String()
// renders the canonical, fully parenthesized form) and the same results.
//
// Complexity: Parse is O(len(src)); Eval is O(nodes); Filter is
// O(len(vs) × nodes).
package interpreter
