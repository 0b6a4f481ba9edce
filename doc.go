// Package godesignpatterns is your in-code textbook for the classic design
// patterns — every pattern a package, every package a tutorial, every
// tutorial running on the same vehicle theme.
//
// 🚀 What is go-design-patterns?
//
//	A teaching library where each of the 23 classic patterns is one
//	self-contained package:
//		• Creational: builder, factorymethod, abstractfactory, singleton, prototype
//		• Structural: adapter, bridge, composite, decorator, facade, flyweight, proxy
//		• Behavioral: chain, command, interpreter, iterator, mediator, memento,
//		  observer, state, strategy, templatemethod, visitor
//
// ✨ Why learn patterns here?
//
//   - Beginner-friendly – one pattern per package, tutorial prose in doc.go
//   - Runnable – every package carries Example functions with pinned output
//   - Honest errors – sentinel errors, errors.Is, wrapping at the boundary
//   - One vocabulary – the shared vehicle package keeps every snippet concrete
//
// Under the hood, every pattern package stands alone on the shared
// vocabulary:
//
//	vehicle/    — the Vehicle record, Kind/Fuel enums, validation (used everywhere)
//	builder/    — fluent steps, a director, recorded-first-violation chains
//	state/      — phase objects, a machine, a transition trail
//	flyweight/  — shared specs behind a memoizing factory
//	interpreter/ — a small fleet-query language: lexer, parser, AST
//	examples/   — scenario programs, one pattern each
//	...         — and the rest, one package per pattern
//
// Quick ASCII example:
//
//	    query ──► Parse ──► AST ──► Eval(vehicle) ──► matches
//
//	one pattern (Interpreter) end to end; the other 22 read the same way.
//
// Start with builder or state, keep the GoF catalogue within reach, and
// read each package's doc.go before its code.
//
//	go get github.com/boushphong/go-design-patterns
package godesignpatterns
