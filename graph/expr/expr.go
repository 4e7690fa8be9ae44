// Package expr implements the expression AST and evaluator that plan
// operators use for filter predicates, projection items, and traversal
// edge/vertex filters. Evaluation never panics: a malformed expression or a
// runtime type mismatch surfaces as a typed null Value, consistent with the
// value package's contract.
package expr

import (
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// Expression is the evaluator-facing contract every AST node satisfies.
// Kept as an interface (not a closed sum type) because the function and
// aggregate registries need to add node kinds without touching this
// package, mirroring the teacher's expression tree in
// server/innodb/plan's evaluable interfaces.
type Expression interface {
	// Eval evaluates the expression against ctx, returning a Value. Never
	// returns a Go error — domain failures fold into typed nulls.
	Eval(ctx *EvalContext) value.Value
	// String renders the expression for logging and EXPLAIN-style dumps.
	String() string
}

// EvalContext binds variable names (row/column bindings carried by the
// executing operator) to Values, plus the function and aggregate
// registries in scope.
type EvalContext struct {
	vars  map[string]value.Value
	funcs *FunctionRegistry
	aggs  *AggregateRegistry
}

func NewEvalContext(funcs *FunctionRegistry, aggs *AggregateRegistry) *EvalContext {
	return &EvalContext{vars: make(map[string]value.Value), funcs: funcs, aggs: aggs}
}

func (c *EvalContext) Bind(name string, v value.Value) { c.vars[name] = v }

func (c *EvalContext) Lookup(name string) value.Value {
	if v, ok := c.vars[name]; ok {
		return v
	}
	return value.Null()
}

func (c *EvalContext) Functions() *FunctionRegistry  { return c.funcs }
func (c *EvalContext) Aggregates() *AggregateRegistry { return c.aggs }

// Clone returns a shallow copy of the variable bindings so concurrent
// scatter-gather workers evaluating the same expression tree over
// different batches never share mutable state.
func (c *EvalContext) Clone() *EvalContext {
	vars := make(map[string]value.Value, len(c.vars))
	for k, v := range c.vars {
		vars[k] = v
	}
	return &EvalContext{vars: vars, funcs: c.funcs, aggs: c.aggs}
}

// Literal is a constant value.
type Literal struct{ Val value.Value }

func (l *Literal) Eval(*EvalContext) value.Value { return l.Val }
func (l *Literal) String() string                { return l.Val.String() }

// Variable reads a bound name out of the EvalContext (a row column, a
// vertex/edge binding produced by a graph operator).
type Variable struct{ Name string }

func (v *Variable) Eval(ctx *EvalContext) value.Value { return ctx.Lookup(v.Name) }
func (v *Variable) String() string                    { return v.Name }

// Property reads Base.Tag.Key — Base typically evaluates to a Vertex or
// Edge Value.
type Property struct {
	Base Expression
	Tag  string
	Key  string
}

func (p *Property) Eval(ctx *EvalContext) value.Value {
	base := p.Base.Eval(ctx)
	switch base.Kind() {
	case value.KVertex:
		v, err := base.AsVertex()
		if err != nil {
			return value.NullOf(value.NullBadType)
		}
		return v.Prop(p.Tag, p.Key)
	case value.KEdge:
		e, err := base.AsEdge()
		if err != nil {
			return value.NullOf(value.NullBadType)
		}
		return e.Prop(p.Key)
	default:
		return value.NullOf(value.NullBadType)
	}
}

func (p *Property) String() string { return p.Base.String() + "." + p.Tag + "." + p.Key }
