// Package rewrite implements the rule-driven plan rewrite/optimization
// engine: a fixpoint driver that repeatedly applies a fixed rule set to a
// plan tree (predicate/projection pushdown, operator fusion, algebraic
// elimination) until no rule changes anything or a round cap is hit, then
// validates the result's structure before handing it to the executor
// builder.
package rewrite

import "github.com/zhukovaskychina/graphql-engine/graph/plan"

// Shape selects how a Pattern matches a node and its children.
type Shape uint8

const (
	// ShapeSingle matches a node by Kind alone, ignoring its children.
	ShapeSingle Shape = iota
	// ShapeMulti matches a node by Kind AND requires each positional
	// Dependencies entry to match the corresponding input.
	ShapeMulti
	// ShapeAny matches any node regardless of Kind — used by rules that
	// key off a node's Category or a runtime predicate instead.
	ShapeAny
)

// Pattern describes the node shape a Rule looks for. Matching is a
// type-switch-equivalent Kind comparison plus a recursive check of
// Dependencies, never a per-node dynamic dispatch — this keeps pattern
// matching cheap enough to run every inner round.
type Pattern struct {
	Shape        Shape
	Kind         plan.Kind
	Dependencies []*Pattern
	// Category, when set (non-zero defaultless check via CategoryCheck),
	// additionally constrains ShapeAny/ShapeSingle matches to a category
	// instead of — or in addition to — an exact Kind.
	Category     plan.Category
	CategoryCheck bool
}

// Single builds a Pattern matching exactly kind, ignoring children.
func Single(kind plan.Kind) *Pattern {
	return &Pattern{Shape: ShapeSingle, Kind: kind}
}

// Multi builds a Pattern matching kind whose N children must each match
// the corresponding entry in deps, in order.
func Multi(kind plan.Kind, deps ...*Pattern) *Pattern {
	return &Pattern{Shape: ShapeMulti, Kind: kind, Dependencies: deps}
}

// Any builds a Pattern matching any node.
func Any() *Pattern {
	return &Pattern{Shape: ShapeAny}
}

// InCategory builds a Pattern matching any node in category c.
func InCategory(c plan.Category) *Pattern {
	return &Pattern{Shape: ShapeAny, Category: c, CategoryCheck: true}
}

// Matches reports whether n satisfies p.
func (p *Pattern) Matches(n plan.Node) bool {
	if n == nil {
		return false
	}
	if p.CategoryCheck && n.Category() != p.Category {
		return false
	}
	switch p.Shape {
	case ShapeAny:
		return true
	case ShapeSingle:
		return n.Kind() == p.Kind
	case ShapeMulti:
		if n.Kind() != p.Kind {
			return false
		}
		ins := n.Inputs()
		if len(ins) != len(p.Dependencies) {
			return false
		}
		for i, dep := range p.Dependencies {
			if !dep.Matches(ins[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
