package rewrite

import (
	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/plan"
)

// TrueFilterElimination removes a Filter whose predicate is a constant
// true literal — a shape the planner can emit for an always-satisfied
// guard clause, or that an upstream rewrite leaves behind after folding a
// conjunction down to nothing.
var TrueFilterElimination = &Rule{
	Name:    "TrueFilterElimination",
	Pattern: Single(plan.KindFilter),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		filter := node.(*plan.Filter)
		lit, ok := filter.Predicate.(*expr.Literal)
		if !ok {
			return noChange(), nil
		}
		b, err := lit.Val.AsBool()
		if err != nil || !b {
			return noChange(), nil
		}
		return &TransformResult{EraseCurr: true, NewNodes: []plan.Node{filter.Inputs()[0]}, Changed: true}, nil
	},
}

// FalseFilterElimination replaces a Filter whose predicate is a constant
// false literal with a Limit(0) over the Filter's input, so the branch
// yields zero rows with the original schema. The input subtree is kept:
// LimitExec still executes it and then returns no rows.
var FalseFilterElimination = &Rule{
	Name:    "FalseFilterElimination",
	Pattern: Single(plan.KindFilter),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		filter := node.(*plan.Filter)
		lit, ok := filter.Predicate.(*expr.Literal)
		if !ok {
			return noChange(), nil
		}
		b, err := lit.Val.AsBool()
		if err != nil || b {
			return noChange(), nil
		}
		empty := plan.NewLimit(filter.Inputs()[0], filter.OutputVar(), 0, 0)
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{empty}, Changed: true}, nil
	},
}

// PassThroughElimination collapses any PassThrough node into its single
// input. No rule creates PassThrough nodes; this one removes those the
// incoming plan carries.
var PassThroughElimination = &Rule{
	Name:    "PassThroughElimination",
	Pattern: Single(plan.KindPassThrough),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		pt := node.(*plan.PassThrough)
		return &TransformResult{EraseCurr: true, NewNodes: []plan.Node{pt.Inputs()[0]}, Changed: true}, nil
	},
}

// RedundantProjectElimination removes a Project whose item list is just
// an identity relabeling of its input's existing columns in the same
// order — the planner sometimes emits these for a no-op "RETURN *".
var RedundantProjectElimination = &Rule{
	Name:    "RedundantProjectElimination",
	Pattern: Single(plan.KindProject),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		proj := node.(*plan.Project)
		input := proj.Inputs()[0]
		cols := input.ColNames()
		if len(cols) != len(proj.Items) {
			return noChange(), nil
		}
		for i, it := range proj.Items {
			v, ok := it.Expr.(*expr.Variable)
			if !ok || v.Name != cols[i] || it.Alias != cols[i] {
				return noChange(), nil
			}
		}
		return &TransformResult{EraseCurr: true, NewNodes: []plan.Node{input}, Changed: true}, nil
	},
}

// ZeroLimitPropagation removes a Filter sitting directly on a Limit(0),
// leaving the Limit(0) in its place — filtering a statically empty input
// changes nothing. Other nodes above a Limit(0) are not matched.
var ZeroLimitPropagation = &Rule{
	Name:    "ZeroLimitPropagation",
	Pattern: Multi(plan.KindFilter, Single(plan.KindLimit)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		filter := node.(*plan.Filter)
		limit := filter.Inputs()[0].(*plan.Limit)
		if limit.Count != 0 {
			return noChange(), nil
		}
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{limit}, Changed: true}, nil
	},
}
