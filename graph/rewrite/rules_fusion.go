package rewrite

import "github.com/zhukovaskychina/graphql-engine/graph/plan"

// SortLimitFusion collapses Limit(Sort(x)) into a single TopN node, so the
// executor can keep only the N best rows in a heap instead of fully
// sorting every input row.
var SortLimitFusion = &Rule{
	Name:    "SortLimitFusion",
	Pattern: Multi(plan.KindLimit, Single(plan.KindSort)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		limit := node.(*plan.Limit)
		sort := limit.Inputs()[0].(*plan.Sort)

		n := limit.Offset + limit.Count
		topN := plan.NewTopN(sort.Inputs()[0], limit.OutputVar(), sort.Factors, n)
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{topN}, Changed: true}, nil
	},
}

// ExpandExpandFusion merges two consecutive single-hop Expand nodes over
// the same edge direction into one Traverse with MinHop=MaxHop=2,
// avoiding materializing the intermediate one-hop frontier as a full row
// set between them.
var ExpandExpandFusion = &Rule{
	Name:    "ExpandExpandFusion",
	Pattern: Multi(plan.KindExpand, Single(plan.KindExpand)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		outer := node.(*plan.Expand)
		inner := outer.Inputs()[0].(*plan.Expand)

		if outer.Reverse != inner.Reverse || !sameStringSet(outer.EdgeTypes, inner.EdgeTypes) {
			return noChange(), nil
		}

		trav := plan.NewTraverse(outer.OutputVar(), inner.SrcVar, inner.EdgeTypes, inner.Reverse, 2, 2)
		trav.SetInputs(inner.Inputs())
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{trav}, Changed: true}, nil
	},
}

// DedupAfterDistinctElimination removes a Dedup(Full) sitting directly
// above a Distinct node — Distinct already guarantees full-row uniqueness,
// so the second pass is redundant work over rows that can't change.
var DedupAfterDistinctElimination = &Rule{
	Name:    "DedupAfterDistinctElimination",
	Pattern: Multi(plan.KindDedup, Single(plan.KindDistinct)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		dedup := node.(*plan.Dedup)
		distinct := dedup.Inputs()[0].(*plan.Distinct)
		if dedup.Strategy != plan.DedupFull {
			return noChange(), nil
		}
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{distinct}, Changed: true}, nil
	},
}

// DoubleSortElimination removes an inner Sort made irrelevant by an outer
// Sort over the same (or a superset, checked conservatively as "equal")
// factor list — only the outermost ordering survives to the caller.
var DoubleSortElimination = &Rule{
	Name:    "DoubleSortElimination",
	Pattern: Multi(plan.KindSort, Single(plan.KindSort)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		outer := node.(*plan.Sort)
		inner := outer.Inputs()[0].(*plan.Sort)

		if !sameFactors(outer.Factors, inner.Factors) {
			// Different orderings: the inner sort is not provably
			// redundant, so leave both in place rather than risk
			// changing result order.
			return noChange(), nil
		}

		newOuter := plan.NewSort(inner.Inputs()[0], outer.OutputVar(), outer.Factors)
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{newOuter}, Changed: true}, nil
	},
}

func sameFactors(a, b []plan.SortFactor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameStringSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		if !seen[s] {
			return false
		}
	}
	return true
}
