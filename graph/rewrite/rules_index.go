package rewrite

import (
	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/plan"
)

// IndexSelection replaces a ScanVertices+tag-equality Filter with an
// IndexScan when a matching index name is known for that tag/property
// pair. No cost model decides this (an explicit non-goal) — the rule
// fires whenever a candidate index exists, heuristically preferring any
// index over a full scan.
type IndexCatalog interface {
	// IndexFor returns the index name covering an equality probe on
	// tag.key, or "" if none exists.
	IndexFor(tag, key string) string
}

// NewIndexSelectionRule builds the IndexSelection rule bound to catalog —
// a closure rather than a package-level var because, unlike the other
// rules, this one needs external state (the schema's index list) it
// cannot discover from the plan tree alone.
func NewIndexSelectionRule(catalog IndexCatalog) *Rule {
	return &Rule{
		Name:    "IndexSelection",
		Pattern: Multi(plan.KindFilter, Single(plan.KindScanVertices)),
		Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
			filter := node.(*plan.Filter)
			scan := filter.Inputs()[0].(*plan.ScanVertices)

			bin, ok := filter.Predicate.(*expr.Binary)
			if !ok || bin.Op != expr.OpEq {
				return noChange(), nil
			}
			prop, ok := bin.Left.(*expr.Property)
			if !ok {
				return noChange(), nil
			}
			lit, ok := bin.Right.(*expr.Literal)
			if !ok {
				return noChange(), nil
			}

			idxName := catalog.IndexFor(prop.Tag, prop.Key)
			if idxName == "" {
				return noChange(), nil
			}

			idx := plan.NewIndexScan(scan.OutputVar(), idxName, lit.Val.String())
			return &TransformResult{EraseAll: true, NewNodes: []plan.Node{idx}, Changed: true}, nil
		},
	}
}
