package rewrite

import (
	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/plan"
)

// FilterPushThroughProject pushes a Filter below a Project when the
// predicate only references columns Project passes through unchanged
// (i.e. it doesn't depend on a computed alias), letting downstream
// pushdown rules see the Filter next to the access node it actually
// constrains.
var FilterPushThroughProject = &Rule{
	Name:    "FilterPushThroughProject",
	Pattern: Multi(plan.KindFilter, Single(plan.KindProject)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		filter := node.(*plan.Filter)
		project := filter.Inputs()[0].(*plan.Project)

		projectedCols := make(map[string]bool, len(project.Items))
		for _, it := range project.Items {
			if v, ok := it.Expr.(*expr.Variable); ok && v.Name == it.Alias {
				projectedCols[it.Alias] = true
			}
		}
		if !referencesOnly(filter.Predicate, projectedCols) {
			return noChange(), nil
		}

		newFilter := plan.NewFilter(project.Inputs()[0], filter.OutputVar(), filter.Predicate)
		newProject := plan.NewProject(newFilter, project.OutputVar(), project.Items)
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{newProject}, Changed: true}, nil
	},
}

// FilterPushIntoScanVertices folds a Filter's predicate into a
// ScanVertices node's tag restriction when the predicate is a tag-presence
// check ("tag.prop IS NOT NULL") — the common "MATCH (v:Person)" shape —
// eliminating the separate Filter node entirely.
var FilterPushIntoScanVertices = &Rule{
	Name:    "FilterPushIntoScanVertices",
	Pattern: Multi(plan.KindFilter, Single(plan.KindScanVertices)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		filter := node.(*plan.Filter)
		scan := filter.Inputs()[0].(*plan.ScanVertices)

		tag, ok := tagPresenceCheck(filter.Predicate)
		if !ok || scan.TagFilter != "" {
			return noChange(), nil
		}

		newScan := plan.NewScanVertices(scan.OutputVar(), tag)
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{newScan}, Changed: true}, nil
	},
}

// FilterPushThroughTraverse moves a Filter's whole predicate onto the
// Traverse below it as GeneralFilter, evaluated per-candidate inside the
// traversal loop, and erases the Filter. The predicate is not split and
// its column references are not checked; a Traverse that already has a
// GeneralFilter is left unchanged.
var FilterPushThroughTraverse = &Rule{
	Name:    "FilterPushThroughTraverse",
	Pattern: Multi(plan.KindFilter, Single(plan.KindTraverse)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		filter := node.(*plan.Filter)
		trav := filter.Inputs()[0].(*plan.Traverse)

		if trav.GeneralFilter != nil {
			// Already has a pushed filter; don't clobber it — a later
			// round's conjunction-splitting rule (not modeled here) would
			// be the place to merge a second predicate in.
			return noChange(), nil
		}

		newTrav := *trav
		newTrav.BaseNode = trav.Clone().(*plan.Traverse).BaseNode
		newTrav.GeneralFilter = filter.Predicate
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{&newTrav}, Changed: true}, nil
	},
}

// ProjectionPushDown drops input columns a Project's parent never
// references, by rewriting Project's own input to a Project of only the
// columns actually needed. Conservative: only fires when the input is
// itself a Project (whatever lies below it), avoiding having to reason
// about every operator's column-usage contract.
var ProjectionPushDown = &Rule{
	Name:    "ProjectionPushDown",
	Pattern: Multi(plan.KindProject, Single(plan.KindProject)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		outer := node.(*plan.Project)
		inner := outer.Inputs()[0].(*plan.Project)

		needed := make(map[string]bool)
		for _, it := range outer.Items {
			collectVarNames(it.Expr, needed)
		}
		if len(needed) >= len(inner.Items) {
			return noChange(), nil
		}

		trimmed := make([]plan.ProjectItem, 0, len(needed))
		for _, it := range inner.Items {
			if needed[it.Alias] {
				trimmed = append(trimmed, it)
			}
		}
		if len(trimmed) == len(inner.Items) {
			return noChange(), nil
		}

		newInner := plan.NewProject(inner.Inputs()[0], inner.OutputVar(), trimmed)
		newOuter := plan.NewProject(newInner, outer.OutputVar(), outer.Items)
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{newOuter}, Changed: true}, nil
	},
}

// LimitPushThroughProject moves a Limit below a side-effect-free Project
// so downstream fusion (Sort+Limit -> TopN) can see them adjacent.
var LimitPushThroughProject = &Rule{
	Name:    "LimitPushThroughProject",
	Pattern: Multi(plan.KindLimit, Single(plan.KindProject)),
	Apply: func(ctx *RewriteContext, node plan.Node) (*TransformResult, error) {
		limit := node.(*plan.Limit)
		project := limit.Inputs()[0].(*plan.Project)

		newLimit := plan.NewLimit(project.Inputs()[0], limit.OutputVar(), limit.Offset, limit.Count)
		newProject := plan.NewProject(newLimit, project.OutputVar(), project.Items)
		return &TransformResult{EraseAll: true, NewNodes: []plan.Node{newProject}, Changed: true}, nil
	},
}
