package rewrite

// DefaultRules returns the engine's standing rule set, in the order the
// driver tries them each outer round: pushdowns first (they tend to
// unlock fusions and eliminations further down), then fusion, then
// elimination last (cleans up whatever pushdown/fusion left behind).
// IndexSelection is deliberately not included here since it needs an
// IndexCatalog; callers append NewIndexSelectionRule(catalog) themselves
// when a catalog is available.
func DefaultRules() []*Rule {
	return []*Rule{
		FilterPushIntoScanVertices,
		FilterPushThroughProject,
		FilterPushThroughTraverse,
		ProjectionPushDown,
		LimitPushThroughProject,
		SortLimitFusion,
		ExpandExpandFusion,
		TrueFilterElimination,
		FalseFilterElimination,
		ZeroLimitPropagation,
		DedupAfterDistinctElimination,
		DoubleSortElimination,
		PassThroughElimination,
		RedundantProjectElimination,
	}
}
