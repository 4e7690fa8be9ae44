package rewrite

import (
	"github.com/zhukovaskychina/graphql-engine/graph/plan"
)

// TransformResult tells the driver what to do with the node a Rule's Apply
// matched. With EraseCurr or EraseAll set, the driver replaces the matched
// node with NewNodes[0], and the replacement brings its own inputs; the
// driver handles the two flags the same way. Rules set EraseCurr when the
// replacement is an existing input of the matched node (e.g. dropping a
// true Filter) and EraseAll when a new node replaces several matched
// nodes (e.g. fusion and pushdown rules).
type TransformResult struct {
	EraseCurr bool
	EraseAll  bool
	// NewNodes replaces the matched node (len 1 in every rule this engine
	// ships; kept as a slice so a rule could in principle fan a node back
	// out, e.g. splitting a fused node under a different pushdown).
	NewNodes []plan.Node
	// NewDependencies, when non-empty, replaces the matched node's
	// Inputs() on a clone of it, for a rule that rewires children without
	// replacing the node itself. No shipped rule sets it.
	NewDependencies []plan.Node
	// Changed must be true whenever Apply actually altered the tree; a
	// rule that matched but decided not to transform (e.g. the predicate
	// wasn't actually pushable after a closer look) returns Changed=false
	// so the driver doesn't loop forever re-trying a no-op match.
	Changed bool
}

// noChange is the canonical "matched but did nothing" result.
func noChange() *TransformResult { return &TransformResult{Changed: false} }

// RewriteContext carries the state a Rule's Apply function needs beyond
// the matched node itself: the current round counters, useful for rules
// that want to behave
// differently on the first pass (e.g. index selection only after pushdown
// has stabilized).
type RewriteContext struct {
	OuterRound int
	InnerRound int
}

// Rule is one named rewrite: Pattern selects candidate nodes, Apply
// decides whether/how to transform a match.
type Rule struct {
	Name    string
	Pattern *Pattern
	Apply   func(ctx *RewriteContext, node plan.Node) (*TransformResult, error)
}
