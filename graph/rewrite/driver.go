package rewrite

import (
	"github.com/juju/errors"

	"github.com/zhukovaskychina/graphql-engine/graph/plan"
	"github.com/zhukovaskychina/graphql-engine/logger"
)

// Optimize runs rules to a fixpoint over the tree rooted at root: each
// outer round applies every rule in order until none of them change
// anything, bounded by maxOuterRounds; within a single rule, at most
// maxInnerRounds successive matches are applied before moving to the next
// rule, guarding against a rule that (due to a bug) keeps finding fresh
// work forever. After the fixpoint (or the round caps) is reached, the
// resulting tree is structurally validated once before being returned.
func Optimize(root plan.Node, rules []*Rule, maxOuterRounds, maxInnerRounds int) (plan.Node, error) {
	if maxOuterRounds <= 0 {
		maxOuterRounds = 5
	}
	if maxInnerRounds <= 0 {
		maxInnerRounds = 128
	}

	// explored[ruleName] tracks node ids this rule has already matched and
	// found nothing to change in the current tree shape — without this, a
	// rule whose Apply legitimately declines a match (e.g. a pushdown that
	// decided the predicate isn't actually pushable) would be re-tried on
	// the exact same node every inner round, thrashing forever without
	// the round caps ever doing anything useful.
	explored := make(map[string]map[int64]bool, len(rules))

	for outer := 0; outer < maxOuterRounds; outer++ {
		changedThisOuter := false

		for _, rule := range rules {
			seen := explored[rule.Name]
			if seen == nil {
				seen = make(map[int64]bool)
				explored[rule.Name] = seen
			}

			for inner := 0; inner < maxInnerRounds; inner++ {
				node, found := findFirstMatch(root, rule.Pattern, seen)
				if !found {
					break
				}

				ctx := &RewriteContext{OuterRound: outer, InnerRound: inner}
				result, err := rule.Apply(ctx, node)
				if err != nil {
					return nil, errors.Annotatef(err, "rewrite: rule %s on node %s", rule.Name, node.Kind())
				}
				if result == nil || !result.Changed {
					seen[node.ID()] = true
					continue
				}

				newRoot, err := applyResult(root, node, result)
				if err != nil {
					return nil, errors.Annotatef(err, "rewrite: rule %s splice on node %s", rule.Name, node.Kind())
				}
				root = newRoot
				changedThisOuter = true
				// The tree shape changed under this node's id, so every
				// previously explored id for this rule may now match
				// differently; drop the whole set rather than try to
				// reason about which entries are still valid.
				seen = make(map[int64]bool)
				explored[rule.Name] = seen
			}
		}

		logger.Debugf("rewrite: outer round %d complete, changed=%t", outer, changedThisOuter)
		if !changedThisOuter {
			break
		}
	}

	if err := plan.Validate(root); err != nil {
		return nil, errors.Trace(err)
	}
	return root, nil
}

// findFirstMatch returns the first node (preorder) matching pattern whose
// id is not already in seen.
func findFirstMatch(root plan.Node, pattern *Pattern, seen map[int64]bool) (plan.Node, bool) {
	var found plan.Node
	plan.Walk(root, func(n plan.Node) bool {
		if found != nil {
			return false
		}
		if seen[n.ID()] {
			return true
		}
		if pattern.Matches(n) {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// applyResult splices a rule's TransformResult into root.
func applyResult(root plan.Node, matched plan.Node, result *TransformResult) (plan.Node, error) {
	if result.EraseCurr || result.EraseAll {
		if len(result.NewNodes) == 0 {
			return nil, errors.New("rewrite: erase result with no replacement node")
		}
		return plan.Replace(root, matched.ID(), result.NewNodes[0]), nil
	}
	if len(result.NewDependencies) > 0 {
		clone := matched.Clone()
		clone.SetInputs(result.NewDependencies)
		return plan.Replace(root, matched.ID(), clone), nil
	}
	if len(result.NewNodes) > 0 {
		return plan.Replace(root, matched.ID(), result.NewNodes[0]), nil
	}
	return root, nil
}
