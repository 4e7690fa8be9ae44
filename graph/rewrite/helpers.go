package rewrite

import "github.com/zhukovaskychina/graphql-engine/graph/expr"

// referencesOnly reports whether every Variable node in e's tree names a
// column in allowed — used by pushdown rules to check a predicate/
// projection can safely move below a node that narrows the column set.
func referencesOnly(e expr.Expression, allowed map[string]bool) bool {
	ok := true
	walkExpr(e, func(v *expr.Variable) {
		if !allowed[v.Name] {
			ok = false
		}
	})
	return ok
}

// collectVarNames adds every Variable name referenced in e's tree to out.
func collectVarNames(e expr.Expression, out map[string]bool) {
	walkExpr(e, func(v *expr.Variable) { out[v.Name] = true })
}

// walkExpr visits every Variable leaf reachable from e.
func walkExpr(e expr.Expression, visit func(*expr.Variable)) {
	switch n := e.(type) {
	case nil:
		return
	case *expr.Variable:
		visit(n)
	case *expr.Literal:
		return
	case *expr.Property:
		walkExpr(n.Base, visit)
	case *expr.Binary:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)
	case *expr.Unary:
		walkExpr(n.Operand, visit)
	case *expr.FunctionCall:
		for _, a := range n.Args {
			walkExpr(a, visit)
		}
	}
}

// tagPresenceCheck recognizes the "v IS NOT NULL" shape over a Property
// read of a given tag — the pattern a planner emits for a tag-presence
// predicate like "MATCH (v:Person)" — and returns the tag name.
func tagPresenceCheck(e expr.Expression) (string, bool) {
	u, ok := e.(*expr.Unary)
	if !ok || u.Op != expr.OpIsNotNull {
		return "", false
	}
	p, ok := u.Operand.(*expr.Property)
	if !ok {
		return "", false
	}
	return p.Tag, true
}
