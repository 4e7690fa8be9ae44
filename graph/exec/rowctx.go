package exec

import (
	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// bindRow populates ctx with one binding per column in cols/row, the
// common setup every result-processing operator needs before evaluating a
// predicate or projection item against a DataSet row.
func bindRow(ctx *expr.EvalContext, cols []string, row []value.Value) {
	for i, c := range cols {
		ctx.Bind(c, row[i])
	}
}

// evalBool evaluates pred against a bound ctx, treating anything other
// than a true Bool result (including every typed null) as false — the
// predicate-evaluation contract every Filter/Having-family operator shares.
func evalBool(pred expr.Expression, ctx *expr.EvalContext) bool {
	if pred == nil {
		return true
	}
	v := pred.Eval(ctx)
	b, err := v.AsBool()
	return err == nil && b
}
