package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// StartExec is the plan tree's root sentinel: no children, an empty result.
type StartExec struct{ BaseExecutor }

func NewStartExec() *StartExec { return &StartExec{BaseExecutor: NewBaseExecutor("Start")} }

func (e *StartExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	return value.OK(value.NewDataSet(nil)), nil
}

// EndExec is the plan tree's terminal sentinel, forwarding its single
// input's result unchanged — the top-level ExecutionResult a query
// returns always comes from this well-known shape.
type EndExec struct{ BaseExecutor }

func NewEndExec(child Operator) *EndExec { return &EndExec{BaseExecutor: NewBaseExecutor("End", child)} }

func (e *EndExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	return ExecuteChild(ctx, e.Children()[0])
}

// PassThroughExec forwards its single input unchanged — introduced by
// rewrite rules that erase a node but must keep the plan tree's shape
// valid until the next fixpoint round re-collapses it away.
type PassThroughExec struct{ BaseExecutor }

func NewPassThroughExec(child Operator) *PassThroughExec {
	return &PassThroughExec{BaseExecutor: NewBaseExecutor("PassThrough", child)}
}

func (e *PassThroughExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	return ExecuteChild(ctx, e.Children()[0])
}

// SelectBranchExec chooses between its If and Else children at execution
// time by resolving ConditionVar through Resolve — set by the builder to
// the same storage-collaborator GetInput lookup Argument uses, since a
// branch condition is always a parameter bound before the query runs, not
// a value computed mid-plan.
type SelectBranchExec struct {
	BaseExecutor
	ConditionVar string
	Resolve      func(ctx context.Context, name string) (bool, error)
}

func NewSelectBranchExec(ifBranch, elseBranch Operator, conditionVar string, resolve func(context.Context, string) (bool, error)) *SelectBranchExec {
	return &SelectBranchExec{BaseExecutor: NewBaseExecutor("SelectBranch", ifBranch, elseBranch), ConditionVar: conditionVar, Resolve: resolve}
}

func (e *SelectBranchExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	cond, err := e.Resolve(ctx, e.ConditionVar)
	if err != nil {
		return value.Failed(err), err
	}
	if cond {
		return ExecuteChild(ctx, e.Children()[0])
	}
	return ExecuteChild(ctx, e.Children()[1])
}

// LoopExec re-executes Body while ConditionVar's bound column in Body's
// last result holds a true Bool, bounded by SafetyValidator regardless of
// what the condition says — a guard against a runaway or malformed
// condition column.
type LoopExec struct {
	BaseExecutor
	ConditionVar string
	Safety       *SafetyValidator
}

func NewLoopExec(body Operator, conditionVar string, safety *SafetyValidator) *LoopExec {
	return &LoopExec{BaseExecutor: NewBaseExecutor("Loop", body), ConditionVar: conditionVar, Safety: safety}
}

func (e *LoopExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	var last *value.ExecutionResult
	iter := 0
	for {
		if e.Safety != nil {
			if err := e.Safety.CheckLoopIteration(iter); err != nil {
				return value.Failed(err), err
			}
		}
		res, err := ExecuteChild(ctx, e.Children()[0])
		if err != nil || !res.Success {
			return res, err
		}
		last = res
		iter++
		if !loopShouldContinue(last, e.ConditionVar) {
			break
		}
	}
	return last, nil
}

// loopShouldContinue reads the first row's ConditionVar column out of a
// Loop body's last result; a missing column, empty result, or non-true
// value all mean "stop" rather than an error.
func loopShouldContinue(res *value.ExecutionResult, conditionVar string) bool {
	if res == nil || res.DataSet == nil || len(res.DataSet.Rows) == 0 {
		return false
	}
	v := res.DataSet.Get(0, conditionVar)
	b, err := v.AsBool()
	return err == nil && b
}

// LoopBodyExec wraps the subplan a Loop re-runs each iteration, forwarding
// its single input unchanged; it differs from a plain PassThrough only in
// its operator name.
type LoopBodyExec struct{ BaseExecutor }

func NewLoopBodyExec(child Operator) *LoopBodyExec {
	return &LoopBodyExec{BaseExecutor: NewBaseExecutor("LoopBody", child)}
}

func (e *LoopBodyExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	return ExecuteChild(ctx, e.Children()[0])
}
