// Package exec implements the pull-based executor: a tree of Operators
// mirroring the (rewritten) plan tree, each built once and run exactly
// once per query via Open/Execute/Close. Execution is one-shot and
// materialized — Execute returns a complete ExecutionResult, not a
// per-tuple stream, per the engine's explicit contract (no iterator
// protocol, no partial-result callbacks).
package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// Operator is the uniform contract every executor satisfies.
type Operator interface {
	// Open prepares the operator to run: it recursively opens its
	// children, acquires any resources it needs (e.g. a storage cursor),
	// and must be called exactly once before Execute.
	Open(ctx context.Context) error
	// Execute runs the operator to completion and returns its result.
	// Called exactly once after Open; calling it again has undefined
	// column ordering since most operators don't reset internal state.
	Execute(ctx context.Context) (*value.ExecutionResult, error)
	// Close releases resources acquired by Open, recursively closing
	// children. Always safe to call, including after a failed Open or
	// Execute — idempotent.
	Close() error
	// Children returns this operator's input operators, in evaluation
	// order, for the recursion detector and safety validator to walk.
	Children() []Operator
	// Name identifies the operator for logging (matches its plan node's
	// Kind().String()).
	Name() string
}

// BaseExecutor is embedded by every concrete operator; it implements the
// child-plumbing parts of Operator (Open/Close recursion, Children) so a
// concrete type only has to implement Execute and, if it needs setup of
// its own, override Open/Close by calling BaseExecutor's version first.
type BaseExecutor struct {
	name     string
	children []Operator
	opened   bool
	closed   bool
}

func NewBaseExecutor(name string, children ...Operator) BaseExecutor {
	return BaseExecutor{name: name, children: children}
}

func (b *BaseExecutor) Name() string          { return b.name }
func (b *BaseExecutor) Children() []Operator   { return b.children }

// Open opens every child in order. A concrete operator whose Open does
// more than this should call b.Open(ctx) first, then its own setup.
func (b *BaseExecutor) Open(ctx context.Context) error {
	if b.opened {
		return nil
	}
	for _, c := range b.children {
		if err := c.Open(ctx); err != nil {
			return err
		}
	}
	b.opened = true
	return nil
}

// Close closes every child, continuing past the first error so a partial
// failure during teardown never leaks the remaining children's resources;
// it returns the first error seen, if any.
func (b *BaseExecutor) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	var first error
	for _, c := range b.children {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ExecuteChild runs a single child to completion — the common case for a
// unary operator pulling its one input's full result before transforming
// it.
func ExecuteChild(ctx context.Context, op Operator) (*value.ExecutionResult, error) {
	return op.Execute(ctx)
}
