// Package plan implements the query plan model: a tree of typed operator
// nodes produced by (an external) planner, consumed by the rewrite engine
// and, ultimately, the executor builder. Node identity is a process-wide
// monotonic id, not a pointer — clones get fresh ids so the rewrite engine
// can tell "the same logical node, rewritten" from "a structurally
// identical but distinct node" (its explored-set thrash guard depends on
// this).
package plan

import (
	"fmt"

	"go.uber.org/atomic"
)

var nextNodeID = atomic.NewInt64(0)

// NextNodeID returns the next value from the process-wide monotonic
// counter. Exported so tests and the rewrite engine's clone helpers can
// mint ids without importing an internal package.
func NextNodeID() int64 {
	return nextNodeID.Inc()
}

// Category groups node Kinds for O(1) dispatch in rewrite rule pattern
// matching (category-based patterns scan far fewer candidates than a
// type-switch over every Kind).
type Category uint8

const (
	CategoryAccess Category = iota
	CategoryTraversal
	CategoryOperation
	CategoryJoin
	CategoryDataProcessing
	CategoryControlFlow
	CategoryAlgorithm
	CategoryManagement
)

func (c Category) String() string {
	names := [...]string{"Access", "Traversal", "Operation", "Join", "DataProcessing", "ControlFlow", "Algorithm", "Management"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Kind identifies a node's concrete operator type. The full spec.md
// enumeration (~60 variants) is declared in kinds.go.
type Kind uint16

// Node is the uniform trait every plan node satisfies. Implementations
// live one file per category under this package (access.go, operation.go,
// join.go, traversal.go, ...).
// Dispatch over Node is done by type switch / visitor, not dynamic method
// calls per spec.md's hot-loop requirement — Node itself stays a thin
// identity+shape contract, and rewrite rules switch on Kind().
type Node interface {
	ID() int64
	Name() string
	Kind() Kind
	Category() Category
	// OutputVar is the binding name this node's output is exposed under
	// to downstream nodes (e.g. the vertex alias a Scan introduces).
	OutputVar() string
	// ColNames is the output schema this node's DataSet carries, derived
	// at construction time from the node's inputs and projection list.
	ColNames() []string
	// Inputs returns this node's child plan nodes, in evaluation order.
	Inputs() []Node
	SetInputs(inputs []Node)
	// Cost is a planner-assigned estimate; the rewrite engine treats it
	// as opaque data to preserve/copy, never computes it (no cost model
	// here — that is the planner's job, explicitly out of scope).
	Cost() float64
	SetCost(c float64)
	// Clone returns a deep-enough copy sharing the same id — used when a
	// rule needs to rebuild a node's shape without renumbering it.
	Clone() Node
	// CloneWithNewID returns a copy with a freshly minted id, used when a
	// rule introduces what the engine must treat as a distinct node.
	CloneWithNewID() Node
}

// BaseNode is embedded by every concrete node type; it implements the
// identity/shape fields of Node so concrete types only add their own
// operator-specific fields and override Kind/Category/Clone/CloneWithNewID.
type BaseNode struct {
	id        int64
	name      string
	outputVar string
	colNames  []string
	inputs    []Node
	cost      float64
}

func NewBaseNode(name string, outputVar string, colNames []string) BaseNode {
	return BaseNode{id: NextNodeID(), name: name, outputVar: outputVar, colNames: colNames}
}

func (b *BaseNode) ID() int64            { return b.id }
func (b *BaseNode) Name() string         { return b.name }
func (b *BaseNode) OutputVar() string    { return b.outputVar }
func (b *BaseNode) ColNames() []string   { return b.colNames }
func (b *BaseNode) Inputs() []Node       { return b.inputs }
func (b *BaseNode) SetInputs(in []Node)  { b.inputs = in }
func (b *BaseNode) Cost() float64        { return b.cost }
func (b *BaseNode) SetCost(c float64)    { b.cost = c }

// cloneBase copies identity fields, keeping the id (same node, reshaped).
func (b BaseNode) cloneBase() BaseNode {
	cols := append([]string(nil), b.colNames...)
	ins := append([]Node(nil), b.inputs...)
	return BaseNode{id: b.id, name: b.name, outputVar: b.outputVar, colNames: cols, inputs: ins, cost: b.cost}
}

// cloneBaseNewID copies identity fields with a fresh id.
func (b BaseNode) cloneBaseNewID() BaseNode {
	nb := b.cloneBase()
	nb.id = NextNodeID()
	return nb
}

func (b *BaseNode) String() string {
	return fmt.Sprintf("%s#%d", b.name, b.id)
}
