package plan

// Union concatenates rows from every input, which must share column
// schemas (the planner's responsibility to guarantee; Validate checks only
// input counts, so a schema mismatch is not reported).
type Union struct {
	BaseNode
}

func NewUnion(inputs []Node, outputVar string) *Union {
	n := &Union{BaseNode: NewBaseNode("Union", outputVar, inputs[0].ColNames())}
	n.SetInputs(inputs)
	return n
}

func (n *Union) Kind() Kind         { return KindUnion }
func (n *Union) Category() Category { return CategoryOf(KindUnion) }
func (n *Union) Clone() Node        { return &Union{BaseNode: n.cloneBase()} }
func (n *Union) CloneWithNewID() Node {
	return &Union{BaseNode: n.cloneBaseNewID()}
}

// UnionAllVersioned is Union without a trailing Dedup, for inputs already
// individually deduplicated and disjoint. No rewrite rule produces it; it
// comes only from the planner.
type UnionAllVersioned struct {
	BaseNode
}

func NewUnionAllVersioned(inputs []Node, outputVar string) *UnionAllVersioned {
	n := &UnionAllVersioned{BaseNode: NewBaseNode("UnionAllVersioned", outputVar, inputs[0].ColNames())}
	n.SetInputs(inputs)
	return n
}

func (n *UnionAllVersioned) Kind() Kind         { return KindUnionAllVersioned }
func (n *UnionAllVersioned) Category() Category { return CategoryOf(KindUnionAllVersioned) }
func (n *UnionAllVersioned) Clone() Node        { return &UnionAllVersioned{BaseNode: n.cloneBase()} }
func (n *UnionAllVersioned) CloneWithNewID() Node {
	return &UnionAllVersioned{BaseNode: n.cloneBaseNewID()}
}

// Intersect keeps only rows present in every input.
type Intersect struct {
	BaseNode
}

func NewIntersect(inputs []Node, outputVar string) *Intersect {
	n := &Intersect{BaseNode: NewBaseNode("Intersect", outputVar, inputs[0].ColNames())}
	n.SetInputs(inputs)
	return n
}

func (n *Intersect) Kind() Kind         { return KindIntersect }
func (n *Intersect) Category() Category { return CategoryOf(KindIntersect) }
func (n *Intersect) Clone() Node        { return &Intersect{BaseNode: n.cloneBase()} }
func (n *Intersect) CloneWithNewID() Node {
	return &Intersect{BaseNode: n.cloneBaseNewID()}
}

// Minus keeps rows present in the first input but absent from the second.
type Minus struct {
	BaseNode
}

func NewMinus(left, right Node, outputVar string) *Minus {
	n := &Minus{BaseNode: NewBaseNode("Minus", outputVar, left.ColNames())}
	n.SetInputs([]Node{left, right})
	return n
}

func (n *Minus) Kind() Kind         { return KindMinus }
func (n *Minus) Category() Category { return CategoryOf(KindMinus) }
func (n *Minus) Clone() Node        { return &Minus{BaseNode: n.cloneBase()} }
func (n *Minus) CloneWithNewID() Node {
	return &Minus{BaseNode: n.cloneBaseNewID()}
}

// Distinct is Dedup's full-row strategy expressed as its own node kind —
// the shape the planner emits directly for a "DISTINCT" clause. No rewrite
// rule specializes it to ByKeys/ByVertexId.
type Distinct struct {
	BaseNode
}

func NewDistinct(input Node, outputVar string) *Distinct {
	n := &Distinct{BaseNode: NewBaseNode("Distinct", outputVar, input.ColNames())}
	n.SetInputs([]Node{input})
	return n
}

func (n *Distinct) Kind() Kind         { return KindDistinct }
func (n *Distinct) Category() Category { return CategoryOf(KindDistinct) }
func (n *Distinct) Clone() Node        { return &Distinct{BaseNode: n.cloneBase()} }
func (n *Distinct) CloneWithNewID() Node {
	return &Distinct{BaseNode: n.cloneBaseNewID()}
}

// DataCollect gathers every row from its inputs into a single list-valued
// column named by CollectVar — the terminal shape a subquery plan
// produces before being spliced back into its parent as an Argument.
type DataCollect struct {
	BaseNode
	CollectVar string
}

func NewDataCollect(inputs []Node, outputVar, collectVar string) *DataCollect {
	n := &DataCollect{BaseNode: NewBaseNode("DataCollect", outputVar, []string{collectVar}), CollectVar: collectVar}
	n.SetInputs(inputs)
	return n
}

func (n *DataCollect) Kind() Kind         { return KindDataCollect }
func (n *DataCollect) Category() Category { return CategoryOf(KindDataCollect) }
func (n *DataCollect) Clone() Node {
	return &DataCollect{BaseNode: n.cloneBase(), CollectVar: n.CollectVar}
}
func (n *DataCollect) CloneWithNewID() Node {
	return &DataCollect{BaseNode: n.cloneBaseNewID(), CollectVar: n.CollectVar}
}
