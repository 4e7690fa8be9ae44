package plan

// Start is the plan tree's single root sentinel with no inputs, giving the
// rewrite engine and executor builder a fixed entry point to walk from.
type Start struct {
	BaseNode
}

func NewStart() *Start {
	return &Start{BaseNode: NewBaseNode("Start", "", nil)}
}

func (n *Start) Kind() Kind         { return KindStart }
func (n *Start) Category() Category { return CategoryOf(KindStart) }
func (n *Start) Clone() Node        { return &Start{BaseNode: n.cloneBase()} }
func (n *Start) CloneWithNewID() Node {
	return &Start{BaseNode: n.cloneBaseNewID()}
}

// End is the plan tree's single terminal sentinel; the executor builder
// treats it as a pass-through wrapper around its single input so the
// top-level ExecutionResult always comes from a well-known node shape.
type End struct {
	BaseNode
}

func NewEnd(input Node) *End {
	n := &End{BaseNode: NewBaseNode("End", input.OutputVar(), input.ColNames())}
	n.SetInputs([]Node{input})
	return n
}

func (n *End) Kind() Kind         { return KindEnd }
func (n *End) Category() Category { return CategoryOf(KindEnd) }
func (n *End) Clone() Node        { return &End{BaseNode: n.cloneBase()} }
func (n *End) CloneWithNewID() Node {
	return &End{BaseNode: n.cloneBaseNewID()}
}

// PassThrough forwards its single input's rows unchanged. No rewrite rule
// creates one; PassThroughElimination collapses any PassThrough it finds
// into its input.
type PassThrough struct {
	BaseNode
}

func NewPassThrough(input Node, outputVar string) *PassThrough {
	n := &PassThrough{BaseNode: NewBaseNode("PassThrough", outputVar, input.ColNames())}
	n.SetInputs([]Node{input})
	return n
}

func (n *PassThrough) Kind() Kind         { return KindPassThrough }
func (n *PassThrough) Category() Category { return CategoryOf(KindPassThrough) }
func (n *PassThrough) Clone() Node        { return &PassThrough{BaseNode: n.cloneBase()} }
func (n *PassThrough) CloneWithNewID() Node {
	return &PassThrough{BaseNode: n.cloneBaseNewID()}
}

// SelectBranch chooses between IfBranch and ElseBranch at execution time
// based on Condition, used by conditional subplans (e.g. an "if vertex
// exists" guard before a traversal).
type SelectBranch struct {
	BaseNode
	ConditionVar string
	IfBranch     Node
	ElseBranch   Node
}

func NewSelectBranch(conditionVar string, ifBranch, elseBranch Node, outputVar string) *SelectBranch {
	n := &SelectBranch{BaseNode: NewBaseNode("SelectBranch", outputVar, ifBranch.ColNames()), ConditionVar: conditionVar, IfBranch: ifBranch, ElseBranch: elseBranch}
	n.SetInputs([]Node{ifBranch, elseBranch})
	return n
}

func (n *SelectBranch) Kind() Kind         { return KindSelectBranch }
func (n *SelectBranch) Category() Category { return CategoryOf(KindSelectBranch) }
func (n *SelectBranch) Clone() Node {
	return &SelectBranch{BaseNode: n.cloneBase(), ConditionVar: n.ConditionVar, IfBranch: n.IfBranch, ElseBranch: n.ElseBranch}
}
func (n *SelectBranch) CloneWithNewID() Node {
	return &SelectBranch{BaseNode: n.cloneBaseNewID(), ConditionVar: n.ConditionVar, IfBranch: n.IfBranch, ElseBranch: n.ElseBranch}
}

// Loop re-executes Body while ConditionVar evaluates true, bounded by the
// executor's safety guard (MaxLoopIterations) regardless of what the
// condition says — a guard against a runaway or malformed condition.
type Loop struct {
	BaseNode
	ConditionVar string
	Body         Node
}

func NewLoop(conditionVar string, body Node, outputVar string) *Loop {
	n := &Loop{BaseNode: NewBaseNode("Loop", outputVar, body.ColNames()), ConditionVar: conditionVar, Body: body}
	n.SetInputs([]Node{body})
	return n
}

func (n *Loop) Kind() Kind         { return KindLoop }
func (n *Loop) Category() Category { return CategoryOf(KindLoop) }
func (n *Loop) Clone() Node {
	return &Loop{BaseNode: n.cloneBase(), ConditionVar: n.ConditionVar, Body: n.Body}
}
func (n *Loop) CloneWithNewID() Node {
	return &Loop{BaseNode: n.cloneBaseNewID(), ConditionVar: n.ConditionVar, Body: n.Body}
}

// LoopBody wraps the subplan a Loop re-runs each iteration; it is a
// separate Kind from Loop and forwards its single input unchanged.
type LoopBody struct {
	BaseNode
}

func NewLoopBody(input Node, outputVar string) *LoopBody {
	n := &LoopBody{BaseNode: NewBaseNode("LoopBody", outputVar, input.ColNames())}
	n.SetInputs([]Node{input})
	return n
}

func (n *LoopBody) Kind() Kind         { return KindLoopBody }
func (n *LoopBody) Category() Category { return CategoryOf(KindLoopBody) }
func (n *LoopBody) Clone() Node        { return &LoopBody{BaseNode: n.cloneBase()} }
func (n *LoopBody) CloneWithNewID() Node {
	return &LoopBody{BaseNode: n.cloneBaseNewID()}
}
