package expr

import "github.com/zhukovaskychina/graphql-engine/graph/value"

// BinaryOp enumerates the operators a Binary node supports.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpXor
)

var binaryOpNames = map[BinaryOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpAnd: "AND", OpOr: "OR", OpEq: "==", OpNe: "!=",
	OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=", OpXor: "XOR",
}

// Binary is a two-operand expression: arithmetic, boolean, or comparison.
type Binary struct {
	Op          BinaryOp
	Left, Right Expression
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + binaryOpNames[b.Op] + " " + b.Right.String() + ")"
}

func (b *Binary) Eval(ctx *EvalContext) value.Value {
	l := b.Left.Eval(ctx)
	r := b.Right.Eval(ctx)
	switch b.Op {
	case OpAdd:
		return value.Add(l, r)
	case OpSub:
		return value.Sub(l, r)
	case OpMul:
		return value.Mul(l, r)
	case OpDiv:
		return value.Div(l, r)
	case OpMod:
		return value.Mod(l, r)
	case OpAnd:
		return value.And(l, r)
	case OpOr:
		return value.Or(l, r)
	case OpXor:
		lb, lerr := l.AsBool()
		rb, rerr := r.AsBool()
		if lerr != nil || rerr != nil {
			return value.NullOf(value.NullBadType)
		}
		return value.Bool(lb != rb)
	case OpEq:
		return value.Bool(l.Equals(r))
	case OpNe:
		return value.Bool(!l.Equals(r))
	case OpLt, OpLe, OpGt, OpGe:
		if l.IsNull() || r.IsNull() {
			return value.Null()
		}
		c, err := l.Compare(r)
		if err != nil {
			return value.NullOf(value.NullBadType)
		}
		switch b.Op {
		case OpLt:
			return value.Bool(c < 0)
		case OpLe:
			return value.Bool(c <= 0)
		case OpGt:
			return value.Bool(c > 0)
		default:
			return value.Bool(c >= 0)
		}
	default:
		return value.NullOf(value.NullBadType)
	}
}

// UnaryOp enumerates the operators a Unary node supports.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpNot
	OpIsNull
	OpIsNotNull
)

// Unary is a single-operand expression.
type Unary struct {
	Op      UnaryOp
	Operand Expression
}

func (u *Unary) String() string {
	switch u.Op {
	case OpNeg:
		return "-" + u.Operand.String()
	case OpNot:
		return "NOT " + u.Operand.String()
	case OpIsNull:
		return u.Operand.String() + " IS NULL"
	default:
		return u.Operand.String() + " IS NOT NULL"
	}
}

func (u *Unary) Eval(ctx *EvalContext) value.Value {
	v := u.Operand.Eval(ctx)
	switch u.Op {
	case OpNeg:
		return value.Neg(v)
	case OpNot:
		return value.Not(v)
	case OpIsNull:
		return value.Bool(v.IsNull())
	default:
		return value.Bool(!v.IsNull())
	}
}

// FunctionCall invokes a named scalar function from the FunctionRegistry.
type FunctionCall struct {
	Name string
	Args []Expression
}

func (f *FunctionCall) String() string {
	s := f.Name + "("
	for i, a := range f.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

func (f *FunctionCall) Eval(ctx *EvalContext) value.Value {
	fn, ok := ctx.Functions().Lookup(f.Name)
	if !ok {
		return value.NullOf(value.NullBadType)
	}
	args := make([]value.Value, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Eval(ctx)
	}
	return fn(args)
}
