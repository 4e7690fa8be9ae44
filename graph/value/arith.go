package value

import "math"

// Add, Sub, Mul, Div, Mod implement checked arithmetic: a type mismatch or
// domain failure folds into a typed null rather than a Go error, so callers
// (the expression evaluator, Aggregate's transition functions) can chain
// operators without error-checking every step.

func Add(a, b Value) Value {
	if !a.IsNumeric() || !b.IsNumeric() {
		return NullOf(NullBadType)
	}
	if a.kind == KInt && b.kind == KInt {
		return Int(a.i + b.i)
	}
	return floatResult(a.Float64() + b.Float64())
}

func Sub(a, b Value) Value {
	if !a.IsNumeric() || !b.IsNumeric() {
		return NullOf(NullBadType)
	}
	if a.kind == KInt && b.kind == KInt {
		return Int(a.i - b.i)
	}
	return floatResult(a.Float64() - b.Float64())
}

func Mul(a, b Value) Value {
	if !a.IsNumeric() || !b.IsNumeric() {
		return NullOf(NullBadType)
	}
	if a.kind == KInt && b.kind == KInt {
		return Int(a.i * b.i)
	}
	return floatResult(a.Float64() * b.Float64())
}

func Div(a, b Value) Value {
	if !a.IsNumeric() || !b.IsNumeric() {
		return NullOf(NullBadType)
	}
	if a.kind == KInt && b.kind == KInt {
		if b.i == 0 {
			return NullOf(NullDivByZero)
		}
		if a.i%b.i == 0 {
			return Int(a.i / b.i)
		}
		return floatResult(float64(a.i) / float64(b.i))
	}
	bf := b.Float64()
	if bf == 0 {
		return NullOf(NullDivByZero)
	}
	return floatResult(a.Float64() / bf)
}

func Mod(a, b Value) Value {
	if a.kind != KInt || b.kind != KInt {
		return NullOf(NullBadType)
	}
	if b.i == 0 {
		return NullOf(NullDivByZero)
	}
	return Int(a.i % b.i)
}

func Neg(a Value) Value {
	switch a.kind {
	case KInt:
		return Int(-a.i)
	case KFloat:
		return floatResult(-a.f)
	default:
		return NullOf(NullBadType)
	}
}

func floatResult(f float64) Value {
	if math.IsNaN(f) {
		return NullOf(NullNaN)
	}
	if math.IsInf(f, 0) {
		return NullOf(NullOutOfRange)
	}
	return Float(f)
}

// And/Or/Not implement three-valued (Kleene) boolean logic: a null operand
// only forces a null result when it cannot be short-circuited.
func And(a, b Value) Value {
	if a.kind == KBool && !a.b {
		return Bool(false)
	}
	if b.kind == KBool && !b.b {
		return Bool(false)
	}
	if a.kind != KBool || b.kind != KBool {
		return NullOf(NullBadType)
	}
	return Bool(a.b && b.b)
}

func Or(a, b Value) Value {
	if a.kind == KBool && a.b {
		return Bool(true)
	}
	if b.kind == KBool && b.b {
		return Bool(true)
	}
	if a.kind != KBool || b.kind != KBool {
		return NullOf(NullBadType)
	}
	return Bool(a.b || b.b)
}

func Not(a Value) Value {
	if a.kind != KBool {
		return NullOf(NullBadType)
	}
	return Bool(!a.b)
}
