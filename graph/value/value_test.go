package value

import "testing"

func TestAsAccessorsTypeMismatch(t *testing.T) {
	v := Int(3)
	if _, err := v.AsString(); err != ErrTypeMismatch {
		t.Fatalf("AsString on an Int: got err %v, want ErrTypeMismatch", err)
	}
	if _, err := Bool(true).AsInt(); err != ErrTypeMismatch {
		t.Fatalf("AsInt on a Bool: got err %v, want ErrTypeMismatch", err)
	}
}

func TestEqualsNullVariants(t *testing.T) {
	if !Null().Equals(Null()) {
		t.Fatal("NullPlain should equal NullPlain")
	}
	if Null().Equals(NullOf(NullNaN)) {
		t.Fatal("NullPlain must not equal NullNaN")
	}
}

func TestEqualsNumericCoercion(t *testing.T) {
	if !Int(2).Equals(Float(2.0)) {
		t.Fatal("Int(2) should equal Float(2.0)")
	}
	if Int(2).Equals(String("2")) {
		t.Fatal("Int(2) must not equal String(\"2\")")
	}
}

func TestCompareTotalOrder(t *testing.T) {
	cases := []struct {
		a, b Value
		want int
	}{
		{Null(), Bool(false), -1},
		{Bool(false), Bool(true), -1},
		{Bool(true), Int(0), -1},
		{Int(1), Float(2.5), -1},
		{Int(5), String("a"), -1},
		{String("a"), String("b"), -1},
	}
	for _, c := range cases {
		got, err := c.a.Compare(c.b)
		if err != nil {
			t.Fatalf("Compare(%v, %v) errored: %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCompareContainersNotOrderable(t *testing.T) {
	_, err := List([]Value{Int(1)}).Compare(List([]Value{Int(2)}))
	if err != ErrNotOrderable {
		t.Fatalf("Compare on lists: got %v, want ErrNotOrderable", err)
	}
}

func TestSetDedupesOnConstruction(t *testing.T) {
	s := Set([]Value{Int(1), Int(1), Int(2)})
	m, err := s.AsSet()
	if err != nil {
		t.Fatalf("AsSet: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("Set member count = %d, want 2", len(m))
	}
}

func TestDedupKeyAndHashAgreeWithEquals(t *testing.T) {
	a := List([]Value{Int(1), String("x")})
	b := List([]Value{Int(1), String("x")})
	c := List([]Value{Int(1), String("y")})

	if !a.Equals(b) {
		t.Fatal("structurally identical lists should be Equal")
	}
	if a.DedupKey() != b.DedupKey() {
		t.Fatal("Equal values must share a DedupKey")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("Equal values must hash equal")
	}
	if a.DedupKey() == c.DedupKey() {
		t.Fatal("structurally different lists must not share a DedupKey")
	}
}

func TestDivByZeroFoldsToTypedNull(t *testing.T) {
	r := Div(Int(1), Int(0))
	if r.Kind() != KNull || r.NullVariant() != NullDivByZero {
		t.Fatalf("Div(1, 0) = %v, want NullOf(NullDivByZero)", r)
	}
}

func TestArithBadTypeFoldsToTypedNull(t *testing.T) {
	r := Add(String("x"), Int(1))
	if r.Kind() != KNull || r.NullVariant() != NullBadType {
		t.Fatalf("Add(string, int) = %v, want NullOf(NullBadType)", r)
	}
}
