package value

import "testing"

func TestAppendRowArityInvariant(t *testing.T) {
	ds := NewDataSet([]string{"a", "b"})
	if err := ds.AppendRow([]Value{Int(1), Int(2)}); err != nil {
		t.Fatalf("AppendRow with matching arity: %v", err)
	}
	if err := ds.AppendRow([]Value{Int(1)}); err == nil {
		t.Fatal("AppendRow with mismatched arity should error")
	}
	if len(ds.Rows) != 1 {
		t.Fatalf("a rejected row must not be appended, got %d rows", len(ds.Rows))
	}
}

func TestGetOutOfRange(t *testing.T) {
	ds := NewDataSet([]string{"a"})
	_ = ds.AppendRow([]Value{Int(1)})
	if !ds.Get(5, "a").IsNull() {
		t.Fatal("Get with an out-of-range row index should return Null")
	}
	if !ds.Get(0, "missing").IsNull() {
		t.Fatal("Get with an unknown column name should return Null")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ds := NewDataSet([]string{"a"})
	_ = ds.AppendRow([]Value{Int(1)})
	clone := ds.Clone()
	clone.Rows[0][0] = Int(99)
	if got, _ := ds.Rows[0][0].AsInt(); got != 1 {
		t.Fatalf("mutating a clone's row mutated the source: got %d, want 1", got)
	}
}

func TestOKCountsRows(t *testing.T) {
	ds := NewDataSet([]string{"a"})
	_ = ds.AppendRow([]Value{Int(1)})
	_ = ds.AppendRow([]Value{Int(2)})
	res := OK(ds)
	if !res.Success || res.Count != 2 {
		t.Fatalf("OK(ds) = {Success: %v, Count: %d}, want {true, 2}", res.Success, res.Count)
	}
}

func TestFailedCarriesErr(t *testing.T) {
	res := Failed(ErrTypeMismatch)
	if res.Success || res.Err != ErrTypeMismatch {
		t.Fatalf("Failed result should be unsuccessful and carry the given error")
	}
}
