package types

import "testing"

func TestCompactStringRoundTrip(t *testing.T) {
	cases := []struct {
		file FileID
		sym  SymbolID
	}{
		{1, 1},
		{42, 9999},
		{1, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
	}
	for _, c := range cases {
		s := CompactString(c.file, c.sym)
		gotFile, gotSym, err := ParseCompactString(s)
		if err != nil {
			t.Fatalf("ParseCompactString(%q): %v", s, err)
		}
		if gotFile != c.file || gotSym != c.sym {
			t.Fatalf("round trip mismatch: got (%d,%d), want (%d,%d)", gotFile, gotSym, c.file, c.sym)
		}
	}
}

func TestParseCompactStringRejectsGarbage(t *testing.T) {
	if _, _, err := ParseCompactString("not valid!"); err == nil {
		t.Fatal("expected error for invalid compact string")
	}
	if _, _, err := ParseCompactString(""); err == nil {
		t.Fatal("expected error for empty compact string")
	}
}

func TestRangeWithinLineCount(t *testing.T) {
	r := Range{StartLine: 2, EndLine: 5}
	if !r.WithinLineCount(10) {
		t.Fatal("expected range to fit in 10 lines")
	}
	if r.WithinLineCount(4) {
		t.Fatal("expected range to exceed 4 lines")
	}
}

func TestIDAllocatorMonotonic(t *testing.T) {
	a := NewIDAllocator()
	prev := uint32(0)
	for i := 0; i < 5; i++ {
		v := a.Next()
		if v <= prev {
			t.Fatalf("allocator not monotonic: %d <= %d", v, prev)
		}
		prev = v
	}
}

func TestIsValidRelationship(t *testing.T) {
	if !IsValidRelationship(SymbolFunction, SymbolFunction, RelCalls) {
		t.Fatal("function calling function should be valid")
	}
	if IsValidRelationship(SymbolField, SymbolFunction, RelCalls) {
		t.Fatal("field as caller should be invalid")
	}
	if !IsValidRelationship(SymbolFunction, SymbolFunction, RelCalledBy) {
		t.Fatal("inverse relationship should canonicalize correctly")
	}
	if !IsValidRelationship(SymbolStruct, SymbolTrait, RelImplements) {
		t.Fatal("struct implementing trait should be valid")
	}
	if IsValidRelationship(SymbolFunction, SymbolTrait, RelImplements) {
		t.Fatal("function implementing trait should be invalid")
	}
	if !IsValidRelationship(SymbolVariable, SymbolVariable, RelUses) {
		t.Fatal("Uses should be permissive")
	}
}
