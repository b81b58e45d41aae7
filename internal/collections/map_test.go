package collections

import "testing"

func TestMapPutGet(t *testing.T) {
	m := NewMap[int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("a", 3) // replace

	v, ok := m.Get("a")
	if !ok || v != 3 {
		t.Fatalf("Get(a) = %d, %v, want 3, true", v, ok)
	}
	if m.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", m.Size())
	}
}

func TestMapRoundTripLastInsertedWins(t *testing.T) {
	m := NewMap[string]()
	keys := []string{"one", "two", "three", "two", "one"}
	for i, k := range keys {
		m.Put(k, string(rune('a'+i)))
	}
	v, ok := m.Get("one")
	if !ok || v != "e" {
		t.Fatalf("Get(one) = %q, %v, want %q, true", v, ok, "e")
	}
}

func TestMapRemoveIsIdempotent(t *testing.T) {
	m := NewMap[int]()
	m.Put("x", 1)
	m.Remove("x")
	m.Remove("x") // second remove: no-op, no panic
	if m.Contains("x") {
		t.Fatalf("Contains(x) = true after Remove")
	}
	if m.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", m.Size())
	}
}

func TestMapForEachVisitsAllEntries(t *testing.T) {
	m := NewMap[int]()
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		m.Put(k, v)
	}
	seen := map[string]int{}
	m.ForEach(func(e Entry[int]) {
		seen[e.Key] = e.Value
	})
	if len(seen) != len(want) {
		t.Fatalf("ForEach visited %d entries, want %d", len(seen), len(want))
	}
	for k, v := range want {
		if seen[k] != v {
			t.Fatalf("entry %q = %d, want %d", k, seen[k], v)
		}
	}
}

func TestMapCollisionsWithinFixedBuckets(t *testing.T) {
	m := NewMapWithBuckets[int](1) // force every key into the same bucket
	for i := 0; i < 50; i++ {
		m.Put(string(rune('A'+i)), i)
	}
	if m.Size() != 50 {
		t.Fatalf("Size() = %d, want 50", m.Size())
	}
	v, ok := m.Get("A")
	if !ok || v != 0 {
		t.Fatalf("Get(A) = %d, %v, want 0, true", v, ok)
	}
}

func TestHashStringDjb2(t *testing.T) {
	// djb2("") == 5381, the seed, per spec.
	if got := hashString(""); got != 5381 {
		t.Fatalf("hashString(\"\") = %d, want 5381", got)
	}
}
