package arr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/romkatsu/collection/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// assoc builds a Map from alternating key/value arguments.
func assoc(t testing.TB, kv ...any) *arr.Map {
	t.Helper()
	if len(kv)%2 != 0 {
		t.Fatalf("assoc: odd number of arguments")
	}
	m := arr.NewMap(len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		k, err := arr.KeyOf(kv[i])
		if err != nil {
			t.Fatalf("assoc: %v", err)
		}
		m.Set(k, kv[i+1])
	}
	return m
}

// plain converts a Map into nested []any / [][2]any pairs so that go-cmp can
// diff it while keeping order visible.
func plain(m *arr.Map) []any {
	out := make([]any, 0, m.Len())
	for k, v := range m.All() {
		if nested, ok := v.(*arr.Map); ok {
			v = plain(nested)
		}
		out = append(out, [2]any{k.Value(), v})
	}
	return out
}

func assertMap(t *testing.T, got, want *arr.Map) {
	t.Helper()
	if diff := cmp.Diff(plain(want), plain(got)); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

func TestMap_ZeroValue(t *testing.T) {
	var m arr.Map
	m.Set(arr.StringKey("a"), 1)
	if m.Len() != 1 {
		t.Fatal("zero Map should accept writes")
	}

	var nilMap *arr.Map
	if nilMap.Len() != 0 || nilMap.Has(arr.IntKey(0)) || !nilMap.IsList() {
		t.Fatal("nil Map should read as empty")
	}
}

func TestMap_AppendUsesNextIndex(t *testing.T) {
	m := arr.NewMap(0)
	m.Set(arr.StringKey("name"), "Alice")
	if k := m.Append("a"); k != arr.IntKey(0) {
		t.Fatalf("first append: got %v", k)
	}
	m.Set(arr.StringKey("20"), "x")
	if k := m.Append("b"); k != arr.IntKey(21) {
		t.Fatalf("append after 20: got %v", k)
	}
	m.Set(arr.IntKey(-5), "neg")
	if n, ok := m.NextIndex(); !ok || n != 22 {
		t.Fatalf("NextIndex: got %d, %v want 22", n, ok)
	}
}

func TestMap_PushAfterMaxIntKey(t *testing.T) {
	m := arr.List("a")
	m.Set(arr.IntKey(math.MaxInt), "last")
	if _, ok := m.NextIndex(); ok {
		t.Fatal("NextIndex should report no free key after math.MaxInt")
	}
	if _, err := m.Push("b"); !errors.Is(err, arr.ErrIndexOverflow) {
		t.Fatalf("expected ErrIndexOverflow, got %v", err)
	}
	want := assoc(t, 0, "a", math.MaxInt, "last")
	assertMap(t, m, want)

	defer func() {
		if r := recover(); r != arr.ErrIndexOverflow {
			t.Fatalf("Append should panic with ErrIndexOverflow, got %v", r)
		}
		assertMap(t, m, want)
	}()
	m.Append("c")
}

func TestMap_CloneKeepsOverflow(t *testing.T) {
	m := arr.NewMap(0)
	m.Set(arr.StringKey("9223372036854775807"), "x")
	if math.MaxInt != math.MaxInt64 {
		t.Skip("int is 32 bits wide")
	}
	if _, err := m.Clone().Push("y"); !errors.Is(err, arr.ErrIndexOverflow) {
		t.Fatalf("expected ErrIndexOverflow on clone, got %v", err)
	}
}

func TestMap_SetKeepsPosition(t *testing.T) {
	m := assoc(t, "a", 1, "b", 2, "c", 3)
	m.Set(arr.StringKey("a"), 10)
	assertMap(t, m, assoc(t, "a", 10, "b", 2, "c", 3))
}

func TestMap_Delete(t *testing.T) {
	m := arr.List("x", "y", "z")
	m.Delete(arr.IntKey(1))
	m.Delete(arr.IntKey(9))
	assertMap(t, m, assoc(t, 0, "x", 2, "z"))
	if n, _ := m.NextIndex(); n != 3 {
		t.Fatal("Delete should not lower the next index")
	}
}

func TestMap_HasNilValue(t *testing.T) {
	m := assoc(t, "a", nil)
	if !m.Has(arr.StringKey("a")) {
		t.Fatal("Has should report keys holding nil")
	}
}

func TestMap_Clone(t *testing.T) {
	m := arr.List(1, 2)
	c := m.Clone()
	c.Append(3)
	c.Set(arr.IntKey(0), 100)
	assertMap(t, m, arr.List(1, 2))
	if n, _ := c.NextIndex(); n != 3 {
		t.Fatalf("clone NextIndex: got %d", n)
	}
}

func TestMap_KeysIsCopy(t *testing.T) {
	m := arr.List(1, 2)
	keys := m.Keys()
	keys[0] = arr.StringKey("x")
	if !m.Has(arr.IntKey(0)) || m.Keys()[0] != arr.IntKey(0) {
		t.Fatal("Keys must return a copy")
	}
}

func TestMap_IsList(t *testing.T) {
	if !arr.List("a", "b").IsList() {
		t.Fatal("List should be a list")
	}
	if assoc(t, 1, "a", 0, "b").IsList() {
		t.Fatal("out of order keys are not a list")
	}
	if assoc(t, 0, "a", "x", "b").IsList() {
		t.Fatal("string keys are not a list")
	}
}

func TestFromEntries(t *testing.T) {
	m := arr.FromEntries([]arr.Entry{
		{Key: arr.StringKey("a"), Value: 1},
		{Key: arr.StringKey("b"), Value: 2},
		{Key: arr.StringKey("a"), Value: 3},
	})
	assertMap(t, m, assoc(t, "a", 3, "b", 2))
}

func TestMap_AllStopsEarly(t *testing.T) {
	n := 0
	for range arr.List(1, 2, 3, 4).All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("iterated %d entries", n)
	}
}
