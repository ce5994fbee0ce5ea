package arr_test

import (
	"slices"
	"testing"

	"golang.org/x/text/language"

	"github.com/romkatsu/collection/arr"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		flag arr.SortFlag
		want int
	}{
		{"regular ints", 1, 2, arr.SortRegular, -1},
		{"regular numeric strings", "10", "9", arr.SortRegular, 1},
		{"regular int vs float", 2, 2.0, arr.SortRegular, 0},
		{"regular strings", "abc", "abd", arr.SortRegular, -1},
		{"regular nil vs false", nil, false, arr.SortRegular, 0},
		{"regular bool vs number", true, 5, arr.SortRegular, 0},
		{"regular nil vs string", nil, "a", arr.SortRegular, -1},
		{"regular array length", []int{1, 2}, []int{9}, arr.SortRegular, 1},
		{"regular array after scalar", []int{1}, 100, arr.SortRegular, 1},
		{"regular keys", arr.IntKey(3), arr.StringKey("3"), arr.SortRegular, 0},
		{"numeric strings", "10", "9", arr.SortNumeric, 1},
		{"numeric non-numeric string", "abc", 1, arr.SortNumeric, -1},
		{"string digits", "10", "9", arr.SortString, -1},
		{"string case", "B", "a", arr.SortString, -1},
		{"string fold", "B", "a", arr.SortString | arr.SortFlagCase, 1},
		{"natural", "img2", "img10", arr.SortNatural, -1},
		{"natural reversed", "img10", "img2", arr.SortNatural, 1},
		{"natural equal", "img2", "img2", arr.SortNatural, 0},
		{"natural fold", "IMG2", "img2", arr.SortNatural | arr.SortFlagCase, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arr.Compare(tt.a, tt.b, tt.flag); got != tt.want {
				t.Fatalf("Compare(%v, %v): got %d want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestComparator_NaturalSort(t *testing.T) {
	files := []any{"img12.png", "img10.png", "img2.png", "img1.png"}
	slices.SortFunc(files, arr.Comparator(arr.SortNatural))
	want := []any{"img1.png", "img2.png", "img10.png", "img12.png"}
	if !slices.Equal(files, want) {
		t.Fatalf("got %v want %v", files, want)
	}
}

func TestComparator_Locale(t *testing.T) {
	defer arr.SetCollation(language.Und)

	words := []any{"zebra", "Äther", "apple", "Bär"}
	slices.SortFunc(words, arr.Comparator(arr.SortLocaleString))
	want := []any{"apple", "Äther", "Bär", "zebra"}
	if !slices.Equal(words, want) {
		t.Fatalf("root collation: got %v want %v", words, want)
	}

	bytewise := slices.Clone(words)
	slices.SortFunc(bytewise, arr.Comparator(arr.SortString))
	if slices.Equal(bytewise, want) {
		t.Fatal("byte order should differ from collation order")
	}

	arr.SetCollation(language.German)
	if arr.Collation() != language.German {
		t.Fatalf("Collation: got %v", arr.Collation())
	}
}

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{1, "1", true},
		{1, 1.0, true},
		{"1e1", 10, true},
		{"abc", 0, false},
		{"abc", "abc", true},
		{nil, false, true},
		{nil, "", true},
		{nil, 0, true},
		{true, "x", true},
		{false, "0", true},
		{int64(7), int(7), true},
		{[]int{1, 2}, []any{1, "2"}, true},
		{[]int{1, 2}, []int{2, 1}, false},
		{map[string]any{"a": 1, "b": 2}, map[string]any{"b": "2", "a": "1"}, true},
		{nil, []int{}, true},
		{[]int{1}, 1, false},
	}
	for _, tt := range tests {
		if got := arr.LooseEqual(tt.a, tt.b); got != tt.want {
			t.Fatalf("LooseEqual(%#v, %#v): got %v want %v", tt.a, tt.b, got, tt.want)
		}
		if got := arr.Equal(tt.a, tt.b, arr.Loose); got != tt.want {
			t.Fatalf("Equal(Loose) disagrees with LooseEqual for %#v, %#v", tt.a, tt.b)
		}
	}
}

func TestStrictEqual(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{1, 1, true},
		{1, "1", false},
		{int64(7), int(7), false},
		{"a", "a", true},
		{nil, nil, true},
		{nil, false, false},
		{[]int{1, 2}, []int{1, 2}, true},
		{arr.List(1, 2), arr.List(1, 2), true},
		{arr.List(1, 2), arr.List(1, "2"), false},
	}
	for _, tt := range tests {
		if got := arr.Equal(tt.a, tt.b, arr.Strict); got != tt.want {
			t.Fatalf("StrictEqual(%#v, %#v): got %v want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestStrictEqual_KeyOrder(t *testing.T) {
	a := assoc(t, "x", 1, "y", 2)
	b := assoc(t, "y", 2, "x", 1)
	if arr.StrictEqual(a, b) {
		t.Fatal("strict equality must respect key order")
	}
	if !arr.LooseEqual(a, b) {
		t.Fatal("loose equality ignores key order")
	}
}
