package arr_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/romkatsu/collection/arr"
)

func TestMap_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		m    *arr.Map
		want string
	}{
		{"list", arr.List(1, "a", true, nil), `[1,"a",true,null]`},
		{"empty", arr.NewMap(0), `[]`},
		{"object keeps order", assoc(t, "b", 1, "a", 2), `{"b":1,"a":2}`},
		{"int keys out of order", assoc(t, 1, "x", 0, "y"), `{"1":"x","0":"y"}`},
		{"nested", assoc(t, "tags", arr.List("a", "b"), "meta", assoc(t, "z", 1, "y", 2)), `{"tags":["a","b"],"meta":{"z":1,"y":2}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	got, err := arr.DecodeJSON([]byte(`{"b":1,"a":[1,2.5,"x",null,true],"10":{}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := assoc(t,
		"b", 1,
		"a", arr.List(1, 2.5, "x", nil, true),
		10, arr.NewMap(0),
	)
	assertMap(t, got, want)
}

func TestDecodeJSON_Errors(t *testing.T) {
	if _, err := arr.DecodeJSON([]byte(`"scalar"`)); !errors.Is(err, arr.ErrTypeMismatch) {
		t.Fatalf("scalar document: expected ErrTypeMismatch, got %v", err)
	}
	for _, doc := range []string{`{"a":`, `[1,2`, `{"a" 1}`, `[1] garbage`, `{} {}`, `[1]]`} {
		if _, err := arr.DecodeJSON([]byte(doc)); err == nil {
			t.Fatalf("DecodeJSON(%s): expected error", doc)
		}
	}
}

func TestDecodeJSON_TrailingWhitespace(t *testing.T) {
	m, err := arr.DecodeJSON([]byte("[1, 2]  \n\t"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMap(t, m, arr.List(1, 2))
}

func TestMap_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Items *arr.Map `json:"items"`
	}
	if err := json.Unmarshal([]byte(`{"items":{"z":1,"a":2}}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMap(t, payload.Items, assoc(t, "z", 1, "a", 2))
}

func TestMap_JSONRoundTripKeepsOrder(t *testing.T) {
	m := assoc(t, "z", 1, 5, "five", "a", arr.List(1, 2))
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := arr.DecodeJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMap(t, back, m)
}
