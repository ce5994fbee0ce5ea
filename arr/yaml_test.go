package arr_test

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/romkatsu/collection/arr"
)

func TestMap_MarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		m    *arr.Map
		want string
	}{
		{"list", arr.List(1, "two"), "- 1\n- two\n"},
		{"mapping keeps order", assoc(t, "b", 1, "a", 2), "b: 1\na: 2\n"},
		{"int keys", assoc(t, 3, "x", 1, "w"), "3: x\n1: w\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := yaml.Marshal(tt.m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestMap_UnmarshalYAML(t *testing.T) {
	doc := `
name: app
3: three
ports: [80, 443]
db:
  host: localhost
  port: 5432
`
	m := arr.NewMap(0)
	if err := yaml.Unmarshal([]byte(doc), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := assoc(t,
		"name", "app",
		3, "three",
		"ports", arr.List(80, 443),
		"db", assoc(t, "host", "localhost", "port", 5432),
	)
	assertMap(t, m, want)
}

func TestMap_UnmarshalYAML_Scalar(t *testing.T) {
	m := arr.NewMap(0)
	err := yaml.Unmarshal([]byte("just text"), m)
	if !errors.Is(err, arr.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestMap_YAMLRoundTrip(t *testing.T) {
	m := assoc(t, "z", 1, 5, "five", "a", arr.List("x", "y"), "nested", assoc(t, "k", true))
	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := arr.NewMap(0)
	if err := yaml.Unmarshal(data, back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMap(t, back, m)
}
