package collections_test

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/romkatsu/collection/arr"
	"github.com/romkatsu/collection/collections"
)

func TestToJSON(t *testing.T) {
	c := collections.New(item("age", 20), item("age", 30))
	groups := mustCollection(t)(c.GroupBy(arr.Path("age"), true))
	got, err := groups.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"20":[{"age":20}],"30":{"1":{"age":30}}}`
	if string(got) != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var c collections.Collection
	if err := json.Unmarshal([]byte(`{"b":1,"a":[1,2],"3":null}`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertData(t, &c, assoc(t, "b", 1, "a", arr.List(1, 2), 3, nil))

	if err := json.Unmarshal([]byte(`true`), &c); !errors.Is(err, collections.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestYAML(t *testing.T) {
	c := collections.Wrap(assoc(t, "name", "app", "ports", arr.List(80, 443)))
	data, err := yaml.Marshal(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back collections.Collection
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertData(t, &back, c.Data())
}

func TestYAML_Nested(t *testing.T) {
	doc := `
services:
  web: {port: 80}
  db: {port: 5432}
`
	var c collections.Collection
	if err := yaml.Unmarshal([]byte(doc), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := arr.Get(&c, "services.db.port"); got != 5432 {
		t.Fatalf("got %v", got)
	}
}
