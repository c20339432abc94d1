package query

import (
	"testing"

	"AdminBrowseAPI/internal/resource"

	"github.com/google/go-cmp/cmp"
)

func filterFixture() *resource.Resource {
	return &resource.Resource{
		Name:  "users",
		Table: "users",
		Fields: []resource.Field{
			{Name: "id", Type: "int"},
			{Name: "name", Type: "string"},
			{Name: "status", Type: "string"},
		},
	}
}

func TestResolveFilters_KeepsKnownNonEmpty(t *testing.T) {
	res := filterFixture()
	params := map[string]string{
		"name":   "Bob",
		"page":   "2",  // неизвестный ключ — шум пагинации
		"status": "",   // пустое значение — фильтром не становится
		"search": "xx", // зарезервировано
	}

	got, err := ResolveFilters(params, res)
	if err != nil {
		t.Fatalf("ResolveFilters: %v", err)
	}

	want := []Filter{{Name: "name", Value: "Bob", Type: "string"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFilters_DeclarationOrder(t *testing.T) {
	res := filterFixture()
	params := map[string]string{
		"status": "active",
		"id":     "7",
		"name":   "Bob",
	}

	got, err := ResolveFilters(params, res)
	if err != nil {
		t.Fatalf("ResolveFilters: %v", err)
	}

	want := []Filter{
		{Name: "id", Value: "7", Type: "int"},
		{Name: "name", Value: "Bob", Type: "string"},
		{Name: "status", Value: "active", Type: "string"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filters mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFilters_NoParams(t *testing.T) {
	got, err := ResolveFilters(map[string]string{}, filterFixture())
	if err != nil {
		t.Fatalf("ResolveFilters: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no filters, got %v", got)
	}
}
