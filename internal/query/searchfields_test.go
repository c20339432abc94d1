package query

import (
	"testing"

	"AdminBrowseAPI/internal/resource"

	"github.com/google/go-cmp/cmp"
)

func searchFixture() *resource.Resource {
	profiles := &resource.Resource{
		Name:  "profiles",
		Table: "profiles",
		Fields: []resource.Field{
			{Name: "id", Type: "int"},
			{Name: "phone", Type: "string"},
			{Name: "external_id", Type: "uuid"},
		},
	}
	assoc := &resource.Association{Type: "belongs_to", Resource: "profiles", Table: "profiles", FK: "profile_id", PK: "id"}
	assoc.SetResourceRef(profiles)

	return &resource.Resource{
		Name:  "users",
		Table: "users",
		Fields: []resource.Field{
			{Name: "id", Type: "int"},
			{Name: "title", Type: "string"},
		},
		Associations: map[string]*resource.Association{"profile": assoc},
		SearchFields: []resource.SearchField{
			{Field: "id"},
			{Field: "title"},
			{Association: "profile", Fields: []string{"phone", "external_id"}},
		},
	}
}

func TestSelectSearchFields_NumericTermNarrows(t *testing.T) {
	res := searchFixture()

	sel := SelectSearchFields(res, TermInteger)
	if diff := cmp.Diff([]string{"id"}, sel.Fields); diff != "" {
		t.Fatalf("plain fields mismatch (-want +got):\n%s", diff)
	}
	// у profiles нет int-полей в списке — ассоциация выпадает целиком
	if len(sel.Associations) != 0 {
		t.Fatalf("expected no associations, got %+v", sel.Associations)
	}
}

func TestSelectSearchFields_StringTerm(t *testing.T) {
	res := searchFixture()

	sel := SelectSearchFields(res, TermString)
	if diff := cmp.Diff([]string{"title"}, sel.Fields); diff != "" {
		t.Fatalf("plain fields mismatch (-want +got):\n%s", diff)
	}
	if len(sel.Associations) != 1 {
		t.Fatalf("expected one association, got %+v", sel.Associations)
	}
	if diff := cmp.Diff([]string{"phone"}, sel.Associations[0].Fields); diff != "" {
		t.Fatalf("association fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectSearchFields_UUIDTerm(t *testing.T) {
	res := searchFixture()

	sel := SelectSearchFields(res, TermUUID)
	if len(sel.Fields) != 0 {
		t.Fatalf("expected no plain fields, got %v", sel.Fields)
	}
	if len(sel.Associations) != 1 || len(sel.Associations[0].Fields) != 1 || sel.Associations[0].Fields[0] != "external_id" {
		t.Fatalf("expected profile.external_id to survive, got %+v", sel.Associations)
	}
}

func TestSelectSearchFields_NoneConfigured(t *testing.T) {
	res := &resource.Resource{
		Name:   "plain",
		Table:  "plain",
		Fields: []resource.Field{{Name: "id", Type: "int"}},
	}
	sel := SelectSearchFields(res, TermInteger)
	if !sel.Empty() {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
}
