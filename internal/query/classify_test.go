package query

import "testing"

func TestClassifyTerm(t *testing.T) {
	cases := []struct {
		term string
		want TermType
	}{
		{"9b2f60c8-0a1d-4c86-9e55-3f0a4a6b7c1d", TermUUID},
		{"9B2F60C8-0A1D-4C86-9E55-3F0A4A6B7C1D", TermUUID},
		{"42", TermInteger},
		{"1", TermInteger},
		// ноль и отрицательные — не идентификаторы
		{"0", TermString},
		{"-5", TermString},
		{"+5", TermString},
		{"12a", TermString},
		{"a12", TermString},
		{"", TermString},
		{"bob@example.com", TermString},
		// не каноническая форма UUID
		{"9b2f60c80a1d4c869e553f0a4a6b7c1d", TermString},
		{"{9b2f60c8-0a1d-4c86-9e55-3f0a4a6b7c1d}", TermString},
		{"9b2f60c8-0a1d-4c86-9e55-3f0a4a6b7c1d-ff", TermString},
	}

	for _, c := range cases {
		if got := ClassifyTerm(c.term); got != c.want {
			t.Errorf("ClassifyTerm(%q) = %v, want %v", c.term, got, c.want)
		}
	}
}

func TestTermValue(t *testing.T) {
	if v := TermInteger.Value("42"); v != int64(42) {
		t.Fatalf("integer term value = %v (%T)", v, v)
	}
	if v := TermString.Value("bob"); v != "bob" {
		t.Fatalf("string term value = %v", v)
	}
	if v := TermUUID.Value("9b2f60c8-0a1d-4c86-9e55-3f0a4a6b7c1d"); v != "9b2f60c8-0a1d-4c86-9e55-3f0a4a6b7c1d" {
		t.Fatalf("uuid term value = %v", v)
	}
}
