package gateway

import (
	"testing"

	"github.com/Shalom-platinum/E-commerce/internal/domain"
)

func TestNormalizeListPaginatedEnvelope(t *testing.T) {
	body := []byte(`{"count": 2, "next": null, "results": [{"id": 1, "name": "Shirts"}, {"id": 2, "name": "Pants"}]}`)
	got, err := normalizeList[domain.Category](body)
	if err != nil {
		t.Fatalf("normalizeList() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "Shirts" || got[1].ID != 2 {
		t.Errorf("normalizeList() = %+v, want the results array", got)
	}
}

func TestNormalizeListBareArray(t *testing.T) {
	body := []byte(`[{"id": 5, "name": "Hats"}]`)
	got, err := normalizeList[domain.Category](body)
	if err != nil {
		t.Fatalf("normalizeList() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != 5 {
		t.Errorf("normalizeList() = %+v, want the body array unchanged", got)
	}
}

func TestNormalizeListEmptyResults(t *testing.T) {
	got, err := normalizeList[domain.Category]([]byte(`{"results": []}`))
	if err != nil {
		t.Fatalf("normalizeList() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("normalizeList() = %+v, want empty", got)
	}
}

func TestNormalizeListUnexpectedShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"object without results", `{"detail": "not found"}`},
		{"results not an array", `{"results": {"id": 1}}`},
		{"results null", `{"detail": "x", "results": null}`},
		{"scalar body", `42`},
		{"string body", `"oops"`},
		{"empty body", ``},
		{"invalid json", `{not json`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeList[domain.Category]([]byte(tc.body))
			if err != nil {
				t.Fatalf("normalizeList() error = %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("normalizeList() = %+v, want empty non-nil sequence", got)
			}
		})
	}
}

func TestNormalizeListFalsyResultsFallsBackToBody(t *testing.T) {
	// A null results field does not count as usable, but the body is an
	// object, so the result is still empty.
	got, err := normalizeList[domain.Product]([]byte(`{"results": null, "items": [1]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}
