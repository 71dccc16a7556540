package remote

import (
	"encoding/json"
	"testing"

	"pet-adoption-web/internal/ports/adoption"
)

func TestNormalizeCollection_BareArray(t *testing.T) {
	raw := json.RawMessage(`[{"id":1,"name":"Luna"},{"id":2,"name":"Simba"}]`)

	items, err := normalizeCollection[adoption.Pet](raw)
	if err != nil {
		t.Fatalf("normalize returned error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Luna" || items[1].ID != 2 {
		t.Fatalf("unexpected items: %#v", items)
	}
}

func TestNormalizeCollection_PagedEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"count":2,"next":null,"previous":null,"results":[{"id":1,"name":"Luna"},{"id":2,"name":"Simba"}]}`)

	items, err := normalizeCollection[adoption.Pet](raw)
	if err != nil {
		t.Fatalf("normalize returned error: %v", err)
	}
	if len(items) != 2 || items[1].Name != "Simba" {
		t.Fatalf("unexpected items: %#v", items)
	}
}

func TestNormalizeCollection_BothShapes_SameResult(t *testing.T) {
	bare := json.RawMessage(`[{"id":5,"name":"Rocky","status":"AVAILABLE"}]`)
	paged := json.RawMessage(`{"count":1,"results":[{"id":5,"name":"Rocky","status":"AVAILABLE"}]}`)

	a, err := normalizeCollection[adoption.Pet](bare)
	if err != nil {
		t.Fatalf("bare: %v", err)
	}
	b, err := normalizeCollection[adoption.Pet](paged)
	if err != nil {
		t.Fatalf("paged: %v", err)
	}

	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Fatalf("shapes must normalize to the same slice: %#v vs %#v", a, b)
	}
}

func TestNormalizeCollection_EmptyShapes(t *testing.T) {
	for _, raw := range []string{``, `[]`, `{"count":0,"results":[]}`, `{"count":0,"results":null}`} {
		items, err := normalizeCollection[adoption.Pet](json.RawMessage(raw))
		if err != nil {
			t.Fatalf("raw %q: %v", raw, err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("raw %q: expected empty non-nil slice, got %#v", raw, items)
		}
	}
}

func TestNormalizeCollection_Garbage(t *testing.T) {
	if _, err := normalizeCollection[adoption.Pet](json.RawMessage(`"nope"`)); err == nil {
		t.Fatalf("expected error for non-collection payload")
	}
}
