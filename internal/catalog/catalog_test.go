package catalog

import (
	"testing"
)

func fixtureProducts() []Product {
	return []Product{
		{
			ID: "p1", Brand: "Samsung", Name: "Galaxy Tab S10",
			Price: 45999, MRP: 52999,
			Keywords: []string{"tablet", "android"},
			Specs:    map[string]string{"warranty": "1 year"},
		},
		{
			ID: "p2", Brand: "Samsung", Name: "Galaxy S25",
			Price: 74999, MRP: 79999,
			Keywords: []string{"phone", "android"},
		},
		{
			ID: "p3", Brand: "boAt", Name: "Airdopes 141",
			Price: 1299, MRP: 4490,
			Keywords: []string{"earbuds", "tws"},
			Specs:    map[string]string{"warranty": "6 months"},
		},
	}
}

func TestSearchMatchesBrand(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	results := idx.Search("samsung")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "p1" || results[1].ID != "p2" {
		t.Errorf("expected catalog order p1, p2; got %s, %s", results[0].ID, results[1].ID)
	}
}

func TestSearchMatchesName(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	results := idx.Search("Airdopes")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ID != "p3" {
		t.Errorf("expected p3, got %s", results[0].ID)
	}
}

func TestSearchMatchesKeywords(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	results := idx.Search("tws")
	if len(results) != 1 || results[0].ID != "p3" {
		t.Fatalf("expected keyword match on p3, got %v", results)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	if len(idx.Search("SAMSUNG")) != 2 {
		t.Error("expected uppercase query to match")
	}
	if len(idx.Search("  galaxy tab  ")) != 1 {
		t.Error("expected trimmed multi-word query to match")
	}
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	if got := idx.Search(""); got != nil {
		t.Errorf("expected nil for empty query, got %v", got)
	}
	if got := idx.Search("   "); got != nil {
		t.Errorf("expected nil for whitespace query, got %v", got)
	}
}

func TestSearchNoMatch(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	if got := idx.Search("xyz123"); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
}

func TestByIDsPreservesCatalogOrder(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	results := idx.ByIDs([]string{"p3", "p1", "unknown"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != "p1" || results[1].ID != "p3" {
		t.Errorf("expected catalog order p1, p3; got %s, %s", results[0].ID, results[1].ID)
	}
}

func TestByIDsEmpty(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	if got := idx.ByIDs(nil); got != nil {
		t.Errorf("expected nil for empty id set, got %v", got)
	}
}

func TestByID(t *testing.T) {
	idx := NewIndex(fixtureProducts())

	p, ok := idx.ByID("p2")
	if !ok || p.Name != "Galaxy S25" {
		t.Errorf("expected Galaxy S25, got %v (ok=%v)", p, ok)
	}
	if _, ok := idx.ByID("nope"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestNewIndexDedupesByID(t *testing.T) {
	products := fixtureProducts()
	products = append(products, Product{ID: "p1", Brand: "Duplicate", Name: "Ignored"})

	idx := NewIndex(products)
	if idx.Count() != 3 {
		t.Fatalf("expected 3 products after dedupe, got %d", idx.Count())
	}
	p, _ := idx.ByID("p1")
	if p.Brand != "Samsung" {
		t.Errorf("expected first occurrence to win, got brand %q", p.Brand)
	}
}

func TestWarrantyFallback(t *testing.T) {
	p := Product{Specs: map[string]string{"warranty": "2 years"}}
	if p.Warranty() != "2 years" {
		t.Errorf("expected '2 years', got %q", p.Warranty())
	}

	empty := Product{}
	if empty.Warranty() != "N/A" {
		t.Errorf("expected 'N/A', got %q", empty.Warranty())
	}
}

func TestLoadMergesMatchingFiles(t *testing.T) {
	idx, err := Load("testdata", []string{"products*.json"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// products.json has p1, p2; products_extra.json adds p3 and a duplicate
	// p1 that must be ignored. notes.txt is outside the glob.
	if idx.Count() != 3 {
		t.Fatalf("expected 3 products, got %d", idx.Count())
	}

	p, ok := idx.ByID("p1")
	if !ok || p.Brand != "Samsung" {
		t.Errorf("expected p1 from the first file, got %v (ok=%v)", p, ok)
	}
	if _, ok := idx.ByID("p3"); !ok {
		t.Error("expected p3 from the wrapper-object file")
	}
}

func TestLoadDefaultGlobs(t *testing.T) {
	idx, err := Load("testdata", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if idx.Count() != 3 {
		t.Errorf("expected default glob to pick up 3 products, got %d", idx.Count())
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load("testdata/does-not-exist", nil); err == nil {
		t.Error("expected error for missing catalog dir")
	}
}
