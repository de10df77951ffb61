package catalog

import "strings"

// Index is a read-only view over a product snapshot. It is safe for
// concurrent readers; there are no writers after construction.
type Index struct {
	products []Product
	byID     map[string]int
}

// NewIndex builds an index over the given records. Insertion order is
// preserved and duplicate IDs keep the first occurrence.
func NewIndex(products []Product) *Index {
	idx := &Index{byID: make(map[string]int, len(products))}
	for _, p := range products {
		if _, exists := idx.byID[p.ID]; exists {
			continue
		}
		idx.byID[p.ID] = len(idx.products)
		idx.products = append(idx.products, p)
	}
	return idx
}

// Count returns the number of products in the snapshot.
func (idx *Index) Count() int { return len(idx.products) }

// Search returns all products matching the query, in catalog order.
// A product matches when the lowercased query is a substring of
// "brand name keywords...", of the brand alone, or of the name alone.
// Brand and name are checked independently so a bare brand query like
// "samsung" still hits. An empty query matches nothing.
func (idx *Index) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Product
	for _, p := range idx.products {
		brand := strings.ToLower(p.Brand)
		name := strings.ToLower(p.Name)
		haystack := brand + " " + name
		if len(p.Keywords) > 0 {
			haystack += " " + strings.ToLower(strings.Join(p.Keywords, " "))
		}
		if strings.Contains(haystack, q) || strings.Contains(brand, q) || strings.Contains(name, q) {
			out = append(out, p)
		}
	}
	return out
}

// ByIDs returns the products whose ID is in ids, in catalog order.
// Unknown IDs are skipped.
func (idx *Index) ByIDs(ids []string) []Product {
	if len(ids) == 0 {
		return nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Product
	for _, p := range idx.products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// ByID returns the product with the given ID.
func (idx *Index) ByID(id string) (Product, bool) {
	i, ok := idx.byID[id]
	if !ok {
		return Product{}, false
	}
	return idx.products[i], true
}
