package catalog

// Product is a single immutable catalog record. Records are never mutated in
// place; a catalog update replaces the whole snapshot.
type Product struct {
	ID          string            `json:"id"`
	Brand       string            `json:"brand"`
	Name        string            `json:"name"`
	Price       float64           `json:"price"`
	MRP         float64           `json:"mrp"`
	Keywords    []string          `json:"keywords,omitempty"`
	Specs       map[string]string `json:"specs,omitempty"`
	Description string            `json:"description,omitempty"`
}

// Warranty returns the warranty spec for the product, or "N/A" when absent.
func (p Product) Warranty() string {
	if w, ok := p.Specs["warranty"]; ok && w != "" {
		return w
	}
	return "N/A"
}
