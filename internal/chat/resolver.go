package chat

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/digitgenius/shopassist/internal/catalog"
)

// displayLimit caps how many products a summary reply lists; matches beyond
// the cap are still carried in the context.
const displayLimit = 6

const clarifyReply = "I don't have a recent product in context. " +
	"Please name a product or brand — try 'show me Samsung'."

// Resolver answers catalog-backed intents deterministically. It is pure:
// the same (intent, message, activeIDs) always yields the same result.
type Resolver struct {
	catalog *catalog.Index
}

// NewResolver creates a resolver over the given catalog index.
func NewResolver(idx *catalog.Index) *Resolver {
	return &Resolver{catalog: idx}
}

// Resolve attempts a deterministic answer. The second return value is false
// when this tier has nothing to say and the chain should move on.
func (r *Resolver) Resolve(intent Intent, message string, activeIDs []string) (*Result, bool) {
	switch intent {
	case IntentList:
		return r.resolveList(message)
	case IntentPrice, IntentWarranty, IntentDetails:
		return r.resolveFollowUp(intent, message, activeIDs)
	default:
		return nil, false
	}
}

func (r *Resolver) resolveList(message string) (*Result, bool) {
	query := stripListCues(message)
	if query == "" {
		query = message
	}
	found := r.catalog.Search(query)
	if len(found) == 0 {
		return nil, false
	}
	return &Result{
		Reply:             summarize(found),
		Source:            SourceProducts,
		MatchedProductIDs: productIDs(found),
	}, true
}

// resolveFollowUp answers price/warranty/details questions. A direct search
// on the message wins; otherwise the active context from history is used;
// with neither, the user is asked to name a product. The clarify outcome is
// terminal, not a failure.
func (r *Resolver) resolveFollowUp(intent Intent, message string, activeIDs []string) (*Result, bool) {
	found := r.catalog.Search(message)
	if len(found) == 0 {
		found = r.catalog.ByIDs(activeIDs)
	}
	if len(found) == 0 {
		return &Result{Reply: clarifyReply, Source: SourceClarify}, true
	}

	var lines []string
	for _, p := range found {
		switch intent {
		case IntentPrice:
			lines = append(lines, fmt.Sprintf("%s %s — Price: ₹%s (MRP ₹%s)",
				p.Brand, p.Name, formatPrice(p.Price), formatPrice(p.MRP)))
		case IntentWarranty:
			lines = append(lines, fmt.Sprintf("%s %s — Warranty: %s", p.Brand, p.Name, p.Warranty()))
		case IntentDetails:
			lines = append(lines, detailLine(p))
		}
	}

	sep := "\n"
	if intent == IntentDetails {
		sep = "\n\n"
	}
	return &Result{
		Reply:             strings.Join(lines, sep),
		Source:            SourceProducts,
		MatchedProductIDs: productIDs(found),
	}, true
}

// summarize renders a numbered product list capped at displayLimit, with an
// explicit "and N more" suffix when truncated. All matches are summarized;
// with no relevance scoring, match order equals catalog order.
func summarize(products []catalog.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d product(s):\n", len(products))

	shown := products
	if len(shown) > displayLimit {
		shown = shown[:displayLimit]
	}
	for i, p := range shown {
		fmt.Fprintf(&sb, "%d. %s %s — ₹%s (Warranty: %s)\n",
			i+1, p.Brand, p.Name, formatPrice(p.Price), p.Warranty())
	}
	if len(products) > displayLimit {
		fmt.Fprintf(&sb, "...and %d more.\n", len(products)-displayLimit)
	}
	sb.WriteString("\nYou can ask \"price\", \"warranty\" or \"details\" about these items.")
	return sb.String()
}

func detailLine(p catalog.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s — ₹%s", p.Brand, p.Name, formatPrice(p.Price))

	if len(p.Specs) > 0 {
		keys := make([]string, 0, len(p.Specs))
		for k := range p.Specs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var specs []string
		for _, k := range keys {
			specs = append(specs, k+": "+p.Specs[k])
		}
		sb.WriteString("\n" + strings.Join(specs, ", "))
	}

	if p.Description != "" {
		sb.WriteString("\n" + p.Description)
	} else {
		sb.WriteString("\nNo description available.")
	}
	return sb.String()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func productIDs(products []catalog.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
