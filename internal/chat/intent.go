package chat

import (
	"strings"

	"github.com/digitgenius/shopassist/internal/catalog"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentList     Intent = "list"
	IntentPrice    Intent = "price"
	IntentWarranty Intent = "warranty"
	IntentDetails  Intent = "details"
	IntentGeneral  Intent = "general"
)

// Cue tables. Order inside a table does not matter; the rule order in
// Classify does.
var (
	listPrefixes = []string{"show", "list", "find", "display"}
	priceCues    = []string{"price", "cost", "how much", "rate"}
	warrantyCues = []string{"warrant", "guarantee"}
	detailCues   = []string{"details", "specs", "specification", "about", "describe"}
	listCueWords = map[string]bool{"show": true, "me": true, "list": true, "find": true, "display": true}
)

// Classify maps a message to an intent using ordered rules over the
// lowercased, trimmed input; the first matching rule wins. Routing is
// deterministic so the bulk of catalog questions never reach the generative
// backend.
func Classify(text string, idx *catalog.Index) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return IntentGeneral
	}

	for _, prefix := range listPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return IntentList
		}
	}
	if strings.Contains(lower, "show me") {
		return IntentList
	}

	if containsAny(lower, priceCues) {
		return IntentPrice
	}
	if containsAny(lower, warrantyCues) {
		return IntentWarranty
	}
	if containsAny(lower, detailCues) {
		return IntentDetails
	}

	// Bare-brand shorthand: a short message that hits the catalog is a list
	// query ("samsung", "galaxy tab").
	if len(strings.Fields(lower)) <= 3 && idx != nil && len(idx.Search(lower)) > 0 {
		return IntentList
	}

	return IntentGeneral
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}

// stripListCues removes list-cue words from a message, leaving the query
// part of inputs like "show me Samsung".
func stripListCues(message string) string {
	var kept []string
	for _, field := range strings.Fields(message) {
		if listCueWords[strings.ToLower(field)] {
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}
