package chat

import "strings"

// GenericReply is the canonical capability statement. It doubles as the
// confidence check: a generative reply equal to this string is treated as
// non-confident boilerplate.
const GenericReply = "I can help with products, warranty, delivery and payments. " +
	"Try 'show me Samsung', or ask about a product's price or warranty."

// faqRule is one keyword→answer entry. Rules are checked in order.
type faqRule struct {
	cues   []string
	answer string
}

var faqRules = []faqRule{
	{
		cues:   []string{"warranty"},
		answer: "Most items include 6 months – 1 year warranty depending on brand. Ask for a specific product for exact warranty.",
	},
	{
		cues:   []string{"delivery", "shipping"},
		answer: "Delivery is usually 3–7 days depending on your location. Tracking provided post dispatch.",
	},
	{
		cues:   []string{"return"},
		answer: "Returns accepted within 7 days if item is unused and in original packaging.",
	},
	{
		cues:   []string{"earbud", "tws"},
		answer: "Popular earbud brands here: boAt, Noise, Tribit. Try 'show me boAt'.",
	},
	{
		cues:   []string{"phone"},
		answer: "We carry the latest phones. Try 'show me Samsung' or 'show me iPhone'.",
	},
}

// FAQAnswer is the terminal tier: a static keyword lookup that always
// produces a reply, defaulting to the generic capability statement.
func FAQAnswer(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range faqRules {
		for _, cue := range rule.cues {
			if strings.Contains(lower, cue) {
				return rule.answer
			}
		}
	}
	return GenericReply
}
