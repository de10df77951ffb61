package chat

// Turn is a single conversation turn as round-tripped by the client. Context
// rides on turns that produced a catalog match, so the active product set can
// be rebuilt from history on every request without server-side sessions.
type Turn struct {
	Role    string       `json:"role"`
	Text    string       `json:"text"`
	Context *TurnContext `json:"context,omitempty"`
}

// TurnContext is the versioned context payload threaded through history.
// Unknown fields are ignored on decode.
type TurnContext struct {
	LastProductIDs []string `json:"lastProductIds"`
}

// Request is the inbound chat payload.
type Request struct {
	Message string `json:"message"`
	History []Turn `json:"history"`
}

// Source tags which tier produced a reply. It exists for observability and
// client heuristics only; the pipeline never branches on it.
type Source string

const (
	SourceProducts      Source = "products"
	SourceClarify       Source = "clarify"
	SourceFAQ           Source = "faq"
	SourceGemini        Source = "gemini"
	SourceFallbackError Source = "fallback_error"
)

// Response is the outbound chat payload. Context is present only when the
// deterministic tier matched catalog products.
type Response struct {
	Reply   string       `json:"reply"`
	Source  Source       `json:"source"`
	Context *TurnContext `json:"context,omitempty"`
}

// Result is the outcome of one resolution tier.
type Result struct {
	Reply             string
	Source            Source
	MatchedProductIDs []string
}

// maxMessageLen caps inbound messages before any processing.
const maxMessageLen = 1000
