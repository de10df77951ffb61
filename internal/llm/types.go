package llm

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest contains the parameters for a completion request.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse contains the result of a completion request.
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
}

// UnparsableReply is returned as the completion content when the backend
// responded 2xx but with a body in none of the known shapes. Callers treat it
// as a non-confident reply, never as an error.
const UnparsableReply = "Sorry, I couldn't read the assistant's response."
