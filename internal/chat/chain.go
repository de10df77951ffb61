package chat

import (
	"context"
	"log"
	"strings"

	"github.com/digitgenius/shopassist/internal/catalog"
	"github.com/digitgenius/shopassist/internal/llm"
)

// Chain runs the tiered resolution order: catalog resolver, then the
// generative backend, then the static FAQ. It short-circuits on the first
// confident result and contains failures at every tier, so a well-formed
// request always gets a chat-shaped reply.
type Chain struct {
	catalog  *catalog.Index
	resolver *Resolver
	provider llm.Provider // nil when no backend credential is configured
	model    string
}

// NewChain creates a fallback chain. provider may be nil; the generative tier
// is then skipped entirely, which is a valid catalog/FAQ-only mode.
func NewChain(idx *catalog.Index, provider llm.Provider, model string) *Chain {
	return &Chain{
		catalog:  idx,
		resolver: NewResolver(idx),
		provider: provider,
		model:    model,
	}
}

// Handle resolves one chat request. It never returns an error: internal
// faults degrade to a safe reply tagged fallback_error.
func (c *Chain) Handle(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("chat: recovered from pipeline panic: %v", r)
			resp = Response{Reply: GenericReply, Source: SourceFallbackError}
		}
	}()

	message := strings.TrimSpace(req.Message)
	if len(message) > maxMessageLen {
		message = message[:maxMessageLen]
	}

	intent := Classify(message, c.catalog)
	activeIDs := ActiveIDs(req.History)

	if result, ok := c.catalogAttempt(intent, message, activeIDs); ok {
		return resultResponse(result)
	}

	if c.provider != nil {
		if genResp, ok := c.generativeAttempt(ctx, req.History, message); ok {
			return genResp
		}
	}

	return Response{Reply: FAQAnswer(message), Source: SourceFAQ}
}

// catalogAttempt runs the deterministic tier. Any panic here is treated as
// "no match" so the chain keeps moving; chat availability outranks surfacing
// an internal fault.
func (c *Chain) catalogAttempt(intent Intent, message string, activeIDs []string) (result *Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("chat: catalog tier panic treated as no match: %v", r)
			result, ok = nil, false
		}
	}()
	return c.resolver.Resolve(intent, message, activeIDs)
}

// generativeAttempt calls the backend once; the FAQ tier is the
// retry-equivalent. An empty, unparsable, or boilerplate reply is
// non-confident: the catalog is re-checked locally before giving up, guarding
// against vague backend answers when the catalog actually had relevant data.
func (c *Chain) generativeAttempt(ctx context.Context, history []Turn, message string) (Response, bool) {
	matches := c.catalog.Search(message)

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Model:       c.model,
		Messages:    buildMessages(history, message, matches),
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
	})
	if err != nil {
		log.Printf("chat: generative tier failed: %v", err)
		return Response{}, false
	}

	reply := strings.TrimSpace(resp.Content)
	if reply == "" || reply == llm.UnparsableReply || strings.EqualFold(reply, GenericReply) {
		if len(matches) > 0 {
			return resultResponse(&Result{
				Reply:             summarize(matches),
				Source:            SourceProducts,
				MatchedProductIDs: productIDs(matches),
			}), true
		}
		return Response{}, false
	}
	return Response{Reply: reply, Source: SourceGemini}, true
}

func resultResponse(result *Result) Response {
	resp := Response{Reply: result.Reply, Source: result.Source}
	if len(result.MatchedProductIDs) > 0 {
		resp.Context = &TurnContext{LastProductIDs: result.MatchedProductIDs}
	}
	return resp
}
