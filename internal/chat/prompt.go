package chat

import (
	"fmt"
	"strings"

	"github.com/digitgenius/shopassist/internal/catalog"
	"github.com/digitgenius/shopassist/internal/llm"
)

const (
	// historyWindow bounds how many recent turns are forwarded to the
	// generative backend.
	historyWindow = 6

	// promptCatalogLimit bounds the condensed catalog context injected into
	// the prompt.
	promptCatalogLimit = 5

	maxOutputTokens = 512
	temperature     = 0.4
)

const systemPrompt = "You are the DigitGenius store assistant. " +
	"Answer briefly and helpfully about electronics, orders, warranty, delivery and payments. " +
	"When catalog items are listed below, ground your answer in them and do not invent products or prices."

// buildMessages assembles the bounded prompt: system instructions, an
// optional condensed rendering of catalog matches for the current query, the
// most recent turns, and the current message.
func buildMessages(history []Turn, message string, matches []catalog.Product) []llm.Message {
	system := systemPrompt
	if len(matches) > 0 {
		var sb strings.Builder
		sb.WriteString("\n\nCatalog items matching the current question:\n")
		shown := matches
		if len(shown) > promptCatalogLimit {
			shown = shown[:promptCatalogLimit]
		}
		for _, p := range shown {
			fmt.Fprintf(&sb, "- %s %s, ₹%s (MRP ₹%s), warranty %s\n",
				p.Brand, p.Name, formatPrice(p.Price), formatPrice(p.MRP), p.Warranty())
		}
		system += sb.String()
	}

	messages := []llm.Message{{Role: llm.RoleSystem, Content: system}}

	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}
	for _, turn := range recent {
		role := llm.RoleUser
		if turn.Role == "assistant" {
			role = llm.RoleAssistant
		}
		if strings.TrimSpace(turn.Text) == "" {
			continue
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Text})
	}

	return append(messages, llm.Message{Role: llm.RoleUser, Content: message})
}
