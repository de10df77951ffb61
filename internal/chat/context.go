package chat

// ActiveIDs rebuilds the active product context from the client-supplied
// history: the lastProductIds of the most recent turn carrying a non-empty
// context, or nil if none exists. Recency wins over any session abstraction;
// the server holds no cross-request memory.
func ActiveIDs(history []Turn) []string {
	for i := len(history) - 1; i >= 0; i-- {
		if ctx := history[i].Context; ctx != nil && len(ctx.LastProductIDs) > 0 {
			return ctx.LastProductIDs
		}
	}
	return nil
}
