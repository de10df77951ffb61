package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleSearchProducts runs a catalog search and formats the matches.
func (s *Server) handleSearchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	results := s.catalog.Search(query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No products found for %q.", query)), nil
	}

	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d product(s):\n", total)
	for i, p := range results {
		fmt.Fprintf(&sb, "%d. [%s] %s %s — ₹%s (MRP ₹%s), warranty %s\n",
			i+1, p.ID, p.Brand, p.Name, formatPrice(p.Price), formatPrice(p.MRP), p.Warranty())
	}
	if total > limit {
		fmt.Fprintf(&sb, "...and %d more.\n", total-limit)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetProduct returns the full record for one product.
func (s *Server) handleGetProduct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	p, ok := s.catalog.ByID(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no product with ID %q", id)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (ID %s)\n", p.Brand, p.Name, p.ID)
	fmt.Fprintf(&sb, "Price: ₹%s (MRP ₹%s)\n", formatPrice(p.Price), formatPrice(p.MRP))
	for k, v := range p.Specs {
		fmt.Fprintf(&sb, "%s: %s\n", k, v)
	}
	if p.Description != "" {
		sb.WriteString(p.Description + "\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
