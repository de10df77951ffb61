package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchProductsTool defines the search_products MCP tool.
var searchProductsTool = mcp.NewTool("search_products",
	mcp.WithDescription("Search the product catalog by brand, name, or keyword. Returns matching products with price and warranty."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Search text, e.g. a brand or product name"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 10)"),
	),
)

// getProductTool defines the get_product MCP tool.
var getProductTool = mcp.NewTool("get_product",
	mcp.WithDescription("Get full details for a single product by its ID."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("The product ID"),
	),
)
