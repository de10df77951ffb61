package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/digitgenius/shopassist/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes product catalog tools.
type Server struct {
	catalog *catalog.Index
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over the given catalog index.
func NewServer(idx *catalog.Index) *Server {
	s := &Server{catalog: idx}

	s.mcp = server.NewMCPServer(
		"shopassist",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchProductsTool, s.handleSearchProducts)
	s.mcp.AddTool(getProductTool, s.handleGetProduct)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
