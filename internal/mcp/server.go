package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/virtualritz/glyphana/internal/ops"
)

// KnownTypes lists all valid tool group names.
var KnownTypes = []string{"search", "recent", "collection"}

// toolEntry pairs a tool definition with its group and a handler factory.
type toolEntry struct {
	def     mcp.Tool
	group   string
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"glyph_search": {
		def:     searchToolDef,
		group:   "search",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
	"glyph_info": {
		def:     infoToolDef,
		group:   "search",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleInfo },
	},
	"glyph_categories": {
		def:     categoriesToolDef,
		group:   "search",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCategories },
	},
	"glyph_reorder_categories": {
		def:     reorderToolDef,
		group:   "search",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleReorder },
	},
	"glyph_recent": {
		def:     recentToolDef,
		group:   "recent",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRecent },
	},
	"glyph_collect": {
		def:     collectToolDef,
		group:   "collection",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollect },
	},
	"glyph_uncollect": {
		def:     uncollectToolDef,
		group:   "collection",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleUncollect },
	},
	"glyph_collection": {
		def:     collectionToolDef,
		group:   "collection",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollection },
	},
	"glyph_export": {
		def:     exportToolDef,
		group:   "collection",
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ValidateDisabledTypes returns a list of unknown group names from the given list.
func ValidateDisabledTypes(names []string) []string {
	known := make(map[string]bool, len(KnownTypes))
	for _, t := range KnownTypes {
		known[t] = true
	}

	unknown := make([]string, 0)
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ExpandTypesToTools returns all tool names belonging to the given groups.
func ExpandTypesToTools(types []string) []string {
	if len(types) == 0 {
		return nil
	}

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}

	tools := make([]string, 0)
	for name, entry := range toolRegistry {
		if typeSet[entry.group] {
			tools = append(tools, name)
		}
	}
	return tools
}

// NewServer creates a new MCP server with Glyphana tools registered.
// Tools listed in cfg.DisabledTools or belonging to cfg.DisabledTypes
// are excluded from registration.
func NewServer(env *ops.Env, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"glyphana",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(env)

	// Build set of disabled tools: first expand groups, then add individual tools
	disabled := make(map[string]bool)
	if env.Config != nil {
		for _, tool := range ExpandTypesToTools(env.Config.DisabledTypes) {
			disabled[tool] = true
		}
		for _, name := range env.Config.DisabledTools {
			disabled[name] = true
		}
	}

	// Register tools (skip disabled)
	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(env *ops.Env, version string) error {
	s := NewServer(env, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
