package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/virtualritz/glyphana/internal/errors"
	"github.com/virtualritz/glyphana/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	env *ops.Env
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(env *ops.Env) *Handlers {
	return &Handlers{env: env}
}

// Request types for each tool

// SearchRequest represents the arguments for glyph_search.
type SearchRequest struct {
	Query         string `json:"query,omitempty"`
	CaseSensitive *bool  `json:"case_sensitive,omitempty"`
	SearchNames   *bool  `json:"search_names,omitempty"`
	Category      string `json:"category,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	Offset        int    `json:"offset,omitempty"`
}

// InfoRequest represents the arguments for glyph_info.
type InfoRequest struct {
	Char  string `json:"char"`
	Touch *bool  `json:"touch,omitempty"`
}

// CharRequest represents the arguments for the single-character tools.
type CharRequest struct {
	Char string `json:"char"`
}

// ReorderRequest represents the arguments for glyph_reorder_categories.
type ReorderRequest struct {
	Names []string `json:"names"`
}

// ExportRequest represents the arguments for glyph_export.
type ExportRequest struct {
	Chars []string `json:"chars,omitempty"`
	Title string   `json:"title,omitempty"`
}

// Tool definitions

var searchToolDef = mcp.NewTool("glyph_search",
	mcp.WithDescription("Search the Unicode character index. The query may be free text matched against characters and names, a literal character, a codepoint notation (U+0041, 0x41, 65), or a single character standing for its whole block."),
	mcp.WithString("query", mcp.Description("Search text. Empty lists the whole index.")),
	mcp.WithBoolean("case_sensitive", mcp.Description("Match case exactly instead of folding.")),
	mcp.WithBoolean("search_names", mcp.Description("Also match character names, with fuzzy tolerance for typos.")),
	mcp.WithString("category", mcp.Description("Restrict free-text results to one category, e.g. \"Latin\" or \"Emoji\".")),
	mcp.WithNumber("limit", mcp.Description("Maximum results per page (default 100, max 1000).")),
	mcp.WithNumber("offset", mcp.Description("Results to skip for pagination.")),
)

var infoToolDef = mcp.NewTool("glyph_info",
	mcp.WithDescription("Inspect a single character: name, block, categories, and UTF-8/UTF-16 encodings. Accepts a literal character or codepoint notation."),
	mcp.WithString("char", mcp.Required(), mcp.Description("A single character or codepoint notation (U+0041, 0x41, 65).")),
	mcp.WithBoolean("touch", mcp.Description("Record the character as recently used (default true).")),
)

var categoriesToolDef = mcp.NewTool("glyph_categories",
	mcp.WithDescription("List the character categories in display order with per-category counts of indexed characters."),
)

var reorderToolDef = mcp.NewTool("glyph_reorder_categories",
	mcp.WithDescription("Move the named categories to the front of the display order and persist the ordering."),
	mcp.WithArray("names", mcp.Required(), mcp.Description("Category names in the desired order."),
		mcp.Items(map[string]any{"type": "string"})),
)

var recentToolDef = mcp.NewTool("glyph_recent",
	mcp.WithDescription("List recently used characters, most recent first."),
)

var collectToolDef = mcp.NewTool("glyph_collect",
	mcp.WithDescription("Add a character to the collection."),
	mcp.WithString("char", mcp.Required(), mcp.Description("A single character or codepoint notation.")),
)

var uncollectToolDef = mcp.NewTool("glyph_uncollect",
	mcp.WithDescription("Remove a character from the collection."),
	mcp.WithString("char", mcp.Required(), mcp.Description("A single character or codepoint notation.")),
)

var collectionToolDef = mcp.NewTool("glyph_collection",
	mcp.WithDescription("List the collected characters in codepoint order."),
)

var exportToolDef = mcp.NewTool("glyph_export",
	mcp.WithDescription("Render a markdown character sheet of the collection or an explicit character list."),
	mcp.WithArray("chars", mcp.Description("Characters to export instead of the collection."),
		mcp.Items(map[string]any{"type": "string"})),
	mcp.WithString("title", mcp.Description("Sheet title (default \"Character Sheet\").")),
)

// Handler implementations

// HandleSearch handles the glyph_search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Search(h.env, ops.SearchInput{
		Query:         input.Query,
		CaseSensitive: input.CaseSensitive,
		SearchNames:   input.SearchNames,
		Category:      input.Category,
		Limit:         input.Limit,
		Offset:        input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleInfo handles the glyph_info tool call.
func (h *Handlers) HandleInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[InfoRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	touch := true
	if input.Touch != nil {
		touch = *input.Touch
	}

	result, err := ops.Info(h.env, ops.InfoInput{Char: input.Char, Touch: touch})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCategories handles the glyph_categories tool call.
func (h *Handlers) HandleCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Categories(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleReorder handles the glyph_reorder_categories tool call.
func (h *Handlers) HandleReorder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ReorderRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ReorderCategories(h.env, ops.ReorderInput{Names: input.Names})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleRecent handles the glyph_recent tool call.
func (h *Handlers) HandleRecent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Recent(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCollect handles the glyph_collect tool call.
func (h *Handlers) HandleCollect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CharRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Collect(h.env, ops.CollectInput{Char: input.Char})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleUncollect handles the glyph_uncollect tool call.
func (h *Handlers) HandleUncollect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CharRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Uncollect(h.env, ops.CollectInput{Char: input.Char})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCollection handles the glyph_collection tool call.
func (h *Handlers) HandleCollection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Collection(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleExport handles the glyph_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.env, ops.ExportInput{Chars: input.Chars, Title: input.Title})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if gErr, ok := err.(*errors.GlyphanaError); ok {
		errorObj := map[string]any{
			"code":    gErr.Code,
			"message": gErr.Message,
			"status":  gErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if gErr.Code != errors.ErrInternal && gErr.Details != nil {
			errorObj["details"] = gErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
