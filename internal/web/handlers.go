package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/errors"
	"github.com/virtualritz/glyphana/internal/ops"
	"github.com/virtualritz/glyphana/internal/session"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	env      *ops.Env
	renderer *Renderer
}

// HandleSearch handles GET /search — the main browse page.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")

	data := SearchPageData{
		PageData: PageData{
			Title:   "Search",
			Version: h.renderer.version,
			Nav:     "search",
		},
		Query:         query,
		CaseSensitive: parseBoolParam(r, "case"),
		SearchNames:   parseBoolParam(r, "names"),
		Category:      q.Get("category"),
		HasQuery:      query != "",
	}

	cats, err := ops.Categories(h.env)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	data.Categories = cats.Categories

	// The category dropdown drives a selection state machine: the two
	// pseudo-categories list session state, a named category restricts
	// the search, and non-empty query text always wins.
	sel := h.newSelection()
	if data.Category != "" {
		// A dropdown selects rather than toggles; skip when already active.
		if id := classify.IDForName(data.Category); id != sel.ActiveID() {
			sel.Toggle(id)
		}
	}
	sel.SetQuery(query)

	switch sel.State() {
	case session.RecentlyUsed:
		result, err := ops.Recent(h.env)
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		data.Category = "Recently Used"
		data.Results = result.Results
		data.Pagination = ops.Pagination{Limit: len(result.Results), Total: len(result.Results)}
	case session.Collection:
		result, err := ops.Collection(h.env)
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		data.Category = "Collection"
		data.Results = result.Results
		data.Pagination = ops.Pagination{Limit: len(result.Results), Total: len(result.Results)}
	default:
		// A named category keeps restricting results even after the
		// query text forces the Search state; the pseudo-categories
		// never restrict.
		category := data.Category
		if category == "Recently Used" || category == "Collection" {
			category = ""
		}
		result, err := ops.Search(h.env, ops.SearchInput{
			Query:         query,
			CaseSensitive: &data.CaseSensitive,
			SearchNames:   &data.SearchNames,
			Category:      category,
			Limit:         parseIntParam(r, "limit", 200),
			Offset:        parseIntParam(r, "offset", 0),
		})
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		data.Results = result.Results
		data.Pagination = result.Pagination
	}

	h.renderer.renderPage(w, "search", data)
}

// newSelection builds the per-request selection state machine. The
// configured default selection becomes the neutral state an empty query
// reverts to.
func (h *Handlers) newSelection() *session.Selection {
	neutral := session.None
	if h.env.Config != nil && h.env.Config.DefaultSelection == "recent" {
		neutral = session.RecentlyUsed
	}
	return session.NewSelection(session.DefaultPseudoIDs(), neutral)
}

// HandleDetail handles GET /chars/{char} — inspect one character.
// Viewing a character records it as recently used.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	char := r.PathValue("char")
	if char == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("character is required"))
		return
	}

	info, err := ops.Info(h.env, ops.InfoInput{Char: char, Touch: true})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "detail", DetailPageData{
		PageData: PageData{
			Title:   info.Name,
			Version: h.renderer.version,
			Nav:     "search",
		},
		Info: info,
	})
}

// HandleCollect handles POST /chars/{char}/collect.
func (h *Handlers) HandleCollect(w http.ResponseWriter, r *http.Request) {
	h.collectAction(w, r, true)
}

// HandleUncollect handles POST /chars/{char}/uncollect.
func (h *Handlers) HandleUncollect(w http.ResponseWriter, r *http.Request) {
	h.collectAction(w, r, false)
}

func (h *Handlers) collectAction(w http.ResponseWriter, r *http.Request, add bool) {
	char := r.PathValue("char")
	if char == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("character is required"))
		return
	}

	var (
		result *ops.CollectOutput
		err    error
	)
	if add {
		result, err = ops.Collect(h.env, ops.CollectInput{Char: char})
	} else {
		result, err = ops.Uncollect(h.env, ops.CollectInput{Char: char})
	}
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, result)
		return
	}

	// Default: back to the character page
	http.Redirect(w, r, "/chars/"+result.Codepoint, http.StatusFound)
}

// HandleRecent handles GET /recent — recently used characters.
func (h *Handlers) HandleRecent(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Recent(h.env)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "charlist", CharListPageData{
		PageData: PageData{
			Title:   "Recently Used",
			Version: h.renderer.version,
			Nav:     "recent",
		},
		Heading: "Recently Used",
		Results: result.Results,
		Empty:   "Nothing used yet. Viewing a character adds it here.",
	})
}

// HandleCollection handles GET /collection — collected characters.
func (h *Handlers) HandleCollection(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Collection(h.env)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "charlist", CharListPageData{
		PageData: PageData{
			Title:   "Collection",
			Version: h.renderer.version,
			Nav:     "collection",
		},
		Heading: "Collection",
		Results: result.Results,
		Empty:   "The collection is empty.",
	})
}

// HandleSheet handles GET /collection/sheet — the collection rendered as
// a markdown character sheet.
func (h *Handlers) HandleSheet(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Export(h.env, ops.ExportInput{Title: r.URL.Query().Get("title")})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// Raw markdown on request, for copy-paste
	if strings.Contains(r.Header.Get("Accept"), "text/markdown") || parseBoolParam(r, "raw") {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte(result.Markdown))
		return
	}

	h.renderer.renderPage(w, "sheet", SheetPageData{
		PageData: PageData{
			Title:   "Character Sheet",
			Version: h.renderer.version,
			Nav:     "collection",
		},
		RenderedHTML: renderMarkdown(result.Markdown),
		Count:        result.Count,
	})
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// parseBoolParam parses a boolean query parameter.
func parseBoolParam(r *http.Request, name string) bool {
	s := r.URL.Query().Get(name)
	return s == "true" || s == "1" || s == "on"
}
