package ops

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/virtualritz/glyphana/internal/charindex"
	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/config"
	"github.com/virtualritz/glyphana/internal/errors"
	"github.com/virtualritz/glyphana/internal/query"
	"github.com/virtualritz/glyphana/internal/search"
)

// Pagination limits
const (
	DefaultSearchLimit = 100
	MaxSearchLimit     = 1000
)

// Env bundles the long-lived state every operation works against: the
// character index built at startup, the category registry, the search
// engine, and the session database. DB may be nil, in which case the
// operations that persist state return ErrInvalidRequest.
type Env struct {
	Index    *charindex.Index
	Registry *classify.Registry
	Engine   *search.Engine
	DB       *sql.DB
	Config   *config.Config
}

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// CharView is the wire representation of a single character.
type CharView struct {
	Char      string `json:"char"`
	Name      string `json:"name"`
	Codepoint string `json:"codepoint"`
}

// viewOf builds the CharView for a rune, resolving the display name
// through the index.
func viewOf(env *Env, r rune) CharView {
	name, ok := env.Index.Get(r)
	if !ok {
		name = charindex.DisplayName(r, "")
	}
	return CharView{
		Char:      string(r),
		Name:      name,
		Codepoint: fmt.Sprintf("U+%04X", r),
	}
}

// ResolveChar turns user input into a single rune. Accepts a literal
// single character or any codepoint notation the search box accepts
// (U+0041, 0x41, 65). Resolution is unrestricted by the index; looking up
// an unindexed codepoint is allowed, searching is not.
func ResolveChar(env *Env, input string) (rune, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, errors.NewInvalidRequest("char is required")
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	if r, ok := query.ResolveNotation(s); ok {
		return r, nil
	}
	return 0, errors.NewInvalidRequest(fmt.Sprintf("%q is not a single character or codepoint", input))
}

// requireDB guards operations that need the session database.
func requireDB(env *Env) error {
	if env.DB == nil {
		return errors.NewInvalidRequest("no session database configured")
	}
	return nil
}

// clampLimit normalizes a requested limit into [1, max], applying def for
// zero and rejecting negatives.
func clampLimit(limit, def, max int) (int, error) {
	if limit < 0 {
		return 0, errors.NewInvalidRequest("limit must not be negative")
	}
	if limit == 0 {
		return def, nil
	}
	if limit > max {
		return max, nil
	}
	return limit, nil
}
