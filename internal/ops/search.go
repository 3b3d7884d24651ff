package ops

import (
	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/errors"
	"github.com/virtualritz/glyphana/internal/search"
)

// SearchInput contains parameters for the Search operation.
type SearchInput struct {
	Query         string
	CaseSensitive *bool // nil means config default
	SearchNames   *bool // nil means config default
	Category      string
	Limit         int // 0 means DefaultSearchLimit
	Offset        int
}

// SearchOutput contains the result of the Search operation.
type SearchOutput struct {
	Results    []CharView `json:"results"`
	Pagination Pagination `json:"pagination"`
}

// Search runs one query against the character index. A non-empty Category
// restricts free-text results to that category's members; an unknown
// category name degrades to the unrestricted index rather than erroring,
// same as a stale persisted selection would. Exact codepoint and literal
// lookups ignore the restriction.
func Search(env *Env, input SearchInput) (*SearchOutput, error) {
	limit, err := clampLimit(input.Limit, DefaultSearchLimit, MaxSearchLimit)
	if err != nil {
		return nil, err
	}
	if input.Offset < 0 {
		return nil, errors.NewInvalidRequest("offset must not be negative")
	}

	caseSensitive := env.Config != nil && env.Config.CaseSensitive
	if input.CaseSensitive != nil {
		caseSensitive = *input.CaseSensitive
	}
	searchNames := env.Config != nil && env.Config.SearchNames
	if input.SearchNames != nil {
		searchNames = *input.SearchNames
	}

	var selected classify.CategoryID
	onlyCategory := input.Category != ""
	if onlyCategory {
		selected = classify.IDForName(input.Category)
	}

	params := search.NewParams(input.Query, caseSensitive, searchNames, onlyCategory)
	records := env.Engine.Search(params, env.Index, env.Registry, selected)

	total := len(records)
	start := input.Offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := make([]CharView, 0, end-start)
	for _, rec := range records[start:end] {
		results = append(results, viewOf(env, rec.Rune))
	}

	return &SearchOutput{
		Results: results,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  input.Offset,
			HasMore: end < total,
			Total:   total,
		},
	}, nil
}
