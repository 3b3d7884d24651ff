package ops

import (
	"testing"

	"github.com/virtualritz/glyphana/internal/errors"
)

func TestSearch_CodepointNotation(t *testing.T) {
	env := testEnv(t)

	out, err := Search(env, SearchInput{Query: "65"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Results) != 1 {
		t.Fatalf("Results length = %d, want 1", len(out.Results))
	}
	if out.Results[0].Char != "A" || out.Results[0].Codepoint != "U+0041" {
		t.Errorf("Results[0] = %+v, want A / U+0041", out.Results[0])
	}
	if out.Results[0].Name != "Latin Capital Letter A" {
		t.Errorf("Name = %q, want %q", out.Results[0].Name, "Latin Capital Letter A")
	}
}

func TestSearch_EmptyQueryListsIndex(t *testing.T) {
	env := testEnv(t)

	out, err := Search(env, SearchInput{})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if out.Pagination.Total != env.Index.Len() {
		t.Errorf("Total = %d, want %d", out.Pagination.Total, env.Index.Len())
	}
	if len(out.Results) != env.Index.Len() {
		t.Errorf("Results length = %d, want %d", len(out.Results), env.Index.Len())
	}
}

func TestSearch_Pagination(t *testing.T) {
	env := testEnv(t)

	out, err := Search(env, SearchInput{Limit: 4})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Results) != 4 {
		t.Fatalf("Results length = %d, want 4", len(out.Results))
	}
	if !out.Pagination.HasMore {
		t.Errorf("HasMore = false, want true")
	}

	out2, err := Search(env, SearchInput{Limit: 4, Offset: 4})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if out2.Results[0] == out.Results[0] {
		t.Errorf("offset page repeats the first page")
	}
	if out2.Pagination.Offset != 4 {
		t.Errorf("Offset = %d, want 4", out2.Pagination.Offset)
	}
}

func TestSearch_CategoryRestriction(t *testing.T) {
	env := testEnv(t)
	yes := true

	out, err := Search(env, SearchInput{Query: "alpha", SearchNames: &yes, Category: "Greek and Coptic"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].Char != "α" {
		t.Fatalf("Results = %+v, want only Greek alpha", out.Results)
	}
}

func TestSearch_UnknownCategoryFallsBack(t *testing.T) {
	env := testEnv(t)
	yes := true

	out, err := Search(env, SearchInput{Query: "alpha", SearchNames: &yes, Category: "No Such Category"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	// α and the mathematical bold alpha both match unrestricted
	if len(out.Results) != 2 {
		t.Errorf("Results length = %d, want 2", len(out.Results))
	}
}

func TestSearch_InvalidPagination(t *testing.T) {
	env := testEnv(t)

	if _, err := Search(env, SearchInput{Offset: -1}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("negative offset error = %v, want INVALID_REQUEST", err)
	}
	if _, err := Search(env, SearchInput{Limit: -1}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("negative limit error = %v, want INVALID_REQUEST", err)
	}
}

func TestSearch_ConfigDefaultsApply(t *testing.T) {
	env := testEnv(t)
	env.Config.SearchNames = true

	out, err := Search(env, SearchInput{Query: "euro"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].Char != "€" {
		t.Fatalf("Results = %+v, want the euro sign via config-default name search", out.Results)
	}
}
