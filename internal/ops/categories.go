package ops

import (
	"fmt"

	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/db"
	"github.com/virtualritz/glyphana/internal/errors"
)

// CategoryView is the wire representation of one category.
type CategoryView struct {
	Name string `json:"name"`
	// Indexed counts the category members actually present in the
	// character index, not the full block span.
	Indexed int `json:"indexed"`
}

// CategoriesOutput contains the result of the Categories operation.
type CategoriesOutput struct {
	Categories []CategoryView `json:"categories"`
}

// Categories lists the registry in display order with per-category counts
// of indexed characters.
func Categories(env *Env) (*CategoriesOutput, error) {
	out := &CategoriesOutput{}
	for _, c := range env.Registry.All() {
		n := 0
		cl := c.Classifier()
		for _, rec := range env.Index.All() {
			if cl.Contains(rec.Rune) {
				n++
			}
		}
		out.Categories = append(out.Categories, CategoryView{Name: c.Name(), Indexed: n})
	}
	return out, nil
}

// ReorderInput contains parameters for the ReorderCategories operation.
type ReorderInput struct {
	// Names lists category names in the desired display order. Categories
	// not named keep their relative order after the named ones.
	Names []string
}

// ReorderCategories reorders the registry and persists the ordering so it
// survives restarts. Every name must exist; a typo should not silently
// drop a category to the back of the list.
func ReorderCategories(env *Env, input ReorderInput) (*CategoriesOutput, error) {
	if len(input.Names) == 0 {
		return nil, errors.NewInvalidRequest("names is required")
	}

	ids := make([]classify.CategoryID, 0, len(input.Names))
	for _, name := range input.Names {
		c, ok := env.Registry.ByName(name)
		if !ok {
			return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown category %q", name))
		}
		ids = append(ids, c.ID())
	}

	env.Registry.ApplyOrder(ids)

	if env.DB != nil {
		full := make([]classify.CategoryID, 0, len(env.Registry.All()))
		for _, c := range env.Registry.All() {
			full = append(full, c.ID())
		}
		if err := db.SaveCategoryOrder(env.DB, full); err != nil {
			return nil, err
		}
	}

	return Categories(env)
}
