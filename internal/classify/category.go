package classify

import "hash/fnv"

// CategoryID is a stable opaque identifier for a category.
type CategoryID uint64

// IDForName derives the identifier for a category name. The id is a pure
// function of the name: two categories with the same name are
// indistinguishable to selection, which is the designed constraint.
func IDForName(name string) CategoryID {
	h := fnv.New64a()
	h.Write([]byte(name))
	return CategoryID(h.Sum64())
}

// Category is a named, identified wrapper around one Classifier. The
// classifier is fixed at construction; only the category list's order is
// user-adjustable.
type Category struct {
	name       string
	classifier Classifier
}

// NewCategory creates a category with the given display name and
// membership test.
func NewCategory(name string, c Classifier) Category {
	return Category{name: name, classifier: c}
}

// Name returns the display name.
func (c Category) Name() string { return c.name }

// ID returns the stable name-derived identifier.
func (c Category) ID() CategoryID { return IDForName(c.name) }

// Classifier returns the membership test backing this category.
func (c Category) Classifier() Classifier { return c.classifier }

// Registry holds the ordered category list built once at startup.
type Registry struct {
	categories []Category
}

// NewRegistry creates a registry over the given categories, keeping their
// order.
func NewRegistry(categories ...Category) *Registry {
	return &Registry{categories: categories}
}

// All returns the categories in display order. The slice is shared; do
// not mutate.
func (reg *Registry) All() []Category { return reg.categories }

// ByID returns the category with the given id.
func (reg *Registry) ByID(id CategoryID) (Category, bool) {
	for _, c := range reg.categories {
		if c.ID() == id {
			return c, true
		}
	}
	return Category{}, false
}

// ByName returns the category with the given display name.
func (reg *Registry) ByName(name string) (Category, bool) {
	return reg.ByID(IDForName(name))
}

// ApplyOrder reorders the registry to match the given id sequence.
// Categories named in ids come first, in that order; categories not named
// keep their relative order after them. Unknown ids are ignored, so a
// stale persisted ordering degrades to the default instead of erroring.
func (reg *Registry) ApplyOrder(ids []CategoryID) {
	ordered := make([]Category, 0, len(reg.categories))
	taken := make(map[CategoryID]bool, len(ids))
	for _, id := range ids {
		if taken[id] {
			continue
		}
		if c, ok := reg.ByID(id); ok {
			ordered = append(ordered, c)
			taken[id] = true
		}
	}
	for _, c := range reg.categories {
		if !taken[c.ID()] {
			ordered = append(ordered, c)
		}
	}
	reg.categories = ordered
}

// DefaultRegistry builds the stock category list: the groupings the
// original glyph browser ships, expressed over the block table.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewCategory("Latin", union(
			"Basic Latin",
			"Latin-1 Supplement",
			"Latin Extended-A",
			"Latin Extended-B",
			"Latin Extended Additional",
			"Latin Extended-C",
			"Latin Extended-D",
			"Latin Extended-E",
			"Latin Extended-F",
			"Latin Extended-G",
		)),
		NewCategory("Greek and Coptic", blockByName("Greek and Coptic").Range),
		NewCategory("Cyrillic", blockByName("Cyrillic").Range),
		NewCategory("Hebrew", blockByName("Hebrew").Range),
		NewCategory("Arabic", blockByName("Arabic").Range),
		NewCategory("Punctuation", union(
			"General Punctuation",
			"Supplemental Punctuation",
		)),
		NewCategory("Currency Symbols", blockByName("Currency Symbols").Range),
		NewCategory("Letterlike Symbols", blockByName("Letterlike Symbols").Range),
		NewCategory("Mathematical Operators", blockByName("Mathematical Operators").Range),
		NewCategory("Math", union(
			"Mathematical Operators",
			"Supplemental Mathematical Operators",
			"Miscellaneous Mathematical Symbols-A",
			"Miscellaneous Mathematical Symbols-B",
			"Mathematical Alphanumeric Symbols",
		)),
		NewCategory("Arrows", union(
			"Arrows",
			"Supplemental Arrows-A",
			"Supplemental Arrows-B",
			"Supplemental Arrows-C",
			"Miscellaneous Symbols and Arrows",
		)),
		NewCategory("Technical", union(
			"Miscellaneous Technical",
			"Control Pictures",
			"Optical Character Recognition",
		)),
		NewCategory("Box Drawing", union(
			"Box Drawing",
			"Block Elements",
			"Geometric Shapes",
		)),
		NewCategory("Music", union(
			"Musical Symbols",
			"Byzantine Musical Symbols",
			"Ancient Greek Musical Notation",
		)),
		NewCategory("Emoji", union(
			"Mahjong Tiles",
			"Domino Tiles",
			"Playing Cards",
			"Miscellaneous Symbols and Pictographs",
			"Emoticons",
			"Ornamental Dingbats",
			"Transport and Map Symbols",
			"Alchemical Symbols",
			"Geometric Shapes Extended",
			"Supplemental Arrows-C",
			"Supplemental Symbols and Pictographs",
			"Chess Symbols",
			"Symbols and Pictographs Extended-A",
			"Symbols for Legacy Computing",
		)),
	)
}

func union(names ...string) RangeUnion {
	u := make(RangeUnion, 0, len(names))
	for _, name := range names {
		u = append(u, blockByName(name).Range)
	}
	return u
}
