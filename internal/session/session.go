// Package session tracks the per-session UI-facing state the search core
// consults: which category or pseudo-category is active, the bounded
// recently-used history, and the user's character collection. All
// mutation happens on the single UI thread; search never writes here.
package session

import (
	"sort"

	"github.com/virtualritz/glyphana/internal/classify"
)

// State enumerates what is currently selected.
type State int

const (
	// None means no category is active; the full index is shown.
	None State = iota
	// RecentlyUsed shows the recent-history pseudo-category.
	RecentlyUsed
	// Collection shows the collection pseudo-category.
	Collection
	// Search is forced whenever query text is non-empty.
	Search
	// Named means a specific registry category is active.
	Named
)

// PseudoIDs carries the identifiers of the three pseudo-categories. They
// are plain constructor-time values, not package globals, so callers
// control the chip names they derive from.
type PseudoIDs struct {
	RecentlyUsed classify.CategoryID
	Collection   classify.CategoryID
	Search       classify.CategoryID
}

// DefaultPseudoIDs derives the pseudo-category ids from the stock chip
// names.
func DefaultPseudoIDs() PseudoIDs {
	return PseudoIDs{
		RecentlyUsed: classify.IDForName("Recently Used"),
		Collection:   classify.IDForName("Collection"),
		Search:       classify.IDForName("Search"),
	}
}

// Selection is the finite-state selector over None, RecentlyUsed,
// Collection, Search and Named(id). It is a selector, not a stack: no
// history is retained.
type Selection struct {
	state   State
	namedID classify.CategoryID
	pseudo  PseudoIDs
	neutral State
}

// NewSelection creates a selection with the given pseudo-category ids
// and the neutral state to revert to when query text clears (None in the
// stock configuration, RecentlyUsed if configured so).
func NewSelection(pseudo PseudoIDs, neutral State) *Selection {
	if neutral != None && neutral != RecentlyUsed {
		neutral = None
	}
	return &Selection{state: neutral, pseudo: pseudo, neutral: neutral}
}

// State returns the current state.
func (s *Selection) State() State { return s.state }

// NamedID returns the active named-category id; meaningful only when
// State is Named.
func (s *Selection) NamedID() classify.CategoryID { return s.namedID }

// ActiveID returns the id of whatever is selected, pseudo or named, for
// chip highlighting. Zero when nothing is selected.
func (s *Selection) ActiveID() classify.CategoryID {
	switch s.state {
	case RecentlyUsed:
		return s.pseudo.RecentlyUsed
	case Collection:
		return s.pseudo.Collection
	case Search:
		return s.pseudo.Search
	case Named:
		return s.namedID
	}
	return 0
}

// SetQuery records a query-text change. Non-empty text forces Search;
// clearing the text while Search is active reverts to the neutral state.
// Other states are untouched by text edits.
func (s *Selection) SetQuery(text string) {
	if text != "" {
		s.state = Search
		return
	}
	if s.state == Search {
		s.state = s.neutral
	}
}

// Toggle handles a category chip click. Clicking the active chip
// deselects back to None; clicking any other chip switches to it, even
// while Search is active (the query text is left alone — the caller owns
// it).
func (s *Selection) Toggle(id classify.CategoryID) {
	if id == s.ActiveID() {
		s.state = None
		return
	}
	switch id {
	case s.pseudo.RecentlyUsed:
		s.state = RecentlyUsed
	case s.pseudo.Collection:
		s.state = Collection
	case s.pseudo.Search:
		s.state = Search
	default:
		s.state = Named
		s.namedID = id
	}
}

// Recent is the bounded most-recent-first history of inspected
// characters. Touching a present character moves it to the front without
// growing the list; touching past the bound evicts the oldest entry.
type Recent struct {
	max   int
	runes []rune
}

// DefaultRecentMax bounds the history when no limit is configured.
const DefaultRecentMax = 64

// NewRecent creates a history bounded at max entries.
func NewRecent(max int) *Recent {
	if max <= 0 {
		max = DefaultRecentMax
	}
	return &Recent{max: max}
}

// Touch records r as most recently used.
func (rc *Recent) Touch(r rune) {
	for i, existing := range rc.runes {
		if existing == r {
			copy(rc.runes[1:i+1], rc.runes[:i])
			rc.runes[0] = r
			return
		}
	}
	rc.runes = append(rc.runes, 0)
	copy(rc.runes[1:], rc.runes)
	rc.runes[0] = r
	if len(rc.runes) > rc.max {
		rc.runes = rc.runes[:rc.max]
	}
}

// Runes returns the history, most recent first.
func (rc *Recent) Runes() []rune {
	out := make([]rune, len(rc.runes))
	copy(out, rc.runes)
	return out
}

// Set replaces the history wholesale (most recent first), truncating to
// the bound. Used when loading persisted state.
func (rc *Recent) Set(runes []rune) {
	rc.runes = rc.runes[:0]
	for _, r := range runes {
		if len(rc.runes) == rc.max {
			break
		}
		rc.runes = append(rc.runes, r)
	}
}

// Len returns the current history length.
func (rc *Recent) Len() int { return len(rc.runes) }

// Contains reports membership; with Characters it lets Recent act as a
// classify.Classifier for result filtering.
func (rc *Recent) Contains(r rune) bool {
	for _, existing := range rc.runes {
		if existing == r {
			return true
		}
	}
	return false
}

// Characters returns the history runes (most recent first).
func (rc *Recent) Characters() []rune { return rc.Runes() }

// Chest is the unbounded character collection, mutated by explicit
// add/remove actions on the currently inspected character.
type Chest struct {
	set classify.Set
}

// NewChest creates an empty collection.
func NewChest() *Chest {
	return &Chest{set: classify.NewSet()}
}

// Add inserts r.
func (c *Chest) Add(r rune) { c.set.Add(r) }

// Remove deletes r.
func (c *Chest) Remove(r rune) { c.set.Remove(r) }

// Contains reports membership.
func (c *Chest) Contains(r rune) bool { return c.set.Contains(r) }

// Characters returns the members in unspecified order.
func (c *Chest) Characters() []rune { return c.set.Characters() }

// Runes returns the members codepoint-ascending, for stable persistence
// and listing.
func (c *Chest) Runes() []rune {
	runes := c.set.Characters()
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Len returns the collection size.
func (c *Chest) Len() int { return len(c.set) }
