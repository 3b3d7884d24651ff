// Package classify implements the membership-test abstraction the search
// core filters characters with: contiguous codepoint ranges, unions of
// ranges, and explicit sets, plus the named categories built on top of
// them.
package classify

import "unicode/utf8"

// Classifier is a reusable membership test over sets of codepoints.
//
// Contains must agree with Characters: a rune is contained exactly when
// some enumeration yields it. Characters returns a fresh slice on every
// call so enumeration is restartable and callers may mutate the result.
type Classifier interface {
	Contains(r rune) bool
	Characters() []rune
}

// Range is a closed interval [Lo, Hi] of codepoints.
type Range struct {
	Lo rune
	Hi rune
}

// NewRange returns the closed interval [lo, hi], swapping the bounds if
// they arrive reversed.
func NewRange(lo, hi rune) Range {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Range{Lo: lo, Hi: hi}
}

// Contains reports whether r falls inside the interval.
func (ra Range) Contains(r rune) bool {
	return r >= ra.Lo && r <= ra.Hi
}

// Characters enumerates the interval ascending. Surrogate codepoints are
// skipped: they are not Unicode scalar values and can never appear in the
// character index.
func (ra Range) Characters() []rune {
	chars := make([]rune, 0, int(ra.Hi-ra.Lo)+1)
	for r := ra.Lo; r <= ra.Hi; r++ {
		if utf8.ValidRune(r) {
			chars = append(chars, r)
		}
	}
	return chars
}

// RangeUnion is an ordered list of ranges. Membership is the OR across
// members. Enumeration concatenates member enumerations; overlapping
// ranges may yield duplicates, which callers tolerate.
type RangeUnion []Range

// Contains reports whether any member range contains r.
func (u RangeUnion) Contains(r rune) bool {
	for _, ra := range u {
		if ra.Contains(r) {
			return true
		}
	}
	return false
}

// Characters concatenates the member enumerations in order.
func (u RangeUnion) Characters() []rune {
	var chars []rune
	for _, ra := range u {
		chars = append(chars, ra.Characters()...)
	}
	return chars
}

// Set is an arbitrary, unordered set of codepoints. Unlike Range and
// RangeUnion it may be built incrementally; the collection pseudo-category
// is backed by one.
type Set map[rune]struct{}

// NewSet returns a Set holding the given runes.
func NewSet(runes ...rune) Set {
	s := make(Set, len(runes))
	for _, r := range runes {
		s[r] = struct{}{}
	}
	return s
}

// Add inserts r into the set.
func (s Set) Add(r rune) { s[r] = struct{}{} }

// Remove deletes r from the set.
func (s Set) Remove(r rune) { delete(s, r) }

// Contains reports whether r is a member.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Characters returns the members in unspecified order.
func (s Set) Characters() []rune {
	chars := make([]rune, 0, len(s))
	for r := range s {
		chars = append(chars, r)
	}
	return chars
}
