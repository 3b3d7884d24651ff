package ops

import (
	"fmt"

	"github.com/virtualritz/glyphana/internal/db"
	"github.com/virtualritz/glyphana/internal/errors"
)

// CollectInput contains parameters for the Collect and Uncollect operations.
type CollectInput struct {
	Char string
}

// CollectOutput contains the result of the Collect and Uncollect operations.
type CollectOutput struct {
	CharView
	Collected bool `json:"collected"`
}

// Collect adds a character to the collection. Collecting a character
// twice is a no-op, not an error.
func Collect(env *Env, input CollectInput) (*CollectOutput, error) {
	if err := requireDB(env); err != nil {
		return nil, err
	}

	r, err := ResolveChar(env, input.Char)
	if err != nil {
		return nil, err
	}

	if err := db.AddToCollection(env.DB, r); err != nil {
		return nil, err
	}

	return &CollectOutput{CharView: viewOf(env, r), Collected: true}, nil
}

// Uncollect removes a character from the collection. Removing a character
// that was never collected is NotFound.
func Uncollect(env *Env, input CollectInput) (*CollectOutput, error) {
	if err := requireDB(env); err != nil {
		return nil, err
	}

	r, err := ResolveChar(env, input.Char)
	if err != nil {
		return nil, err
	}

	removed, err := db.RemoveFromCollection(env.DB, r)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, errors.NewNotFound(fmt.Sprintf("U+%04X", r))
	}

	return &CollectOutput{CharView: viewOf(env, r), Collected: false}, nil
}

// CollectionOutput contains the result of the Collection operation.
type CollectionOutput struct {
	Results []CharView `json:"results"`
}

// Collection lists the collected characters in codepoint order.
func Collection(env *Env) (*CollectionOutput, error) {
	if err := requireDB(env); err != nil {
		return nil, err
	}

	runes, err := db.ListCollection(env.DB)
	if err != nil {
		return nil, err
	}

	out := &CollectionOutput{Results: make([]CharView, 0, len(runes))}
	for _, r := range runes {
		out.Results = append(out.Results, viewOf(env, r))
	}
	return out, nil
}
