package ops

import (
	"github.com/virtualritz/glyphana/internal/db"
)

// RecentOutput contains the result of the Recent operation.
type RecentOutput struct {
	Results []CharView `json:"results"`
}

// Recent lists the recently used characters, most recent first.
func Recent(env *Env) (*RecentOutput, error) {
	if err := requireDB(env); err != nil {
		return nil, err
	}

	runes, err := db.ListRecent(env.DB)
	if err != nil {
		return nil, err
	}

	out := &RecentOutput{Results: make([]CharView, 0, len(runes))}
	for _, r := range runes {
		out.Results = append(out.Results, viewOf(env, r))
	}
	return out, nil
}

// TouchInput contains parameters for the Touch operation.
type TouchInput struct {
	Char string
}

// Touch marks a character as just used without inspecting it.
func Touch(env *Env, input TouchInput) (*CharView, error) {
	if err := requireDB(env); err != nil {
		return nil, err
	}

	r, err := ResolveChar(env, input.Char)
	if err != nil {
		return nil, err
	}

	max := 0
	if env.Config != nil {
		max = env.Config.RecentMax
	}
	if err := db.TouchRecent(env.DB, r, max); err != nil {
		return nil, err
	}

	view := viewOf(env, r)
	return &view, nil
}
