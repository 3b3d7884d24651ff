package ops

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/db"
	"github.com/virtualritz/glyphana/internal/errors"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	// Chars is the explicit set of characters to export. Empty means
	// export the collection.
	Chars []string
	Title string
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Markdown string `json:"markdown"`
	Count    int    `json:"count"`
}

// Export renders a markdown character sheet: one table row per character
// with its codepoint, name and block.
func Export(env *Env, input ExportInput) (*ExportOutput, error) {
	var runes []rune
	if len(input.Chars) > 0 {
		for _, c := range input.Chars {
			r, err := ResolveChar(env, c)
			if err != nil {
				return nil, err
			}
			runes = append(runes, r)
		}
	} else {
		if err := requireDB(env); err != nil {
			return nil, err
		}
		var err error
		runes, err = db.ListCollection(env.DB)
		if err != nil {
			return nil, err
		}
	}

	if len(runes) == 0 {
		return nil, errors.NewNotFound("collection is empty")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Character Sheet"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("| Char | Codepoint | Name | Block |\n")
	b.WriteString("|------|-----------|------|-------|\n")
	for _, r := range runes {
		view := viewOf(env, r)
		block := ""
		if blk, ok := classify.FindBlock(r); ok {
			block = blk.Name
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(view.Char), view.Codepoint, escapeCell(view.Name), escapeCell(block))
	}

	return &ExportOutput{Markdown: b.String(), Count: len(runes)}, nil
}

// escapeCell keeps table syntax intact when a cell contains a pipe, and
// renders an otherwise invisible character as its codepoint.
func escapeCell(s string) string {
	runes := []rune(s)
	if len(runes) == 1 && isInvisible(runes[0]) {
		return fmt.Sprintf("`U+%04X`", runes[0])
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

func isInvisible(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Cf, r) || r < 0x20 || r == 0x7F
}
