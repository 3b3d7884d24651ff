package ops

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/virtualritz/glyphana/internal/classify"
	"github.com/virtualritz/glyphana/internal/db"
)

// InfoInput contains parameters for the Info operation.
type InfoInput struct {
	Char string
	// Touch records the character as recently used. Viewing a character
	// is what feeds the recent list, so surfaces default this to true.
	Touch bool
}

// InfoOutput contains the result of the Info operation.
type InfoOutput struct {
	CharView
	Decimal    int32    `json:"decimal"`
	UTF8       string   `json:"utf8"`
	UTF16      string   `json:"utf16"`
	HTMLEntity string   `json:"html_entity"`
	Block      string   `json:"block,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Indexed    bool     `json:"indexed"`
	Collected  bool     `json:"collected"`
}

// Info inspects a single character: its resolved name, containing block,
// category memberships, and byte-level encodings.
func Info(env *Env, input InfoInput) (*InfoOutput, error) {
	r, err := ResolveChar(env, input.Char)
	if err != nil {
		return nil, err
	}

	out := &InfoOutput{
		CharView: viewOf(env, r),
		Decimal:  int32(r),
		UTF8:     hexBytes([]byte(string(r))),
		UTF16:    hexUnits(utf16.Encode([]rune{r})),
		Indexed:  env.Index.Contains(r),
	}
	out.HTMLEntity = fmt.Sprintf("&#x%X;", r)

	if b, ok := classify.FindBlock(r); ok {
		out.Block = b.Name
	}
	for _, c := range env.Registry.All() {
		if c.Classifier().Contains(r) {
			out.Categories = append(out.Categories, c.Name())
		}
	}

	if env.DB != nil {
		collected, err := db.InCollection(env.DB, r)
		if err != nil {
			return nil, err
		}
		out.Collected = collected

		if input.Touch {
			max := 0
			if env.Config != nil {
				max = env.Config.RecentMax
			}
			if err := db.TouchRecent(env.DB, r, max); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func hexBytes(bs []byte) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = fmt.Sprintf("0x%02X", b)
	}
	return strings.Join(parts, " ")
}

func hexUnits(us []uint16) string {
	parts := make([]string, len(us))
	for i, u := range us {
		parts[i] = fmt.Sprintf("0x%04X", u)
	}
	return strings.Join(parts, " ")
}
