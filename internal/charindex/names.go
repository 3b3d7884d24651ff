package charindex

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/runenames"
)

// DisplayName resolves the human-readable name of a codepoint through the
// layered naming policy: curated special names first, then the standard
// Unicode character name (title-cased), then a glyph-list style name
// (the source-provided raw name or the Adobe glyph list fallback,
// reformatted from camelCase), and finally a synthesized placeholder.
// It always produces a non-empty name.
func DisplayName(r rune, rawName string) string {
	if name, ok := specialNames[r]; ok {
		return name
	}

	if name := runenames.Name(r); name != "" && !strings.HasPrefix(name, "<") {
		return titleCase(name)
	}

	glyphName := rawName
	if glyphName == "" {
		glyphName = aglNames[r]
	}
	if glyphName != "" {
		return titleCase(camelToSpaced(glyphName))
	}

	return fmt.Sprintf("U+%04X", r)
}

// titleCase lowercases the input and capitalizes each word.
func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.ToLower(s))
}

// camelToSpaced turns camelCase glyph names into spaced words, e.g.
// "zeroWidthJoiner" -> "zero Width Joiner".
func camelToSpaced(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// specialNames carries hand-curated names for codepoints the standard
// Unicode data does not name usefully: C0 controls, the space family
// (several fonts render them as visible glyphs), invisible formatting
// characters, and private-use-area extensions found in bundled icon
// fonts.
var specialNames = map[rune]string{
	0x0000: "Null",
	0x0001: "Start of Heading",
	0x0002: "Start of Text",
	0x0003: "End of Text",
	0x0004: "End of Transmission",
	0x0005: "Enquiry",
	0x0006: "Acknowledge",
	0x0007: "Bell",
	0x0008: "Backspace",
	0x0009: "Tab",
	0x000A: "Line Feed",
	0x000B: "Vertical Tab",
	0x000C: "Form Feed",
	0x000D: "Carriage Return",
	0x000E: "Shift Out",
	0x000F: "Shift In",
	0x0010: "Data Link Escape",
	0x0011: "Device Control 1",
	0x0012: "Device Control 2",
	0x0013: "Device Control 3",
	0x0014: "Device Control 4",
	0x0015: "Negative Acknowledge",
	0x0016: "Synchronous Idle",
	0x0017: "End of Transmission Block",
	0x0018: "Cancel",
	0x0019: "End of Medium",
	0x001A: "Substitute",
	0x001B: "Escape",
	0x001C: "File Separator",
	0x001D: "Group Separator",
	0x001E: "Record Separator",
	0x001F: "Unit Separator",
	0x0020: "Space",
	0x007F: "Delete",
	0x00A0: "Non-breaking Space",
	0x00AD: "Soft Hyphen",
	0x2000: "En Quad",
	0x2001: "Em Quad",
	0x2002: "En Space",
	0x2003: "Em Space",
	0x2004: "Three-per-em Space",
	0x2005: "Four-per-em Space",
	0x2006: "Six-per-em Space",
	0x2007: "Figure Space",
	0x2008: "Punctuation Space",
	0x2009: "Thin Space",
	0x200A: "Hair Space",
	0x200B: "Zero Width Space",
	0x200C: "Zero Width Non-joiner",
	0x200D: "Zero Width Joiner",
	0x200E: "Left-to-right Mark",
	0x200F: "Right-to-left Mark",
	0x2028: "Line Separator",
	0x2029: "Paragraph Separator",
	0x202A: "Left-to-right Embedding",
	0x202B: "Right-to-left Embedding",
	0x202C: "Pop Directional Formatting",
	0x202D: "Left-to-right Override",
	0x202E: "Right-to-left Override",
	0x202F: "Narrow No-break Space",
	0x205F: "Medium Mathematical Space",
	0x2060: "Word Joiner",
	0x2061: "Function Application",
	0x2062: "Invisible Times",
	0x2063: "Invisible Separator",
	0x2064: "Invisible Plus",
	0x2066: "Left-to-right Isolate",
	0x2067: "Right-to-left Isolate",
	0x2068: "First Strong Isolate",
	0x2069: "Pop Directional Isolate",
	0x206A: "Inhibit Symmetric Swapping",
	0x206B: "Activate Symmetric Swapping",
	0x206C: "Inhibit Arabic Form Shaping",
	0x206D: "Activate Arabic Form Shaping",
	0x206E: "National Digit Shapes",
	0x206F: "Nominal Digit Shapes",
	0xFEFF: "Zero Width No-break Space",
	0xFFF9: "Interlinear Annotation Anchor",
	0xFFFA: "Interlinear Annotation Separator",
	0xFFFB: "Interlinear Annotation Terminator",
	0xFFFC: "Object Replacement Character",
	0xFFFD: "Replacement Character",

	// Private-use-area extensions found in emoji-icon-font.ttf.
	0xFE4E5: "Flag Japan",
	0xFE4E6: "Flag USA",
	0xFE4E7: "Flag",
	0xFE4E8: "Flag",
	0xFE4E9: "Flag",
	0xFE4EA: "Flag Great Britain",
	0xFE4EB: "Flag",
	0xFE4EC: "Flag",
	0xFE4ED: "Flag",
	0xFE4EE: "Flag South Korea",
	0xFE82C: "Number Sign in Square",
	0xFE82E: "Digit One in Square",
	0xFE82F: "Digit Two in Square",
	0xFE830: "Digit Three in Square",
	0xFE831: "Digit Four in Square",
	0xFE832: "Digit Five in Square",
	0xFE833: "Digit Six in Square",
	0xFE834: "Digit Seven in Square",
	0xFE835: "Digit Eight in Square",
	0xFE836: "Digit Nine in Square",
	0xFE837: "Digit Zero in Square",

	// Legacy symbol codepoints found in Ubuntu-Light.ttf.
	0xF000: "Uni F000",
	0xF001: "Fi Ligature",
	0xF002: "Fl Ligature",
	0xF506: "One Seventh",
	0xF507: "Two Sevenths",
	0xF508: "Three Sevenths",
	0xF509: "Four Sevenths",
	0xF50A: "Five Sevenths",
	0xF50B: "Six Sevenths",
	0xF50C: "One Ninth",
	0xF50D: "Two Ninths",
	0xF50E: "Four Ninths",
	0xF50F: "Five Ninths",
	0xF510: "Seven Ninths",
	0xF511: "Eight Ninths",
	0xF8FF: "Apple Logo",
}

// aglNames is a small subset of the Adobe glyph list covering
// corporate-use codepoints with no standard Unicode name. Glyph names
// from the font source take precedence over this table.
var aglNames = map[rune]string{
	0xF6BE: "dotlessj",
	0xF6C3: "commaaccent",
	0xF6D9: "copyrightserif",
	0xF6DA: "registerserif",
	0xF6DB: "trademarkserif",
	0xF8E5: "radicalex",
	0xF8E6: "arrowvertex",
	0xF8E7: "arrowhorizex",
}
