package classify

import "sort"

// Block is a named contiguous interval of codepoints as defined by the
// Unicode standard.
type Block struct {
	Name string
	Range
}

// blocks holds the Unicode blocks this tool knows about, ordered by
// starting codepoint. Not the full standard inventory: the table covers
// the blocks the default categories draw from plus the common BMP and SMP
// blocks a glyph browser is likely to meet. Lookups outside the table
// simply report no block.
var blocks = []Block{
	{"Basic Latin", Range{0x0000, 0x007F}},
	{"Latin-1 Supplement", Range{0x0080, 0x00FF}},
	{"Latin Extended-A", Range{0x0100, 0x017F}},
	{"Latin Extended-B", Range{0x0180, 0x024F}},
	{"IPA Extensions", Range{0x0250, 0x02AF}},
	{"Spacing Modifier Letters", Range{0x02B0, 0x02FF}},
	{"Combining Diacritical Marks", Range{0x0300, 0x036F}},
	{"Greek and Coptic", Range{0x0370, 0x03FF}},
	{"Cyrillic", Range{0x0400, 0x04FF}},
	{"Cyrillic Supplement", Range{0x0500, 0x052F}},
	{"Armenian", Range{0x0530, 0x058F}},
	{"Hebrew", Range{0x0590, 0x05FF}},
	{"Arabic", Range{0x0600, 0x06FF}},
	{"Devanagari", Range{0x0900, 0x097F}},
	{"Thai", Range{0x0E00, 0x0E7F}},
	{"Georgian", Range{0x10A0, 0x10FF}},
	{"Hangul Jamo", Range{0x1100, 0x11FF}},
	{"Latin Extended Additional", Range{0x1E00, 0x1EFF}},
	{"Greek Extended", Range{0x1F00, 0x1FFF}},
	{"General Punctuation", Range{0x2000, 0x206F}},
	{"Superscripts and Subscripts", Range{0x2070, 0x209F}},
	{"Currency Symbols", Range{0x20A0, 0x20CF}},
	{"Combining Diacritical Marks for Symbols", Range{0x20D0, 0x20FF}},
	{"Letterlike Symbols", Range{0x2100, 0x214F}},
	{"Number Forms", Range{0x2150, 0x218F}},
	{"Arrows", Range{0x2190, 0x21FF}},
	{"Mathematical Operators", Range{0x2200, 0x22FF}},
	{"Miscellaneous Technical", Range{0x2300, 0x23FF}},
	{"Control Pictures", Range{0x2400, 0x243F}},
	{"Optical Character Recognition", Range{0x2440, 0x245F}},
	{"Enclosed Alphanumerics", Range{0x2460, 0x24FF}},
	{"Box Drawing", Range{0x2500, 0x257F}},
	{"Block Elements", Range{0x2580, 0x259F}},
	{"Geometric Shapes", Range{0x25A0, 0x25FF}},
	{"Miscellaneous Symbols", Range{0x2600, 0x26FF}},
	{"Dingbats", Range{0x2700, 0x27BF}},
	{"Miscellaneous Mathematical Symbols-A", Range{0x27C0, 0x27EF}},
	{"Supplemental Arrows-A", Range{0x27F0, 0x27FF}},
	{"Braille Patterns", Range{0x2800, 0x28FF}},
	{"Supplemental Arrows-B", Range{0x2900, 0x297F}},
	{"Miscellaneous Mathematical Symbols-B", Range{0x2980, 0x29FF}},
	{"Supplemental Mathematical Operators", Range{0x2A00, 0x2AFF}},
	{"Miscellaneous Symbols and Arrows", Range{0x2B00, 0x2BFF}},
	{"Latin Extended-C", Range{0x2C60, 0x2C7F}},
	{"Supplemental Punctuation", Range{0x2E00, 0x2E7F}},
	{"CJK Symbols and Punctuation", Range{0x3000, 0x303F}},
	{"Hiragana", Range{0x3040, 0x309F}},
	{"Katakana", Range{0x30A0, 0x30FF}},
	{"CJK Unified Ideographs", Range{0x4E00, 0x9FFF}},
	{"Latin Extended-D", Range{0xA720, 0xA7FF}},
	{"Latin Extended-E", Range{0xAB30, 0xAB6F}},
	{"Private Use Area", Range{0xE000, 0xF8FF}},
	{"Alphabetic Presentation Forms", Range{0xFB00, 0xFB4F}},
	{"Specials", Range{0xFFF0, 0xFFFF}},
	{"Linear B Syllabary", Range{0x10000, 0x1007F}},
	{"Latin Extended-F", Range{0x10780, 0x107BF}},
	{"Byzantine Musical Symbols", Range{0x1D000, 0x1D0FF}},
	{"Musical Symbols", Range{0x1D100, 0x1D1FF}},
	{"Ancient Greek Musical Notation", Range{0x1D200, 0x1D24F}},
	{"Mathematical Alphanumeric Symbols", Range{0x1D400, 0x1D7FF}},
	{"Latin Extended-G", Range{0x1DF00, 0x1DFFF}},
	{"Mahjong Tiles", Range{0x1F000, 0x1F02F}},
	{"Domino Tiles", Range{0x1F030, 0x1F09F}},
	{"Playing Cards", Range{0x1F0A0, 0x1F0FF}},
	{"Enclosed Alphanumeric Supplement", Range{0x1F100, 0x1F1FF}},
	{"Miscellaneous Symbols and Pictographs", Range{0x1F300, 0x1F5FF}},
	{"Emoticons", Range{0x1F600, 0x1F64F}},
	{"Ornamental Dingbats", Range{0x1F650, 0x1F67F}},
	{"Transport and Map Symbols", Range{0x1F680, 0x1F6FF}},
	{"Alchemical Symbols", Range{0x1F700, 0x1F77F}},
	{"Geometric Shapes Extended", Range{0x1F780, 0x1F7FF}},
	{"Supplemental Arrows-C", Range{0x1F800, 0x1F8FF}},
	{"Supplemental Symbols and Pictographs", Range{0x1F900, 0x1F9FF}},
	{"Chess Symbols", Range{0x1FA00, 0x1FA6F}},
	{"Symbols and Pictographs Extended-A", Range{0x1FA70, 0x1FAFF}},
	{"Symbols for Legacy Computing", Range{0x1FB00, 0x1FBFF}},
	{"Supplementary Private Use Area-A", Range{0xF0000, 0xFFFFD}},
	{"Supplementary Private Use Area-B", Range{0x100000, 0x10FFFD}},
}

// FindBlock returns the Unicode block containing r.
func FindBlock(r rune) (Block, bool) {
	// First block starting beyond r; the candidate is its predecessor.
	i := sort.Search(len(blocks), func(i int) bool { return blocks[i].Lo > r })
	if i == 0 {
		return Block{}, false
	}
	b := blocks[i-1]
	if !b.Contains(r) {
		return Block{}, false
	}
	return b, true
}

// blockByName returns the named block from the table. It panics on an
// unknown name; the default category tables below are the only callers.
func blockByName(name string) Block {
	for _, b := range blocks {
		if b.Name == name {
			return b
		}
	}
	panic("classify: unknown block " + name)
}
