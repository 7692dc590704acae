package narration

import "strings"

var markupReplacer = strings.NewReplacer(
	"**", "",
	"__", "",
	"*", "",
	"_", " ",
	"#", "",
	"`", "",
	"~~", "",
)

// SanitizeForSpeech strips markup punctuation (bold/italic markers, heading
// markers, code fences) that generated slide text sometimes carries. The
// cloud backend tolerates everything else.
func SanitizeForSpeech(text string) string {
	return strings.TrimSpace(markupReplacer.Replace(text))
}

// SanitizeForLocalModel additionally strips emoji and symbol code points and
// collapses whitespace runs. The local model mispronounces or errors on
// glyphs outside its training alphabet.
func SanitizeForLocalModel(text string) string {
	text = SanitizeForSpeech(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isUnspeakable(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isUnspeakable(r rune) bool {
	switch {
	case r >= 0x1F000: // emoji, pictographs, supplementary symbols
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r >= 0x2190 && r <= 0x2BFF: // arrows, technical, geometric shapes
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r == 0x200D: // zero-width joiner
		return true
	}
	return false
}
