// Package translit renders Brahmic-script text into ITRANS romanization.
// The romanization is best effort: unknown language codes fall back to
// the Devanagari scheme, and characters outside the source script pass
// through unchanged.
package translit

import (
	"strings"
)

// Romanizer is the transliteration boundary. Implementations return the
// empty string when text is empty or the capability cannot handle it.
type Romanizer interface {
	Romanize(text, langCode string) string
}

// IndicRomanizer transliterates Devanagari, Bengali, Tamil and Telugu
// text to ITRANS. The Unicode Indic blocks share the ISCII layout, so a
// single Devanagari table plus a per-script block offset covers all four.
type IndicRomanizer struct{}

// NewIndicRomanizer creates an IndicRomanizer.
func NewIndicRomanizer() *IndicRomanizer {
	return &IndicRomanizer{}
}

// langToBlock maps ISO language codes to the source script's block base.
// Unknown codes fall back to Devanagari; the result is best effort, not
// authoritative.
var langToBlock = map[string]rune{
	"hi": devanagariBase,
	"mr": devanagariBase,
	"ne": devanagariBase,
	"sa": devanagariBase,
	"bn": bengaliBase,
	"ta": tamilBase,
	"te": teluguBase,
}

const (
	devanagariBase rune = 0x0900
	bengaliBase    rune = 0x0980
	tamilBase      rune = 0x0B80
	teluguBase     rune = 0x0C00

	blockSize = 0x80

	offVirama rune = 0x4D
)

// Offsets are relative to the script's block base; the values are the
// ITRANS renderings used by the ISCII-derived schemes.
var independentVowels = map[rune]string{
	0x05: "a", 0x06: "A", 0x07: "i", 0x08: "I", 0x09: "u", 0x0A: "U",
	0x0B: "RRi", 0x0C: "LLi", 0x0E: "e", 0x0F: "e", 0x10: "ai",
	0x12: "o", 0x13: "o", 0x14: "au",
}

var vowelSigns = map[rune]string{
	0x3E: "A", 0x3F: "i", 0x40: "I", 0x41: "u", 0x42: "U",
	0x43: "RRi", 0x44: "RRI", 0x46: "e", 0x47: "e", 0x48: "ai",
	0x4A: "o", 0x4B: "o", 0x4C: "au", 0x62: "LLi",
}

var consonants = map[rune]string{
	0x15: "k", 0x16: "kh", 0x17: "g", 0x18: "gh", 0x19: "~N",
	0x1A: "ch", 0x1B: "Ch", 0x1C: "j", 0x1D: "jh", 0x1E: "~n",
	0x1F: "T", 0x20: "Th", 0x21: "D", 0x22: "Dh", 0x23: "N",
	0x24: "t", 0x25: "th", 0x26: "d", 0x27: "dh", 0x28: "n", 0x29: "n",
	0x2A: "p", 0x2B: "ph", 0x2C: "b", 0x2D: "bh", 0x2E: "m",
	0x2F: "y", 0x30: "r", 0x31: "R", 0x32: "l", 0x33: "L", 0x34: "zh",
	0x35: "v", 0x36: "sh", 0x37: "Sh", 0x38: "s", 0x39: "h",
}

var marks = map[rune]string{
	0x01: ".N", 0x02: "M", 0x03: "H", 0x3D: ".a", 0x50: "OM",
}

// Romanize transliterates text from the script implied by langCode to
// ITRANS. Empty or whitespace-only input yields the empty string.
func (ir *IndicRomanizer) Romanize(text, langCode string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	base, ok := langToBlock[strings.ToLower(langCode)]
	if !ok {
		base = devanagariBase
	}

	runes := []rune(text)
	var b strings.Builder
	romanized := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// Danda and double danda live in the Devanagari block but are
		// shared across scripts.
		if r == 0x0964 {
			b.WriteString("|")
			continue
		}
		if r == 0x0965 {
			b.WriteString("||")
			continue
		}

		if r < base || r >= base+blockSize {
			b.WriteRune(r)
			continue
		}
		off := r - base
		romanized++

		switch {
		case consonants[off] != "":
			b.WriteString(consonants[off])
			// A consonant carries the inherent "a" unless a vowel sign
			// or virama follows.
			if i+1 < len(runes) {
				next := runes[i+1] - base
				if next == offVirama {
					i++
					continue
				}
				if sign, ok := vowelSigns[next]; ok {
					b.WriteString(sign)
					i++
					continue
				}
			}
			b.WriteString("a")
		case independentVowels[off] != "":
			b.WriteString(independentVowels[off])
		case marks[off] != "":
			b.WriteString(marks[off])
		case off >= 0x66 && off <= 0x6F:
			b.WriteRune('0' + (off - 0x66))
		case off == 0x3C || off == 0x4D:
			// Stray nukta or virama with nothing to attach to.
		default:
			b.WriteRune(r)
		}
	}
	// No source-script characters at all means there is nothing to
	// romanize; the empty result tells callers the step did not apply.
	if romanized == 0 {
		return ""
	}
	return b.String()
}
