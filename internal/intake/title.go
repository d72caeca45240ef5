package intake

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTitleLen bounds the byte length of every extracted title.
const MaxTitleLen = 80

// leadInPhrases are boilerplate openers stripped from the front of a title,
// matched case-insensitively. At most one is removed per extraction; when
// several match, the longest wins.
var leadInPhrases = []string{
	"i need to",
	"we need to",
	"need to",
	"please",
	"can you",
	"could you",
	"should",
	"must",
	"have to",
	"remember to",
	"don't forget to",
	"make sure to",
	"todo:",
	"task:",
}

// ExtractTitle derives a concise title from normalized text: first
// sentence-like unit, lead-in phrase stripped, first letter capitalized,
// truncated to MaxTitleLen at a word boundary. It never returns an empty
// string; if the steps above consume everything (pure punctuation input),
// the bounded prefix of the normalized text serves as the title.
func ExtractTitle(text string) string {
	title := firstUnit(text)
	title = stripLeadIn(title)
	title = strings.Join(strings.Fields(title), " ")
	title = capitalizeFirst(title)
	title = truncate(title, MaxTitleLen)

	if title == "" {
		return truncate(text, MaxTitleLen)
	}
	return title
}

// firstUnit returns the first non-empty sentence-like unit, splitting on
// sentence terminators and newlines. The terminator itself is dropped.
func firstUnit(text string) string {
	units := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
	for _, u := range units {
		if s := strings.TrimSpace(u); s != "" {
			return s
		}
	}
	return ""
}

// stripLeadIn removes the longest matching lead-in phrase, if any. A phrase
// only matches at a word boundary, so "should" does not fire on "shoulder".
func stripLeadIn(unit string) string {
	lower := strings.ToLower(unit)
	best := 0
	for _, p := range leadInPhrases {
		if len(p) <= best || !strings.HasPrefix(lower, p) {
			continue
		}
		rest := unit[len(p):]
		if rest != "" && !strings.HasPrefix(rest, " ") && !strings.HasSuffix(p, ":") {
			continue
		}
		best = len(p)
	}
	return strings.TrimSpace(unit[best:])
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// truncate shortens s to at most max bytes. The cut happens at the last
// space that fits, so words are never split; a single word longer than the
// cap is cut hard. No ellipsis is appended.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	i := max
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	cut := s[:i]

	if i < len(s) && s[i] != ' ' {
		if j := strings.LastIndexByte(cut, ' '); j > 0 {
			cut = cut[:j]
		}
	}
	return strings.TrimSpace(cut)
}
