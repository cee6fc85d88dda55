package constraints

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// modifierRule pairs a content pattern with prepend candidates used to grow a
// short headline. The first candidate not already present whose addition stays
// within HeadlineMax is chosen.
type modifierRule struct {
	pattern    *regexp.Regexp
	candidates []string
}

var headlineModifierRules = []modifierRule{
	{
		pattern:    regexp.MustCompile(`(?i)\b(apartment|apartments|apt|apts|unit|units)\b`),
		candidates: []string{"Luxury", "Modern", "Spacious", "Premium"},
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(home|homes|living)\b`),
		candidates: []string{"Beautiful", "Comfortable", "Stylish"},
	},
	{
		pattern:    regexp.MustCompile(`(?i)\b(community|residences)\b`),
		candidates: []string{"Vibrant", "Welcoming", "Exclusive"},
	},
}

// headlineSuffixes are short marketing tails tried when modifiers are not enough
var headlineSuffixes = []string{
	" - Available Now",
	" - Tour Today",
	" - Move In Ready",
	" - Call Now",
}

// impactWords are appended one at a time as a last expansion resort
var impactWords = []string{"Now", "Here", "Today", "Ready"}

// headlineAbbreviations substitute longer forms for standard short ones.
// Applied in table order, repeatedly, until the headline fits.
var headlineAbbreviations = []struct{ long, short string }{
	{" Avenue", " Ave"},
	{" Boulevard", " Blvd"},
	{" Street", " St"},
	{" Apartments", " Apts"},
	{" Apartment", " Apt"},
	{" Bedroom", " BR"},
	{" and ", " & "},
}

// headlineFillers are removable marketing filler words, lowest-value first
var headlineFillers = []string{
	" Available",
	" Community",
	" Beautiful",
	" Stunning",
	" Amazing",
	" Spacious",
	" Brand New",
}

// headlineStopWords may be dropped when the headline still has enough words
var headlineStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "in": true,
	"at": true, "of": true, "for": true, "with": true,
}

// minWordsAfterStopRemoval guards against degenerate output
const minWordsAfterStopRemoval = 3

// expandHeadline grows a headline below HeadlineMin toward the bounds without
// ever exceeding HeadlineMax. Returns the expanded text and whether the
// minimum was reached; a false second return marks a best-effort result.
func expandHeadline(text string) (string, bool) {
	// Pass 1: contextual modifiers
	for _, rule := range headlineModifierRules {
		if len(text) >= HeadlineMin {
			return text, true
		}
		if !rule.pattern.MatchString(text) {
			continue
		}
		for _, candidate := range rule.candidates {
			if containsFold(text, candidate) {
				continue
			}
			if len(candidate)+1+len(text) <= HeadlineMax {
				text = candidate + " " + text
				break
			}
		}
	}
	if len(text) >= HeadlineMin {
		return text, true
	}

	// Pass 2: generic marketing suffixes
	for _, suffix := range headlineSuffixes {
		if len(text)+len(suffix) <= HeadlineMax {
			candidate := text + suffix
			if len(candidate) >= HeadlineMin {
				return candidate, true
			}
			text = candidate
			break
		}
	}

	// Pass 3: single impact words
	for _, word := range impactWords {
		if len(text) >= HeadlineMin {
			return text, true
		}
		if len(text)+1+len(word) <= HeadlineMax && !containsFold(text, word) {
			text = text + " " + word
		}
	}

	if len(text) >= HeadlineMin {
		return text, true
	}
	// Best effort: nothing more fits under the maximum
	if len(text) > HeadlineMax {
		text = text[:HeadlineMax]
	}
	return text, false
}

// shortenHeadline reduces a headline above HeadlineMax into bounds.
// Passes run in order of least meaning lost: abbreviation substitution,
// filler removal, guarded stop-word removal, then word-boundary truncation.
func shortenHeadline(text string) string {
	// Pass 1: abbreviations
	for _, abbr := range headlineAbbreviations {
		if len(text) <= HeadlineMax {
			return text
		}
		text = strings.ReplaceAll(text, abbr.long, abbr.short)
	}
	if len(text) <= HeadlineMax {
		return text
	}

	// Pass 2: filler removal
	for _, filler := range headlineFillers {
		if len(text) <= HeadlineMax {
			return text
		}
		text = removeFold(text, filler)
	}
	if len(text) <= HeadlineMax {
		return text
	}

	// Pass 3: stop-word removal, guarded by a minimum word count
	words := strings.Fields(text)
	for i := 0; i < len(words) && len(strings.Join(words, " ")) > HeadlineMax; i++ {
		if headlineStopWords[strings.ToLower(words[i])] && len(words)-1 > minWordsAfterStopRemoval {
			words = append(words[:i], words[i+1:]...)
			i--
		}
	}
	text = strings.Join(words, " ")
	if len(text) <= HeadlineMax {
		return text
	}

	// Pass 4: word-boundary truncation
	return truncateAtWords(text, HeadlineMax)
}

// truncateAtWords keeps whole words while the running length stays within max.
// If not even the first word fits, hard-truncate and append an ellipsis.
func truncateAtWords(text string, max int) string {
	words := strings.Fields(text)
	var b strings.Builder
	for _, word := range words {
		extra := len(word)
		if b.Len() > 0 {
			extra++
		}
		if b.Len()+extra > max {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	if b.Len() == 0 {
		cut := max - len(ellipsis)
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		return text[:cut] + ellipsis
	}
	return b.String()
}

// containsFold reports whether text contains sub case-insensitively
func containsFold(text, word string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(word))
}

// removeFold removes every case-insensitive occurrence of sub from text
func removeFold(text, sub string) string {
	lowered := strings.ToLower(text)
	loweredSub := strings.ToLower(sub)
	for {
		idx := strings.Index(lowered, loweredSub)
		if idx < 0 {
			return text
		}
		text = text[:idx] + text[idx+len(sub):]
		lowered = lowered[:idx] + lowered[idx+len(loweredSub):]
	}
}
