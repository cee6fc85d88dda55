package constraints

import "strings"

// descriptionSuffixes are full marketing sentences appended to grow a short
// description. Each is tried in order; an addition is taken only when it keeps
// the result within DescriptionMax.
var descriptionSuffixes = []string{
	" Experience comfortable living in a prime location.",
	" Schedule your personal tour today.",
	" Contact our leasing team to learn more.",
	" Move-in specials available for a limited time.",
}

// descriptionClosers are short fragments appended as a last expansion resort
var descriptionClosers = []string{
	" Call today.",
	" Tour now.",
	" Apply online.",
}

// verbosePhrases replaces wordy constructions with tighter equivalents
var verbosePhrases = []struct{ long, short string }{
	{"in order to", "to"},
	{"state-of-the-art", "modern"},
	{"each and every", "every"},
	{"a wide variety of", "many"},
	{"is located in", "is in"},
	{"is situated in", "is in"},
	{"brand new", "new"},
	{"at this point in time", "now"},
}

// redundantAdjectives are intensifiers that carry no information
var redundantAdjectives = []string{
	" absolutely",
	" truly",
	" very",
	" really",
	" incredibly",
	" extremely",
}

// expandDescription grows a description below DescriptionMin toward bounds
// without exceeding DescriptionMax. A false second return marks best effort.
func expandDescription(text string) (string, bool) {
	for _, suffix := range descriptionSuffixes {
		if len(text) >= DescriptionMin {
			return text, true
		}
		if len(text)+len(suffix) <= DescriptionMax {
			text += suffix
		}
	}
	for _, closer := range descriptionClosers {
		if len(text) >= DescriptionMin {
			return text, true
		}
		if len(text)+len(closer) <= DescriptionMax {
			text += closer
		}
	}

	if len(text) >= DescriptionMin {
		return text, true
	}
	if len(text) > DescriptionMax {
		text = text[:DescriptionMax]
	}
	return text, false
}

// shortenDescription reduces a description above DescriptionMax into bounds:
// verbose-phrase replacement, redundant-adjective removal, sentence-boundary
// truncation preferring whole sentences, then word truncation with an
// ellipsis fallback.
func shortenDescription(text string) string {
	// Pass 1: verbose phrase replacement
	for _, phrase := range verbosePhrases {
		if len(text) <= DescriptionMax {
			return text
		}
		text = replaceFold(text, phrase.long, phrase.short)
	}
	if len(text) <= DescriptionMax {
		return text
	}

	// Pass 2: redundant adjective removal
	for _, adj := range redundantAdjectives {
		if len(text) <= DescriptionMax {
			return text
		}
		text = removeFold(text, adj)
	}
	if len(text) <= DescriptionMax {
		return text
	}

	// Pass 3: sentence-boundary truncation. Only taken when the kept
	// sentences still satisfy the minimum; otherwise word truncation packs
	// closer to the maximum.
	if truncated, ok := truncateAtSentences(text, DescriptionMax); ok && len(truncated) >= DescriptionMin {
		return truncated
	}

	// Pass 4: word-boundary truncation with ellipsis fallback
	return truncateAtWords(text, DescriptionMax)
}

// truncateAtSentences keeps whole sentences while the running length stays
// within max. Returns false when not even the first sentence fits.
func truncateAtSentences(text string, max int) (string, bool) {
	var b strings.Builder
	start := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		sentence := strings.TrimSpace(text[start : i+1])
		extra := len(sentence)
		if b.Len() > 0 {
			extra++
		}
		if b.Len()+extra > max {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sentence)
		start = i + 1
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

// replaceFold replaces case-insensitive occurrences of long with short
func replaceFold(text, long, short string) string {
	lowered := strings.ToLower(text)
	loweredLong := strings.ToLower(long)
	for {
		idx := strings.Index(lowered, loweredLong)
		if idx < 0 {
			return text
		}
		text = text[:idx] + short + text[idx+len(long):]
		lowered = lowered[:idx] + strings.ToLower(short) + lowered[idx+len(loweredLong):]
	}
}
