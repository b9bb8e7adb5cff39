package maps

import (
	"fmt"
	"strings"
)

// Trigger keywords marking the start of an address phrase, "bike" in the
// two languages the bot understands.
var triggerKeywords = []string{"bike", "sykkel"}

// ExtractAddress locates the address phrase in a chat message. displayText
// is the bot-visible rendering with link markup in <...> syntax; rawText is
// the unprocessed payload, which is sliced for the final result so that
// characters altered by markup resolution come out as the user typed them.
func ExtractAddress(rawText, displayText string) (string, error) {
	cleaned := stripLinkMarkup(displayText)

	keywordIndex, keyword := earliestKeyword(cleaned)
	if keywordIndex == -1 {
		return "", fmt.Errorf("%w: message contains no trigger keyword", ErrAddressNotFound)
	}

	candidate := cleaned[keywordIndex:]
	for _, kw := range triggerKeywords {
		candidate = removeAllFold(candidate, kw)
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", fmt.Errorf("%w: nothing follows keyword %q", ErrAddressNotFound, keyword)
	}

	// Re-locate the cleaned phrase in the display text and slice the same
	// span out of the raw text. The first occurrence wins when the phrase
	// appears more than once.
	start := strings.Index(displayText, candidate)
	end := start + len(candidate)
	if start == -1 || end > len(rawText) {
		return candidate, nil
	}

	return rawText[start:end], nil
}

// stripLinkMarkup removes <...> spans one at a time. An unterminated span
// stops the stripping and the remainder is kept as-is.
func stripLinkMarkup(text string) string {
	for {
		open := strings.IndexByte(text, '<')
		if open == -1 {
			return text
		}
		length := strings.IndexByte(text[open:], '>')
		if length == -1 {
			return text
		}
		text = text[:open] + text[open+length+1:]
	}
}

func earliestKeyword(text string) (int, string) {
	bestIndex := -1
	bestKeyword := ""
	for _, keyword := range triggerKeywords {
		if index := indexFold(text, keyword); index != -1 && (bestIndex == -1 || index < bestIndex) {
			bestIndex = index
			bestKeyword = keyword
		}
	}
	return bestIndex, bestKeyword
}

// indexFold is a case-insensitive strings.Index that reports offsets into
// the original string. The keywords are plain ASCII so a byte-wise scan
// with EqualFold is enough.
func indexFold(text, keyword string) int {
	for i := 0; i+len(keyword) <= len(text); i++ {
		if strings.EqualFold(text[i:i+len(keyword)], keyword) {
			return i
		}
	}
	return -1
}

func removeAllFold(text, keyword string) string {
	for {
		index := indexFold(text, keyword)
		if index == -1 {
			return text
		}
		text = text[:index] + text[index+len(keyword):]
	}
}
