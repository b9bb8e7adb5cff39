package router

import (
	"strings"

	"github.com/hjerpbakk/dipsbot/src/common/types"
)

// KeywordPredicate matches when the message text contains any of its
// keywords, case-insensitively.
type KeywordPredicate struct {
	keywords    []string
	commandText string
}

func NewKeywordPredicate(commandText string, keywords ...string) KeywordPredicate {
	lowered := make([]string, len(keywords))
	for i, keyword := range keywords {
		lowered[i] = strings.ToLower(keyword)
	}
	return KeywordPredicate{keywords: lowered, commandText: commandText}
}

func (p KeywordPredicate) Matches(message types.Message) bool {
	text := strings.ToLower(message.Text)
	for _, keyword := range p.keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func (p KeywordPredicate) CommandText() string {
	return p.commandText
}