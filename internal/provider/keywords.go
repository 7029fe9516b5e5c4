package provider

import (
	"fmt"
	"regexp"
	"strings"
)

// NewKeywordMatcher compiles a case-insensitive whole-word matcher for the
// configured keyword list. An article is kept only when its title or
// content matches.
func NewKeywordMatcher(keywords []string) (*regexp.Regexp, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("keyword list is empty")
	}
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(k))
	}
	if len(quoted) == 0 {
		return nil, fmt.Errorf("keyword list is empty")
	}
	return regexp.Compile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}
