package classifier

import (
	"context"
	"strings"
)

var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "amazing": true,
	"wonderful": true, "fantastic": true, "positive": true, "bullish": true,
	"surge": true, "rally": true, "gain": true, "profit": true, "rise": true,
	"increase": true, "growth": true, "boom": true, "success": true,
	"breakthrough": true, "adoption": true, "institutional": true,
	"mainstream": true, "купить": true, "рост": true, "позитивный": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "horrible": true,
	"negative": true, "bearish": true, "crash": true, "dump": true,
	"loss": true, "fall": true, "decline": true, "drop": true,
	"collapse": true, "ban": true, "regulation": true, "scam": true,
	"hack": true, "theft": true, "продать": true, "падение": true,
	"негативный": true, "кризис": true, "запрет": true,
}

var negationWords = map[string]bool{
	"not": true, "never": true, "нет": true, "никогда": true,
}

// Lexicon is the local fallback heuristic: a word-level scan against fixed
// bilingual keyword lists. A word immediately preceded by a negation word
// contributes with flipped sign. Ties count as negative.
type Lexicon struct{}

func NewLexicon() *Lexicon { return &Lexicon{} }

func (c *Lexicon) Classify(_ context.Context, text string) (bool, error) {
	words := strings.Fields(strings.ToLower(text))

	positive, negative := 0, 0
	for i, word := range words {
		negated := i > 0 && negationWords[words[i-1]]
		score := 1
		if negated {
			score = -1
		}
		if positiveWords[word] {
			positive += score
		}
		if negativeWords[word] {
			negative += score
		}
	}

	return positive > negative, nil
}
