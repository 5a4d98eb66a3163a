package ops

import (
	"strings"
	"unicode"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

// removeStopWords drops alphabetic tokens that are stopwords, keeping
// punctuation tokens, and re-joins with normalized spacing.
func removeStopWords(in Input, _ Params, lex *lexicon.Lexicon) string {
	return RemoveStopWordsText(in.Text, lex)
}

// RemoveStopWordsText filters prose, exported for the CLI.
func RemoveStopWordsText(text string, lex *lexicon.Lexicon) string {
	if blank(text) {
		return ""
	}

	tokens := tokenRe.FindAllString(text, -1)
	kept := tokens[:0]
	for _, tok := range tokens {
		if isAlphabetic(tok) && lex.IsStop(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	result := strings.Join(kept, " ")
	// No space before punctuation.
	result = punctGapRe.ReplaceAllString(result, "$1")
	return strings.TrimSpace(result)
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
