package ops

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

var (
	punctTrailRe = regexp.MustCompile(`([,.!?;:])\s*`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	afterSentRe  = regexp.MustCompile(`([.!?]\s+)([a-z])`)
	lonePronoun  = regexp.MustCompile(`\bi\b`)
)

// correctGrammar applies a deterministic rule chain. Rule order matters:
// punctuation spacing is normalized before capitalization-after-punctuation
// so the sentence boundary the capitalizer looks for actually exists.
func correctGrammar(in Input, _ Params, _ *lexicon.Lexicon) string {
	return CorrectGrammarText(in.Text)
}

// CorrectGrammarText fixes casing, punctuation spacing, and the standalone
// pronoun "i", exported for the CLI.
func CorrectGrammarText(text string) string {
	if blank(text) {
		return ""
	}

	// 1. No space before punctuation, exactly one after.
	result := punctGapRe.ReplaceAllString(text, "$1")
	result = punctTrailRe.ReplaceAllString(result, "$1 ")

	// 2. Collapse repeated whitespace.
	result = multiSpaceRe.ReplaceAllString(result, " ")
	result = strings.TrimSpace(result)

	// 3. Capitalize the first letter.
	result = capitalizeFirst(result)

	// 4. Capitalize after sentence-ending punctuation.
	result = afterSentRe.ReplaceAllStringFunc(result, strings.ToUpper)

	// 5. The pronoun "i" and its contractions ("i'm" becomes "I'm" because
	// the apostrophe is a word boundary).
	result = lonePronoun.ReplaceAllString(result, "I")

	// 6. Terminal punctuation.
	if result != "" && !strings.ContainsRune(".!?", rune(result[len(result)-1])) {
		result += "."
	}
	return result
}

func capitalizeFirst(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			if i == 0 && unicode.IsLower(r) {
				return string(unicode.ToUpper(r)) + s[len(string(r)):]
			}
			break
		}
		break
	}
	return s
}
