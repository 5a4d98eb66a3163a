package ops

import (
	"strings"
	"unicode"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

// convertCase rewrites the text in the requested case variant. Unknown
// variants return the text unchanged.
func convertCase(in Input, p Params, _ *lexicon.Lexicon) string {
	return ConvertCaseText(in.Text, p.CaseType)
}

// ConvertCaseText applies one case variant, exported for the CLI. Variant
// names accept both the short form ("camel") and the styled form
// ("camelCase", "snake_case", "kebab-case").
func ConvertCaseText(text, caseType string) string {
	if blank(text) {
		return ""
	}

	switch normalizeCaseType(caseType) {
	case "lower":
		return strings.ToLower(text)
	case "upper":
		return strings.ToUpper(text)
	case "title":
		return titleCase(text)
	case "sentence":
		return sentenceCase(text)
	case "toggle":
		return toggleCase(text)
	case "camel":
		return camelCase(text)
	case "snake":
		return joinWords(text, "_")
	case "kebab":
		return joinWords(text, "-")
	}
	return text
}

func normalizeCaseType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "camelcase", "camel":
		return "camel"
	case "snake_case", "snake":
		return "snake"
	case "kebab-case", "kebab":
		return "kebab"
	default:
		return strings.ToLower(strings.TrimSpace(t))
	}
}

// titleCase capitalizes the first letter of every word.
func titleCase(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	startOfWord := true
	for _, r := range text {
		if unicode.IsLetter(r) {
			if startOfWord {
				sb.WriteRune(unicode.ToUpper(r))
			} else {
				sb.WriteRune(unicode.ToLower(r))
			}
			startOfWord = false
		} else {
			sb.WriteRune(r)
			startOfWord = true
		}
	}
	return sb.String()
}

// sentenceCase lowercases everything, then capitalizes the first letter
// and every letter following sentence-ending punctuation.
func sentenceCase(text string) string {
	lowered := strings.ToLower(text)
	lowered = capitalizeFirst(lowered)
	return afterSentRe.ReplaceAllStringFunc(lowered, strings.ToUpper)
}

// toggleCase inverts the case of each character.
func toggleCase(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsUpper(r):
			sb.WriteRune(unicode.ToLower(r))
		case unicode.IsLower(r):
			sb.WriteRune(unicode.ToUpper(r))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func camelCase(text string) string {
	words := wordRe.FindAllString(text, -1)
	if len(words) == 0 {
		return text
	}
	var sb strings.Builder
	sb.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		sb.WriteString(capitalizeWord(strings.ToLower(w)))
	}
	return sb.String()
}

func joinWords(text, sep string) string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	return strings.Join(words, sep)
}
