package ops

import (
	"fmt"
	"regexp"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

// translate handles the "Translation" operation. The "simple" target
// rewrites complex vocabulary with plain alternatives; any other target is
// a placeholder, since real machine translation lives behind the language
// stage's Translator. Tabular mode reports what the language stage did.
func translate(in Input, p Params, lex *lexicon.Lexicon) string {
	if in.Tabular() {
		if in.Language == "en" {
			return "Detected source language: en. No translation required."
		}
		return fmt.Sprintf(
			"Detected source language: %s. Analysis runs on the English-normalized working column.",
			in.Language)
	}
	return TranslateText(in.Text, p.TargetLang, lex)
}

// TranslateText applies the simplification vocabulary (target "simple") or
// a placeholder for other targets, exported for the CLI.
func TranslateText(text, targetLang string, lex *lexicon.Lexicon) string {
	if blank(text) {
		return ""
	}
	if targetLang != "simple" {
		return fmt.Sprintf("[Translation to %s]: %s", targetLang, text)
	}

	result := text
	for _, pair := range lex.Simplifications() {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(pair[0]) + `\b`)
		if err != nil {
			continue
		}
		result = re.ReplaceAllString(result, pair[1])
	}
	return result
}
