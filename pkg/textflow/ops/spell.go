package ops

import (
	"strings"
	"unicode"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

// spellCheck corrects tokens found in the misspelling map, preserving the
// original capitalization pattern and any surrounding punctuation.
// Unregistered words pass through untouched; this is a fixed-vocabulary
// corrector, not a real spell checker.
func spellCheck(in Input, _ Params, lex *lexicon.Lexicon) string {
	return SpellCheckText(in.Text, lex)
}

// SpellCheckText corrects prose token by token, exported for the CLI.
func SpellCheckText(text string, lex *lexicon.Lexicon) string {
	if blank(text) {
		return ""
	}

	fields := strings.Fields(text)
	for i, tok := range fields {
		prefix, core, suffix := splitToken(tok)
		if core == "" {
			continue
		}
		fixed, ok := lex.Correction(core)
		if !ok {
			continue
		}
		if startsUpper(core) {
			fixed = capitalizeWord(fixed)
		}
		fields[i] = prefix + fixed + suffix
	}
	return strings.Join(fields, " ")
}

// splitToken separates a token into leading non-word characters, the core
// word, and trailing non-word characters.
func splitToken(tok string) (prefix, core, suffix string) {
	runes := []rune(tok)
	start := 0
	for start < len(runes) && !isWordRune(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !isWordRune(runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '\''
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func capitalizeWord(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
