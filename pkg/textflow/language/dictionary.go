package language

import (
	"context"
	"strings"
	"unicode"
)

// DictionaryTranslator is the built-in provider: word-by-word substitution
// from small per-language glossaries. It exists so the pipeline works
// offline; swap in a real provider through the Stage's Translator field
// for anything resembling translation quality.
type DictionaryTranslator struct {
	glossaries map[string]map[string]string
}

// NewDictionaryTranslator returns a translator covering the languages the
// detector knows. Unknown words and unknown languages pass through.
func NewDictionaryTranslator() *DictionaryTranslator {
	return &DictionaryTranslator{glossaries: map[string]map[string]string{
		"es": {
			"el": "the", "la": "the", "los": "the", "las": "the",
			"es": "is", "son": "are", "y": "and", "pero": "but",
			"muy": "very", "no": "not", "un": "a", "una": "a",
			"de": "of", "en": "in", "con": "with", "para": "for",
			"bueno": "good", "buena": "good", "malo": "bad", "mala": "bad",
			"excelente": "excellent", "terrible": "terrible",
			"producto": "product", "servicio": "service",
			"este": "this", "esta": "this", "que": "that",
		},
		"fr": {
			"le": "the", "la": "the", "les": "the", "des": "the",
			"est": "is", "sont": "are", "et": "and", "mais": "but",
			"très": "very", "pas": "not", "un": "a", "une": "a",
			"de": "of", "dans": "in", "avec": "with", "pour": "for",
			"bon": "good", "bonne": "good", "mauvais": "bad",
			"excellent": "excellent", "produit": "product",
			"service": "service", "ce": "this", "cette": "this",
		},
		"de": {
			"der": "the", "die": "the", "das": "the",
			"ist": "is", "sind": "are", "und": "and", "aber": "but",
			"sehr": "very", "nicht": "not", "ein": "a", "eine": "a",
			"von": "of", "in": "in", "mit": "with", "für": "for",
			"gut": "good", "schlecht": "bad", "produkt": "product",
		},
	}}
}

// Translate substitutes known words and keeps everything else, preserving
// the original token order and trailing punctuation.
func (d *DictionaryTranslator) Translate(ctx context.Context, text, sourceLang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	glossary, ok := d.glossaries[sourceLang]
	if !ok {
		return text, nil
	}

	fields := strings.Fields(text)
	for i, f := range fields {
		core := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if core == "" {
			continue
		}
		repl, ok := glossary[strings.ToLower(core)]
		if !ok {
			continue
		}
		if isCapitalized(core) {
			repl = capitalize(repl)
		}
		fields[i] = strings.Replace(f, core, repl, 1)
	}
	return strings.Join(fields, " "), nil
}

func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
