// Package language detects the dominant language of a sample and runs the
// bounded translate-to-English stage over a table's target column.
package language

import (
	"strings"
	"unicode"
)

// English is the pipeline's working language; detection fails open to it.
const English = "en"

// confidenceThreshold is the minimum marker-word hit count for a language
// to be considered detected at all. Short or mixed samples below it are
// treated as English.
const confidenceThreshold = 2

// detectionOrder fixes tie-breaking: the earlier language wins on equal
// hit counts, which biases ambiguous samples toward English.
var detectionOrder = []string{"en", "es", "fr", "de", "it", "pt"}

// markers are high-frequency function words per language. Lists are short
// on purpose: detection only has to separate "clearly not English" from
// the rest, not classify precisely.
var markers = map[string]map[string]struct{}{
	"en": wordSet("the and is of to in it you that for with was this have are not be on as at"),
	"es": wordSet("el la los las de que es en un una por con para muy pero esta este como más y no se del"),
	"fr": wordSet("le la les des une est et dans que pour avec sur pas vous je nous ce il ne au du"),
	"de": wordSet("der die das und ist nicht ein eine mit für auf ich sie zu den im von sehr aber war"),
	"it": wordSet("il lo gli di che per con una sono questo della più non si ma come anche nel alla"),
	"pt": wordSet("o os as um uma de que em para com não por mas como uma os seu ela isso são"),
}

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// Detect returns the dominant language code of the sample. Detection never
// fails: inconclusive or empty samples return English so the pipeline can
// proceed without translation.
func Detect(sample string) string {
	words := tokenizeWords(sample)
	if len(words) == 0 {
		return English
	}

	hits := make(map[string]int, len(markers))
	for _, w := range words {
		for lang, set := range markers {
			if _, ok := set[w]; ok {
				hits[lang]++
			}
		}
	}

	best := English
	bestHits := 0
	for _, lang := range detectionOrder {
		if hits[lang] > bestHits {
			best, bestHits = lang, hits[lang]
		}
	}
	if bestHits < confidenceThreshold {
		return English
	}
	return best
}

// tokenizeWords lowercases and splits on non-letter runes.
func tokenizeWords(s string) []string {
	var words []string
	var current strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			current.WriteRune(unicode.ToLower(r))
			continue
		}
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}
