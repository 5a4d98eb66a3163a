// Package textstat derives basic descriptive statistics from free text.
package textstat

import (
	"math"
	"regexp"
	"strings"
)

var (
	wordRe     = regexp.MustCompile(`\w+`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
)

// Stats summarizes a text's shape.
type Stats struct {
	Characters        int     `json:"characters"`
	CharactersNoSpace int     `json:"characters_no_spaces"`
	Words             int     `json:"words"`
	Sentences         int     `json:"sentences"`
	Paragraphs        int     `json:"paragraphs"`
	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

// Compute returns statistics for the text. Empty or whitespace-only input
// yields the zero value.
func Compute(text string) Stats {
	if strings.TrimSpace(text) == "" {
		return Stats{}
	}

	words := wordRe.FindAllString(text, -1)

	var sentences int
	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	var paragraphs int
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	st := Stats{
		Characters:        len([]rune(text)),
		CharactersNoSpace: len([]rune(strings.ReplaceAll(text, " ", ""))),
		Words:             len(words),
		Sentences:         sentences,
		Paragraphs:        paragraphs,
	}
	if len(words) > 0 {
		var total int
		for _, w := range words {
			total += len([]rune(w))
		}
		st.AvgWordLength = round2(float64(total) / float64(len(words)))
	}
	if sentences > 0 {
		st.AvgSentenceLength = round2(float64(len(words)) / float64(sentences))
	}
	return st
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
