package ops

import (
	"fmt"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

// Classification thresholds for text-mode sentiment.
const (
	positiveCutoff = 0.05
	negativeCutoff = -0.05
)

// analyzeSentiment labels input Positive/Negative/Neutral. Text mode uses
// token-level lexicon scores normalized by total token count; tabular mode
// reuses the dataset average from the scoring stage.
func analyzeSentiment(in Input, _ Params, lex *lexicon.Lexicon) string {
	if in.Tabular() {
		return sentimentTable(in)
	}
	return SentimentText(in.Text, lex)
}

// SentimentText scores prose, exported for the CLI.
func SentimentText(text string, lex *lexicon.Lexicon) string {
	if blank(text) {
		return "Neutral (0.000)"
	}

	words := wordsOf(text)
	var total float64
	var hits int
	for _, w := range words {
		if score, ok := lex.SentimentScore(w); ok {
			total += score
			hits++
		}
	}

	var avg float64
	if hits > 0 && len(words) > 0 {
		avg = total / float64(len(words))
	}

	label := "Neutral"
	switch {
	case avg > positiveCutoff:
		label = "Positive"
	case avg < negativeCutoff:
		label = "Negative"
	}
	return fmt.Sprintf("%s (%.3f)", label, avg)
}

// sentimentTable labels the dataset by the precomputed row-score average
// (zero boundary) and reports how many rows carried any signal.
func sentimentTable(in Input) string {
	label := "Neutral"
	switch {
	case in.AvgScore > 0:
		label = "Positive"
	case in.AvgScore < 0:
		label = "Negative"
	}

	var hits int
	for _, s := range in.Scores {
		if s != 0 {
			hits++
		}
	}
	return fmt.Sprintf("%s (avg %.2f): %d of %d rows carried sentiment",
		label, in.AvgScore, hits, len(in.Scores))
}
