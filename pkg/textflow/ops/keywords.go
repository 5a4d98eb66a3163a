package ops

import (
	"sort"
	"strings"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

// extractKeywords returns the top-N most frequent terms. Text mode counts
// word tokens after dropping stopwords and short tokens; tabular mode
// counts whole values of the working column.
func extractKeywords(in Input, p Params, lex *lexicon.Lexicon) string {
	if in.Tabular() {
		values, ok := in.Table.Column(in.WorkingColumn)
		if !ok {
			return ""
		}
		return topFrequent(values, p.TopN)
	}
	return KeywordsText(in.Text, p.TopN, lex)
}

// KeywordsText extracts keywords from prose, exported for the CLI.
func KeywordsText(text string, topN int, lex *lexicon.Lexicon) string {
	if blank(text) {
		return ""
	}

	var filtered []string
	for _, w := range wordsOf(text) {
		if len(w) <= 2 || lex.IsStop(w) {
			continue
		}
		filtered = append(filtered, w)
	}
	return topFrequent(filtered, topN)
}

// topFrequent ranks items by frequency, most frequent first, ties broken
// by first-encounter order, and joins the top n with commas.
func topFrequent(items []string, n int) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, item := range items {
		if item == "" {
			continue
		}
		if _, seen := counts[item]; !seen {
			firstSeen[item] = i
			order = append(order, item)
		}
		counts[item]++
	}
	if len(order) == 0 {
		return ""
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if n < len(order) {
		order = order[:n]
	}
	return strings.Join(order, ", ")
}
