package ops

import (
	"fmt"
	"sort"
	"strings"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

// chunkSize is the row-block size used for the tabular "chunk" count.
const chunkSize = 10

// summarize produces an extractive summary: sentences ranked by the sum of
// their non-stopword frequencies normalized by sentence length, the top N
// re-ordered to original position. Inputs with no more sentences than N
// come back unchanged.
func summarize(in Input, p Params, lex *lexicon.Lexicon) string {
	if in.Tabular() {
		return summarizeTable(in)
	}
	return SummarizeText(in.Text, p.NumSentences, lex)
}

// SummarizeText is the text-mode summarizer, exported for the CLI.
func SummarizeText(text string, numSentences int, lex *lexicon.Lexicon) string {
	if blank(text) {
		return ""
	}

	sentences := sentencesOf(text)
	if len(sentences) <= numSentences {
		return text
	}

	freq := make(map[string]int)
	for _, w := range wordsOf(text) {
		if !lex.IsStop(w) {
			freq[w]++
		}
	}

	type ranked struct {
		index int
		score float64
	}
	scores := make([]ranked, len(sentences))
	for i, s := range sentences {
		ws := wordsOf(s)
		var sum int
		for _, w := range ws {
			sum += freq[w]
		}
		var score float64
		if len(ws) > 0 {
			score = float64(sum) / float64(len(ws))
		}
		scores[i] = ranked{index: i, score: score}
	}

	// Highest score first; equal scores keep the earlier sentence.
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})
	top := scores[:numSentences]
	sort.Slice(top, func(a, b int) bool { return top[a].index < top[b].index })

	parts := make([]string, len(top))
	for i, r := range top {
		parts[i] = sentences[r.index]
	}
	summary := strings.Join(parts, ". ")
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}

// summarizeTable reports dataset shape: row count, chunk count, and the
// mean of every numeric non-id column.
func summarizeTable(in Input) string {
	rows := in.Table.RowCount()
	chunks := (rows + chunkSize - 1) / chunkSize

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dataset of %d rows in %d chunk(s) of up to %d.", rows, chunks, chunkSize)

	means := in.Table.NumericMeans()
	var parts []string
	for _, name := range in.Table.ColumnNames() {
		if mean, ok := means[name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%.2f", name, mean))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(&sb, " Numeric column means: %s.", strings.Join(parts, ", "))
	}
	return sb.String()
}
