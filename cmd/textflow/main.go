// Command textflow runs analysis operations over a file or stdin and
// prints the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/textflow/textflow/pkg/textflow/ops"
	"github.com/textflow/textflow/pkg/textflow/pipeline"
	"github.com/textflow/textflow/pkg/textflow/textstat"
)

func main() {
	var (
		input      = flag.String("input", "", "Input file (default: stdin)")
		operations = flag.String("ops", "Summarization", "Comma-separated operation names")
		sentences  = flag.Int("sentences", 3, "Summary length in sentences")
		topN       = flag.Int("top", 10, "Number of keywords to extract")
		caseType   = flag.String("case", "lower", "Target case for Convert Case")
		targetLang = flag.String("lang", "simple", "Target language for Translation")
		showStats  = flag.Bool("stats", false, "Print text statistics")
		listOps    = flag.Bool("list", false, "List available operations and exit")
	)
	flag.Parse()

	p := pipeline.New(pipeline.Options{})

	if *listOps {
		for _, name := range p.Registry().Names() {
			fmt.Println(name)
		}
		return
	}

	raw, err := readInput(*input)
	if err != nil {
		log.Fatal("read input: ", err)
	}

	var names []string
	for _, name := range strings.Split(*operations, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	prm := ops.Params{
		NumSentences: *sentences,
		TopN:         *topN,
		CaseType:     *caseType,
		TargetLang:   *targetLang,
	}
	params := make(map[string]ops.Params, len(names))
	for _, name := range names {
		params[name] = prm
	}

	out := p.Run(context.Background(), raw, names, params)
	for _, r := range out.Results {
		fmt.Printf("[%s]\n%s\n\n", r.Title, r.Output)
	}
	if out.Stats != nil {
		fmt.Printf("rows=%d chunks=%d avg_score=%.3f alert=%v time=%.3fs\n",
			len(out.Rows), out.Stats.TotalChunks, out.Stats.AvgScore,
			out.Stats.Alert, out.Stats.ProcessingTime)
	}

	if *showStats {
		st := textstat.Compute(raw)
		fmt.Printf("chars=%d words=%d sentences=%d paragraphs=%d avg_word_len=%.2f avg_sentence_len=%.2f\n",
			st.Characters, st.Words, st.Sentences, st.Paragraphs,
			st.AvgWordLength, st.AvgSentenceLength)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
