// Package pipeline orchestrates a full analysis request: ingestion,
// language normalization, row scoring, and operation execution. It is the
// single entry point the HTTP layer calls.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/textflow/textflow/pkg/textflow/internalerr"
	"github.com/textflow/textflow/pkg/textflow/language"
	"github.com/textflow/textflow/pkg/textflow/lexicon"
	"github.com/textflow/textflow/pkg/textflow/ops"
	"github.com/textflow/textflow/pkg/textflow/score"
	"github.com/textflow/textflow/pkg/textflow/tabular"
)

// OperationResult is one entry of the response list, in request order.
type OperationResult struct {
	Title   string `json:"title"`
	Output  string `json:"output"`
	Success bool   `json:"success"`
}

// Stats summarizes one pipeline run.
type Stats struct {
	TotalChunks    int     `json:"total_chunks"`
	ProcessingTime float64 `json:"processing_time"`
	Alert          bool    `json:"alert"`
	AvgScore       float64 `json:"avg_score"`
}

// Output is everything a run produces. Rows, Stats, and Scores are nil
// when ingestion fails; Results always has at least one entry.
type Output struct {
	Results  []OperationResult `json:"results"`
	Rows     []string          `json:"rows,omitempty"`
	Stats    *Stats            `json:"stats,omitempty"`
	Scores   []float64         `json:"scores,omitempty"`
	Language string            `json:"language,omitempty"`
}

// chunkSize groups rows into blocks for the total_chunks stat.
const chunkSize = 10

// Options configures a Pipeline. Zero values select the defaults.
type Options struct {
	Lexicon        *lexicon.Lexicon
	Translator     language.Translator
	TranslateCap   int
	ScoreWorkers   int
	AlertThreshold float64
}

// Pipeline holds the per-process stages. It keeps no request state and is
// safe for concurrent use.
type Pipeline struct {
	lex      *lexicon.Lexicon
	registry *ops.Registry
	lang     *language.Stage
	scorer   *score.Scorer
}

// New assembles a pipeline from options.
func New(opts Options) *Pipeline {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	translator := opts.Translator
	if translator == nil {
		translator = language.NewDictionaryTranslator()
	}

	scoreOpts := []score.Option{}
	if opts.ScoreWorkers > 0 {
		scoreOpts = append(scoreOpts, score.WithWorkers(opts.ScoreWorkers))
	}
	if opts.AlertThreshold != 0 {
		scoreOpts = append(scoreOpts, score.WithAlertThreshold(opts.AlertThreshold))
	}

	return &Pipeline{
		lex:      lex,
		registry: ops.NewRegistry(lex),
		lang:     &language.Stage{Translator: translator, Cap: opts.TranslateCap},
		scorer:   score.New(lex, scoreOpts...),
	}
}

// Registry exposes the operation catalog for the HTTP layer.
func (p *Pipeline) Registry() *ops.Registry { return p.registry }

// Lexicon returns the shared lexicon.
func (p *Pipeline) Lexicon() *lexicon.Lexicon { return p.lex }

// invalidData is the single error result an unusable payload produces.
func invalidData() Output {
	return Output{Results: []OperationResult{{
		Title:   "Error",
		Output:  "Invalid Data",
		Success: false,
	}}}
}

// Run executes the requested operations over the raw payload. It never
// returns an error: unusable input yields the documented error result,
// per-operation faults become error entries, and everything else is a
// normal result list. Params are keyed by operation identifier; missing
// entries use the documented defaults.
func (p *Pipeline) Run(ctx context.Context, raw string, operations []string, params map[string]ops.Params) Output {
	start := time.Now()

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return invalidData()
	}

	in, rows, lang, ok := p.ingest(ctx, trimmed)
	if !ok {
		return invalidData()
	}

	scores, avg := p.scorer.ScoreRows(rows)
	in.Scores = scores
	in.AvgScore = avg

	results := make([]OperationResult, 0, len(operations))
	for _, name := range operations {
		results = append(results, p.execute(name, in, params[name]))
	}

	stats := &Stats{
		TotalChunks:    (len(rows) + chunkSize - 1) / chunkSize,
		ProcessingTime: time.Since(start).Seconds(),
		Alert:          p.scorer.Alert(avg),
		AvgScore:       avg,
	}
	return Output{
		Results:  results,
		Rows:     rows,
		Stats:    stats,
		Scores:   scores,
		Language: lang,
	}
}

// ingest classifies the payload. Delimited input becomes a table with a
// selected target column run through the language stage; anything else is
// prose, split into lines for row-level scoring. ok is false only for the
// documented ingest failures (empty input is handled by the caller, so
// here it means a table without a usable text column).
func (p *Pipeline) ingest(ctx context.Context, trimmed string) (in ops.Input, rows []string, lang string, ok bool) {
	table, err := tabular.Parse(trimmed)
	if err == nil {
		target, serr := tabular.SelectTargetColumn(table)
		if serr != nil {
			return ops.Input{}, nil, "", false
		}
		res := p.lang.Apply(ctx, table, target)
		working, _ := table.Column(res.WorkingColumn)
		in = ops.Input{
			Text:          strings.Join(working, "\n"),
			Table:         table,
			WorkingColumn: res.WorkingColumn,
			Language:      res.Language,
		}
		return in, working, res.Language, true
	}
	if !errors.Is(err, internalerr.ErrInvalidData) {
		return ops.Input{}, nil, "", false
	}

	// Prose: the payload itself is the working text; non-empty lines are
	// the scoring rows. Language is detected for reporting but prose is
	// analyzed as-is.
	for _, line := range strings.Split(trimmed, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	sample := rows
	if len(sample) > 5 {
		sample = sample[:5]
	}
	lang = language.Detect(strings.Join(sample, " "))
	in = ops.Input{Text: trimmed, Language: lang}
	return in, rows, lang, true
}

// execute runs one operation, isolating faults: a panicking executor
// becomes an error entry, an unknown identifier becomes an
// acknowledgment, and the batch always continues.
func (p *Pipeline) execute(name string, in ops.Input, prm ops.Params) (result OperationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = OperationResult{
				Title:   name,
				Output:  fmt.Sprintf("Error: %v", r),
				Success: false,
			}
		}
	}()

	output, known := p.registry.Execute(name, in, prm)
	if !known {
		return OperationResult{
			Title:   name,
			Output:  fmt.Sprintf("Processed %s successfully.", name),
			Success: true,
		}
	}
	return OperationResult{Title: name, Output: output, Success: true}
}
