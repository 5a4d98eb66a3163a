package language

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/textflow/textflow/pkg/textflow/tabular"
)

// Translator converts one cell value into English. Implementations may
// call an external provider; a per-call failure affects only that row.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang string) (string, error)
}

const (
	// DefaultTranslateCap bounds how many rows are translated per request.
	// This is a cost bound, not a fidelity guarantee: rows beyond the cap
	// keep their source text in the derived column.
	DefaultTranslateCap = 30

	// DefaultWorkers bounds the translation fan-out, independent of row
	// count.
	DefaultWorkers = 8

	// sampleRows is how many target-column values feed language detection.
	sampleRows = 5

	// derivedSuffix names the translated column derived from the target.
	derivedSuffix = "_en"
)

// Stage runs detection and bounded translation over a table.
type Stage struct {
	Translator Translator
	Cap        int
	Workers    int
}

// NewStage returns a stage with the default dictionary translator and
// default bounds.
func NewStage() *Stage {
	return &Stage{Translator: NewDictionaryTranslator()}
}

// Result reports what the stage did.
type Result struct {
	// WorkingColumn is the column downstream stages should read: the
	// target column itself for English input, or the derived translated
	// column otherwise.
	WorkingColumn string
	Language      string
	Translated    int
}

// Apply detects the language of the target column's first rows and, for
// non-English input, writes a derived column holding translations of the
// first Cap rows (source text beyond that, and for any row whose
// translation fails). It never fails past detection: per-item faults are
// absorbed, and the returned Result is always usable.
func (s *Stage) Apply(ctx context.Context, table *tabular.Table, targetColumn string) Result {
	values, ok := table.Column(targetColumn)
	if !ok || len(values) == 0 {
		return Result{WorkingColumn: targetColumn, Language: English}
	}

	n := len(values)
	sampleN := sampleRows
	if n < sampleN {
		sampleN = n
	}
	lang := Detect(strings.Join(values[:sampleN], " "))
	if lang == English {
		return Result{WorkingColumn: targetColumn, Language: English}
	}

	limit := s.Cap
	if limit <= 0 {
		limit = DefaultTranslateCap
	}
	workers := s.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	k := limit
	if n < k {
		k = n
	}

	derived := make([]string, n)
	copy(derived, values)

	if s.Translator != nil {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := 0; i < k; i++ {
			i := i
			g.Go(func() error {
				out, err := s.Translator.Translate(ctx, values[i], lang)
				if err == nil && out != "" {
					derived[i] = out
				}
				// A failed item keeps its source text.
				return nil
			})
		}
		g.Wait() // workers never return errors
	}

	name := targetColumn + derivedSuffix
	if err := table.AddColumn(name, derived); err != nil {
		// Column collision: analysis proceeds on the untranslated target.
		return Result{WorkingColumn: targetColumn, Language: lang}
	}
	return Result{WorkingColumn: name, Language: lang, Translated: k}
}
