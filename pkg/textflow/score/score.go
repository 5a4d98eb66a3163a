// Package score computes per-row sentiment scores and the dataset-level
// aggregate driving the alert flag.
package score

import (
	"strings"
	"sync"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

const (
	// DefaultWorkers bounds the scoring pool regardless of row count.
	DefaultWorkers = 12

	// DefaultAlertThreshold: an average row score below this raises the
	// dataset alert flag.
	DefaultAlertThreshold = -0.3
)

// Scorer scores rows against a lexicon's positive/negative term lists.
// Safe for concurrent use: the lexicon is read-only and the scorer holds
// no per-request state.
type Scorer struct {
	lex            *lexicon.Lexicon
	workers        int
	alertThreshold float64
}

// Option tunes a Scorer.
type Option func(*Scorer)

// WithWorkers sets the worker-pool bound.
func WithWorkers(n int) Option {
	return func(s *Scorer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithAlertThreshold overrides the alert cutoff.
func WithAlertThreshold(v float64) Option {
	return func(s *Scorer) { s.alertThreshold = v }
}

// New creates a scorer over the given lexicon.
func New(lex *lexicon.Lexicon, opts ...Option) *Scorer {
	s := &Scorer{
		lex:            lex,
		workers:        DefaultWorkers,
		alertThreshold: DefaultAlertThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreRow scores one value: the count of positive terms occurring as
// substrings of the lowercased value, minus the count of negative terms.
// Substring matching (not word matching) is the intended cheap heuristic.
func (s *Scorer) ScoreRow(value string) float64 {
	lower := strings.ToLower(value)
	var score float64
	for _, term := range s.lex.PositiveTerms() {
		if strings.Contains(lower, term) {
			score++
		}
	}
	for _, term := range s.lex.NegativeTerms() {
		if strings.Contains(lower, term) {
			score--
		}
	}
	return score
}

// ScoreRows scores every row with a bounded worker pool and returns the
// scores in original row order plus their arithmetic mean. An empty input
// yields an empty slice and mean 0.
func (s *Scorer) ScoreRows(rows []string) (scores []float64, avg float64) {
	if len(rows) == 0 {
		return nil, 0
	}

	scores = make([]float64, len(rows))
	workers := s.workers
	if workers > len(rows) {
		workers = len(rows)
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				// Each worker writes only its own index; order is
				// preserved no matter which worker finishes first.
				scores[i] = s.ScoreRow(rows[i])
			}
		}()
	}
	for i := range rows {
		indices <- i
	}
	close(indices)
	wg.Wait()

	var sum float64
	for _, v := range scores {
		sum += v
	}
	return scores, sum / float64(len(rows))
}

// Alert reports whether the dataset average crosses the alert threshold.
func (s *Scorer) Alert(avg float64) bool {
	return avg < s.alertThreshold
}
