// Package ops implements the text-analysis operation executors. Every
// executor is a pure function from input and parameters to a display
// string; empty input yields an empty string rather than an error.
package ops

import (
	"regexp"
	"strings"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
	"github.com/textflow/textflow/pkg/textflow/tabular"
)

// Operation identifiers, matched case-sensitively against requests.
const (
	OpSummarization   = "Summarization"
	OpSentiment       = "Sentiment Analysis"
	OpKeywords        = "Keyword Extraction"
	OpTranslation     = "Translation"
	OpGrammar         = "Grammar Correction"
	OpSpellCheck      = "Spell Check"
	OpRemoveStopWords = "Remove Stop Words"
	OpConvertCase     = "Convert Case"
)

// Params carries the per-operation knobs with their documented defaults.
type Params struct {
	NumSentences int    `json:"num_sentences" yaml:"num_sentences"` // Summarization, default 3
	TopN         int    `json:"top_n" yaml:"top_n"`                 // Keyword Extraction, default 10
	CaseType     string `json:"case_type" yaml:"case_type"`         // Convert Case, default "lower"
	TargetLang   string `json:"target_lang" yaml:"target_lang"`     // Translation, default "simple"
}

// WithDefaults fills unset fields with the documented defaults.
func (p Params) WithDefaults() Params {
	if p.NumSentences <= 0 {
		p.NumSentences = 3
	}
	if p.TopN <= 0 {
		p.TopN = 10
	}
	if p.CaseType == "" {
		p.CaseType = "lower"
	}
	if p.TargetLang == "" {
		p.TargetLang = "simple"
	}
	return p
}

// Input is the shared working data executors read. Text is always the
// working text; Table is nil for prose requests. Scores and AvgScore come
// from the scoring stage, computed once per request.
type Input struct {
	Text          string
	Table         *tabular.Table
	WorkingColumn string
	Language      string
	Scores        []float64
	AvgScore      float64
}

// Tabular reports whether the request carried structured data.
func (in Input) Tabular() bool { return in.Table != nil }

// Executor converts input into a display string.
type Executor func(in Input, p Params, lex *lexicon.Lexicon) string

// Registry maps operation identifiers to executors over one shared
// lexicon. The registry is immutable after construction.
type Registry struct {
	lex       *lexicon.Lexicon
	executors map[string]Executor
	order     []string
}

// NewRegistry builds the standard operation set.
func NewRegistry(lex *lexicon.Lexicon) *Registry {
	r := &Registry{lex: lex, executors: make(map[string]Executor)}
	for _, e := range []struct {
		name string
		fn   Executor
	}{
		{OpSummarization, summarize},
		{OpSentiment, analyzeSentiment},
		{OpKeywords, extractKeywords},
		{OpTranslation, translate},
		{OpGrammar, correctGrammar},
		{OpSpellCheck, spellCheck},
		{OpRemoveStopWords, removeStopWords},
		{OpConvertCase, convertCase},
	} {
		r.executors[e.name] = e.fn
		r.order = append(r.order, e.name)
	}
	return r
}

// Known reports whether the identifier names a registered operation.
func (r *Registry) Known(name string) bool {
	_, ok := r.executors[name]
	return ok
}

// Names returns the registered identifiers in catalog order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Execute runs one operation. Unknown identifiers return ok=false and an
// empty output; the orchestrator turns that into an acknowledgment.
func (r *Registry) Execute(name string, in Input, p Params) (output string, ok bool) {
	fn, ok := r.executors[name]
	if !ok {
		return "", false
	}
	return fn(in, p.WithDefaults(), r.lex), true
}

// --- shared tokenization helpers ---

var (
	wordRe     = regexp.MustCompile(`\w+`)
	tokenRe    = regexp.MustCompile(`\w+|[^\w\s]`)
	sentEndRe  = regexp.MustCompile(`[.!?]+`)
	punctGapRe = regexp.MustCompile(`\s+([,.!?;:])`)
)

// wordsOf returns the lowercased word tokens of text.
func wordsOf(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// sentencesOf splits text on sentence-ending punctuation, trimming and
// dropping empty fragments.
func sentencesOf(text string) []string {
	var out []string
	for _, s := range sentEndRe.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func blank(text string) bool {
	return strings.TrimSpace(text) == ""
}
