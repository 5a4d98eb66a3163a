package lexicon

import (
	_ "embed"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon stores the static vocabulary the analysis pipeline depends on:
//   - Stopwords: high-frequency function words excluded from keyword and
//     summary scoring.
//   - Sentiment: word -> signed score (positive words > 0, negative < 0).
//   - Corrections: common misspelling -> correction (spell check).
//   - Simplifications: complex word -> plain alternative (simple "translation").
//
// A Lexicon is immutable after load and safe for concurrent readers; the
// process loads one instance at startup and shares it by reference.
type Lexicon struct {
	stopwords       map[string]struct{}
	sentiment       map[string]float64
	corrections     map[string]string
	simplifications map[string]string

	// Derived term lists for the row-scoring stage, sorted for
	// deterministic iteration.
	positive []string
	negative []string
}

//go:embed data/default.yaml
var defaultData []byte

type fileFormat struct {
	StopWords       []string           `yaml:"stop_words"`
	Sentiment       map[string]float64 `yaml:"sentiment"`
	Corrections     map[string]string  `yaml:"corrections"`
	Simplifications map[string]string  `yaml:"simplifications"`
}

// Default returns the built-in lexicon. It panics only if the embedded
// data file is malformed, which a unit test guards against.
func Default() *Lexicon {
	lex, err := parse(defaultData)
	if err != nil {
		panic("lexicon: embedded default data is invalid: " + err.Error())
	}
	return lex
}

// LoadFromYAML loads a lexicon from a YAML file. Sections omitted from the
// file fall back to empty, not to the defaults; callers that want partial
// overrides should start from Default and merge.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Lexicon, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	lex := &Lexicon{
		stopwords:       make(map[string]struct{}, len(f.StopWords)),
		sentiment:       make(map[string]float64, len(f.Sentiment)),
		corrections:     make(map[string]string, len(f.Corrections)),
		simplifications: make(map[string]string, len(f.Simplifications)),
	}

	for _, w := range f.StopWords {
		lex.stopwords[strings.ToLower(w)] = struct{}{}
	}
	for w, score := range f.Sentiment {
		w = strings.ToLower(w)
		lex.sentiment[w] = score
		switch {
		case score > 0:
			lex.positive = append(lex.positive, w)
		case score < 0:
			lex.negative = append(lex.negative, w)
		}
	}
	for bad, good := range f.Corrections {
		lex.corrections[strings.ToLower(bad)] = good
	}
	for hard, easy := range f.Simplifications {
		lex.simplifications[strings.ToLower(hard)] = easy
	}

	sort.Strings(lex.positive)
	sort.Strings(lex.negative)
	return lex, nil
}

// IsStop reports whether the lowercased word is a stopword.
func (l *Lexicon) IsStop(word string) bool {
	_, ok := l.stopwords[strings.ToLower(word)]
	return ok
}

// SentimentScore returns the signed score for a word and whether the word
// carries sentiment at all.
func (l *Lexicon) SentimentScore(word string) (float64, bool) {
	score, ok := l.sentiment[strings.ToLower(word)]
	return score, ok
}

// Correction returns the registered correction for a misspelled word.
func (l *Lexicon) Correction(word string) (string, bool) {
	fixed, ok := l.corrections[strings.ToLower(word)]
	return fixed, ok
}

// Simplifications returns the complex -> simple substitution pairs in
// deterministic (sorted-key) order.
func (l *Lexicon) Simplifications() [][2]string {
	keys := make([]string, 0, len(l.simplifications))
	for k := range l.simplifications {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([][2]string, len(keys))
	for i, k := range keys {
		pairs[i] = [2]string{k, l.simplifications[k]}
	}
	return pairs
}

// PositiveTerms returns the positive sentiment terms, sorted.
func (l *Lexicon) PositiveTerms() []string { return l.positive }

// NegativeTerms returns the negative sentiment terms, sorted.
func (l *Lexicon) NegativeTerms() []string { return l.negative }

// StopwordCount returns the number of loaded stopwords.
func (l *Lexicon) StopwordCount() int { return len(l.stopwords) }
