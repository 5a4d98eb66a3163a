package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLoads(t *testing.T) {
	lex := Default()

	if lex.StopwordCount() == 0 {
		t.Fatal("default lexicon has no stopwords")
	}
	if !lex.IsStop("the") || !lex.IsStop("The") {
		t.Error("'the' should be a stopword regardless of case")
	}
	if lex.IsStop("fox") {
		t.Error("'fox' should not be a stopword")
	}
}

func TestSentimentScores(t *testing.T) {
	lex := Default()

	tests := []struct {
		word string
		want float64
	}{
		{"excellent", 2.0},
		{"great", 1.5},
		{"helpful", 1.0},
		{"error", -1.0},
		{"loss", -1.5},
		{"terrible", -2.0},
	}
	for _, tt := range tests {
		got, ok := lex.SentimentScore(tt.word)
		if !ok {
			t.Errorf("SentimentScore(%q): not in lexicon", tt.word)
			continue
		}
		if got != tt.want {
			t.Errorf("SentimentScore(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}

	if _, ok := lex.SentimentScore("table"); ok {
		t.Error("'table' should carry no sentiment")
	}
}

func TestPositiveNegativeSplit(t *testing.T) {
	lex := Default()

	for _, term := range lex.PositiveTerms() {
		if score, _ := lex.SentimentScore(term); score <= 0 {
			t.Errorf("positive term %q has score %v", term, score)
		}
	}
	for _, term := range lex.NegativeTerms() {
		if score, _ := lex.SentimentScore(term); score >= 0 {
			t.Errorf("negative term %q has score %v", term, score)
		}
	}
}

func TestCorrections(t *testing.T) {
	lex := Default()

	if fixed, ok := lex.Correction("teh"); !ok || fixed != "the" {
		t.Errorf("Correction(teh) = %q, %v; want the, true", fixed, ok)
	}
	if fixed, ok := lex.Correction("TEH"); !ok || fixed != "the" {
		t.Errorf("Correction(TEH) = %q, %v; want the, true", fixed, ok)
	}
	if _, ok := lex.Correction("qick"); ok {
		t.Error("'qick' is not a registered error and must pass through")
	}
}

func TestSimplificationsDeterministic(t *testing.T) {
	lex := Default()

	a := lex.Simplifications()
	b := lex.Simplifications()
	if len(a) == 0 {
		t.Fatal("no simplification pairs loaded")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("simplification order not deterministic at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lex.yaml")
	content := []byte("stop_words: [foo]\nsentiment:\n  up: 1.0\n  down: -1.0\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if !lex.IsStop("foo") {
		t.Error("custom stopword not loaded")
	}
	if got := lex.PositiveTerms(); len(got) != 1 || got[0] != "up" {
		t.Errorf("PositiveTerms = %v, want [up]", got)
	}
	if _, ok := lex.Correction("teh"); ok {
		t.Error("file without corrections section must not inherit defaults")
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML("/nonexistent/lex.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
