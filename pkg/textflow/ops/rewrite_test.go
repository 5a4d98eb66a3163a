package ops

import (
	"strings"
	"testing"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
)

func TestCorrectGrammar(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"capitalize and terminate", "hello world", "Hello world."},
		{"capitalize after period", "this is one.second follows", "This is one. Second follows."},
		{"pronoun i", "i think i agree", "I think I agree."},
		{"pronoun contraction", "i'm sure i'll go", "I'm sure I'll go."},
		{"space before punctuation", "hello , world !", "Hello, world!"},
		{"collapse whitespace", "too   many    spaces", "Too many spaces."},
		{"keeps existing terminal", "Done already!", "Done already!"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CorrectGrammarText(tt.in); got != tt.want {
				t.Errorf("CorrectGrammarText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSpellCheck(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"only registered errors corrected", "teh qick brown fox.", "the qick brown fox."},
		{"capitalization preserved", "Teh cat ran", "The cat ran"},
		{"contraction correction", "dont worry, it occured", "don't worry, it occurred"},
		{"punctuation reattached", "(teh)", "(the)"},
		{"clean text untouched", "the quick brown fox", "the quick brown fox"},
		{"empty", " ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpellCheckText(tt.in, lex); got != tt.want {
				t.Errorf("SpellCheckText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRemoveStopWords(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"content words survive", "The quick brown fox is in the barn", "quick brown fox barn"},
		{"punctuation kept and spaced", "This is a test, really!", "test, really!"},
		{"only stopwords and punctuation", "the and, the.", ",."},
		{"empty", "  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveStopWordsText(tt.in, lex); got != tt.want {
				t.Errorf("RemoveStopWordsText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslateSimplify(t *testing.T) {
	lex := lexicon.Default()

	got := TranslateText("We must utilize the tools, however they require effort", "simple", lex)
	want := "We must use the tools, but they need effort"
	if got != want {
		t.Errorf("simplify = %q, want %q", got, want)
	}

	// Whole-word only: no substitution inside longer words.
	got = TranslateText("the requirement stands", "simple", lex)
	if got != "the requirement stands" {
		t.Errorf("whole-word boundary violated: %q", got)
	}
}

func TestTranslateOtherTarget(t *testing.T) {
	lex := lexicon.Default()

	got := TranslateText("Hello there", "fr", lex)
	if got != "[Translation to fr]: Hello there" {
		t.Errorf("placeholder = %q", got)
	}
}

func TestTranslateTabularReportsLanguage(t *testing.T) {
	r := testRegistry(t)

	out, _ := r.Execute(OpTranslation, Input{
		Text:          "x",
		Table:         mustTable(t, "id,opinion\n1,hola"),
		WorkingColumn: "opinion_en",
		Language:      "es",
	}, Params{})
	if !strings.Contains(out, "es") || !strings.Contains(out, "English") {
		t.Errorf("tabular translation note = %q", out)
	}

	out, _ = r.Execute(OpTranslation, Input{
		Text:          "x",
		Table:         mustTable(t, "id,opinion\n1,hello"),
		WorkingColumn: "opinion",
		Language:      "en",
	}, Params{})
	if !strings.Contains(out, "en") || !strings.Contains(out, "No translation") {
		t.Errorf("english tabular note = %q", out)
	}
}
