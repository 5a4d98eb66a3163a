package ops

import (
	"testing"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
	"github.com/textflow/textflow/pkg/textflow/tabular"
)

func TestKeywordsText(t *testing.T) {
	lex := lexicon.Default()

	tests := []struct {
		name string
		text string
		topN int
		want string
	}{
		{"frequency order", "the quick quick brown fox fox fox", 2, "fox, quick"},
		{"ties keep encounter order", "alpha beta alpha beta gamma", 3, "alpha, beta, gamma"},
		{"short and stop tokens dropped", "go is ok but golang rocks golang", 10, "golang, rocks"},
		{"empty", "   ", 5, ""},
		{"only stopwords", "the and of to", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeywordsText(tt.text, tt.topN, lex); got != tt.want {
				t.Errorf("KeywordsText(%q, %d) = %q, want %q", tt.text, tt.topN, got, tt.want)
			}
		})
	}
}

func TestKeywordsTabularCountsValues(t *testing.T) {
	table, err := tabular.Parse("id,category\n1,billing\n2,shipping\n3,billing\n4,billing\n5,shipping\n6,returns")
	if err != nil {
		t.Fatal(err)
	}
	r := testRegistry(t)

	out, ok := r.Execute(OpKeywords, Input{
		Text:          "x",
		Table:         table,
		WorkingColumn: "category",
	}, Params{TopN: 2})
	if !ok {
		t.Fatal("not registered")
	}
	if out != "billing, shipping" {
		t.Errorf("tabular keywords = %q, want \"billing, shipping\"", out)
	}
}
