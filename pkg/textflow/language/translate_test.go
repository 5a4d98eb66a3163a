package language

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/textflow/textflow/pkg/textflow/tabular"
)

// markingTranslator tags every value so tests can tell translated rows
// from passthrough rows.
type markingTranslator struct{}

func (markingTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	return "[en] " + text, nil
}

// flakyTranslator fails on one specific row.
type flakyTranslator struct{ failOn string }

func (f flakyTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	if text == f.failOn {
		return "", errors.New("provider unavailable")
	}
	return "[en] " + text, nil
}

func spanishTable(t *testing.T, rows int) *tabular.Table {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("id,opinion\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d,el producto es muy bueno numero %d\n", i+1, i+1)
	}
	table, err := tabular.Parse(sb.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return table
}

func TestStageEnglishPassthrough(t *testing.T) {
	table, err := tabular.Parse("id,feedback\nid1,the product is great and good\nid2,the service was not good for us")
	if err != nil {
		t.Fatal(err)
	}

	stage := &Stage{Translator: markingTranslator{}}
	res := stage.Apply(context.Background(), table, "feedback")

	if res.Language != "en" {
		t.Errorf("Language = %q, want en", res.Language)
	}
	if res.WorkingColumn != "feedback" {
		t.Errorf("WorkingColumn = %q, want feedback (no derived column)", res.WorkingColumn)
	}
	if len(table.ColumnNames()) != 2 {
		t.Errorf("no derived column should be created for English input: %v", table.ColumnNames())
	}
}

func TestStageTranslatesBoundedPrefix(t *testing.T) {
	const total, prefix = 10, 4
	table := spanishTable(t, total)

	stage := &Stage{Translator: markingTranslator{}, Cap: prefix, Workers: 3}
	res := stage.Apply(context.Background(), table, "opinion")

	if res.Language != "es" {
		t.Fatalf("Language = %q, want es", res.Language)
	}
	if res.WorkingColumn != "opinion_en" {
		t.Fatalf("WorkingColumn = %q, want opinion_en", res.WorkingColumn)
	}
	if res.Translated != prefix {
		t.Errorf("Translated = %d, want %d", res.Translated, prefix)
	}

	source, _ := table.Column("opinion")
	derived, ok := table.Column("opinion_en")
	if !ok {
		t.Fatal("derived column missing")
	}
	for i := 0; i < prefix; i++ {
		if derived[i] != "[en] "+source[i] {
			t.Errorf("row %d: derived = %q, want translated prefix", i, derived[i])
		}
	}
	for i := prefix; i < total; i++ {
		if derived[i] != source[i] {
			t.Errorf("row %d beyond cap: derived = %q, want source copy %q", i, derived[i], source[i])
		}
	}
}

func TestStageCapLargerThanTable(t *testing.T) {
	table := spanishTable(t, 3)

	stage := &Stage{Translator: markingTranslator{}, Cap: 50}
	res := stage.Apply(context.Background(), table, "opinion")

	if res.Translated != 3 {
		t.Errorf("Translated = %d, want 3", res.Translated)
	}
}

func TestStagePerItemFaultFallsBack(t *testing.T) {
	table := spanishTable(t, 3)
	source, _ := table.Column("opinion")

	stage := &Stage{Translator: flakyTranslator{failOn: source[1]}, Cap: 3}
	res := stage.Apply(context.Background(), table, "opinion")

	derived, ok := table.Column(res.WorkingColumn)
	if !ok {
		t.Fatal("working column missing")
	}
	if derived[0] != "[en] "+source[0] {
		t.Errorf("row 0 should be translated, got %q", derived[0])
	}
	if derived[1] != source[1] {
		t.Errorf("failed row must keep source text, got %q", derived[1])
	}
	if derived[2] != "[en] "+source[2] {
		t.Errorf("row 2 should be translated, got %q", derived[2])
	}
}

func TestDictionaryTranslator(t *testing.T) {
	tr := NewDictionaryTranslator()

	out, err := tr.Translate(context.Background(), "El producto es muy bueno", "es")
	if err != nil {
		t.Fatal(err)
	}
	if out != "The product is very good" {
		t.Errorf("Translate = %q", out)
	}

	// Unknown language passes through.
	out, err = tr.Translate(context.Background(), "こんにちは", "ja")
	if err != nil || out != "こんにちは" {
		t.Errorf("unknown language should pass through, got %q, %v", out, err)
	}
}
