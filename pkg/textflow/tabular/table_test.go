package tabular

import (
	"errors"
	"testing"

	"github.com/textflow/textflow/pkg/textflow/internalerr"
)

func TestParseCommaSeparated(t *testing.T) {
	raw := "id,feedback\n1,This is great and helpful\n2,This caused a loss and error\n3,Nothing special"

	table, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if table.RowCount() != 3 {
		t.Errorf("RowCount = %d, want 3", table.RowCount())
	}
	names := table.ColumnNames()
	if len(names) != 2 || names[0] != "id" || names[1] != "feedback" {
		t.Errorf("ColumnNames = %v", names)
	}
	feedback, ok := table.Column("feedback")
	if !ok {
		t.Fatal("feedback column missing")
	}
	if feedback[2] != "Nothing special" {
		t.Errorf("feedback[2] = %q", feedback[2])
	}
}

func TestParseSniffsAlternateDelimiters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"semicolon", "id;comment\n1;fast delivery\n2;slow support"},
		{"tab", "id\tcomment\n1\tfast delivery\n2\tslow support"},
		{"pipe", "id|comment\n1|fast delivery\n2|slow support"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if table.RowCount() != 2 {
				t.Errorf("RowCount = %d, want 2", table.RowCount())
			}
			if _, ok := table.Column("comment"); !ok {
				t.Error("comment column missing")
			}
		})
	}
}

func TestParseSkipsMalformedRows(t *testing.T) {
	raw := "id,text\n1,first\nbroken row without delim count,extra,cells\n2,second"

	table, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if table.RowCount() != 2 {
		t.Errorf("RowCount = %d, want 2 (malformed row skipped)", table.RowCount())
	}
}

func TestParseFailures(t *testing.T) {
	for _, raw := range []string{"", "   \n\t  ", "plain prose with no delimiter", "a,b"} {
		if _, err := Parse(raw); !errors.Is(err, internalerr.ErrInvalidData) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidData", raw, err)
		}
	}
}

func TestParseTrimsLeadingSpace(t *testing.T) {
	table, err := Parse("id, text\n1, hello there\n2, goodbye now")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vals, _ := table.Column("text")
	if vals[0] != "hello there" {
		t.Errorf("cell = %q, want leading space trimmed", vals[0])
	}
}

func TestAddColumn(t *testing.T) {
	table, _ := Parse("id,text\n1,a\n2,b")

	if err := table.AddColumn("text_en", []string{"a", "b"}); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if err := table.AddColumn("bad", []string{"only one"}); err == nil {
		t.Error("AddColumn with wrong row count should fail")
	}
	if err := table.AddColumn("text_en", []string{"x", "y"}); err == nil {
		t.Error("duplicate AddColumn should fail")
	}
	names := table.ColumnNames()
	if names[len(names)-1] != "text_en" {
		t.Errorf("derived column should be appended, got %v", names)
	}
}

func TestNumericMeans(t *testing.T) {
	table, err := Parse("id,score,comment\n1,2.0,ok\n2,4.0,fine")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	means := table.NumericMeans()
	if got, ok := means["score"]; !ok || got != 3.0 {
		t.Errorf("means[score] = %v, %v; want 3.0", got, ok)
	}
	if _, ok := means["id"]; ok {
		t.Error("id-like column must be excluded from means")
	}
	if _, ok := means["comment"]; ok {
		t.Error("non-numeric column must be excluded from means")
	}
}

func TestSniff(t *testing.T) {
	if _, ok := Sniff("just words here"); ok {
		t.Error("prose should not sniff a delimiter")
	}
	if d, ok := Sniff("a,b,c\n1,2,3"); !ok || d != ',' {
		t.Errorf("Sniff = %q, %v; want ',', true", d, ok)
	}
	if d, ok := Sniff("a;b;c"); !ok || d != ';' {
		t.Errorf("Sniff = %q, %v; want ';', true", d, ok)
	}
}
