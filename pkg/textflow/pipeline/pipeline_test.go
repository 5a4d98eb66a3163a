package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/textflow/textflow/pkg/textflow/ops"
)

func newPipeline() *Pipeline {
	return New(Options{})
}

func TestRunEmptyInputIsInvalidData(t *testing.T) {
	p := newPipeline()

	for _, raw := range []string{"", "   \n\t  "} {
		out := p.Run(context.Background(), raw, []string{"Summarization"}, nil)

		if len(out.Results) != 1 {
			t.Fatalf("Results len = %d, want 1", len(out.Results))
		}
		r := out.Results[0]
		if r.Title != "Error" || r.Output != "Invalid Data" || r.Success {
			t.Errorf("error result = %+v", r)
		}
		if out.Rows != nil || out.Stats != nil || out.Scores != nil {
			t.Errorf("rows/stats/scores must be nil on ingest failure: %+v", out)
		}
	}
}

func TestRunNoUsableColumnIsInvalidData(t *testing.T) {
	p := newPipeline()

	out := p.Run(context.Background(), "id,year,value\n1,2024,3.5\n2,2025,4.5",
		[]string{"Sentiment Analysis"}, nil)

	if len(out.Results) != 1 || out.Results[0].Output != "Invalid Data" {
		t.Errorf("expected Invalid Data result, got %+v", out.Results)
	}
}

func TestRunTabularSentimentScenario(t *testing.T) {
	p := newPipeline()

	raw := "id,feedback\n1,This is great and helpful\n2,This caused a loss and error\n3,Nothing special"
	out := p.Run(context.Background(), raw, []string{"Sentiment Analysis"}, nil)

	if len(out.Results) != 1 {
		t.Fatalf("Results len = %d, want 1", len(out.Results))
	}
	if !out.Results[0].Success {
		t.Errorf("result not successful: %+v", out.Results[0])
	}
	if !strings.Contains(out.Results[0].Output, "Neutral") {
		t.Errorf("label should be Neutral: %q", out.Results[0].Output)
	}

	want := []float64{2, -2, 0}
	if len(out.Scores) != len(want) {
		t.Fatalf("Scores = %v", out.Scores)
	}
	for i := range want {
		if out.Scores[i] != want[i] {
			t.Errorf("Scores[%d] = %v, want %v", i, out.Scores[i], want[i])
		}
	}

	if out.Stats == nil {
		t.Fatal("Stats missing")
	}
	if out.Stats.AvgScore != 0 {
		t.Errorf("AvgScore = %v, want 0", out.Stats.AvgScore)
	}
	if out.Stats.Alert {
		t.Error("Alert should be false at avg 0")
	}
	if out.Stats.TotalChunks != 1 {
		t.Errorf("TotalChunks = %d, want 1", out.Stats.TotalChunks)
	}
	if len(out.Rows) != 3 || out.Rows[2] != "Nothing special" {
		t.Errorf("Rows = %v", out.Rows)
	}
}

func TestRunProseSpellCheckScenario(t *testing.T) {
	p := newPipeline()

	out := p.Run(context.Background(), "teh qick brown fox.", []string{"Spell Check"}, nil)

	if len(out.Results) != 1 {
		t.Fatalf("Results len = %d", len(out.Results))
	}
	if got := out.Results[0].Output; got != "the qick brown fox." {
		t.Errorf("Spell Check output = %q, want \"the qick brown fox.\"", got)
	}
}

func TestRunAlertOnNegativeDataset(t *testing.T) {
	p := newPipeline()

	raw := "id,feedback\n1,terrible failure\n2,awful error\n3,horrible defect"
	out := p.Run(context.Background(), raw, []string{"Sentiment Analysis"}, nil)

	if out.Stats == nil {
		t.Fatal("Stats missing")
	}
	if out.Stats.AvgScore >= 0 {
		t.Errorf("AvgScore = %v, want negative", out.Stats.AvgScore)
	}
	if !out.Stats.Alert {
		t.Error("Alert should fire for a strongly negative dataset")
	}
}

func TestRunStagesSharedAcrossOperations(t *testing.T) {
	p := newPipeline()

	raw := "id,feedback\n1,This is great and helpful\n2,This caused a loss and error\n3,Nothing special"
	operations := []string{"Summarization", "Sentiment Analysis", "Keyword Extraction", "Translation"}
	out := p.Run(context.Background(), raw, operations, nil)

	if len(out.Results) != len(operations) {
		t.Fatalf("Results len = %d, want %d", len(out.Results), len(operations))
	}
	for i, name := range operations {
		if out.Results[i].Title != name {
			t.Errorf("Results[%d].Title = %q, want %q (request order preserved)",
				i, out.Results[i].Title, name)
		}
		if !out.Results[i].Success {
			t.Errorf("Results[%d] failed: %+v", i, out.Results[i])
		}
	}
}

func TestRunUnknownOperationAcknowledged(t *testing.T) {
	p := newPipeline()

	out := p.Run(context.Background(), "some plain text here", []string{"Word Cloud", "Convert Case"}, nil)

	if len(out.Results) != 2 {
		t.Fatalf("Results len = %d, want 2", len(out.Results))
	}
	ack := out.Results[0]
	if ack.Title != "Word Cloud" || !ack.Success {
		t.Errorf("unknown op result = %+v", ack)
	}
	if ack.Output != "Processed Word Cloud successfully." {
		t.Errorf("ack output = %q", ack.Output)
	}
	if out.Results[1].Output != "some plain text here" {
		t.Errorf("Convert Case(lower) = %q", out.Results[1].Output)
	}
}

func TestRunParamsPerOperation(t *testing.T) {
	p := newPipeline()

	out := p.Run(context.Background(), "make this loud", []string{"Convert Case"},
		map[string]ops.Params{"Convert Case": {CaseType: "upper"}})

	if out.Results[0].Output != "MAKE THIS LOUD" {
		t.Errorf("Convert Case(upper) = %q", out.Results[0].Output)
	}
}

func TestRunTranslatesNonEnglishTable(t *testing.T) {
	p := New(Options{TranslateCap: 2})

	raw := "id,opinion\n" +
		"1,el producto es muy bueno\n" +
		"2,el servicio es muy bueno\n" +
		"3,el precio es muy bueno\n"
	out := p.Run(context.Background(), raw, []string{"Translation"}, nil)

	if out.Language != "es" {
		t.Fatalf("Language = %q, want es", out.Language)
	}
	if !strings.Contains(out.Results[0].Output, "es") {
		t.Errorf("Translation note = %q", out.Results[0].Output)
	}
	// Cap = 2: first two rows translated in the working column, third kept.
	if len(out.Rows) != 3 {
		t.Fatalf("Rows = %v", out.Rows)
	}
	if out.Rows[0] == "el producto es muy bueno" {
		t.Errorf("row 0 should be translated: %q", out.Rows[0])
	}
	if out.Rows[2] != "el precio es muy bueno" {
		t.Errorf("row 2 beyond cap must keep source: %q", out.Rows[2])
	}
}

func TestRunProcessingTimeRecorded(t *testing.T) {
	p := newPipeline()

	out := p.Run(context.Background(), "quick check text", []string{"Summarization"}, nil)
	if out.Stats == nil || out.Stats.ProcessingTime < 0 {
		t.Errorf("ProcessingTime missing or negative: %+v", out.Stats)
	}
}
