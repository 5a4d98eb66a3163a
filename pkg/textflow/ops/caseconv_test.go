package ops

import "testing"

func TestConvertCaseVariants(t *testing.T) {
	tests := []struct {
		caseType string
		in       string
		want     string
	}{
		{"lower", "Hello World", "hello world"},
		{"upper", "Hello World", "HELLO WORLD"},
		{"title", "hello brave new world", "Hello Brave New World"},
		{"sentence", "hello there. general greeting? YES indeed", "Hello there. General greeting? Yes indeed"},
		{"toggle", "GoLang 123!", "gOlANG 123!"},
		{"camel", "Hello beautiful world", "helloBeautifulWorld"},
		{"camelCase", "Hello beautiful world", "helloBeautifulWorld"},
		{"snake", "Hello World Now", "hello_world_now"},
		{"snake_case", "Hello World Now", "hello_world_now"},
		{"kebab", "Hello World Now", "hello-world-now"},
		{"kebab-case", "Hello World Now", "hello-world-now"},
		{"unknown-variant", "Hello World", "Hello World"},
	}
	for _, tt := range tests {
		t.Run(tt.caseType, func(t *testing.T) {
			if got := ConvertCaseText(tt.in, tt.caseType); got != tt.want {
				t.Errorf("ConvertCaseText(%q, %q) = %q, want %q", tt.in, tt.caseType, got, tt.want)
			}
		})
	}
}

func TestConvertCaseLengthPreserving(t *testing.T) {
	in := "The Quick Brown Fox 42!"
	for _, caseType := range []string{"lower", "upper", "toggle"} {
		if got := ConvertCaseText(in, caseType); len(got) != len(in) {
			t.Errorf("%s changed length: %q -> %q", caseType, in, got)
		}
	}
}

func TestConvertCaseToggleInvolution(t *testing.T) {
	in := "MiXeD cAsE 99?"
	twice := ConvertCaseText(ConvertCaseText(in, "toggle"), "toggle")
	if twice != in {
		t.Errorf("toggle applied twice = %q, want original %q", twice, in)
	}
}

func TestConvertCaseUpperIdempotent(t *testing.T) {
	once := ConvertCaseText("shouting now", "upper")
	twice := ConvertCaseText(once, "upper")
	if once != twice {
		t.Errorf("upper not idempotent: %q vs %q", once, twice)
	}
}

func TestConvertCaseEmpty(t *testing.T) {
	if got := ConvertCaseText("  \t", "upper"); got != "" {
		t.Errorf("blank input = %q, want empty", got)
	}
}
