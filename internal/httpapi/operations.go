package httpapi

import "github.com/textflow/textflow/pkg/textflow/ops"

// ParamSpec describes one tunable parameter of an operation.
type ParamSpec struct {
	Type    string `json:"type"`
	Default any    `json:"default"`
	Min     int    `json:"min,omitempty"`
	Max     int    `json:"max,omitempty"`
}

// OperationInfo is one catalog entry served by /api/operations.
type OperationInfo struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Params      map[string]ParamSpec `json:"params,omitempty"`
}

var operationDetails = map[string]OperationInfo{
	ops.OpSummarization: {
		ID:          "summarization",
		Description: "Summarize long text into key points",
		Params: map[string]ParamSpec{
			"num_sentences": {Type: "number", Default: 3, Min: 1, Max: 10},
		},
	},
	ops.OpSentiment: {
		ID:          "sentiment_analysis",
		Description: "Score text polarity and flag negative datasets",
	},
	ops.OpKeywords: {
		ID:          "keyword_extraction",
		Description: "Extract important keywords",
		Params: map[string]ParamSpec{
			"top_n": {Type: "number", Default: 10, Min: 1, Max: 50},
		},
	},
	ops.OpTranslation: {
		ID:          "translation",
		Description: "Simplify complex text",
		Params: map[string]ParamSpec{
			"target_lang": {Type: "string", Default: "simple"},
		},
	},
	ops.OpGrammar: {
		ID:          "grammar_correction",
		Description: "Fix spacing, capitalization, and terminal punctuation",
	},
	ops.OpSpellCheck: {
		ID:          "spell_check",
		Description: "Correct common misspellings",
	},
	ops.OpRemoveStopWords: {
		ID:          "remove_stop_words",
		Description: "Strip low-information words",
	},
	ops.OpConvertCase: {
		ID:          "convert_case",
		Description: "Convert text casing",
		Params: map[string]ParamSpec{
			"case_type": {Type: "string", Default: "lower"},
		},
	},
}

// operationCatalog lists the registered operations in catalog order with
// their parameter metadata.
func operationCatalog(r *ops.Registry) []OperationInfo {
	var out []OperationInfo
	for _, name := range r.Names() {
		info, ok := operationDetails[name]
		if !ok {
			info = OperationInfo{ID: name}
		}
		info.Name = name
		out = append(out, info)
	}
	return out
}
