package config

import (
	"fmt"

	"github.com/textflow/textflow/pkg/textflow/lexicon"
	"github.com/textflow/textflow/pkg/textflow/pipeline"
)

// Loader builds the analysis components from a configuration.
type Loader struct {
	Config *Config
}

// Components holds the constructed analysis components.
type Components struct {
	Lexicon  *lexicon.Lexicon
	Pipeline *pipeline.Pipeline
}

// Load constructs the lexicon and pipeline described by the config.
func (l *Loader) Load() (*Components, error) {
	cfg := l.Config
	if cfg == nil {
		cfg = Default()
	}

	lex := lexicon.Default()
	if cfg.LexiconPath != "" {
		loaded, err := lexicon.LoadFromYAML(cfg.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		lex = loaded
	}

	p := pipeline.New(pipeline.Options{
		Lexicon:        lex,
		TranslateCap:   cfg.Tuning.TranslateCap,
		ScoreWorkers:   cfg.Tuning.ScoreWorkers,
		AlertThreshold: cfg.Tuning.AlertThreshold,
	})

	return &Components{Lexicon: lex, Pipeline: p}, nil
}
