package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server holds the HTTP listener settings.
type Server struct {
	Addr string `yaml:"addr"`
}

// SMTP holds the outbound mail settings. Reports are skipped entirely
// when Host is empty.
type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// Tuning holds the analysis knobs.
type Tuning struct {
	TranslateCap   int     `yaml:"translate_cap"`
	ScoreWorkers   int     `yaml:"score_workers"`
	AlertThreshold float64 `yaml:"alert_threshold"`
}

// Config represents the server configuration file.
type Config struct {
	Server      Server `yaml:"server"`
	DBPath      string `yaml:"db_path"`
	LexiconPath string `yaml:"lexicon_path"`
	SMTP        SMTP   `yaml:"smtp"`
	Tuning      Tuning `yaml:"tuning"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: Server{Addr: ":8080"},
		DBPath: "textflow.db",
		Tuning: Tuning{
			TranslateCap:   30,
			ScoreWorkers:   12,
			AlertThreshold: -0.3,
		},
	}
}

// Load reads a config from a YAML file. Missing keys keep the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Tuning.TranslateCap < 0 {
		return fmt.Errorf("tuning.translate_cap must not be negative")
	}
	if c.Tuning.ScoreWorkers < 0 {
		return fmt.Errorf("tuning.score_workers must not be negative")
	}
	return nil
}
