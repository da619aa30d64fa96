package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var defaultKeywords = []string{
	"vsm", "phoenix", "mcp", "hive", "system1", "system2", "system3",
	"system4", "system5", "variety", "cybernetic", "genserver", "elixir",
	"api", "test", "integration", "architecture", "goldrush", "telemetry",
}

type Config struct {
	LogFile             string   `yaml:"log"`
	Project             string   `yaml:"project"`
	InputDir            string   `yaml:"input_dir"`
	OutputDir           string   `yaml:"output_dir"`
	AnalysisDir         string   `yaml:"analysis_dir"`
	Keywords            []string `yaml:"keywords"`
	SimilarityThreshold float64  `yaml:"similarity_threshold"`
	MergeEventsMs       int      `yaml:"write_debounce_ms"`
	ServerAddr          string   `yaml:"server_addr"`
}

func (c *Config) defaults() {
	if c.Project == "" {
		c.Project = "VSM Phoenix"
	}
	if c.InputDir == "" {
		c.InputDir = "./docs"
	}
	if c.OutputDir == "" {
		c.OutputDir = "./docs_organized"
	}
	if c.AnalysisDir == "" {
		c.AnalysisDir = "./docs_analysis"
	}
	if len(c.Keywords) == 0 {
		c.Keywords = defaultKeywords
	}
	if c.SimilarityThreshold <= 0 {
		c.SimilarityThreshold = 0.85
	}
	if c.MergeEventsMs <= 0 {
		c.MergeEventsMs = 500
	}
	if c.ServerAddr == "" {
		c.ServerAddr = "localhost:8090"
	}
}

func readConfig(cfgPath string) (*Config, error) {
	cfg := &Config{}
	if cfgPath == "" {
		cfg.defaults()
		return cfg, nil
	}

	cfgFile, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %w", err)
	}
	defer cfgFile.Close()

	dec := yaml.NewDecoder(cfgFile)
	err = dec.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	cfg.defaults()
	return cfg, nil
}
