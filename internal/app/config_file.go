package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections
// map naturally to the flag names.
type FileConfig struct {
	Addr    string `yaml:"addr" json:"addr"`
	DB      string `yaml:"db" json:"db"`
	BaseURL string `yaml:"baseURL" json:"baseURL"`

	Admin struct {
		Password string `yaml:"password" json:"password"`
	} `yaml:"admin" json:"admin"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields
// still at their zero or flag-default value. Flags should already have
// been parsed; the file supplies defaults without overriding explicit
// flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.Addr == "" || cfg.Addr == DefaultAddr) && fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if (cfg.DBPath == "" || cfg.DBPath == DefaultDBPath) && fc.DB != "" {
		cfg.DBPath = fc.DB
	}
	if cfg.BaseURL == "" && fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if cfg.AdminPassword == "" && fc.Admin.Password != "" {
		cfg.AdminPassword = fc.Admin.Password
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
