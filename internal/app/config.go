// Package app wires configuration, storage and the HTTP server into a
// runnable job board instance.
package app

import (
	"errors"
	"strings"
)

// Defaults mirrored by the flag definitions in cmd/jobboard.
const (
	DefaultAddr   = ":8080"
	DefaultDBPath = "jobboard.db"
)

// Config is the fully resolved runtime configuration. Flags and
// environment fill it first; a config file may supply values for fields
// still at their defaults.
type Config struct {
	Addr          string
	DBPath        string
	BaseURL       string
	AdminPassword string

	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	Verbose bool
}

// ValidateConfig checks the minimal required settings. The LLM block is
// optional as a whole, but a base URL without a model is a mistake.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return errors.New("config: listen address is required")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("config: database path is required")
	}
	if strings.TrimSpace(cfg.AdminPassword) == "" {
		return errors.New("config: admin password is required (or set ADMIN_PASSWORD)")
	}
	if strings.TrimSpace(cfg.LLMBaseURL) != "" && strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required when llm.base is set")
	}
	return nil
}
