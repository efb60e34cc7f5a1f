package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "addr: \":9090\"\ndb: board.db\nbaseURL: https://jobs.example.com\nadmin:\n  password: hunter2\nllm:\n  base: http://localhost:8081/v1\n  model: test-model\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Addr != ":9090" || fc.DB != "board.db" || fc.Admin.Password != "hunter2" || fc.LLM.Model != "test-model" {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"addr": ":7070", "llm": {"model": "m"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Addr != ":7070" || fc.LLM.Model != "m" {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{Addr: ":3000", DBPath: DefaultDBPath, AdminPassword: ""}
	var fc FileConfig
	fc.Addr = ":9999"
	fc.DB = "from-file.db"
	fc.Admin.Password = "filepass"
	ApplyFileConfig(&cfg, fc)

	if cfg.Addr != ":3000" {
		t.Fatalf("explicit flag overridden: %q", cfg.Addr)
	}
	if cfg.DBPath != "from-file.db" {
		t.Fatalf("default not overlaid: %q", cfg.DBPath)
	}
	if cfg.AdminPassword != "filepass" {
		t.Fatalf("empty field not overlaid: %q", cfg.AdminPassword)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := Config{Addr: ":8080", DBPath: "x.db", AdminPassword: "pw"}
	if err := ValidateConfig(valid); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	missing := valid
	missing.AdminPassword = ""
	if err := ValidateConfig(missing); err == nil || !strings.Contains(err.Error(), "admin password") {
		t.Fatalf("missing password accepted: %v", err)
	}

	halfLLM := valid
	halfLLM.LLMBaseURL = "http://localhost:8081/v1"
	if err := ValidateConfig(halfLLM); err == nil || !strings.Contains(err.Error(), "llm.model") {
		t.Fatalf("llm base without model accepted: %v", err)
	}
}
