package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrape.yaml")
	body := "input: sheet.html\noutput: out.csv\noutputPDF: roster.pdf\nverbose: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Input != "sheet.html" || fc.Output != "out.csv" || fc.OutputPDF != "roster.pdf" || !fc.Verbose {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrape.json")
	body := `{"input":"sheet.html","output":"out.csv"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Input != "sheet.html" || fc.Output != "out.csv" {
		t.Fatalf("unexpected config: %+v", fc)
	}
}

func TestApplyFileConfig_FlagsWinOverFile(t *testing.T) {
	cfg := Config{InputPath: "explicit.html", OutputPath: OutputDefault}
	ApplyFileConfig(&cfg, FileConfig{Input: "file.html", Output: "file.csv"})
	if cfg.InputPath != "explicit.html" {
		t.Fatalf("explicit flag must win, got %q", cfg.InputPath)
	}
	if cfg.OutputPath != "file.csv" {
		t.Fatalf("default flag must yield to file config, got %q", cfg.OutputPath)
	}
}

func TestValidateConfig(t *testing.T) {
	ok := Config{InputPath: "a.html", OutputPath: "b.csv"}
	if err := ValidateConfig(ok); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	if err := ValidateConfig(Config{OutputPath: "b.csv"}); err == nil {
		t.Fatalf("missing input must be rejected")
	}
	if err := ValidateConfig(Config{InputPath: "  ", OutputPath: "b.csv"}); err == nil {
		t.Fatalf("blank input must be rejected")
	}
}
