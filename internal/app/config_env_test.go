package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnvToConfig_FillsDefaults(t *testing.T) {
	t.Setenv("SCRAPE_INPUT", "env.html")
	t.Setenv("SCRAPE_OUTPUT", "env.csv")
	t.Setenv("SCRAPE_OUTPUT_PDF", "env.pdf")

	cfg := Config{InputPath: InputDefault, OutputPath: OutputDefault}
	ApplyEnvToConfig(&cfg)
	if cfg.InputPath != "env.html" || cfg.OutputPath != "env.csv" || cfg.OutputPDFPath != "env.pdf" {
		t.Fatalf("unexpected overlay: %+v", cfg)
	}
}

func TestApplyEnvToConfig_ExplicitFlagsWin(t *testing.T) {
	t.Setenv("SCRAPE_INPUT", "env.html")
	t.Setenv("SCRAPE_OUTPUT_PDF", "env.pdf")

	cfg := Config{InputPath: "explicit.html", OutputPath: OutputDefault, OutputPDFPath: "explicit.pdf"}
	ApplyEnvToConfig(&cfg)
	if cfg.InputPath != "explicit.html" {
		t.Fatalf("explicit flag must win over env, got %q", cfg.InputPath)
	}
	if cfg.OutputPDFPath != "explicit.pdf" {
		t.Fatalf("explicit pdf flag must win over env, got %q", cfg.OutputPDFPath)
	}
}

func TestApplyEnvToConfig_ReachableFromDotenvFiles(t *testing.T) {
	t.Setenv("SCRAPE_INPUT", "")
	t.Setenv("SCRAPE_OUTPUT", "")

	dir := t.TempDir()
	first := filepath.Join(dir, "a.env")
	second := filepath.Join(dir, "b.env")
	if err := os.WriteFile(first, []byte("SCRAPE_INPUT=first.html\nSCRAPE_OUTPUT=out.csv\n"), 0o644); err != nil {
		t.Fatalf("write first dotenv: %v", err)
	}
	if err := os.WriteFile(second, []byte("SCRAPE_INPUT=second.html\n"), 0o644); err != nil {
		t.Fatalf("write second dotenv: %v", err)
	}

	if err := LoadEnvFiles(first, second); err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := Config{InputPath: InputDefault, OutputPath: OutputDefault}
	ApplyEnvToConfig(&cfg)
	if cfg.InputPath != "second.html" {
		t.Fatalf("later dotenv file must override earlier, got %q", cfg.InputPath)
	}
	if cfg.OutputPath != "out.csv" {
		t.Fatalf("earlier dotenv value must survive when not overridden, got %q", cfg.OutputPath)
	}
}
