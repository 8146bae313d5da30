package app

import (
	"testing"
)

// TestLoadConfig verifies basic config loading and defaults.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	if config.Threshold != 80 {
		t.Errorf("Threshold = %v, want default 80", config.Threshold)
	}
	if config.DedupePolicy != "min" {
		t.Errorf("DedupePolicy = %q, want default min", config.DedupePolicy)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence over loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{
		Format:   "table",
		LogLevel: "info",
	}

	config.UpdateFromFlags(true, false, true, "json", "debug")

	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if config.Quiet {
		t.Error("Quiet should remain false")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flags")
	}
	if config.Format != "json" {
		t.Errorf("Format = %q, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", config.LogLevel)
	}

	// Empty flag values must not clobber loaded values
	config.UpdateFromFlags(true, false, true, "", "")
	if config.Format != "json" {
		t.Errorf("empty format flag clobbered Format, got %q", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("empty log-level flag clobbered LogLevel, got %q", config.LogLevel)
	}
}
