package app

import (
	"testing"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Pipeline_Singleton verifies that Pipeline() returns the same instance.
func TestApp_Pipeline_Singleton(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	p1, err := app.Pipeline()
	if err != nil {
		t.Fatalf("Pipeline() failed: %v", err)
	}

	p2, err := app.Pipeline()
	if err != nil {
		t.Fatalf("Pipeline() failed on second call: %v", err)
	}

	if p1 != p2 {
		t.Error("Pipeline() returned different instances")
	}
}

// TestApp_WithConfig verifies the config option.
func TestApp_WithConfig(t *testing.T) {
	custom := &Config{
		Threshold:    90,
		DedupePolicy: "max",
		LogFormat:    "json",
		LogOutput:    "stderr",
	}

	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(custom))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Config() != custom {
		t.Error("WithConfig() did not set the custom config")
	}
	if app.Config().Threshold != 90 {
		t.Errorf("Threshold = %v, want 90", app.Config().Threshold)
	}
}
