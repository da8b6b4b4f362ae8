package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Dispatch.Timeout != 30*time.Second {
		t.Errorf("Dispatch.Timeout = %v, want %v", cfg.Dispatch.Timeout, 30*time.Second)
	}
	if !cfg.Dispatch.Wait {
		t.Error("Dispatch.Wait = false, want true")
	}
	if cfg.Dispatch.DrainTimeout != 5*time.Minute {
		t.Errorf("Dispatch.DrainTimeout = %v, want %v", cfg.Dispatch.DrainTimeout, 5*time.Minute)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoad_MatchesDefault(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if *cfg != *Default() {
		t.Errorf("Load() = %s, want %s", cfg, Default())
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("DISPATCH_WAIT", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Dispatch.Wait {
		t.Error("Dispatch.Wait = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_Duration(t *testing.T) {
	t.Setenv("DISPATCH_TIMEOUT", "45s")
	t.Setenv("DISPATCH_DRAIN_TIMEOUT", "1m30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Dispatch.Timeout != 45*time.Second {
		t.Errorf("Dispatch.Timeout = %v, want %v", cfg.Dispatch.Timeout, 45*time.Second)
	}
	if cfg.Dispatch.DrainTimeout != 90*time.Second {
		t.Errorf("Dispatch.DrainTimeout = %v, want %v", cfg.Dispatch.DrainTimeout, 90*time.Second)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{"bad duration", "DISPATCH_TIMEOUT", "soon", "DISPATCH_TIMEOUT"},
		{"bad boolean", "DISPATCH_WAIT", "maybe", "DISPATCH_WAIT"},
		{"bad level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"bad format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() expected error for %s=%q", tt.env, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := Default()
	cfg.Dispatch.Timeout = -time.Second

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for negative timeout")
	}
	if !strings.Contains(err.Error(), "DISPATCH_TIMEOUT") {
		t.Errorf("error should mention DISPATCH_TIMEOUT: %v", err)
	}
}

func TestValidate_DrainTimeoutOnlyCheckedWhenWaiting(t *testing.T) {
	cfg := Default()
	cfg.Dispatch.DrainTimeout = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for zero drain timeout with Wait=true")
	}

	cfg.Dispatch.Wait = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with Wait=false error = %v", err)
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := &Config{
		Dispatch: DispatchConfig{Timeout: -1, Wait: true},
		Logging:  LoggingConfig{Level: "loud", Format: "yaml"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"DISPATCH_TIMEOUT", "DISPATCH_DRAIN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestConfigString(t *testing.T) {
	str := Default().String()
	for _, want := range []string{"Timeout: 30s", "Wait: true", `Level: "info"`} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, should contain %q", str, want)
		}
	}
}
