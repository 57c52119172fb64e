package config

import (
	"os"
	"testing"
)

func TestLoadAppliesDefaultsWhenUnset(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BaseURL != "https://ecc.ssu.ac.kr" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("WDCLIENT_BASE_URL", "https://example.edu")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BaseURL != "https://example.edu" {
		t.Fatalf("BaseURL = %q, want env override", cfg.BaseURL)
	}
}

func TestLoadFileOverridesDefaultsButNotEnv(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "cfg-*.yml")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	if _, err := f.WriteString("base_url: https://file.example\nsemester_override: \"0923\"\nuser_agent: file-agent\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()
	t.Setenv("WDCLIENT_USER_AGENT", "env-agent")

	cfg, err := Load(f.Name())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BaseURL != "https://file.example" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.SemesterOverride != "0923" {
		t.Fatalf("SemesterOverride = %q", cfg.SemesterOverride)
	}
	if cfg.UserAgent != "env-agent" {
		t.Fatalf("UserAgent = %q, want env to win over the file", cfg.UserAgent)
	}
}
