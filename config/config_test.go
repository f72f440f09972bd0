package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const sampleYAML = `
environment:
  name: test
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: ${PLANNER_TEST_GEMINI_KEY}
      model: gemini-2.5-flash
schedule:
  work_end_hour: 17
  buffer: 10m
`

func chdirTemp(t *testing.T, yaml string) {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Chdir(wd)
		viper.Reset()
	})
}

func TestLoad(t *testing.T) {
	chdirTemp(t, sampleYAML)
	t.Setenv("PLANNER_TEST_GEMINI_KEY", "secret-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment.Name != "test" {
		t.Errorf("environment = %q", cfg.Environment.Name)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].APIKey != "secret-key" {
		t.Errorf("unexpected providers: %+v", cfg.LLM.Providers)
	}
	if cfg.Schedule.WorkEndHour != 17 || cfg.Schedule.Buffer != 10*time.Minute {
		t.Errorf("file values not applied: %+v", cfg.Schedule)
	}
	if cfg.Schedule.BlockDuration != time.Hour || cfg.Schedule.ProbeStep != 30*time.Minute || !cfg.Schedule.SortByPriority {
		t.Errorf("defaults not applied: %+v", cfg.Schedule)
	}
	if cfg.LLM.RetryAttempts != 3 || cfg.LLM.RetryBaseDelay != 2*time.Second || cfg.LLM.RetryMaxDelay != 10*time.Second {
		t.Errorf("llm retry defaults not applied: %+v", cfg.LLM)
	}
	if cfg.Pipeline.Workers != 4 || cfg.Pipeline.LogFile != "pipeline_logs.txt" {
		t.Errorf("pipeline defaults not applied: %+v", cfg.Pipeline)
	}
}

func TestLoadWithFlags(t *testing.T) {
	chdirTemp(t, sampleYAML)

	fs := pflag.NewFlagSet("planner", pflag.ContinueOnError)
	fs.Int("gmail-max-items", 5, "")
	fs.Int("schedule-lookahead-days", 3, "")
	if err := fs.Parse([]string{"--gmail-max-items=12", "--schedule-lookahead-days=1"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithFlags(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gmail.MaxItems != 12 {
		t.Errorf("gmail.max_items = %d, want 12", cfg.Gmail.MaxItems)
	}
	if cfg.Schedule.LookaheadDays != 1 {
		t.Errorf("schedule.lookahead_days = %d, want 1", cfg.Schedule.LookaheadDays)
	}
}

func TestLoadRequiresProvider(t *testing.T) {
	chdirTemp(t, "environment:\n  name: test\n")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without llm providers")
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"empty", LLMConfig{}, true},
		{"none enabled", LLMConfig{Providers: []ProviderConfig{{Name: "gemini"}}}, true},
		{"missing name", LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}}, true},
		{"bad priority", LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true}}}, true},
		{"duplicate priority", LLMConfig{Providers: []ProviderConfig{
			{Name: "a", Enabled: true, Priority: 1},
			{Name: "b", Enabled: true, Priority: 1},
		}}, true},
		{"ok", LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
