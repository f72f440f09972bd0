package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Sources
	Google GoogleConfig
	Gmail  GmailConfig

	// LLM Provider Abstraction
	LLM   LLMConfig
	Cache CacheConfig

	// Planning
	Schedule ScheduleConfig
	Pipeline PipelineConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// RateLimitPerMin bounds plan requests per client IP. Zero disables the limit.
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GoogleConfig locates Google credentials and the calendar to plan against.
type GoogleConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
}

type GmailConfig struct {
	Query    string
	MaxItems int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryBaseDelay  time.Duration    `yaml:"retry_base_delay"`
	RetryMaxDelay   time.Duration    `yaml:"retry_max_delay"`
	AttemptTimeout  time.Duration    `yaml:"attempt_timeout"`
	MaxTotalTimeout time.Duration    `yaml:"max_total_timeout"`
	RequestsPerSec  float64          `yaml:"requests_per_sec"`
	Burst           int              `yaml:"burst"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
}

// CacheConfig selects the LLM response cache. An empty RedisAddr keeps it in memory.
type CacheConfig struct {
	TTL           time.Duration
	Size          int
	RedisAddr     string
	RedisDB       int
	RedisPassword string
}

type ScheduleConfig struct {
	BlockDuration  time.Duration
	Buffer         time.Duration
	ProbeStep      time.Duration
	WorkStartHour  int
	WorkEndHour    int
	LookaheadDays  int
	SortByPriority bool
}

type PipelineConfig struct {
	Workers       int
	ItemTimeout   time.Duration
	CalendarLimit int
	LogFile       string
	ExportPath    string
	// Owner narrows meeting action items to one person. Empty keeps all of them.
	Owner string
	// Commit writes proposed blocks back to the calendar.
	Commit bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/inbox-planner/
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags is Load with command-line flags bound over file and env values.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/inbox-planner/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if fs != nil {
		if err := bindFlags(fs); err != nil {
			return nil, err
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Sources
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.TokenPath = viper.GetString("google.token_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.Timezone = viper.GetString("google.timezone")
	if googleCreds := viper.GetString("google_credentials"); googleCreds != "" {
		cfg.Google.CredentialsPath = googleCreds
	}
	cfg.Gmail.Query = viper.GetString("gmail.query")
	cfg.Gmail.MaxItems = viper.GetInt("gmail.max_items")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryBaseDelay = viper.GetDuration("llm.retry_base_delay")
	cfg.LLM.RetryMaxDelay = viper.GetDuration("llm.retry_max_delay")
	cfg.LLM.AttemptTimeout = viper.GetDuration("llm.attempt_timeout")
	cfg.LLM.MaxTotalTimeout = viper.GetDuration("llm.max_total_timeout")
	cfg.LLM.RequestsPerSec = viper.GetFloat64("llm.requests_per_sec")
	cfg.LLM.Burst = viper.GetInt("llm.burst")
	cfg.LLM.Providers = loadProviders()

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.RedisAddr = viper.GetString("cache.redis_addr")
	cfg.Cache.RedisDB = viper.GetInt("cache.redis_db")
	cfg.Cache.RedisPassword = viper.GetString("cache.redis_password")

	// Planning
	cfg.Schedule.BlockDuration = viper.GetDuration("schedule.block_duration")
	cfg.Schedule.Buffer = viper.GetDuration("schedule.buffer")
	cfg.Schedule.ProbeStep = viper.GetDuration("schedule.probe_step")
	cfg.Schedule.WorkStartHour = viper.GetInt("schedule.work_start_hour")
	cfg.Schedule.WorkEndHour = viper.GetInt("schedule.work_end_hour")
	cfg.Schedule.LookaheadDays = viper.GetInt("schedule.lookahead_days")
	cfg.Schedule.SortByPriority = viper.GetBool("schedule.sort_by_priority")

	cfg.Pipeline.Workers = viper.GetInt("pipeline.workers")
	cfg.Pipeline.ItemTimeout = viper.GetDuration("pipeline.item_timeout")
	cfg.Pipeline.CalendarLimit = viper.GetInt("pipeline.calendar_limit")
	cfg.Pipeline.LogFile = viper.GetString("pipeline.log_file")
	cfg.Pipeline.ExportPath = viper.GetString("pipeline.export_path")
	cfg.Pipeline.Owner = viper.GetString("pipeline.owner")
	cfg.Pipeline.Commit = viper.GetBool("pipeline.commit")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 30)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google.credentials_path", "secrets/credentials.json")
	viper.SetDefault("google.token_path", "secrets/token.json")
	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.timezone", "UTC")
	viper.SetDefault("gmail.query", "in:inbox category:primary")
	viper.SetDefault("gmail.max_items", 5)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_base_delay", "2s")
	viper.SetDefault("llm.retry_max_delay", "10s")
	viper.SetDefault("llm.attempt_timeout", "30s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.requests_per_sec", 1.0)
	viper.SetDefault("llm.burst", 2)

	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.size", 256)

	viper.SetDefault("schedule.block_duration", "1h")
	viper.SetDefault("schedule.buffer", "15m")
	viper.SetDefault("schedule.probe_step", "30m")
	viper.SetDefault("schedule.work_start_hour", 9)
	viper.SetDefault("schedule.work_end_hour", 18)
	viper.SetDefault("schedule.lookahead_days", 3)
	viper.SetDefault("schedule.sort_by_priority", true)

	viper.SetDefault("pipeline.workers", 4)
	viper.SetDefault("pipeline.item_timeout", "90s")
	viper.SetDefault("pipeline.calendar_limit", 10)
	viper.SetDefault("pipeline.log_file", "pipeline_logs.txt")
}

// bindFlags maps "--gmail-max-items" style flags onto "gmail.max_items" keys.
func bindFlags(fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		key := strings.Replace(f.Name, "-", ".", 1)
		key = strings.ReplaceAll(key, "-", "_")
		if err := viper.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}

	var providers []ProviderConfig
	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
