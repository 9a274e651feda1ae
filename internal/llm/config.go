package llm

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskIdeation   TaskType = "ideation"
	TaskCurriculum TaskType = "curriculum"
	TaskAssignment TaskType = "assignment"
	TaskSummarize  TaskType = "summarize"
)

// Provider selects which model backend serves requests.
type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem. Values are
// layered: code defaults, then the optional config file, then ALF_LLM_*
// environment variables.
type LLMConfig struct {
	Enabled        bool     `yaml:"enabled"`
	LogCalls       bool     `yaml:"log_calls"`
	Provider       Provider `yaml:"provider"`
	Endpoint       string   `yaml:"endpoint"`
	Model          string   `yaml:"model"`
	AnthropicModel string   `yaml:"anthropic_model"`
	APIKey         string   `yaml:"api_key"`
	TimeoutMs      int      `yaml:"timeout_ms"`
	MaxRetries     int      `yaml:"max_retries"`
	Tasks          map[TaskType]TaskConfig `yaml:"-"`
}

// DefaultConfig returns an LLMConfig with sensible defaults. The coach
// is enabled by default; provider is resolved at load time.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:        true,
		LogCalls:       false,
		Provider:       "",
		Endpoint:       "http://localhost:11434",
		Model:          "llama3.2",
		AnthropicModel: "claude-sonnet-4-20250514",
		TimeoutMs:      30000,
		MaxRetries:     1,
		Tasks: map[TaskType]TaskConfig{
			TaskIdeation:   {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 30000},
			TaskCurriculum: {Temperature: 0.6, MaxTokens: 2048, TimeoutMs: 45000},
			TaskAssignment: {Temperature: 0.5, MaxTokens: 2048, TimeoutMs: 45000},
			TaskSummarize:  {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads LLM configuration from the optional config file and
// environment variables, falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()
	applyFile(&cfg, configFilePath())
	applyEnv(&cfg)
	resolveProvider(&cfg)
	return cfg
}

// configFilePath returns the config file location: ALF_CONFIG if set,
// otherwise ~/.alfcoach/config.yaml.
func configFilePath() string {
	if p := os.Getenv("ALF_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alfcoach", "config.yaml")
}

// applyFile overlays values from a YAML config file. A missing file is
// fine; a malformed one is ignored rather than aborting startup.
func applyFile(cfg *LLMConfig, path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var file LLMConfig
	file.Enabled = cfg.Enabled
	file.LogCalls = cfg.LogCalls
	if err := yaml.Unmarshal(data, &file); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring malformed config %s: %v\n", path, err)
		return
	}
	cfg.Enabled = file.Enabled
	cfg.LogCalls = file.LogCalls
	if file.Provider != "" {
		cfg.Provider = file.Provider
	}
	if file.Endpoint != "" {
		cfg.Endpoint = file.Endpoint
	}
	if file.Model != "" {
		cfg.Model = file.Model
	}
	if file.AnthropicModel != "" {
		cfg.AnthropicModel = file.AnthropicModel
	}
	if file.APIKey != "" {
		cfg.APIKey = file.APIKey
	}
	if file.TimeoutMs > 0 {
		cfg.TimeoutMs = file.TimeoutMs
	}
	if file.MaxRetries > 0 {
		cfg.MaxRetries = file.MaxRetries
	}
}

func applyEnv(cfg *LLMConfig) {
	if v := os.Getenv("ALF_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ALF_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ALF_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
	}
	if v := os.Getenv("ALF_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ALF_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ALF_LLM_ANTHROPIC_MODEL"); v != "" {
		cfg.AnthropicModel = v
	}
	if v := os.Getenv("ALF_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ALF_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(cfg, TaskIdeation, "ALF_LLM_IDEATION_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskCurriculum, "ALF_LLM_CURRICULUM_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskAssignment, "ALF_LLM_ASSIGNMENT_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskSummarize, "ALF_LLM_SUMMARIZE_TIMEOUT_MS")
}

// resolveProvider picks a backend when none is configured: Anthropic
// when an API key is present, Ollama otherwise.
func resolveProvider(cfg *LLMConfig) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.Provider != "" {
		return
	}
	if cfg.APIKey != "" {
		cfg.Provider = ProviderAnthropic
	} else {
		cfg.Provider = ProviderOllama
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

// NewClient constructs the configured provider's client.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case ProviderAnthropic:
		return NewAnthropicClient(cfg, observer)
	case ProviderOllama, "":
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q (expected ollama or anthropic)", cfg.Provider)
	}
}
