package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Blogs   []Blog  `yaml:"blogs"`
	Keyword string  `yaml:"keyword"`
	Rewrite Rewrite `yaml:"rewrite"`
	Output  Output  `yaml:"output"`
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
}

// Blog is one followed blog whose RSS feed gets batch-scored.
type Blog struct {
	RSS  string `yaml:"rss"`
	Name string `yaml:"name"`
}

// Rewrite configures the LLM used for AI-assisted rewriting.
type Rewrite struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	OllamaURL   string `yaml:"ollama_url"`
	OpenAIModel string `yaml:"openai_model"`
	APIKeyEnv   string `yaml:"api_key_env"`
	MaxTokens   int    `yaml:"max_tokens"`
}

type Output struct {
	DataDir string `yaml:"data_dir"`
}

type Server struct {
	Port int `yaml:"port"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for blogbooster.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "blogbooster")
}

// DataDir returns the XDG data directory for blogbooster.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "blogbooster")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/blogbooster/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'blogbooster init' to create a default config",
		xdgConfig,
	)
}

// Default returns the built-in default configuration.
func Default() *Config {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		// The embedded default must always parse.
		panic(err)
	}
	return cfg
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Rewrite: Rewrite{
			Provider:    "ollama",
			Model:       "qwen2.5:7b",
			OllamaURL:   "http://localhost:11434",
			OpenAIModel: "gpt-4o-mini",
			APIKeyEnv:   "OPENAI_API_KEY",
			MaxTokens:   2048,
		},
		Server:  Server{Port: 8600},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// GetDataDir returns the effective data directory from config or XDG default.
func (c *Config) GetDataDir() string {
	if c.Output.DataDir != "" {
		return c.Output.DataDir
	}
	return DataDir()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
