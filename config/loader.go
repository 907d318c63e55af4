package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "PROMPTLIB"

// Load reads configuration from, in increasing precedence: defaults, the config
// file, a .env file and the process environment (PROMPTLIB_LLM_API_KEY, ...).
// An empty path searches ./configs and the working directory; a missing file is
// only an error when the path was given explicitly.
func Load(path string) (*Config, error) {
	loadEnvFile(path)

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	overrideEmptyConfig(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// loadEnvFile loads .env from the working directory or next to the config file.
// Variables already set in the environment win.
func loadEnvFile(configPath string) {
	candidates := []string{".env"}
	if configPath != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(configPath), ".env"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// Provider-native key variables are honoured when no prefixed key was given.
func overrideEmptyConfig(cfg *Config) {
	if cfg.LLM.APIKey != "" {
		return
	}
	keys := []string{"API_KEY"}
	switch cfg.LLM.Provider {
	case "gemini":
		keys = append([]string{"GEMINI_API_KEY"}, keys...)
	case "openai":
		keys = append([]string{"OPENAI_API_KEY"}, keys...)
	case "deepseek":
		keys = append([]string{"DEEPSEEK_API_KEY"}, keys...)
	}
	for _, k := range keys {
		if val := strings.TrimSpace(os.Getenv(k)); val != "" {
			cfg.LLM.APIKey = val
			return
		}
	}
}
