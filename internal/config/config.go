package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config represents runtime configuration for the service.
type Config struct {
	BasicConfig BasicConfig `json:"basic_config"`
	Figma       FigmaConfig `json:"figma"`
	Redis       RedisConfig `json:"redis"`
}

type BasicConfig struct {
	ServerAddress string `json:"server_address"`
	LogFormat     string `json:"log_format"` // "json" (default) or "console"
}

type FigmaConfig struct {
	BaseURL                string `json:"base_url"`
	Token                  string `json:"token"`
	ProjectID              string `json:"project_id"`
	TeamCacheTTLMinutes    int    `json:"team_cache_ttl_minutes"`
	ProjectCacheTTLMinutes int    `json:"project_cache_ttl_minutes"`
	EnrichConcurrency      int    `json:"enrich_concurrency"`
	RequestTimeoutSeconds  int    `json:"request_timeout_seconds"`
}

type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

const (
	DefaultBaseURL        = "https://api.figma.com/v1"
	DefaultTeamTTLMin     = 5
	DefaultProjectTTLMin  = 60
	DefaultConcurrency    = 4
	DefaultTimeoutSeconds = 10
)

// Load reads configuration from the provided path (defaults to config.json).
// A missing file is not an error: the service can run entirely from
// environment variables.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}

	var cfg Config
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	file, err := os.Open(absPath)
	if err == nil {
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyEnv lets environment variables override file values, so tokens
// stay out of checked-in config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("FIGMA_TOKEN"); v != "" {
		cfg.Figma.Token = v
	}
	if v := os.Getenv("FIGMA_PROJECT_ID"); v != "" {
		cfg.Figma.ProjectID = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Host, cfg.Redis.Port = splitHostPort(v)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.BasicConfig.ServerAddress == "" {
		cfg.BasicConfig.ServerAddress = ":8090"
	}
	if cfg.Figma.BaseURL == "" {
		cfg.Figma.BaseURL = DefaultBaseURL
	}
	if cfg.Figma.TeamCacheTTLMinutes <= 0 {
		cfg.Figma.TeamCacheTTLMinutes = DefaultTeamTTLMin
	}
	if cfg.Figma.ProjectCacheTTLMinutes <= 0 {
		cfg.Figma.ProjectCacheTTLMinutes = DefaultProjectTTLMin
	}
	if cfg.Figma.EnrichConcurrency <= 0 {
		cfg.Figma.EnrichConcurrency = DefaultConcurrency
	}
	if cfg.Figma.RequestTimeoutSeconds <= 0 {
		cfg.Figma.RequestTimeoutSeconds = DefaultTimeoutSeconds
	}
}

func splitHostPort(addr string) (string, int) {
	idx := strings.LastIndex(addr, ":")
	if idx < 0 {
		return addr, 0
	}
	port, err := strconv.Atoi(addr[idx+1:])
	if err != nil {
		return addr, 0
	}
	return addr[:idx], port
}
