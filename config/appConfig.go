package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// StoreConfig points the client at the store backend and tunes the outbound
// HTTP behavior.
type StoreConfig struct {
	BaseURL           string  `yaml:"base_url"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	DefaultUserID     string  `yaml:"default_user_id"`
	// SessionFile, when set, persists the login token on disk; empty keeps
	// it in memory for the lifetime of the process.
	SessionFile string `yaml:"session_file"`
}

type AppConfig struct {
	Store StoreConfig `yaml:"store"`
}

// LoadConfig reads the YAML file and applies environment overrides on top,
// so a deployment can redirect the client without editing the file.
func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}

	config.Store.BaseURL = getEnv("STORE_BASE_URL", config.Store.BaseURL)
	config.Store.DefaultUserID = getEnv("STORE_USER_ID", config.Store.DefaultUserID)
	config.Store.SessionFile = getEnv("STORE_SESSION_FILE", config.Store.SessionFile)
	return config, nil
}
