// Package config loads and persists kanun's configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the persistent application configuration.
type Config struct {
	// Search service
	SearchURL      string `json:"search_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`

	// External full-document viewer
	FullDocumentBaseURL string `json:"full_document_base_url"`

	// History
	HistoryLimit int `json:"history_limit"`

	// Starter queries shown before the user has any history
	SuggestedSearches []string `json:"suggested_searches"`
}

// DefaultConfig returns sensible defaults. The suggested searches are
// the service's own starter set.
func DefaultConfig() *Config {
	return &Config{
		SearchURL:           "http://localhost:8000/search",
		TimeoutSeconds:      30,
		FullDocumentBaseURL: "https://nkp.gov.np/full_detail/",
		HistoryLimit:        20,
		SuggestedSearches: []string{
			"दल दर्ता र धार्मिक चिन्ह।",
			"जग्गा सरकारीकरण र प्राकृतिक न्याय।",
			"पुनरावेदन अदालत फैसला र लेनदेन।",
			"अदालत बयान र प्रमाण विरोधाभास।",
			"भन्सार महसुल र छुट सुविधा।",
			"विदेशी नागरिक विवाह र भिसा शुल्क।",
			"न्याय परिषद निर्णय र सूचनाको हक।",
			"कर्तव्य र भवितव्य बीचको भिन्नता।",
			"म्याद तामेल र सिमाना विवाद।",
			"पेशा रोजगार स्वतन्त्रतामा बन्देज।",
		},
	}
}

// DataDir returns kanun's data directory.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kanun")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// HistoryPath returns the path to the query history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), "history.db")
}

// Load reads config from disk, or returns defaults. Environment
// variables override whatever was loaded.
func Load() (*Config, error) {
	path := ConfigPath()

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		cfg = DefaultConfig()
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// applyEnv overrides config fields from environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("KANUN_SEARCH_URL"); v != "" {
		c.SearchURL = v
	}
	if v := os.Getenv("KANUN_DOC_BASE_URL"); v != "" {
		c.FullDocumentBaseURL = v
	}
	if v := os.Getenv("KANUN_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			c.TimeoutSeconds = seconds
		}
	}
}

// fillDefaults repairs fields a hand-edited config file may have zeroed.
func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.SearchURL == "" {
		c.SearchURL = defaults.SearchURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if c.FullDocumentBaseURL == "" {
		c.FullDocumentBaseURL = defaults.FullDocumentBaseURL
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = defaults.HistoryLimit
	}
	if len(c.SuggestedSearches) == 0 {
		c.SuggestedSearches = defaults.SuggestedSearches
	}
}
