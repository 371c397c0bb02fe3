package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SearchURL == "" {
		t.Error("default SearchURL should be set")
	}
	if cfg.TimeoutSeconds <= 0 {
		t.Error("default timeout should be positive")
	}
	if cfg.FullDocumentBaseURL == "" {
		t.Error("default full document base URL should be set")
	}
	if len(cfg.SuggestedSearches) != 10 {
		t.Errorf("expected 10 suggested searches, got %d", len(cfg.SuggestedSearches))
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("KANUN_SEARCH_URL", "http://search.test/api")
	t.Setenv("KANUN_DOC_BASE_URL", "http://docs.test/")
	t.Setenv("KANUN_TIMEOUT_SECONDS", "5")

	cfg := DefaultConfig()
	cfg.applyEnv()

	if cfg.SearchURL != "http://search.test/api" {
		t.Errorf("SearchURL = %q", cfg.SearchURL)
	}
	if cfg.FullDocumentBaseURL != "http://docs.test/" {
		t.Errorf("FullDocumentBaseURL = %q", cfg.FullDocumentBaseURL)
	}
	if cfg.TimeoutSeconds != 5 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
}

func TestApplyEnvRejectsBadTimeout(t *testing.T) {
	t.Setenv("KANUN_TIMEOUT_SECONDS", "not-a-number")

	cfg := DefaultConfig()
	want := cfg.TimeoutSeconds
	cfg.applyEnv()

	if cfg.TimeoutSeconds != want {
		t.Errorf("TimeoutSeconds = %d, want unchanged %d", cfg.TimeoutSeconds, want)
	}
}

func TestFillDefaultsRepairsZeroedFields(t *testing.T) {
	cfg := &Config{SearchURL: "http://kept.test"}
	cfg.fillDefaults()

	if cfg.SearchURL != "http://kept.test" {
		t.Error("fillDefaults should not override set fields")
	}
	if cfg.TimeoutSeconds <= 0 || cfg.HistoryLimit <= 0 {
		t.Error("fillDefaults should repair zeroed numeric fields")
	}
	if cfg.FullDocumentBaseURL == "" || len(cfg.SuggestedSearches) == 0 {
		t.Error("fillDefaults should repair empty fields")
	}
}
