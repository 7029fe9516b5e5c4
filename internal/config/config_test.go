package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NEWSAPI_URL", "")
	t.Setenv("HUGGINGFACE_API_URL", "")
	t.Setenv("BITCOIN_KEYWORDS", "")
	t.Setenv("MAX_ARTICLES", "")
	t.Setenv("MAX_CONCURRENT_REQUESTS", "")
	t.Setenv("HTTP_PORT", "")

	cfg := Load()

	if cfg.NewsAPIURL != defaultNewsAPIURL {
		t.Fatalf("unexpected newsapi url: %s", cfg.NewsAPIURL)
	}
	if len(cfg.BitcoinKeywords) == 0 {
		t.Fatal("expected default keywords")
	}
	if cfg.MaxArticles != 50 || cfg.MaxConcurrent != 10 {
		t.Fatalf("unexpected limits: %d %d", cfg.MaxArticles, cfg.MaxConcurrent)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected port: %d", cfg.HTTPPort)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BITCOIN_KEYWORDS", "bitcoin, лайткоин ,btc")
	t.Setenv("MAX_ARTICLES", "20")
	t.Setenv("MAX_CONCURRENT_REQUESTS", "5")
	t.Setenv("HTTP_PORT", "9000")

	cfg := Load()

	if len(cfg.BitcoinKeywords) != 3 || cfg.BitcoinKeywords[1] != "лайткоин" {
		t.Fatalf("unexpected keywords: %v", cfg.BitcoinKeywords)
	}
	if cfg.MaxArticles != 20 || cfg.MaxConcurrent != 5 || cfg.HTTPPort != 9000 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*Config)
		wantErr bool
	}{
		"valid":               {func(c *Config) {}, false},
		"empty keywords":      {func(c *Config) { c.BitcoinKeywords = nil }, true},
		"zero articles":       {func(c *Config) { c.MaxArticles = 0 }, true},
		"too many articles":   {func(c *Config) { c.MaxArticles = 1001 }, true},
		"zero concurrency":    {func(c *Config) { c.MaxConcurrent = 0 }, true},
		"too much concurrent": {func(c *Config) { c.MaxConcurrent = 51 }, true},
	}

	for name, tc := range tests {
		cfg := &Config{
			BitcoinKeywords: []string{"bitcoin"},
			MaxArticles:     50,
			MaxConcurrent:   10,
		}
		tc.mutate(cfg)
		err := cfg.Validate()
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
	}
}
