package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.View.MaxMarkup != -1 {
		t.Errorf("MaxMarkup default = %d, want -1 (unset)", cfg.View.MaxMarkup)
	}
	if cfg.View.Since != 0 {
		t.Errorf("Since default = %v, want 0 (disabled)", cfg.View.Since)
	}
	if cfg.View.Sort != "distance" {
		t.Errorf("Sort default = %q, want distance", cfg.View.Sort)
	}
	if cfg.Store.Type != "file" {
		t.Errorf("Store type default = %q, want file", cfg.Store.Type)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SINCE", "72h")
	t.Setenv("MAX_MARKUP", "500")
	t.Setenv("FILTER", "true")
	t.Setenv("PORT", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.View.Since != 72*time.Hour {
		t.Errorf("Since = %v, want 72h", cfg.View.Since)
	}
	if cfg.View.MaxMarkup != 500 {
		t.Errorf("MaxMarkup = %d, want 500", cfg.View.MaxMarkup)
	}
	if !cfg.View.Filter {
		t.Error("Filter not set")
	}
	if cfg.Server.Port != 0 {
		t.Errorf("Port = %d, want 0", cfg.Server.Port)
	}
}

func TestAddressHelpers(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 8080}
	if got := s.Address(); got != "0.0.0.0:8080" {
		t.Errorf("Address = %q", got)
	}

	st := StoreConfig{RedisHost: "localhost", RedisPort: 6379}
	if got := st.RedisAddress(); got != "localhost:6379" {
		t.Errorf("RedisAddress = %q", got)
	}
}
