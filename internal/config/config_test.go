package config

import (
	"path/filepath"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIPort != "8080" {
		t.Errorf("APIPort = %q, want 8080", cfg.APIPort)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %v, want 24h", cfg.JWTTTL)
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want 500", cfg.ChunkSize)
	}
	if cfg.RetrievalTopK != 3 {
		t.Errorf("RetrievalTopK = %d, want 3", cfg.RetrievalTopK)
	}
	if cfg.UseLLM {
		t.Error("UseLLM = true, want false by default")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("API_PORT", "9001")
	t.Setenv("USE_LLM", "true")
	t.Setenv("JWT_TTL_HOURS", "48")
	t.Setenv("CHUNK_SIZE", "250")
	t.Setenv("RETRIEVAL_TOP_K", "5")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIPort != "9001" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
	if !cfg.UseLLM {
		t.Error("UseLLM = false, want true")
	}
	if cfg.JWTTTL != 48*time.Hour {
		t.Errorf("JWTTTL = %v", cfg.JWTTTL)
	}
	if cfg.ChunkSize != 250 || cfg.RetrievalTopK != 5 {
		t.Errorf("ChunkSize = %d, RetrievalTopK = %d", cfg.ChunkSize, cfg.RetrievalTopK)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q", cfg.LogFormat)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing jwt secret",
			env:  map[string]string{"JWT_SECRET": ""},
		},
		{
			name: "bad ttl",
			env:  map[string]string{"JWT_TTL_HOURS": "zero"},
		},
		{
			name: "negative chunk size",
			env:  map[string]string{"CHUNK_SIZE": "-1"},
		},
		{
			name: "bad top k",
			env:  map[string]string{"RETRIEVAL_TOP_K": "many"},
		},
		{
			name: "bad log format",
			env:  map[string]string{"LOG_FORMAT": "xml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}
