package config

import (
	"testing"
	"time"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Error("rate limiting should default on")
	}
	if cfg.Capacity < 1 || cfg.RefillTokens < 1 {
		t.Errorf("invalid bucket shape: capacity=%d refill=%d", cfg.Capacity, cfg.RefillTokens)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Errorf("TTL %s shorter than five refill intervals", cfg.TTL)
	}
}

func TestLoadRateLimitConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s") // below the floor, must be raised

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 3 {
		t.Errorf("Capacity = %d, want 3", cfg.Capacity)
	}
	if cfg.RefillInterval != 2*time.Second {
		t.Errorf("RefillInterval = %s, want 2s", cfg.RefillInterval)
	}
	if cfg.TTL != 10*time.Second {
		t.Errorf("TTL = %s, want 10s floor", cfg.TTL)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("caching should default on")
	}
	if cfg.TTL != 30*time.Second {
		t.Errorf("TTL = %s, want 30s", cfg.TTL)
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Errorf("MaxBodyBytes = %d, want 1 MiB", cfg.MaxBodyBytes)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"off", true, false},
		{"junk", true, true},
	}
	for _, tt := range tests {
		t.Setenv("X_TEST_BOOL", tt.val)
		if got := envBool("X_TEST_BOOL", tt.def); got != tt.want {
			t.Errorf("envBool(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}
