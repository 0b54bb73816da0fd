package config

import (
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_GETENV", "set")
	if got := getenv("TEST_GETENV", "fallback"); got != "set" {
		t.Errorf("getenv() = %v, want set", got)
	}
	if got := getenv("TEST_GETENV_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getenv() = %v, want fallback", got)
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      int
		expected int
	}{
		{name: "valid integer", value: "42", set: true, def: 7, expected: 42},
		{name: "invalid integer falls back", value: "nope", set: true, def: 7, expected: 7},
		{name: "not set falls back", def: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_GETENV_INT", tt.value)
			}
			if got := getenvInt("TEST_GETENV_INT", tt.def); got != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      bool
		expected bool
	}{
		{name: "true", value: "true", set: true, def: false, expected: true},
		{name: "false", value: "false", set: true, def: true, expected: false},
		{name: "garbage falls back", value: "maybe", set: true, def: true, expected: true},
		{name: "not set falls back", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_MUST_BOOL", tt.value)
			}
			if got := mustBool("TEST_MUST_BOOL", tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "30s", set: true, def: time.Second, expected: 30 * time.Second},
		{name: "invalid duration falls back", value: "soon", set: true, def: time.Second, expected: time.Second},
		{name: "not set falls back", def: 2 * time.Minute, expected: 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("TEST_MUST_DURATION", tt.value)
			}
			if got := mustDuration("TEST_MUST_DURATION", tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadMemoryBackendDefaults(t *testing.T) {
	t.Setenv("SONGBOOK_STORE", "memory")

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.ImportScheme != "spiewnik" {
		t.Errorf("ImportScheme = %v, want spiewnik", cfg.ImportScheme)
	}
	if cfg.SyncInterval != time.Hour {
		t.Errorf("SyncInterval = %v, want 1h", cfg.SyncInterval)
	}
	if cfg.ImportMaxBytes != 1<<20 {
		t.Errorf("ImportMaxBytes = %v, want %v", cfg.ImportMaxBytes, 1<<20)
	}
	// Redis settings must not be required on the memory backend.
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %v, want empty", cfg.RedisAddr)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("SONGBOOK_STORE", "postgres")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked on unknown backend")
		}
	}()
	Load()
}
