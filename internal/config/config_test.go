package config

import (
	"os"
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
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
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

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "30s",
			def:      time.Minute,
			expected: 30 * time.Second,
		},
		{
			name:     "invalid duration falls back to default",
			key:      "TEST_DURATION_BAD",
			value:    "not-a-duration",
			def:      6 * time.Hour,
			expected: 6 * time.Hour,
		},
		{
			name:     "unset falls back to default",
			key:      "TEST_DURATION_UNSET",
			def:      time.Hour,
			expected: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() { _ = os.Unsetenv(tt.key) }()
			}

			if got := mustDuration(tt.key, tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	if err := os.Setenv("TEST_OFFSET", "540"); err != nil {
		t.Fatalf("failed to set env var: %v", err)
	}
	defer func() { _ = os.Unsetenv("TEST_OFFSET") }()

	if got := getenvInt("TEST_OFFSET", 0); got != 540 {
		t.Errorf("getenvInt() = %v, want 540", got)
	}
	if got := getenvInt("TEST_OFFSET_MISSING", 540); got != 540 {
		t.Errorf("getenvInt() default = %v, want 540", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "comma separated with spaces",
			input:    "10.0.0.0/8, 192.168.1.5 ,  172.16.0.0/12",
			expected: []string{"10.0.0.0/8", "192.168.1.5", "172.16.0.0/12"},
		},
		{
			name:     "quoted entries",
			input:    `"https://example.org", 'https://admin.example.org'`,
			expected: []string{"https://example.org", "https://admin.example.org"},
		},
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndTrim(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("splitAndTrim() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
