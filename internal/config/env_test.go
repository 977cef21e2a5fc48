package config

import (
	"os"
	"testing"
)

// unset removes keys for the rest of the test; t.Setenv already registered their restore.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unsetenv %s: %v", key, err)
		}
	}
}
