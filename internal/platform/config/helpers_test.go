package config_test

import (
	"os"
	"path/filepath"
	"testing"
)

// recognizedEnv lists every variable the environment layer reads.
var recognizedEnv = []string{
	"LLM_PROVIDER",
	"OPENAI_API_KEY",
	"OPENAI_MODEL",
	"LMSTUDIO_ENDPOINT",
	"LMSTUDIO_MODEL",
	"MAX_CONVERSATION_HISTORY",
	"DEFAULT_OUTPUT_DIR",
	"LLM_TIMEOUT",
}

// unsetEnv removes key from the process environment for the duration of
// the test. t.Setenv registers the restore; the variable is then unset so
// .env loading treats it as absent.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Unsetenv(%q) error: %v", key, err)
	}
}

func clearRecognizedEnv(t *testing.T) {
	t.Helper()
	for _, key := range recognizedEnv {
		unsetEnv(t, key)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%q) error: %v", path, err)
	}
	return path
}

func ptr[T any](v T) *T { return &v }

// environ returns a fixed environment for Builder tests.
func environ(kv ...string) func() []string {
	return func() []string {
		out := make([]string, 0, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			out = append(out, kv[i]+"="+kv[i+1])
		}
		return out
	}
}
