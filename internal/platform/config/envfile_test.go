package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/documenter/internal/platform/config"
)

func TestEnvLoader_Candidates(t *testing.T) {
	t.Parallel()

	l := config.NewEnvLoader("/work", "/home/user", nil)
	assert.Equal(t, []string{
		filepath.Join("/work", ".env"),
		filepath.Join("/home/user", ".documenter", ".env"),
	}, l.Candidates())

	l = config.NewEnvLoader("/work", "", nil)
	assert.Equal(t, []string{filepath.Join("/work", ".env")}, l.Candidates())
}

func TestEnvLoader_ProjectFile(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetEnv(t, "DOCUMENTER_TEST_VAR")

	work, home := t.TempDir(), t.TempDir()
	want := writeFile(t, work, ".env", "DOCUMENTER_TEST_VAR=project\n")
	writeFile(t, home, ".documenter/.env", "DOCUMENTER_TEST_VAR=home\n")

	got := config.NewEnvLoader(work, home, nil).Load()

	assert.Equal(t, want, got)
	assert.Equal(t, "project", os.Getenv("DOCUMENTER_TEST_VAR"))
}

func TestEnvLoader_UserFileWhenProjectMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetEnv(t, "DOCUMENTER_TEST_VAR")

	work, home := t.TempDir(), t.TempDir()
	want := writeFile(t, home, ".documenter/.env", "DOCUMENTER_TEST_VAR=home\n")

	got := config.NewEnvLoader(work, home, nil).Load()

	assert.Equal(t, want, got)
	assert.Equal(t, "home", os.Getenv("DOCUMENTER_TEST_VAR"))
}

func TestEnvLoader_ProcessEnvWins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DOCUMENTER_TEST_VAR", "process")

	work := t.TempDir()
	writeFile(t, work, ".env", "DOCUMENTER_TEST_VAR=file\n")

	config.NewEnvLoader(work, "", nil).Load()

	assert.Equal(t, "process", os.Getenv("DOCUMENTER_TEST_VAR"))
}

func TestEnvLoader_DirectoryCandidateSkipped(t *testing.T) {
	t.Chdir(t.TempDir())
	unsetEnv(t, "DOCUMENTER_TEST_VAR")

	work, home := t.TempDir(), t.TempDir()
	if err := os.Mkdir(filepath.Join(work, ".env"), 0o755); err != nil {
		t.Fatalf("Mkdir error: %v", err)
	}
	want := writeFile(t, home, ".documenter/.env", "DOCUMENTER_TEST_VAR=home\n")

	assert.Equal(t, want, config.NewEnvLoader(work, home, nil).Load())
}

func TestEnvLoader_FallbackSearch(t *testing.T) {
	cwd := t.TempDir()
	t.Chdir(cwd)
	unsetEnv(t, "DOCUMENTER_TEST_VAR")
	writeFile(t, cwd, ".env", "DOCUMENTER_TEST_VAR=fallback\n")

	got := config.NewEnvLoader(t.TempDir(), "", nil).Load()

	assert.Equal(t, config.EnvFallback, got)
	assert.Equal(t, "fallback", os.Getenv("DOCUMENTER_TEST_VAR"))
}

func TestEnvLoader_NothingFound(t *testing.T) {
	t.Chdir(t.TempDir())

	got := config.NewEnvLoader(t.TempDir(), t.TempDir(), nil).Load()

	assert.Empty(t, got)
}
