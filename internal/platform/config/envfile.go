package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	envFileName = ".env"
	// userConfigDir is the per-user directory under $HOME.
	userConfigDir = ".documenter"
)

// EnvFallback is reported by [EnvLoader.Load] when neither explicit candidate
// was usable and godotenv's default search was attempted instead.
const EnvFallback = "<default>"

// EnvLoader seeds the process environment from a .env file. Variables that
// are already set in the process are never overridden.
type EnvLoader struct {
	workDir string
	homeDir string
	logger  *slog.Logger
}

// NewEnvLoader creates a loader probing workDir/.env, then
// homeDir/.documenter/.env. An empty homeDir skips the user candidate.
func NewEnvLoader(workDir, homeDir string, logger *slog.Logger) *EnvLoader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EnvLoader{workDir: workDir, homeDir: homeDir, logger: logger}
}

// Candidates returns the explicit .env paths in probe order.
func (l *EnvLoader) Candidates() []string {
	paths := []string{filepath.Join(l.workDir, envFileName)}
	if l.homeDir != "" {
		paths = append(paths, filepath.Join(l.homeDir, userConfigDir, envFileName))
	}
	return paths
}

// Load applies the first usable candidate and returns its path. When no
// explicit candidate loads it falls back to godotenv's default search and
// returns [EnvFallback] on success, or "" when nothing was loaded. Load never
// fails.
func (l *EnvLoader) Load() string {
	for _, path := range l.Candidates() {
		if !isReadableFile(path) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			l.logger.Debug("skipping env file", slog.String("path", path), slog.Any("error", err))
			continue
		}
		l.logger.Debug("loaded env file", slog.String("path", path))
		return path
	}

	if err := godotenv.Load(); err != nil {
		l.logger.Debug("no env file found", slog.Any("error", err))
		return ""
	}
	return EnvFallback
}

// isReadableFile reports whether path is a regular file that can be opened.
func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path) //nolint:gosec // candidate paths are fixed
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
