// Package cli is the command-line adapter. It parses global flags, builds
// the logger, asks the composition root for dependencies, and renders
// configuration and readiness reports.
//
// Command tree:
//
//	documenter config show [--full] [--output text|json]
//	documenter config check [--provider openai|lmstudio]
//	documenter doctor
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/documenter/internal/platform/logging"
	"github.com/jsamuelsen11/documenter/internal/ports"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Dependencies are the ports the commands operate on.
type Dependencies struct {
	Manager  ports.ConfigManager
	Registry ports.HealthRegistry
}

// Factory builds the command dependencies once global flags are parsed.
type Factory func(ctx context.Context, logger *slog.Logger) (*Dependencies, error)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	LogLevel  string
	LogFormat string
}

type app struct {
	factory Factory
	opts    GlobalOptions
	deps    *Dependencies
}

// NewRootCommand builds the documenter command tree. factory is invoked
// before any subcommand runs.
func NewRootCommand(factory Factory) *cobra.Command {
	a := &app{factory: factory}

	root := &cobra.Command{
		Use:   "documenter",
		Short: "Generate project documentation with an LLM provider",
		Long: `documenter resolves its configuration from built-in defaults, the
process environment (.env files included), and an optional
.documenter.json or .documenter.yaml in the working directory.

Examples:
  # Show the active provider and model
  documenter config show

  # Verify the configuration is usable with LM Studio
  documenter config check --provider lmstudio

  # Run every readiness check
  documenter doctor`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.bootstrap,
	}

	root.PersistentFlags().StringVar(&a.opts.LogLevel, "log-level", "warn",
		"log level: "+strings.Join(logging.Levels, ", "))
	root.PersistentFlags().StringVar(&a.opts.LogFormat, "log-format", "text",
		"log format: "+strings.Join(logging.Formats, ", "))

	root.AddCommand(a.newConfigCommand(), a.newDoctorCommand())

	return root
}

func (a *app) bootstrap(cmd *cobra.Command, _ []string) error {
	if err := logging.Validate(a.opts.LogLevel, a.opts.LogFormat); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.New(a.opts.LogLevel, a.opts.LogFormat, cmd.ErrOrStderr())
	ctx = logging.WithLogger(ctx, logger)
	cmd.SetContext(ctx)

	deps, err := a.factory(ctx, logger)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}
	if deps == nil || deps.Manager == nil || deps.Registry == nil {
		return errors.New("initializing: incomplete dependencies")
	}
	a.deps = deps
	return nil
}
