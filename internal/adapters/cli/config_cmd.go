package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/documenter/internal/platform/config"
	"github.com/jsamuelsen11/documenter/internal/platform/logging"
)

func (a *app) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}
	cmd.AddCommand(a.newConfigShowCommand(), a.newConfigCheckCommand())
	return cmd
}

func (a *app) newConfigShowCommand() *cobra.Command {
	var (
		full   bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration with secrets redacted",
		Long: `Print a summary of the active configuration: provider, model, working
directory, LM Studio endpoint, and the configuration file in use.

With --full, every field is printed and the OpenAI API key is replaced
with [REDACTED].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != OutputText && output != OutputJSON {
				return fmt.Errorf("unsupported output format %q (want %s or %s)", output, OutputText, OutputJSON)
			}

			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			if !full {
				summary, err := a.deps.Manager.ConfigSummary(ctx)
				if err != nil {
					return reportConfigError(cmd, err)
				}
				if output == OutputJSON {
					return writeJSON(w, summary)
				}
				return writeSummary(w, summary)
			}

			cfg, err := a.deps.Manager.GetConfig(ctx)
			if err != nil {
				return reportConfigError(cmd, err)
			}
			sanitized := a.deps.Manager.SanitizeConfigForLogging(*cfg)
			if output == OutputJSON {
				return writeJSON(w, sanitized)
			}
			return writeConfig(w, sanitized)
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "print every field instead of the summary")
	cmd.Flags().StringVarP(&output, "output", "o", OutputText, "output format: text, json")

	return cmd
}

func (a *app) newConfigCheckCommand() *cobra.Command {
	var provider string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and report where it came from",
		Long: `Resolve the configuration and report whether it is valid.

With --provider, also verify that the configuration targets that provider
and carries the fields it needs (an API key for openai, an endpoint and
model for lmstudio).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			var target config.Provider
			if provider != "" {
				p, ok := config.ParseProvider(provider)
				if !ok {
					return fmt.Errorf("unknown provider %q (want one of: %s)", provider, providerList())
				}
				target = p
			}

			cfg, err := a.deps.Manager.GetConfig(ctx)
			if err != nil {
				return reportConfigError(cmd, err)
			}

			src := a.deps.Manager.Sources()
			fmt.Fprintf(w, "configuration valid (provider: %s, model: %s)\n", cfg.Provider, cfg.Model())
			fmt.Fprintf(w, "  env file:    %s\n", orNone(src.EnvFile))
			fmt.Fprintf(w, "  config file: %s\n", orNone(src.ConfigFile))

			if target == "" {
				return nil
			}
			if !a.deps.Manager.IsValidForProvider(ctx, target) {
				return fmt.Errorf("configuration is not usable with provider %s", target)
			}
			fmt.Fprintf(w, "ready for provider %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "provider to verify: "+providerList())

	return cmd
}

// reportConfigError logs err and prints each schema violation before
// returning err to the caller.
func reportConfigError(cmd *cobra.Command, err error) error {
	logging.FromContext(cmd.Context()).DebugContext(cmd.Context(), "configuration unavailable",
		slog.Any("error", err),
	)

	var verr *config.ValidationError
	if errors.As(err, &verr) {
		writeViolations(cmd.ErrOrStderr(), verr.Violations)
	}
	return err
}

func writeViolations(w io.Writer, violations []config.Violation) {
	for _, v := range violations {
		fmt.Fprintf(w, "  - %s\n", v)
	}
}

func providerList() string {
	names := make([]string, 0, len(config.Providers))
	for _, p := range config.Providers {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
