package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/documenter/internal/platform/health"
)

const (
	statusOK   = "ok"
	statusSkip = "skip"
	statusFail = "FAIL"
)

func (a *app) newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run every readiness check",
		Long: `Run the registered readiness checks: one per supported provider and one
for the default output directory. Providers other than the active one are
reported as skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := a.deps.Registry.CheckAll(cmd.Context())

			names := make([]string, 0, len(results))
			for name := range results {
				names = append(names, name)
			}
			slices.Sort(names)

			w := cmd.OutOrStdout()
			failed := 0
			for _, name := range names {
				err := results[name]
				switch {
				case err == nil:
					fmt.Fprintf(w, "%-4s  %s\n", statusOK, name)
				case errors.Is(err, health.ErrProviderInactive):
					fmt.Fprintf(w, "%-4s  %s: %v\n", statusSkip, name, err)
				default:
					failed++
					fmt.Fprintf(w, "%-4s  %s: %v\n", statusFail, name, err)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(names))
			}
			return nil
		},
	}
}
