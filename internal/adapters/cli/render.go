package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsamuelsen11/documenter/internal/platform/config"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, s config.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "provider:\t%s\n", s.Provider)
	fmt.Fprintf(tw, "model:\t%s\n", s.Model)
	fmt.Fprintf(tw, "working_directory:\t%s\n", s.WorkingDirectory)
	if s.Endpoint != "" {
		fmt.Fprintf(tw, "endpoint:\t%s\n", s.Endpoint)
	}
	if s.ConfigFile != "" {
		fmt.Fprintf(tw, "config_file:\t%s\n", s.ConfigFile)
	}
	return tw.Flush()
}

func writeConfig(w io.Writer, cfg config.Config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "provider:\t%s\n", cfg.Provider)
	fmt.Fprintf(tw, "openai_api_key:\t%s\n", cfg.OpenAIAPIKey)
	fmt.Fprintf(tw, "openai_model:\t%s\n", cfg.OpenAIModel)
	fmt.Fprintf(tw, "lmstudio_endpoint:\t%s\n", cfg.LMStudioEndpoint)
	fmt.Fprintf(tw, "lmstudio_model:\t%s\n", cfg.LMStudioModel)
	fmt.Fprintf(tw, "max_conversation_history:\t%d\n", cfg.MaxConversationHistory)
	fmt.Fprintf(tw, "default_output_dir:\t%s\n", cfg.DefaultOutputDir)
	fmt.Fprintf(tw, "timeout:\t%d\n", cfg.Timeout)
	return tw.Flush()
}
