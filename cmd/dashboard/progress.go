package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
)

const (
	outputJSON = "json"
	outputText = "text"
)

// progressItem is the subset of a downstream task record that feeds the
// level projection.
type progressItem struct {
	ID        int64 `json:"id"`
	XP        int64 `json:"xp"`
	Completed bool  `json:"completed"`
}

func newProgressCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "progress [file|-]",
		Short: "Compute level and progress from a JSON task export",
		Long: "Reads either a JSON array of tasks or an object with a \"tasks\" array " +
			"and prints the derived XP total, level and progress. Reads stdin when the " +
			"file is \"-\" or omitted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening task file: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runProgress(in, cmd.OutOrStdout(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format: json or text")

	return cmd
}

func runProgress(r io.Reader, w io.Writer, output string) error {
	if output != outputJSON && output != outputText {
		return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputJSON, outputText)
	}

	items, err := decodeProgressItems(r)
	if err != nil {
		return err
	}

	tasks := make([]task.Task, len(items))
	for i, it := range items {
		tasks[i] = task.Task{ID: it.ID, XP: it.XP, Completed: it.Completed}
	}
	resp := dto.ToProgressResponse(progression.Compute(tasks))

	if output == outputText {
		_, err = fmt.Fprintf(w, "level %d, %.1f%% (%d XP total, %d XP to next level)\n",
			resp.Level, resp.ProgressPercent, resp.TotalXP, resp.XPToNextLevel)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func decodeProgressItems(r io.Reader) ([]progressItem, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tasks: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	if raw[0] == '{' {
		var envelope struct {
			Tasks []progressItem `json:"tasks"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("decoding tasks: %w", err)
		}
		return envelope.Tasks, nil
	}

	var items []progressItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding tasks: %w", err)
	}
	return items, nil
}
