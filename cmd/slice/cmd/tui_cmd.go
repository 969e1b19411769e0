package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slice/internal/extract"
	"slice/internal/tui"
	"slice/pkg/span"
)

// tuiCmd launches the interactive slice preview.
var tuiCmd = &cobra.Command{
	Use:          "tui [FILE]",
	Short:        "Interactively adjust the slice before printing it",
	Long:         "Preview FILE with the current slice highlighted, adjust the bounds live, and print the selected lines to standard output on accept.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := span.Parse(flagSlice)
		if err != nil {
			return fmt.Errorf("failed to parse slice %q: %w", flagSlice, err)
		}

		final, accepted, err := tui.Run(args[0], sp)
		if err != nil {
			return fmt.Errorf("failed to run preview: %w", err)
		}
		if !accepted {
			return nil
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open file %q: %w", args[0], err)
		}
		defer f.Close()

		out := bufio.NewWriter(cmd.OutOrStdout())
		if err := extract.Extract(final, f, out); err != nil {
			return err
		}
		return out.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
