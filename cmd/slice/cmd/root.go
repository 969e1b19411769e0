package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"slice/internal/config"
	"slice/internal/extract"
	logpkg "slice/internal/log"
	"slice/pkg/span"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

var flagSlice string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "slice [flags] [FILE]",
	Short: "Print a slice of lines from FILE or standard input",
	Long: `slice prints a contiguous range of lines from FILE, or from standard
input when FILE is omitted or "-", selected with Python-style slice
indices.

BEGIN and END may be any combination of positive (position from the
beginning) or negative (position from the end) numbers, and either may
be omitted. When no slice is specified the whole input is printed.

Both LF and CRLF are recognized as newlines. Newlines are not preserved
and are always replaced with LF in the output; the last line of the
output always ends with LF.`,
	Example: `  slice -s 0:2 notes.txt     first two lines
  slice -s -3: notes.txt     last three lines
  slice -s 2:-1 notes.txt    everything but the first two and the last line
  tail -f app.log | slice -s :10`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}
		logger := logpkg.New(cfg)

		sp, err := span.Parse(flagSlice)
		if err != nil {
			return fmt.Errorf("failed to parse slice %q: %w", flagSlice, err)
		}

		in, err := openInput(cmd, args)
		if err != nil {
			return err
		}
		defer in.Close()

		logger.Debug().Stringer("span", sp).Msg("extracting")

		out := bufio.NewWriter(cmd.OutOrStdout())
		if err := extract.Extract(sp, in, out); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	},
}

// openInput selects the positional file argument, falling back to standard
// input when the argument is absent or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", args[0], err)
	}
	return f, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s)", version, commit)
	rootCmd.PersistentFlags().StringVarP(&flagSlice, "slice", "s", ":", "slice to print as BEGIN:END; either bound may be omitted")
	// Predefined so the version flag gets the -v shorthand.
	rootCmd.Flags().BoolP("version", "v", false, "output version information and exit")
}
