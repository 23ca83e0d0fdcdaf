package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/regtool/pkg/regctl"
	"github.com/OpenTraceLab/regtool/pkg/regmap"
	"github.com/spf13/cobra"
)

var (
	skipMissing bool
)

var cmpCmd = &cobra.Command{
	Use:   "cmp <file1> <file2>",
	Short: "Show the bits that differ between two saved dumps",
	Long: `Decode two saved dumps and print one line per bit of file1 whose value
differs in file2:

  Difference in <register>.<bit>: <file1 value> != <file2 value>

A register present in file1 but missing from file2 is an error unless
--skip-missing is given, in which case it is reported on stderr and skipped.

Examples:
  regtool cmp handset.txt headset.txt
  regtool cmp --skip-missing full.txt partial.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runCmp,
}

func init() {
	rootCmd.AddCommand(cmpCmd)

	cmpCmd.Flags().BoolVar(&skipMissing, "skip-missing", false,
		"skip registers missing from the second dump instead of failing")
}

func missingPolicy() regmap.MissingPolicy {
	if skipMissing {
		return regmap.MissingSkip
	}
	return regmap.MissingFail
}

func warnSkipped(cmd *cobra.Command, skipped []string) {
	for _, name := range skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s missing from second dump, skipped\n", name)
	}
}

func runCmp(cmd *cobra.Command, args []string) error {
	ctrl, err := newController(cmd, regctl.WithMissingPolicy(missingPolicy()))
	if err != nil {
		return err
	}

	f1, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f1.Close()
	f2, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f2.Close()

	report, err := ctrl.Compare(f1, f2)
	if err != nil {
		return err
	}

	warnSkipped(cmd, report.Skipped)
	for _, d := range report.Differences {
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
	}
	return nil
}
