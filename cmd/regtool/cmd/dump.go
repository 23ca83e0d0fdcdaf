package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [outfile]",
	Short: "Copy the raw register listing to stdout or a file",
	Long: `Copy the registers file verbatim, either to stdout or to outfile.
The saved file can later be used with cmp, restore or --sim.

Examples:
  regtool dump
  regtool dump handset.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	ctrl, err := newController(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return ctrl.Dump(cmd.OutOrStdout())
	}

	out, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	if err := ctrl.Dump(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
