package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/regtool/pkg/regctl"
	"github.com/spf13/cobra"
)

var (
	dryRun bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore <snapshot>",
	Short: "Write back every register that differs from a saved dump",
	Long: `Compare a saved dump with the live registers and, for every register
with at least one differing bit, write the saved raw value back. Each
register is written with its own write request.

Examples:
  regtool restore handset.txt
  regtool restore --dry-run -v handset.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false,
		"print what would be restored without writing")
	restoreCmd.Flags().BoolVar(&skipMissing, "skip-missing", false,
		"skip registers missing from the live device instead of failing")
}

func runRestore(cmd *cobra.Command, args []string) error {
	ctrl, err := newController(cmd,
		regctl.WithMissingPolicy(missingPolicy()),
		regctl.WithDryRun(dryRun),
	)
	if err != nil {
		return err
	}

	snapshot, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer snapshot.Close()

	_, skipped, err := ctrl.Restore(snapshot)
	warnSkipped(cmd, skipped)
	return err
}
