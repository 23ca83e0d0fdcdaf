package cmd

import (
	"encoding/json"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var (
	outputJSON bool
)

// dumper prints decoded registers with stable ordering and no pointer noise.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Decode every known register into named bits",
	Long: `Read the registers file and print every register of the table with the
value of each of its bits.

Supports JSON output format for integration with other tools.

Examples:
  regtool info
  regtool info --json`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&outputJSON, "json", false,
		"output as JSON (for programmatic access)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctrl, err := newController(cmd)
	if err != nil {
		return err
	}

	decoded, err := ctrl.Info()
	if err != nil {
		return err
	}

	if outputJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(decoded)
	}

	dumper.Fdump(cmd.OutOrStdout(), decoded)
	return nil
}
