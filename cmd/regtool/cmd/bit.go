package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <register>.<bit>",
	Short: "Print the value of one register bit",
	Long: `Print 0 or 1 for the named bit of the live registers.

Examples:
  regtool get RXOA.HS_L_EN`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

var setCmd = &cobra.Command{
	Use:   "set <register>.<bit> <0|1>",
	Short: "Change one register bit",
	Long: `Set the named bit of the live registers to 0 or 1. Nothing is written
when the bit already holds the requested value; otherwise the register is
rewritten with only that bit changed.

Examples:
  regtool set RXOA.HS_L_EN 1
  regtool set RXOA.A1_EAR_EN 0`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	ctrl, err := newController(cmd)
	if err != nil {
		return err
	}

	v, err := ctrl.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	var v uint8
	switch args[1] {
	case "0":
		v = 0
	case "1":
		v = 1
	default:
		return fmt.Errorf("invalid bit value %q: want 0 or 1", args[1])
	}

	ctrl, err := newController(cmd)
	if err != nil {
		return err
	}

	_, err = ctrl.Set(args[0], v)
	return err
}
