package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/regtool/pkg/regmap"
	"github.com/spf13/cobra"
)

var (
	listAsTable bool
)

var listCmd = &cobra.Command{
	Use:   "list [register]",
	Short: "List the registers and bits of the register table",
	Long: `Print the register table in use. With a register name, print only that
register's bits in offset order. --format-table prints the table in the
format accepted by --table, which is a convenient starting point for a
custom table.

Examples:
  regtool list
  regtool list RXOA
  regtool list --format-table > cpcap.regs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listAsTable, "format-table", false,
		"print in table file format")
}

func runList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	table, err := loadTable()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		reg, ok := table.ByName(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", regmap.ErrUnknownRegister, args[0])
		}
		fmt.Fprintf(out, "%s %s\n", reg.ID, reg.Name)
		for _, bit := range reg.BitNames() {
			fmt.Fprintf(out, "  %2d  %s\n", reg.Bits[bit], bit)
		}
		return nil
	}

	if listAsTable {
		return regmap.WriteTable(out, table)
	}

	for _, reg := range table.Registers() {
		fmt.Fprintf(out, "%-6s %-10s %2d bits\n", reg.ID, reg.Name, len(reg.Bits))
	}
	return nil
}
