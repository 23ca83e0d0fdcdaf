package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/OpenTraceLab/regtool/pkg/regctl"
	"github.com/OpenTraceLab/regtool/pkg/regdev"
	"github.com/OpenTraceLab/regtool/pkg/regmap"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	regFile   string
	tableFile string
	simFile   string
)

var rootCmd = &cobra.Command{
	Use:   "regtool",
	Short: "Inspect and modify codec registers through regmap debugfs",
	Long: `Read, decode, compare and modify the registers of an audio codec through
the regmap debugfs interface. Register values are decoded into named bits
using the built-in CPCAP table or a table file.

Examples:
  regtool dump saved.txt                    # Save the current registers
  regtool info                              # Show every decoded bit
  regtool cmp saved.txt other.txt           # Diff two saved dumps
  regtool restore saved.txt                 # Write back changed registers
  regtool get RXOA.HS_L_EN                  # Read one bit
  regtool set RXOA.HS_L_EN 1                # Change one bit
  regtool --sim saved.txt set RXOA.HS_L_EN 1  # Same, against a saved dump`,
	Version:       "0.3.0",
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace register reads and writes on stderr")
	rootCmd.PersistentFlags().StringVarP(&regFile, "file", "f", regdev.DefaultPath,
		"regmap debugfs registers file")
	rootCmd.PersistentFlags().StringVarP(&tableFile, "table", "t", "",
		"register table file (default: built-in CPCAP table)")
	rootCmd.PersistentFlags().StringVar(&simFile, "sim", "",
		"simulate the device with a saved dump; writes update that file")
}

// userMessage maps the register name errors to the short messages operators
// know; everything else is printed as is.
func userMessage(err error) string {
	switch {
	case errors.Is(err, regmap.ErrUnknownRegister):
		return "Unknown reg"
	case errors.Is(err, regmap.ErrUnknownBit):
		return "Unknown reg bit"
	default:
		return err.Error()
	}
}

// loadTable returns the table selected by --table.
func loadTable() (*regmap.Table, error) {
	if tableFile == "" {
		return regmap.CPCAP(), nil
	}
	return regmap.LoadTableFile(tableFile)
}

// openDevice returns the device selected by --sim / --file.
func openDevice() (regdev.Device, error) {
	if simFile != "" {
		sim, err := regdev.NewSimDeviceFromFile(simFile)
		if err != nil {
			return nil, err
		}
		return sim, nil
	}
	return regdev.NewFileDevice(regFile), nil
}

// newController wires device, table, logging and output for a subcommand.
// Usage is silenced from here on: only argument errors print it.
func newController(cmd *cobra.Command, opts ...regctl.Option) (*regctl.Controller, error) {
	cmd.SilenceUsage = true

	table, err := loadTable()
	if err != nil {
		return nil, err
	}
	dev, err := openDevice()
	if err != nil {
		return nil, err
	}

	logOut := io.Discard
	if verbose {
		logOut = cmd.ErrOrStderr()
	}
	base := []regctl.Option{
		regctl.WithLogger(log.New(logOut, "regtool: ", 0)),
		regctl.WithOutput(cmd.OutOrStdout()),
	}
	return regctl.NewController(dev, table, append(base, opts...)...)
}
