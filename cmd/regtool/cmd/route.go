package cmd

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/regtool/pkg/regctl"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route <" + strings.Join(regctl.RouteNames(), "|") + ">",
	Short: "Route call audio by writing an output amplifier preset",
	Long: fmt.Sprintf(`Write one of the call audio presets to the %s register:

  handset  earpiece amplifier
  speaker  loudspeaker amplifier
  headset  headphone amplifiers and charge pump

Examples:
  regtool route speaker
  regtool route --dry-run -v headset`, regctl.RouteRegister),
	Args:      cobra.ExactArgs(1),
	ValidArgs: regctl.RouteNames(),
	RunE:      runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)

	routeCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false,
		"print the write without performing it")
}

func runRoute(cmd *cobra.Command, args []string) error {
	ctrl, err := newController(cmd, regctl.WithDryRun(dryRun))
	if err != nil {
		return err
	}
	return ctrl.Route(args[0])
}
