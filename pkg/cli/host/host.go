package host

import (
	"github.com/spf13/cobra"
)

var HostCmd = &cobra.Command{
	Use:   "host",
	Short: "ESXi host registration",
	Long:  `Register ESXi hosts into a vCenter inventory.`,
}

func init() {
	HostCmd.AddCommand(addCmd)
	HostCmd.AddCommand(thumbprintCmd)
}
