package host

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/r11/vcenter-registrar/internal/validation"
	"github.com/r11/vcenter-registrar/pkg/vcenter"
)

var thumbprintCmd = &cobra.Command{
	Use:   "thumbprint <address>",
	Short: "Print the SHA-1 thumbprint of an ESXi host certificate",
	Long: `Connect to an ESXi host and print the SHA-1 thumbprint of the TLS
certificate it presents, in the form vCenter expects for a verified
"host add --thumbprint" registration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validation.ValidateHostAddress(args[0]); err != nil {
			return err
		}
		tp, err := vcenter.Thumbprint(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tp)
		return nil
	},
}
