package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/r11/vcenter-registrar/pkg/cli/host"
	"github.com/r11/vcenter-registrar/pkg/config"
	"github.com/r11/vcenter-registrar/pkg/vcenter"
)

// Exit codes follow sysexits: the provisioning pipeline that invokes vcreg
// distinguishes bad invocations from failed registrations.
const (
	ExitOK         = 0
	ExitUsage      = 64 // EX_USAGE
	ExitCantCreate = 73 // EX_CANTCREAT
)

var rootCmd = &cobra.Command{
	Use:   "vcreg",
	Short: "Register ESXi hosts with a vCenter datacenter",
	Long: `vcreg is a one-shot provisioning tool that registers a single ESXi
host with a named datacenter on a vCenter server via its REST API.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error from Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var reg *vcenter.RegistrationError
	if errors.As(err, &reg) {
		return ExitCantCreate
	}
	var missing *config.MissingFieldsError
	if errors.As(err, &missing) {
		return ExitUsage
	}
	return 1
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(host.HostCmd)
}

func initConfig() {
	viper.SetEnvPrefix("VCREG")
	viper.AutomaticEnv()
}
