package host

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/r11/vcenter-registrar/pkg/config"
	"github.com/r11/vcenter-registrar/pkg/vcenter"
)

var (
	cfgFile    string
	flagCfg    config.Config
	thumbprint string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an ESXi host with a vCenter datacenter",
	Long: `Register a single ESXi host with a named datacenter on a vCenter
server: log in, resolve the datacenter and its HOST folder, submit the
add-host request, log out. Values from the optional YAML override file win
over flags; a "configure: false" key in that file skips the registration
entirely and exits successfully.`,
	RunE: runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "YAML override file")
	f.StringVarP(&flagCfg.Server, "server", "s", "", "vCenter server address")
	f.StringVarP(&flagCfg.Username, "username", "u", "", "vCenter username")
	f.StringVarP(&flagCfg.Password, "password", "p", "", "vCenter password")
	f.StringVarP(&flagCfg.Datacenter, "datacenter", "D", "Datacenter", "target datacenter name or identifier")
	f.StringVarP(&flagCfg.Host, "host", "H", "", "ESXi host address to register")
	f.StringVarP(&flagCfg.ESXiUsername, "esxi-username", "U", "root", "ESXi username")
	f.StringVarP(&flagCfg.ESXiPassword, "esxi-password", "P", "changeme", "ESXi password")
	f.StringVar(&thumbprint, "thumbprint", "", "SHA-1 thumbprint of the ESXi host certificate (default: verification disabled)")
}

func runAdd(cmd *cobra.Command, _ []string) error {
	overrides, err := config.LoadOverrides(cfgFile)
	if err != nil {
		return err
	}
	if overrides.Disabled() {
		log.Info().Msg("vCenter registration disabled by configuration, nothing to do")
		return nil
	}

	flags := flagCfg
	fillFromEnv(&flags)
	cfg, missing := config.Merge(flags, overrides)
	promptForSecrets(&cfg, &missing)
	if len(missing) > 0 {
		_ = cmd.Usage()
		return &config.MissingFieldsError{Fields: missing}
	}

	id, err := vcenter.Register(cmd.Context(), &vcenter.Config{
		Server:   cfg.Server,
		Username: cfg.Username,
		Password: cfg.Password,
		// vCenter and ESXi present self-signed certificates out of the box.
		Insecure: true,
	}, cfg.Datacenter, vcenter.HostSpec{
		Hostname:   cfg.Host,
		Username:   cfg.ESXiUsername,
		Password:   cfg.ESXiPassword,
		Thumbprint: thumbprint,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

// fillFromEnv backfills flags the caller left empty from VCREG_* environment
// variables. Flags and the override file both beat the environment.
func fillFromEnv(c *config.Config) {
	fromEnv := func(dst *string, key string) {
		if *dst == "" {
			*dst = viper.GetString(key)
		}
	}
	fromEnv(&c.Server, "server")
	fromEnv(&c.Username, "username")
	fromEnv(&c.Password, "password")
	fromEnv(&c.Host, "host")
	fromEnv(&c.ESXiUsername, "esxi_username")
	fromEnv(&c.ESXiPassword, "esxi_password")
}
