package vcenter

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Register runs the full registration flow: login, resolve the datacenter
// and its HOST folder, add the host, log out. Any step's failure
// short-circuits the rest; logout is attempted whenever login succeeded.
func Register(ctx context.Context, cfg *Config, datacenter string, host HostSpec) (string, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return "", registrationErr(StepLogin, err, "cannot reach vCenter %s", cfg.Server)
	}

	if err := client.Login(ctx); err != nil {
		return "", err
	}
	defer client.Logout(ctx)

	dc, err := client.FindDatacenter(ctx, datacenter)
	if err != nil {
		return "", err
	}

	folder, err := client.FindHostFolder(ctx, dc)
	if err != nil {
		return "", err
	}

	host.Folder = folder
	id, err := client.AddHost(ctx, host)
	if err != nil {
		return "", err
	}

	log.Info().
		Str("host", host.Hostname).
		Str("id", id).
		Str("datacenter", dc).
		Str("server", client.Server()).
		Msg("ESXi host registered")
	return id, nil
}
