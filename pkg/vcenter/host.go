package vcenter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const hostPath = "/rest/vcenter/host"

// HostSpec describes the ESXi host to register. Folder is filled in by the
// registration flow once resolved. When Thumbprint is empty, thumbprint
// verification is disabled entirely: ESXi hosts self-sign their certificate
// on first boot, so there is nothing to pin out of the box.
type HostSpec struct {
	Hostname   string
	Username   string
	Password   string
	Folder     string
	Thumbprint string
}

type hostCreateSpec struct {
	Hostname               string `json:"hostname"`
	UserName               string `json:"user_name"`
	Password               string `json:"password"`
	Folder                 string `json:"folder"`
	ThumbprintVerification string `json:"thumbprint_verification"`
	Thumbprint             string `json:"thumbprint,omitempty"`
}

// AddHost registers the host with vCenter and returns its new identifier.
func (c *Client) AddHost(ctx context.Context, spec HostSpec) (string, error) {
	create := hostCreateSpec{
		Hostname:               spec.Hostname,
		UserName:               spec.Username,
		Password:               spec.Password,
		Folder:                 spec.Folder,
		ThumbprintVerification: "NONE",
	}
	if spec.Thumbprint != "" {
		create.ThumbprintVerification = "THUMBPRINT"
		create.Thumbprint = spec.Thumbprint
	}

	payload := map[string]hostCreateSpec{"spec": create}
	body, err := c.call(ctx, http.MethodPost, hostPath, nil, payload, false)
	if err != nil {
		return "", registrationErr(StepAddHost, err, "cannot add host %s to vCenter %s", spec.Hostname, c.Server())
	}

	var result struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(body, &result); err != nil || result.Value == "" {
		return "", registrationErr(StepAddHost, err, "invalid response data for host %s from vCenter %s", spec.Hostname, c.Server())
	}

	log.Debug().Str("host", spec.Hostname).Str("id", result.Value).Msg("host added")
	return result.Value, nil
}
