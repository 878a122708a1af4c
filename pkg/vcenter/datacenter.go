package vcenter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const datacenterPath = "/rest/vcenter/datacenter"

type datacenterSummary struct {
	Name       string `json:"name"`
	Datacenter string `json:"datacenter"`
}

// FindDatacenter resolves a datacenter name to its identifier. The target
// may already be an identifier; entries match on either field, first match
// wins.
func (c *Client) FindDatacenter(ctx context.Context, name string) (string, error) {
	body, err := c.call(ctx, http.MethodGet, datacenterPath, nil, nil, false)
	if err != nil {
		return "", registrationErr(StepDatacenter, err, "cannot list datacenters on vCenter %s", c.Server())
	}

	var list struct {
		Value []datacenterSummary `json:"value"`
	}
	if err := json.Unmarshal(body, &list); err != nil || list.Value == nil {
		return "", registrationErr(StepDatacenter, err, "invalid datacenter data from vCenter %s", c.Server())
	}

	for _, dc := range list.Value {
		if dc.Name == name || dc.Datacenter == name {
			log.Debug().Str("datacenter", dc.Datacenter).Str("name", name).Msg("datacenter resolved")
			return dc.Datacenter, nil
		}
	}
	return "", registrationErr(StepDatacenter, nil, "datacenter %q not found on vCenter %s", name, c.Server())
}
