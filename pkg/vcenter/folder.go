package vcenter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

const folderPath = "/rest/vcenter/folder"

// FindHostFolder returns the identifier of the HOST-type inventory folder
// of the given datacenter.
func (c *Client) FindHostFolder(ctx context.Context, datacenter string) (string, error) {
	query := url.Values{}
	query.Set("filter.type", "HOST")
	query.Set("filter.datacenters", datacenter)

	body, err := c.call(ctx, http.MethodGet, folderPath, query, nil, false)
	if err != nil {
		return "", registrationErr(StepFolder, err, "cannot list folders of datacenter %s on vCenter %s", datacenter, c.Server())
	}

	var list struct {
		Value []struct {
			Folder string `json:"folder"`
		} `json:"value"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return "", registrationErr(StepFolder, err, "invalid folder data for datacenter %s from vCenter %s", datacenter, c.Server())
	}
	if len(list.Value) == 0 || list.Value[0].Folder == "" {
		return "", registrationErr(StepFolder, nil, "no HOST folder found for datacenter %s on vCenter %s", datacenter, c.Server())
	}

	log.Debug().Str("folder", list.Value[0].Folder).Str("datacenter", datacenter).Msg("host folder resolved")
	return list.Value[0].Folder, nil
}
