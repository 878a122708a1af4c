package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything the registration needs. All fields are required
// to be non-empty before any network call is made.
type Config struct {
	Server       string
	Username     string
	Password     string
	Datacenter   string
	Host         string
	ESXiUsername string
	ESXiPassword string
}

// requiredFields maps, in reporting order, the flag names users know to the
// internal override keys the YAML file uses.
var requiredFields = []struct {
	flag string
	key  string
}{
	{"server", "vc_server"},
	{"username", "vc_username"},
	{"password", "vc_password"},
	{"datacenter", "vc_datacenter"},
	{"host", "esxi_host"},
	{"esxi-username", "esxi_username"},
	{"esxi-password", "esxi_password"},
}

// disableKey turns the whole operation off when set to a falsy value. The
// provisioning pipeline drops such a file on nodes that must not be
// registered; for them doing nothing is the successful outcome.
const disableKey = "configure"

// Overrides is the parsed optional YAML override file.
type Overrides struct {
	values   map[string]string
	disabled bool
}

// Disabled reports whether the file opted out of registration entirely.
func (o *Overrides) Disabled() bool {
	return o != nil && o.disabled
}

// LoadOverrides reads the YAML override file at path. An empty path or a
// missing file yields empty overrides; the file is optional. Keys with a
// "vcenter" prefix translate to the internal "vc" prefix, falsy values are
// ignored rather than clearing a field.
func LoadOverrides(path string) (*Overrides, error) {
	over := &Overrides{values: map[string]string{}}
	if path == "" {
		return over, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return over, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read override file %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse override file %s: %w", path, err)
	}

	for key, value := range raw {
		key = strings.ToLower(key)
		if key == disableKey {
			if !truthy(value) {
				over.disabled = true
			}
			continue
		}
		if strings.HasPrefix(key, "vcenter") {
			key = "vc" + strings.TrimPrefix(key, "vcenter")
		}
		if truthy(value) {
			over.values[key] = fmt.Sprint(value)
		}
	}
	return over, nil
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// Merge overlays the file values on top of the flag values and returns the
// final configuration plus the names of fields still empty. File values win
// except when absent; neither input is modified.
func Merge(flags Config, file *Overrides) (Config, []string) {
	merged := flags
	if file != nil {
		override := func(dst *string, key string) {
			if v, ok := file.values[key]; ok {
				*dst = v
			}
		}
		override(&merged.Server, "vc_server")
		override(&merged.Username, "vc_username")
		override(&merged.Password, "vc_password")
		override(&merged.Datacenter, "vc_datacenter")
		override(&merged.Host, "esxi_host")
		override(&merged.ESXiUsername, "esxi_username")
		override(&merged.ESXiPassword, "esxi_password")
	}
	return merged, merged.missing()
}

func (c *Config) missing() []string {
	byKey := map[string]string{
		"vc_server":     c.Server,
		"vc_username":   c.Username,
		"vc_password":   c.Password,
		"vc_datacenter": c.Datacenter,
		"esxi_host":     c.Host,
		"esxi_username": c.ESXiUsername,
		"esxi_password": c.ESXiPassword,
	}
	var missing []string
	for _, f := range requiredFields {
		if byKey[f.key] == "" {
			missing = append(missing, f.flag)
		}
	}
	return missing
}

// MissingFieldsError reports which required fields were still empty after
// the merge. It maps to a usage error at the CLI boundary.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required configuration: " + strings.Join(e.Fields, ", ")
}
