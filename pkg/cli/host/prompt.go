package host

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/r11/vcenter-registrar/pkg/config"
)

// promptForSecrets asks for passwords that are still empty after the merge,
// but only when stdin is a terminal; in a pipeline a missing secret stays a
// usage error. Filled fields are removed from the missing list.
func promptForSecrets(cfg *config.Config, missing *[]string) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	byFlag := map[string]*string{
		"password":      &cfg.Password,
		"esxi-password": &cfg.ESXiPassword,
	}
	prompts := map[string]string{
		"password":      "vCenter password",
		"esxi-password": "ESXi password",
	}

	var still []string
	for _, name := range *missing {
		dst, ok := byFlag[name]
		if ok {
			if v := readSecret(prompts[name]); v != "" {
				*dst = v
				continue
			}
		}
		still = append(still, name)
	}
	*missing = still
}

func readSecret(prompt string) string {
	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return ""
	}
	return string(secret)
}
