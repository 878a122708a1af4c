package validation

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
)

var hostnameRegexp = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9.-]*[a-zA-Z0-9])?$`)

// ValidateHostAddress accepts a hostname, an IP address, or either with a
// :port suffix.
func ValidateHostAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("host address cannot be empty")
	}
	if strings.Contains(addr, "://") {
		return fmt.Errorf("host address must not include a URL scheme")
	}

	host := addr
	if h, port, err := net.SplitHostPort(addr); err == nil {
		host = h
		if err := validatePort(port); err != nil {
			return err
		}
	}

	if net.ParseIP(host) != nil {
		return nil
	}
	if !hostnameRegexp.MatchString(host) {
		return fmt.Errorf("invalid host address %q", addr)
	}
	return nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}
