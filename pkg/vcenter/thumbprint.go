package vcenter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"

	"github.com/vmware/govmomi/vim25/soap"
)

// Thumbprint connects to addr (host or host:port, default 443) and returns
// the SHA-1 thumbprint of its TLS certificate. The connection never
// verifies the certificate; the whole point is to learn what the host
// presents.
func Thumbprint(ctx context.Context, addr string) (string, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "443")
	}

	dialer := &tls.Dialer{Config: &tls.Config{InsecureSkipVerify: true}}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("cannot read certificate of %s: %w", addr, err)
	}
	defer conn.Close()

	certs := conn.(*tls.Conn).ConnectionState().PeerCertificates
	if len(certs) == 0 {
		return "", fmt.Errorf("no certificate presented by %s", addr)
	}
	return soap.ThumbprintSHA1(certs[0]), nil
}
