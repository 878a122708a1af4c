package vcenter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmware/govmomi/vim25/soap"
)

func TestThumbprint(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	got, err := Thumbprint(context.Background(), srv.Listener.Addr().String())
	require.NoError(t, err)
	assert.Equal(t, soap.ThumbprintSHA1(srv.Certificate()), got)
}

func TestThumbprintConnectionFailure(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.Listener.Addr().String()
	srv.Close()

	_, err := Thumbprint(context.Background(), addr)
	assert.Error(t, err)
}
