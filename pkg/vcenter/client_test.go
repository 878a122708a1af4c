package vcenter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUser     = "administrator@vsphere.local"
	testPassword = "secret"
	testSession  = "session-1"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{
		Server:   srv.URL,
		Username: testUser,
		Password: testPassword,
		Insecure: true,
	})
	require.NoError(t, err)
	return client
}

// sessionMux serves the login/logout endpoint the way vCenter does.
func sessionMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(sessionPath, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			user, pass, ok := r.BasicAuth()
			if !ok || user != testUser || pass != testPassword {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprintf(w, `{"value":%q}`, testSession)
		case http.MethodDelete:
			if r.Header.Get(sessionHeader) != testSession {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func loggedIn(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	client := newTestClient(t, handler)
	require.NoError(t, client.Login(context.Background()))
	return client
}

func TestNewClientNormalizesServer(t *testing.T) {
	client, err := NewClient(&Config{Server: "vc.example.com", Insecure: true})
	require.NoError(t, err)
	assert.Equal(t, "vc.example.com", client.Server())
	assert.Equal(t, DefaultTimeout, client.http.Timeout)
}

func TestNewClientRejectsGarbage(t *testing.T) {
	_, err := NewClient(&Config{Server: "vc enter.example.com"})
	assert.Error(t, err)

	_, err = NewClient(&Config{Server: ""})
	assert.Error(t, err)
}

func TestLoginStoresSession(t *testing.T) {
	client := loggedIn(t, sessionMux())
	assert.Equal(t, testSession, client.session)
}

func TestLoginBadCredentials(t *testing.T) {
	srv := httptest.NewTLSServer(sessionMux())
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{
		Server:   srv.URL,
		Username: testUser,
		Password: "wrong",
		Insecure: true,
	})
	require.NoError(t, err)

	err = client.Login(context.Background())
	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, StepLogin, regErr.Step)
	assert.Contains(t, regErr.Error(), client.Server())
}

func TestLoginConnectionFailure(t *testing.T) {
	srv := httptest.NewTLSServer(sessionMux())
	client, err := NewClient(&Config{Server: srv.URL, Insecure: true})
	require.NoError(t, err)
	srv.Close()

	err = client.Login(context.Background())
	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, StepLogin, regErr.Step)
}

func TestLoginInvalidBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))

	err := client.Login(context.Background())
	var regErr *RegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Contains(t, regErr.Error(), "invalid session data")
}

func TestLogoutSwallowsFailure(t *testing.T) {
	mux := sessionMux()
	client := loggedIn(t, mux)

	// Replace the client's view of the world with a server that rejects
	// the logout; Logout must not blow up.
	client.session = "stale"
	client.Logout(context.Background())
	assert.Empty(t, client.session)
}

func TestLogoutWithoutLoginIsNoop(t *testing.T) {
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	client.Logout(context.Background())
	assert.False(t, called)
}
