package vcenter

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vmware/govmomi/vim25/soap"
)

// DefaultTimeout bounds every request; the API has no long-running calls on
// this surface, so anything slower than this is a stuck connection.
const DefaultTimeout = 30 * time.Second

const (
	sessionPath   = "/rest/com/vmware/cis/session"
	sessionHeader = "vmware-api-session-id"
)

// Config describes how to reach a vCenter server.
type Config struct {
	Server   string
	Username string
	Password string
	// Insecure disables TLS certificate verification. vCenter and ESXi ship
	// with self-signed certificates, so most deployments need this on.
	Insecure bool
	Timeout  time.Duration
}

// Client is an authenticated session against the vCenter REST API. It is
// used strictly sequentially; once Login succeeds the caller must arrange
// for Logout to run.
type Client struct {
	base     *url.URL
	username string
	password string
	http     *http.Client
	session  string
}

// NewClient builds a client from cfg without touching the network.
func NewClient(cfg *Config) (*Client, error) {
	u, err := soap.ParseURL(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("invalid vCenter server address %q: %w", cfg.Server, err)
	}
	if u == nil {
		return nil, fmt.Errorf("vCenter server address is empty")
	}
	// soap.ParseURL appends the SDK path; the REST endpoints hang off the root.
	u.Path = ""
	u.User = nil

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		base:     u,
		username: cfg.Username,
		password: cfg.Password,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.Insecure},
			},
		},
	}, nil
}

// Server returns the host the client talks to, for error messages.
func (c *Client) Server() string {
	return c.base.Host
}

// Login opens a session and keeps its identifier for subsequent calls.
func (c *Client) Login(ctx context.Context) error {
	body, err := c.call(ctx, http.MethodPost, sessionPath, nil, nil, true)
	if err != nil {
		return registrationErr(StepLogin, err, "cannot log in to vCenter %s", c.Server())
	}

	var session struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(body, &session); err != nil || session.Value == "" {
		return registrationErr(StepLogin, err, "invalid session data from vCenter %s", c.Server())
	}
	c.session = session.Value

	log.Debug().Str("server", c.Server()).Msg("vCenter session opened")
	return nil
}

// Logout invalidates the session. Failures are swallowed: by the time logout
// runs the interesting work already happened, and the server expires idle
// sessions on its own.
func (c *Client) Logout(ctx context.Context) {
	if c.session == "" {
		return
	}
	if _, err := c.call(ctx, http.MethodDelete, sessionPath, nil, nil, false); err != nil {
		log.Debug().Err(err).Str("server", c.Server()).Msg("vCenter logout failed")
	}
	c.session = ""
}

// call performs one request and returns the raw response body. A non-2xx
// status is an error; the body is still returned for diagnostics. login
// switches the request to basic auth instead of the session header.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, payload interface{}, login bool) ([]byte, error) {
	u := *c.base
	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if login {
		req.SetBasicAuth(c.username, c.password)
	} else if c.session != "" {
		req.Header.Set(sessionHeader, c.session)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return data, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return data, nil
}
