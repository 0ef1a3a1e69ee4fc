// Package farmapi is the HTTP edge of the bot: session login plus the fetch
// and action calls the game exposes. The decision logic above it only ever
// sees the deserialized farm.* shapes.
package farmapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/tidwall/gjson"

	"github.com/nathanvsn/BotFarmManager/internal/app/ports"
)

const defaultTimeout = 15 * time.Second

type Config struct {
	BaseURL  string
	Email    string
	Password string
	Timeout  time.Duration
}

// Client talks to the game API over one authenticated session. It implements
// ports.TabReader, ports.PlotReader, ports.MarketClient and
// ports.ActionDispatcher.
type Client struct {
	http     *client.Client
	baseURL  string
	email    string
	password string
	token    string
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	hc, err := client.NewClient(
		client.WithDialTimeout(timeout),
		client.WithClientReadTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("build http client: %w", err)
	}
	return &Client{
		http:     hc,
		baseURL:  cfg.BaseURL,
		email:    cfg.Email,
		password: cfg.Password,
	}, nil
}

// Login posts the credentials and keeps the session token for every later
// call. The game invalidates tokens aggressively, so callers may invoke this
// again after an unauthorized error.
func (c *Client) Login(ctx context.Context) error {
	form := url.Values{}
	form.Set("email", c.email)
	form.Set("password", c.password)

	body, err := c.do(ctx, consts.MethodPost, "/api/login", []byte(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	token := gjson.GetBytes(body, "token").String()
	if token == "" {
		return fmt.Errorf("login: no token in response: %w", ports.ErrUnauthorized)
	}
	c.token = token
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, consts.MethodGet, path, nil, "")
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", path, err)
	}
	return c.do(ctx, consts.MethodPost, path, body, "application/json")
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	req, resp := protocol.AcquireRequest(), protocol.AcquireResponse()
	defer protocol.ReleaseRequest(req)
	defer protocol.ReleaseResponse(resp)

	req.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if len(body) > 0 {
		req.SetBody(body)
	}
	if contentType != "" {
		req.Header.SetContentTypeBytes([]byte(contentType))
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if err := c.http.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	switch {
	case status == consts.StatusUnauthorized || status == consts.StatusForbidden:
		return nil, fmt.Errorf("%s %s: status %d: %w", method, path, status, ports.ErrUnauthorized)
	case status >= 500:
		return nil, fmt.Errorf("%s %s: status %d: %w", method, path, status, ports.ErrUnavailable)
	case status < 200 || status > 299:
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, status)
	}

	// The response buffers are pooled; hand back a copy.
	return append([]byte(nil), resp.Body()...), nil
}
