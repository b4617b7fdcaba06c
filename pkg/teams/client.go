package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2/clientcredentials"
)

// Config holds Bot Framework connector credentials.
type Config struct {
	AppID       string
	AppPassword string
	TokenURL    string // defaults to DefaultTokenURL
	ServiceURL  string // overrides the activity's serviceUrl when set, used in tests
}

// Client posts activities to the Bot Framework connector service.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a connector client. The underlying HTTP client
// refreshes the Bot Framework token via client credentials as needed.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AppID == "" || cfg.AppPassword == "" {
		return nil, fmt.Errorf("teams: app id and password are required")
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.AppID,
		ClientSecret: cfg.AppPassword,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{DefaultScope},
	}

	httpClient := cc.Client(context.Background())
	httpClient.Timeout = DefaultTimeout

	return &Client{
		config:     cfg,
		httpClient: httpClient,
	}, nil
}

// NewClientWithHTTP creates a client with a caller-supplied HTTP client.
// Used in tests to skip the token exchange.
func NewClientWithHTTP(cfg Config, httpClient *http.Client) *Client {
	return &Client{config: cfg, httpClient: httpClient}
}

// ReplyToActivity sends a reply to the conversation the incoming
// activity arrived on.
func (c *Client) ReplyToActivity(ctx context.Context, incoming *Activity, reply Activity) error {
	serviceURL := c.serviceURL(incoming)
	endpoint := fmt.Sprintf("%s/v3/conversations/%s/activities/%s",
		serviceURL,
		url.PathEscape(incoming.Conversation.ID),
		url.PathEscape(incoming.ID))
	return c.postActivity(ctx, endpoint, reply)
}

// SendToConversation starts a new activity in the conversation rather
// than replying to a specific one.
func (c *Client) SendToConversation(ctx context.Context, incoming *Activity, activity Activity) error {
	serviceURL := c.serviceURL(incoming)
	endpoint := fmt.Sprintf("%s/v3/conversations/%s/activities",
		serviceURL,
		url.PathEscape(incoming.Conversation.ID))
	return c.postActivity(ctx, endpoint, activity)
}

// SendTyping shows a typing indicator while the reply is being prepared.
// Failures are not fatal for the caller, so only an error is returned.
func (c *Client) SendTyping(ctx context.Context, incoming *Activity) error {
	typing := NewReply(incoming, "")
	typing.Type = ActivityTyping
	typing.Text = ""
	typing.TextFormat = ""
	return c.SendToConversation(ctx, incoming, typing)
}

func (c *Client) serviceURL(incoming *Activity) string {
	if c.config.ServiceURL != "" {
		return c.config.ServiceURL
	}
	return incoming.ServiceURL
}

func (c *Client) postActivity(ctx context.Context, endpoint string, activity Activity) error {
	body, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("teams: marshal activity: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("teams: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("teams: post activity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	var apiErr errorResponse
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("teams: connector error %d (%s): %s", resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
	}
	return fmt.Errorf("teams: connector error %d: %s", resp.StatusCode, string(raw))
}
