package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/circuitbreaker"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/go-resty/resty/v2"
)

// ErrNotConfigured is returned when no server token was provided
var ErrNotConfigured = errors.New("email client not configured: missing server token")

// Client sends transactional mail through the Postmark API
type Client struct {
	http      *resty.Client
	breaker   *circuitbreaker.Breaker
	token     string
	fromEmail string
	fromName  string
}

type postmarkEmail struct {
	From          string `json:"From"`
	To            string `json:"To"`
	Subject       string `json:"Subject"`
	HtmlBody      string `json:"HtmlBody,omitempty"`
	TextBody      string `json:"TextBody,omitempty"`
	MessageStream string `json:"MessageStream,omitempty"`
}

type postmarkResponse struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
	MessageID string `json:"MessageID"`
}

// NewClient builds a Postmark client from config
func NewClient(cfg models.EmailConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = "https://api.postmarkapp.com"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("X-Postmark-Server-Token", cfg.PostmarkToken)

	return &Client{
		http:      client,
		breaker:   circuitbreaker.New(circuitbreaker.DefaultConfig("postmark")),
		token:     cfg.PostmarkToken,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// Configured returns true if the server token is set.
func (c *Client) Configured() bool {
	return c.token != ""
}

// Send delivers a rendered mail and returns the provider message id
func (c *Client) Send(ctx context.Context, mail models.RenderedMail) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	from := c.fromEmail
	if c.fromName != "" {
		from = fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)
	}

	var result postmarkResponse
	var resp *resty.Response
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.http.R().
			SetContext(ctx).
			SetBody(postmarkEmail{
				From:          from,
				To:            mail.To,
				Subject:       mail.Subject,
				HtmlBody:      mail.HTMLBody,
				TextBody:      mail.TextBody,
				MessageStream: "outbound",
			}).
			SetResult(&result).
			SetError(&result).
			Post("/email")
		if err != nil {
			return err
		}
		if resp.StatusCode() >= 500 {
			return fmt.Errorf("postmark unavailable: status %d", resp.StatusCode())
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}

	// rejected mails do not count against the provider
	if resp.IsError() || result.ErrorCode != 0 {
		return "", fmt.Errorf("postmark API error: status %d code %d: %s", resp.StatusCode(), result.ErrorCode, result.Message)
	}

	return result.MessageID, nil
}
