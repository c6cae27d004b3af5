package rag

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const ChatPath = "/api/chat"

var (
	ErrTimeout           = errors.New("rag: request timed out")
	ErrUnavailable       = errors.New("rag: service unreachable")
	ErrBadStatus         = errors.New("rag: unexpected status")
	ErrMalformedResponse = errors.New("rag: malformed response")
	ErrEmptyResponse     = errors.New("rag: missing response text")
)

// ChatRequest is the body posted to /api/chat. Each history entry is a [user, system] pair.
type ChatRequest struct {
	UserProfile string      `json:"userProfile"`
	ChatHistory [][2]string `json:"chatHistory"`
	Input       string      `json:"input"`
}

type PingResult struct {
	Reachable  bool
	StatusCode int
	Duration   time.Duration
}

type IClient interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
	Ping(ctx context.Context) (*PingResult, error)
	BaseURL() string
	Timeout() time.Duration
}

type Client struct {
	client  *resty.Client
	baseURL string
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		client:  client,
		baseURL: baseURL,
		timeout: timeout,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Chat sends one turn and returns the answer text. The request is never retried.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if req.ChatHistory == nil {
		req.ChatHistory = [][2]string{}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(ChatPath)
	if err != nil {
		if IsTimeout(err) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode())
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return "", ErrMalformedResponse
	}

	answer := gjson.GetBytes(body, "response")
	if answer.Type != gjson.String || answer.String() == "" {
		return "", ErrEmptyResponse
	}
	return answer.String(), nil
}

// Ping issues a GET against the base URL. Any HTTP answer counts as reachable.
func (c *Client) Ping(ctx context.Context) (*PingResult, error) {
	start := time.Now()
	resp, err := c.client.R().SetContext(ctx).Get("/")
	result := &PingResult{Duration: time.Since(start)}
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	result.Reachable = true
	result.StatusCode = resp.StatusCode()
	return result, nil
}

// IsTimeout reports whether err came from a deadline rather than a refused or reset connection.
func IsTimeout(err error) bool {
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
