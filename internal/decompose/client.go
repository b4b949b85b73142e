// Package decompose turns a free-text goal into an ordered list of 6-10
// actionable steps by calling an external chat-completion endpoint, with
// deterministic fallbacks when the call or the parse fails.
package decompose

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stepmate/stepmate/internal/errors"
	"github.com/stepmate/stepmate/internal/logging"
	"github.com/stepmate/stepmate/internal/todo"
)

const (
	// defaultBaseURL is the chat-completions API root. The default model is
	// a Doubao model, so this points at the Volcengine Ark endpoint.
	defaultBaseURL = "https://ark.cn-beijing.volces.com/api/v3"

	// completionsPath is the chat-completions route under the base URL.
	completionsPath = "/chat/completions"

	// defaultTimeout bounds every request. The original design carries no
	// timeout at all; 30s is a deliberate conservative deviation so a hung
	// endpoint cannot block the calling operation forever.
	defaultTimeout = 30 * time.Second

	// decomposeMaxTokens is the token budget for a decomposition request.
	decomposeMaxTokens = 2000

	// decomposeTemperature is the sampling temperature for decomposition.
	decomposeTemperature = 0.7
)

// Client calls the external chat-completion endpoint. Construct with
// NewClient; the zero value is not usable.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the chat-completions API root. Used by tests and by
// installations pointing at a compatible proxy.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger.WithComponent("decompose")
	}
}

// NewClient creates a Client using the stored credential and model name.
// An empty model falls back to the product default. An empty API key is
// allowed: Decompose then takes the fallback path and TestConnection
// reports the missing credential.
func NewClient(apiKey, model string, opts ...Option) *Client {
	if model == "" {
		model = todo.DefaultModel
	}

	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logging.NopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// chatRequest is the chat-completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the chat-completions response body.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Decompose turns a goal into an ordered step list. The only error it ever
// returns is a ValidationError for a goal that is empty after trimming;
// every internal failure (transport, non-2xx, unparseable response) is
// absorbed and masked by deterministic fallback content so the user always
// gets something actionable.
func (c *Client) Decompose(ctx context.Context, goal string) ([]todo.Step, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, errors.NewValidationError("goal must not be empty", errors.ErrEmptyGoal).WithField("goal")
	}

	content, err := c.complete(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: goal},
	}, decomposeTemperature, decomposeMaxTokens)
	if err != nil {
		c.logger.Warn("decomposition request failed, using generic plan", "error", err.Error())
		return finalizeSteps(fallbackSteps(goal)), nil
	}

	raw, source, err := parseStepsResponse(content)
	if err != nil {
		// parseStepsResponse only fails when even the text tier yields
		// nothing; treat it like an API failure and keep the goal usable.
		c.logger.Warn("response unparseable, using generic plan", "error", err.Error())
		return finalizeSteps(fallbackSteps(goal)), nil
	}

	c.logger.Debug("decomposition parsed", "source", source.String(), "steps", len(raw))
	return finalizeSteps(raw), nil
}

// complete issues one chat-completion request and returns the raw text of
// the first choice. Failures are classified: TransportError when no
// response arrived, APIError for non-2xx, ParseError for a 2xx body that
// is not the expected envelope.
func (c *Client) complete(ctx context.Context, messages []chatMessage, temperature float64, maxTokens int) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", errors.NewTransportError("request not sent", errors.ErrMissingAPIKey)
	}

	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewTransportError("send request", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewTransportError("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.NewAPIError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var respData chatResponse
	if err := json.Unmarshal(body, &respData); err != nil {
		return "", errors.NewParseError("response envelope is not JSON", err)
	}

	if len(respData.Choices) == 0 {
		return "", errors.NewParseError("response has no choices", nil)
	}

	return respData.Choices[0].Message.Content, nil
}
