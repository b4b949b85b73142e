package decompose

import (
	"context"
	"strings"

	"github.com/stepmate/stepmate/internal/errors"
	"github.com/stepmate/stepmate/internal/util"
)

// User-facing connection-test messages, keyed by failure class. These are
// product copy; keep them in the product's language.
const (
	msgMissingKey   = "请先配置API密钥"
	msgInvalidKey   = "API密钥无效或已过期"
	msgNoPermission = "API密钥权限不足"
	msgRateLimited  = "请求过于频繁，请稍后重试"
	msgServerError  = "API服务器错误，请稍后重试"
	msgNetwork      = "网络连接失败，请检查网络设置"
)

// TestConnection validates the stored credential by issuing a minimal
// low-token chat-completion request and classifying any failure into a
// user-facing message. Unlike Decompose it never masks a failure; its
// entire purpose is to surface one.
func (c *Client) TestConnection(ctx context.Context) ConnectionResult {
	if strings.TrimSpace(c.apiKey) == "" {
		return ConnectionResult{Success: false, Error: msgMissingKey}
	}

	_, err := c.complete(ctx, []chatMessage{
		{Role: "user", Content: "你好"},
	}, 0, 1)
	if err == nil {
		return ConnectionResult{Success: true}
	}

	c.logger.Debug("connection test failed", "error", err.Error())

	var apiErr *errors.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case 401:
			return ConnectionResult{Success: false, Error: msgInvalidKey}
		case 403:
			return ConnectionResult{Success: false, Error: msgNoPermission}
		case 429:
			return ConnectionResult{Success: false, Error: msgRateLimited}
		case 500:
			return ConnectionResult{Success: false, Error: msgServerError}
		default:
			return ConnectionResult{Success: false, Error: util.TruncateRunes(apiErr.Message(), 100)}
		}
	}

	var parseErr *errors.ParseError
	if errors.As(err, &parseErr) {
		// The endpoint answered 2xx with an unusable body; report it raw
		// rather than pretending the network is down.
		return ConnectionResult{Success: false, Error: util.TruncateRunes(err.Error(), 100)}
	}

	// No response at all: transport-level failure.
	return ConnectionResult{Success: false, Error: msgNetwork}
}
