package decompose

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newStatusServer answers every request with the given status and body.
func newStatusServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestTestConnection_MissingKey(t *testing.T) {
	c := NewClient("   ", "")

	result := c.TestConnection(context.Background())
	if result.Success {
		t.Fatal("Success = true, want false for blank key")
	}
	if result.Error != msgMissingKey {
		t.Errorf("Error = %q, want %q", result.Error, msgMissingKey)
	}
}

func TestTestConnection_Success(t *testing.T) {
	server := newStatusServer(http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"你好"}}]}`)
	defer server.Close()

	c := NewClient("test-key", "", WithBaseURL(server.URL))
	result := c.TestConnection(context.Background())
	if !result.Success {
		t.Fatalf("Success = false (%q), want true", result.Error)
	}
	if result.Error != "" {
		t.Errorf("Error = %q, want empty", result.Error)
	}
}

func TestTestConnection_StatusClassification(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{401, msgInvalidKey},
		{403, msgNoPermission},
		{429, msgRateLimited},
		{500, msgServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := newStatusServer(tt.status, `{"error":{"message":"upstream detail"}}`)
			defer server.Close()

			c := NewClient("test-key", "", WithBaseURL(server.URL))
			result := c.TestConnection(context.Background())
			if result.Success {
				t.Fatal("Success = true, want false")
			}
			if result.Error != tt.want {
				t.Errorf("Error = %q, want %q", result.Error, tt.want)
			}
		})
	}
}

func TestTestConnection_OtherStatusTruncated(t *testing.T) {
	long := strings.Repeat("图", 150)
	server := newStatusServer(418, long)
	defer server.Close()

	c := NewClient("test-key", "", WithBaseURL(server.URL))
	result := c.TestConnection(context.Background())
	if result.Success {
		t.Fatal("Success = true, want false")
	}
	if got := len([]rune(result.Error)); got > 100 {
		t.Errorf("len(Error) = %d runes, want <= 100", got)
	}
	if !strings.HasPrefix(long, result.Error) {
		t.Errorf("Error = %q, want prefix of raw body", result.Error)
	}
}

func TestTestConnection_TransportFailure(t *testing.T) {
	server := newStatusServer(http.StatusOK, "")
	server.Close() // closed port: guaranteed connection failure

	c := NewClient("test-key", "", WithBaseURL(server.URL))
	result := c.TestConnection(context.Background())
	if result.Success {
		t.Fatal("Success = true, want false")
	}
	if result.Error != msgNetwork {
		t.Errorf("Error = %q, want %q", result.Error, msgNetwork)
	}
}
