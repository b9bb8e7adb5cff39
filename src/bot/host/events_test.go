package host

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hjerpbakk/dipsbot/src/common/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port: "0",
		Slack: config.SlackConfig{
			APIURL:            "http://unused",
			BotToken:          "test-token",
			VerificationToken: "vtok",
		},
		BikeShare:   config.BikeShareConfig{BaseURL: "http://unused"},
		Maps:        config.MapsConfig{BaseURL: "http://unused", APIKey: "k", MaxResults: 3},
		Imgur:       config.ImgurConfig{BaseURL: "http://unused"},
		Comics:      config.ComicsConfig{BaseURL: "http://unused"},
		CacheTTL:    time.Minute,
		HTTPTimeout: time.Second,
	}
}

func postEvent(t *testing.T, h *Host, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	return resp
}

func TestURLVerificationChallenge(t *testing.T) {
	h := New(testConfig())

	resp := postEvent(t, h, `{"type": "url_verification", "token": "vtok", "challenge": "chal123"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var challenge struct {
		Challenge string `json:"challenge"`
	}
	if err := json.Unmarshal(body, &challenge); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if challenge.Challenge != "chal123" {
		t.Errorf("challenge = %q, want chal123", challenge.Challenge)
	}
}

func TestEventWithWrongVerificationToken(t *testing.T) {
	h := New(testConfig())

	resp := postEvent(t, h, `{"type": "url_verification", "token": "wrong", "challenge": "chal123"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestBotMessagesAreIgnored(t *testing.T) {
	h := New(testConfig())

	resp := postEvent(t, h, `{
		"type": "event_callback",
		"token": "vtok",
		"event": {"type": "message", "channel": "C1", "text": "bike Munkegata 1", "bot_id": "B42"}
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestMalformedEventPayload(t *testing.T) {
	h := New(testConfig())

	resp := postEvent(t, h, `{not json`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := New(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := h.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
