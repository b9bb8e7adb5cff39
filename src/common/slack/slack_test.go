package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hjerpbakk/dipsbot/src/common/config"
	"github.com/hjerpbakk/dipsbot/src/common/slack"
	"github.com/hjerpbakk/dipsbot/src/common/types"
)

func TestSendMessageToChannel(t *testing.T) {
	var got types.SlackPostMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat.postMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer token123" {
			t.Errorf("authorization header = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(types.SlackAPIResponse{OK: true})
	}))
	defer server.Close()

	client := slack.NewClient(config.SlackConfig{APIURL: server.URL, BotToken: "token123"}, &http.Client{Timeout: 5 * time.Second})
	err := client.SendMessageToChannel(context.Background(), "C1", "hello", types.Attachment{ImageURL: "https://img.example/a.png"})
	if err != nil {
		t.Fatalf("SendMessageToChannel returned error: %v", err)
	}

	if got.Channel != "C1" || got.Text != "hello" {
		t.Errorf("posted message = %+v", got)
	}
	if len(got.Attachments) != 1 || got.Attachments[0].ImageURL != "https://img.example/a.png" {
		t.Errorf("posted attachments = %+v", got.Attachments)
	}
}

func TestSendDirectMessageTargetsUser(t *testing.T) {
	var got types.SlackPostMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(types.SlackAPIResponse{OK: true})
	}))
	defer server.Close()

	client := slack.NewClient(config.SlackConfig{APIURL: server.URL, BotToken: "token123"}, &http.Client{Timeout: 5 * time.Second})
	if err := client.SendDirectMessage(context.Background(), "U1", "psst"); err != nil {
		t.Fatalf("SendDirectMessage returned error: %v", err)
	}

	if got.Channel != "U1" || got.Text != "psst" {
		t.Errorf("posted message = %+v", got)
	}
}

func TestSendMessageAPIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.SlackAPIResponse{OK: false, Error: "channel_not_found"})
	}))
	defer server.Close()

	client := slack.NewClient(config.SlackConfig{APIURL: server.URL, BotToken: "token123"}, &http.Client{Timeout: 5 * time.Second})
	if err := client.SendMessageToChannel(context.Background(), "C404", "hello"); err == nil {
		t.Error("SendMessageToChannel succeeded on a rejected message")
	}
}
