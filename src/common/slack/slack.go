package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hjerpbakk/dipsbot/src/common/config"
	"github.com/hjerpbakk/dipsbot/src/common/types"
	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"go.uber.org/zap"
)

// Integration is the outbound chat boundary. Delivery is fire-and-forget
// from the pipeline's point of view; callers catch errors, they never
// propagate past the dispatching action.
type Integration interface {
	SendMessageToChannel(ctx context.Context, channel, text string, attachments ...types.Attachment) error
	SendDirectMessage(ctx context.Context, userID, text string) error
}

type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

func NewClient(cfg config.SlackConfig, httpClient *http.Client) *Client {
	return &Client{
		apiURL:     cfg.APIURL,
		token:      cfg.BotToken,
		httpClient: httpClient,
		log:        utils.NamedLogger("slack"),
	}
}

func (c *Client) SendMessageToChannel(ctx context.Context, channel, text string, attachments ...types.Attachment) error {
	return c.postMessage(ctx, types.SlackPostMessageRequest{
		Channel:     channel,
		Text:        text,
		Attachments: attachments,
	})
}

// SendDirectMessage posts to the user's id, which the chat API resolves to
// the bot's direct message channel with that user.
func (c *Client) SendDirectMessage(ctx context.Context, userID, text string) error {
	return c.postMessage(ctx, types.SlackPostMessageRequest{
		Channel: userID,
		Text:    text,
	})
}

func (c *Client) postMessage(ctx context.Context, message types.SlackPostMessageRequest) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat.postMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send chat message: %w", err)
	}
	defer resp.Body.Close()

	var apiResponse types.SlackAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return fmt.Errorf("failed to decode chat response: %w", err)
	}

	if !apiResponse.OK {
		return fmt.Errorf("chat API rejected message: %s", apiResponse.Error)
	}

	c.log.Debugw("message delivered", "channel", message.Channel)
	return nil
}
