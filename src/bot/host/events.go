package host

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/hjerpbakk/dipsbot/src/common/types"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *Host) handleHealth(c *fiber.Ctx) error {
	return c.JSON(healthResponse{
		Status:  "healthy",
		Version: "1.0.0",
	})
}

// handleSlackEvent receives Events API callbacks. Message events are
// dispatched on their own goroutine so the chat platform gets its ack
// within the delivery deadline regardless of how long the pipeline takes.
func (h *Host) handleSlackEvent(c *fiber.Ctx) error {
	var payload types.SlackEventPayload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return c.SendStatus(http.StatusBadRequest)
	}

	if h.cfg.Slack.VerificationToken != "" && payload.Token != h.cfg.Slack.VerificationToken {
		return c.SendStatus(http.StatusUnauthorized)
	}

	switch payload.Type {
	case "url_verification":
		return c.JSON(fiber.Map{"challenge": payload.Challenge})

	case "event_callback":
		event := payload.Event
		if event.Type != "message" || event.BotID != "" || event.Subtype != "" {
			return c.SendStatus(http.StatusOK)
		}

		message := types.Message{
			Channel: event.Channel,
			User:    event.User,
			Text:    event.Text,
			RawText: event.Text,
		}

		go h.router.Dispatch(context.Background(), message)
	}

	return c.SendStatus(http.StatusOK)
}
