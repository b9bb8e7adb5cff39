package types

// Message is a chat message as seen by the bot. Text is the display
// rendering with chat markup resolved to <...> link syntax; RawText is the
// verbatim payload text, which can differ from Text in length and encoding.
type Message struct {
	Channel string
	User    string
	Text    string
	RawText string
}

type Attachment struct {
	ImageURL string `json:"image_url,omitempty"`
	Text     string `json:"text,omitempty"`
}

type SlackEventPayload struct {
	Type      string            `json:"type"`
	Token     string            `json:"token"`
	Challenge string            `json:"challenge,omitempty"`
	Event     SlackMessageEvent `json:"event"`
}

type SlackMessageEvent struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
	User    string `json:"user"`
	Text    string `json:"text"`
	BotID   string `json:"bot_id,omitempty"`
	Subtype string `json:"subtype,omitempty"`
}

type SlackPostMessageRequest struct {
	Channel     string       `json:"channel"`
	Text        string       `json:"text"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type SlackAPIResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
