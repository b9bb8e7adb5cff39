package imgur

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hjerpbakk/dipsbot/src/common/config"
	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"go.uber.org/zap"
)

type uploadResponse struct {
	Data struct {
		Link string `json:"link"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// Client rehosts map images so the chat client can embed them without
// leaking the maps API key that is baked into the source URL.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

func NewClient(cfg config.ImgurConfig, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		clientID:   cfg.ClientID,
		httpClient: httpClient,
		log:        utils.NamedLogger("imgur"),
	}
}

// UploadImage submits an image by URL and returns the public link.
func (c *Client) UploadImage(ctx context.Context, imageURL string) (string, error) {
	form := url.Values{}
	form.Set("image", imageURL)
	form.Set("type", "url")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/3/image", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Client-ID "+c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	var upload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&upload); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if !upload.Success || upload.Data.Link == "" {
		return "", fmt.Errorf("image host rejected upload with status %d", upload.Status)
	}

	c.log.Debugw("image uploaded", "link", upload.Data.Link)
	return upload.Data.Link, nil
}
