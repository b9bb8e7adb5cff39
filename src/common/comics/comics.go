package comics

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/hjerpbakk/dipsbot/src/common/config"
)

type comicInfo struct {
	Num int    `json:"num"`
	Img string `json:"img"`
}

// Client picks a random comic from the configured comic feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.ComicsConfig, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// RandomComic returns the page URL of a random comic.
func (c *Client) RandomComic(ctx context.Context) (string, error) {
	latest, err := c.fetchInfo(ctx, c.baseURL+"/info.0.json")
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest comic: %w", err)
	}
	if latest.Num < 1 {
		return "", fmt.Errorf("comic feed returned no comics")
	}

	pick := rand.Intn(latest.Num) + 1
	return fmt.Sprintf("%s/%d/", c.baseURL, pick), nil
}

func (c *Client) fetchInfo(ctx context.Context, url string) (comicInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return comicInfo{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return comicInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return comicInfo{}, fmt.Errorf("unexpected status %d from comic feed", resp.StatusCode)
	}

	var info comicInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return comicInfo{}, err
	}
	return info, nil
}
