package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hjerpbakk/dipsbot/src/common/cache"
	"github.com/hjerpbakk/dipsbot/src/common/config"
	"github.com/hjerpbakk/dipsbot/src/common/types"
	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"go.uber.org/zap"
)

const statusOK = "OK"

// Client orchestrates the maps collaborators: the distance matrix, the
// detailed route lookup and the static map image URL. Distance and route
// responses are cached per origin address with single-flight semantics, so
// repeated questions for the same address cost one billed query.
type Client struct {
	httpClient *http.Client
	log        *zap.SugaredLogger

	distanceQuery string
	routeQuery    string
	imageURL      string
	maxResults    int

	distanceCache *cache.Cache[[]types.DistanceElement]
	routeCache    *cache.Cache[string]
}

func NewClient(cfg config.MapsConfig, store cache.Store, httpClient *http.Client) *Client {
	region := ""
	if cfg.Region != "" {
		region = "&region=" + cfg.Region
	}
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		httpClient:    httpClient,
		log:           utils.NamedLogger("maps"),
		distanceQuery: base + "/maps/api/distancematrix/json?origins=%s&destinations=%s" + region + "&mode=walking&units=metric&key=" + cfg.APIKey,
		routeQuery:    base + "/maps/api/directions/json?origin=%s&destination=%s" + region + "&mode=walking&units=metric&key=" + cfg.APIKey,
		imageURL:      base + "/maps/api/staticmap?size=600x600&scale=2&maptype=roadmap" + region + "&%s&%s&path=weight:5%%7Ccolor:blue%%7Cenc:%s&key=" + cfg.APIKey,
		maxResults:    cfg.MaxResults,
		distanceCache: cache.New[[]types.DistanceElement](store),
		routeCache:    cache.New[string](store),
	}
}

// MaxResults is the configured cap on labelled stations per answer.
func (c *Client) MaxResults() int {
	return c.maxResults
}

func (c *Client) getJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from maps API", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

func formatCoordinates(station types.Station) string {
	return strconv.FormatFloat(station.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(station.Longitude, 'f', -1, 64)
}
