package bikeshare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hjerpbakk/dipsbot/src/common/config"
	"github.com/hjerpbakk/dipsbot/src/common/types"
	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"go.uber.org/zap"
)

// Client fetches the bike share station directory. Every call returns a
// fresh snapshot; nothing is cached here because live availability is part
// of the answer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

func NewClient(cfg config.BikeShareConfig, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        utils.NamedLogger("bikeshare"),
	}
}

// AllStations returns every station in the serving area together with its
// live status. The snapshot's piped coordinate string follows station order
// exactly, which the distance query depends on.
func (c *Client) AllStations(ctx context.Context) (types.StationSnapshot, error) {
	var information types.StationInformationResponse
	if err := c.fetchJSON(ctx, c.baseURL+"/station_information.json", &information); err != nil {
		return types.StationSnapshot{}, fmt.Errorf("failed to fetch station information: %w", err)
	}

	var status types.StationStatusResponse
	if err := c.fetchJSON(ctx, c.baseURL+"/station_status.json", &status); err != nil {
		return types.StationSnapshot{}, fmt.Errorf("failed to fetch station status: %w", err)
	}

	stations := information.Data.Stations
	var piped strings.Builder
	for i, station := range stations {
		if i > 0 {
			piped.WriteByte('|')
		}
		piped.WriteString(strconv.FormatFloat(station.Latitude, 'f', -1, 64))
		piped.WriteByte(',')
		piped.WriteString(strconv.FormatFloat(station.Longitude, 'f', -1, 64))
	}

	c.log.Debugw("fetched station snapshot", "stations", len(stations))

	return types.NewStationSnapshot(stations, piped.String(), status.Data.Stations), nil
}

func (c *Client) fetchJSON(ctx context.Context, url string, target interface{}) error {
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
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
