package maps

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hjerpbakk/dipsbot/src/common/types"
)

// routeCacheKeySuffix keeps detailed-route entries in a separate namespace
// from the distance matrix entries for the same address.
const routeCacheKeySuffix = "directions"

// ComposeImageURL builds a static map URL with one marker for the origin,
// one marker per labelled station and the walking route to the nearest
// station as a path overlay. The route is fetched for the first station
// only; the multi-stop visual is an approximation anchored on the nearest
// one.
func (c *Client) ComposeImageURL(ctx context.Context, fromAddress string, stations []types.LabelledStation) (string, error) {
	if fromAddress == "" {
		return "", fmt.Errorf("%w: address is empty", ErrInvalidArgument)
	}
	if len(stations) == 0 || len(stations) > c.maxResults {
		return "", fmt.Errorf("%w: number of stations must be between 1 and %d, got %d", ErrInvalidArgument, c.maxResults, len(stations))
	}

	polyline, err := c.routeCache.GetOrSet(ctx, fromAddress+routeCacheKeySuffix, func(ctx context.Context) (string, error) {
		return c.fetchDetailedRoute(ctx, fromAddress, stations[0].Station)
	})
	if err != nil {
		return "", err
	}

	userMarker := "markers=color:green%7Clabel:U%7C" + url.QueryEscape(fromAddress)

	stationMarkers := make([]string, len(stations))
	for i, station := range stations {
		stationMarkers[i] = fmt.Sprintf("markers=color:red%%7Clabel:%c%%7C%s", station.Label, formatCoordinates(station.Station))
	}

	return fmt.Sprintf(c.imageURL, userMarker, strings.Join(stationMarkers, "&"), polyline), nil
}

func (c *Client) fetchDetailedRoute(ctx context.Context, fromAddress string, station types.Station) (string, error) {
	query := fmt.Sprintf(c.routeQuery, url.QueryEscape(fromAddress), url.QueryEscape(formatCoordinates(station)))

	var response types.DirectionsResponse
	if err := c.getJSON(ctx, query, &response); err != nil {
		return "", fmt.Errorf("directions query failed: %w", err)
	}

	if response.Status != statusOK || len(response.Routes) == 0 {
		return "", fmt.Errorf("%w: from %s to %s, %s", ErrRouteUnavailable, fromAddress, station.Name, station.Address)
	}

	c.log.Debugw("fetched detailed route", "address", fromAddress, "station", station.Name)
	return response.Routes[0].OverviewPolyline.Points, nil
}
