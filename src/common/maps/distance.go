package maps

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/hjerpbakk/dipsbot/src/common/types"
)

// NearestStations resolves walking durations from fromAddress to every
// station in the snapshot and returns the reachable ones sorted by
// non-decreasing duration. Callers truncate to the result cap; the full
// sorted sequence comes back so ranking stays a pure step.
func (c *Client) NearestStations(ctx context.Context, fromAddress string, snapshot types.StationSnapshot) ([]types.RankedStation, error) {
	if fromAddress == "" {
		return nil, fmt.Errorf("%w: address is empty", ErrInvalidArgument)
	}

	encodedAddress := url.QueryEscape(fromAddress)
	elements, err := c.distanceCache.GetOrSet(ctx, encodedAddress, func(ctx context.Context) ([]types.DistanceElement, error) {
		return c.fetchRouteDistances(ctx, encodedAddress, fromAddress, snapshot.PipedCoordinates)
	})
	if err != nil {
		return nil, err
	}

	// Elements arrive in snapshot order; the index is the join key back to
	// the station.
	reachable := make([]types.RankedStation, 0, len(elements))
	for i, element := range elements {
		if element.Status != statusOK || i >= len(snapshot.Stations) {
			continue
		}
		reachable = append(reachable, types.RankedStation{
			Station:         snapshot.Stations[i],
			WalkingDuration: element.Duration.Value,
		})
	}

	if len(reachable) == 0 {
		return nil, fmt.Errorf("%w from %s", ErrNoReachableStations, fromAddress)
	}

	// Stable sort keeps snapshot order among equal durations, so results
	// are deterministic for a given snapshot.
	sort.SliceStable(reachable, func(i, j int) bool {
		return reachable[i].WalkingDuration < reachable[j].WalkingDuration
	})

	return reachable, nil
}

func (c *Client) fetchRouteDistances(ctx context.Context, encodedAddress, fromAddress, pipedCoordinates string) ([]types.DistanceElement, error) {
	query := fmt.Sprintf(c.distanceQuery, encodedAddress, pipedCoordinates)

	var response types.DistanceMatrixResponse
	if err := c.getJSON(ctx, query, &response); err != nil {
		return nil, fmt.Errorf("distance matrix query failed: %w", err)
	}

	if len(response.Rows) == 0 {
		return nil, fmt.Errorf("%w: could not route from %s to any bike sharing station", ErrNoRouteFound, fromAddress)
	}

	c.log.Debugw("resolved route distances", "address", fromAddress, "destinations", len(response.Rows[0].Elements))
	return response.Rows[0].Elements, nil
}
