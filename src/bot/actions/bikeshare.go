package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/hjerpbakk/dipsbot/src/common/maps"
	"github.com/hjerpbakk/dipsbot/src/common/slack"
	"github.com/hjerpbakk/dipsbot/src/common/types"
	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"go.uber.org/zap"
)

// StationDirectory supplies the universe of bike share stations.
type StationDirectory interface {
	AllStations(ctx context.Context) (types.StationSnapshot, error)
}

// RouteFinder resolves walking routes and renders the map image URL.
type RouteFinder interface {
	NearestStations(ctx context.Context, fromAddress string, snapshot types.StationSnapshot) ([]types.RankedStation, error)
	ComposeImageURL(ctx context.Context, fromAddress string, stations []types.LabelledStation) (string, error)
	MaxResults() int
}

// ImageHost rehosts an image and returns a publicly retrievable URL.
type ImageHost interface {
	UploadImage(ctx context.Context, imageURL string) (string, error)
}

// BikeShare answers "where is the nearest city bike" questions. Every
// failure past address extraction is converted into one user-facing message
// to the originating channel; nothing escapes Execute.
type BikeShare struct {
	slackIntegration slack.Integration
	stations         StationDirectory
	routes           RouteFinder
	images           ImageHost
	log              *zap.SugaredLogger
}

func NewBikeShare(slackIntegration slack.Integration, stations StationDirectory, routes RouteFinder, images ImageHost) *BikeShare {
	return &BikeShare{
		slackIntegration: slackIntegration,
		stations:         stations,
		routes:           routes,
		images:           images,
		log:              utils.NamedLogger("bikeshare-action"),
	}
}

func (a *BikeShare) Execute(ctx context.Context, message types.Message) error {
	userAddress, err := maps.ExtractAddress(message.RawText, message.Text)
	if err != nil {
		return a.slackIntegration.SendMessageToChannel(ctx, message.Channel, "Cannot find near bike stations to an empty address.")
	}

	if err := a.slackIntegration.SendMessageToChannel(ctx, message.Channel, fmt.Sprintf("I'll find the bike stations nearest to %s...", userAddress)); err != nil {
		return err
	}

	if err := a.findAndPresentStations(ctx, message, userAddress); err != nil {
		a.log.Warnw("bike station lookup failed", "address", userAddress, "error", err)
		return a.slackIntegration.SendMessageToChannel(ctx, message.Channel, fmt.Sprintf("Could not route to any bike station: %s", err))
	}

	return nil
}

func (a *BikeShare) findAndPresentStations(ctx context.Context, message types.Message, userAddress string) error {
	snapshot, err := a.stations.AllStations(ctx)
	if err != nil {
		return err
	}

	rankedStations, err := a.routes.NearestStations(ctx, userAddress, snapshot)
	if err != nil {
		return err
	}

	nearestStations, err := maps.TopK(rankedStations, a.routes.MaxResults())
	if err != nil {
		return err
	}

	if err := a.slackIntegration.SendMessageToChannel(ctx, message.Channel, a.formatStationList(snapshot, nearestStations, userAddress)); err != nil {
		return err
	}

	imageURL, err := a.routes.ComposeImageURL(ctx, userAddress, nearestStations)
	if err != nil {
		return err
	}

	publicImageURL, err := a.images.UploadImage(ctx, imageURL)
	if err != nil {
		return err
	}

	return a.slackIntegration.SendMessageToChannel(ctx, message.Channel, "Here's how you get there",
		types.Attachment{ImageURL: publicImageURL})
}

func (a *BikeShare) formatStationList(snapshot types.StationSnapshot, stations []types.LabelledStation, userAddress string) string {
	var response strings.Builder
	for _, labelled := range stations {
		station := labelled.Station

		freeBikes, freeLocks := 0, 0
		if status, ok := snapshot.StatusFor(station.ID); ok {
			freeBikes = status.BikesAvailable
			freeLocks = status.DocksAvailable
		}

		response.WriteString(fmt.Sprintf("\n%s (%c), %s, %d free bikes / %d free locks. Estimated walking time from %s is %s.",
			station.Name, labelled.Label, station.Address, freeBikes, freeLocks,
			userAddress, utils.FormatWalkingTime(labelled.WalkingDuration)))
	}
	return response.String()
}
