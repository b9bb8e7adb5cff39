package actions

import (
	"context"
	"fmt"

	"github.com/hjerpbakk/dipsbot/src/common/slack"
	"github.com/hjerpbakk/dipsbot/src/common/types"
)

// ComicsSource picks a comic to share.
type ComicsSource interface {
	RandomComic(ctx context.Context) (string, error)
}

// Comics posts a random comic link to the channel.
type Comics struct {
	slackIntegration slack.Integration
	comics           ComicsSource
}

func NewComics(slackIntegration slack.Integration, comics ComicsSource) *Comics {
	return &Comics{slackIntegration: slackIntegration, comics: comics}
}

func (a *Comics) Execute(ctx context.Context, message types.Message) error {
	comicURL, err := a.comics.RandomComic(ctx)
	if err != nil {
		return a.slackIntegration.SendMessageToChannel(ctx, message.Channel, "Could not find a comic for you right now.")
	}

	return a.slackIntegration.SendMessageToChannel(ctx, message.Channel, fmt.Sprintf("<%s|Awesome comic 😃>", comicURL))
}
