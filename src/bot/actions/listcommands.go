package actions

import (
	"context"
	"strings"

	"github.com/hjerpbakk/dipsbot/src/common/slack"
	"github.com/hjerpbakk/dipsbot/src/common/types"
)

// CommandLister exposes the labels of the registered commands.
type CommandLister interface {
	Commands() []string
}

// ListCommands DMs the asking user the available commands.
type ListCommands struct {
	slackIntegration slack.Integration
	commands         CommandLister
}

func NewListCommands(slackIntegration slack.Integration, commands CommandLister) *ListCommands {
	return &ListCommands{slackIntegration: slackIntegration, commands: commands}
}

func (a *ListCommands) Execute(ctx context.Context, message types.Message) error {
	var listing strings.Builder
	listing.WriteString("*Available commands*\n")
	for _, command := range a.commands.Commands() {
		listing.WriteString("- ")
		listing.WriteString(command)
		listing.WriteString("\n")
	}

	return a.slackIntegration.SendDirectMessage(ctx, message.User, listing.String())
}
