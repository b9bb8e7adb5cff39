package router

import (
	"context"

	"github.com/hjerpbakk/dipsbot/src/common/types"
	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"go.uber.org/zap"
)

// Predicate decides whether a message belongs to an action. CommandText is
// the human-readable label shown on a "list commands" request, empty for
// actions that should stay out of the listing.
type Predicate interface {
	Matches(message types.Message) bool
	CommandText() string
}

// Action handles one matched message. Errors are logged, never propagated;
// a misbehaving action must not take the host down.
type Action interface {
	Execute(ctx context.Context, message types.Message) error
}

type registration struct {
	predicate Predicate
	action    Action
}

// Router dispatches messages to the first registered action whose predicate
// matches. No match means no action and no response. The registration set
// is fixed after composition, so concurrent dispatches need no locking.
type Router struct {
	registrations []registration
	log           *zap.SugaredLogger
}

func New() *Router {
	return &Router{log: utils.NamedLogger("router")}
}

func (r *Router) Register(predicate Predicate, action Action) {
	r.registrations = append(r.registrations, registration{predicate: predicate, action: action})
}

// Commands returns the labels of every registered predicate with a
// non-empty command text, in registration order.
func (r *Router) Commands() []string {
	var commands []string
	for _, reg := range r.registrations {
		if text := reg.predicate.CommandText(); text != "" {
			commands = append(commands, text)
		}
	}
	return commands
}

// Dispatch runs the first matching action and reports whether any matched.
// Panics inside an action are contained here so one poisoned message cannot
// crash the host.
func (r *Router) Dispatch(ctx context.Context, message types.Message) (matched bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.log.Errorw("action panicked", "channel", message.Channel, "panic", recovered)
		}
	}()

	for _, reg := range r.registrations {
		if !reg.predicate.Matches(message) {
			continue
		}

		if err := reg.action.Execute(ctx, message); err != nil {
			r.log.Errorw("action failed", "channel", message.Channel, "error", err)
		}
		return true
	}

	return false
}
