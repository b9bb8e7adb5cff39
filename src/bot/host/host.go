package host

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hjerpbakk/dipsbot/src/bot/actions"
	"github.com/hjerpbakk/dipsbot/src/bot/router"
	"github.com/hjerpbakk/dipsbot/src/common/bikeshare"
	"github.com/hjerpbakk/dipsbot/src/common/cache"
	"github.com/hjerpbakk/dipsbot/src/common/comics"
	"github.com/hjerpbakk/dipsbot/src/common/config"
	"github.com/hjerpbakk/dipsbot/src/common/imgur"
	"github.com/hjerpbakk/dipsbot/src/common/maps"
	"github.com/hjerpbakk/dipsbot/src/common/slack"
	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"go.uber.org/zap"
)

// Host composes one complete bot instance: clients, actions, router and the
// HTTP surface receiving chat events. A crashed host is thrown away and a
// fresh one composed; no state survives except the redis-backed cache.
type Host struct {
	cfg    *config.Config
	app    *fiber.App
	router *router.Router
	log    *zap.SugaredLogger
}

func New(cfg *config.Config) *Host {
	log := utils.NamedLogger("host")
	httpClient := utils.NewHTTPClient(cfg.HTTPTimeout)

	var store cache.Store
	if cfg.RedisAddr != "" {
		store = cache.NewRedisStore(utils.NewRedisClient(cfg.RedisAddr), cfg.CacheTTL)
	} else {
		store = cache.NewMemoryStore(cfg.CacheTTL)
	}

	slackClient := slack.NewClient(cfg.Slack, httpClient)
	stationDirectory := bikeshare.NewClient(cfg.BikeShare, httpClient)
	mapsClient := maps.NewClient(cfg.Maps, store, httpClient)
	imageHost := imgur.NewClient(cfg.Imgur, httpClient)
	comicsClient := comics.NewClient(cfg.Comics, httpClient)

	commandRouter := router.New()
	commandRouter.Register(
		router.NewKeywordPredicate("bike <address>: find the nearest city bike stations", "bike", "sykkel"),
		actions.NewBikeShare(slackClient, stationDirectory, mapsClient, imageHost),
	)
	commandRouter.Register(
		router.NewKeywordPredicate("comic: post a random comic", "comic", "tegneserie"),
		actions.NewComics(slackClient, comicsClient),
	)
	commandRouter.Register(
		router.NewKeywordPredicate("commands: list the available commands", "commands", "help"),
		actions.NewListCommands(slackClient, commandRouter),
	)

	host := &Host{
		cfg:    cfg,
		router: commandRouter,
		log:    log,
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		method := c.Method()

		if path != "/health" {
			log.Infow("request", "method", method, "path", path, "status", c.Response().StatusCode())
		}

		return c.Next()
	})

	app.Get("/health", host.handleHealth)
	app.Post("/slack/events", host.handleSlackEvent)

	host.app = app
	return host
}

// Run serves the event endpoint until ctx is cancelled or the listener
// fails.
func (h *Host) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = h.app.ShutdownWithTimeout(5 * time.Second)
	}()

	h.log.Infow("dipsbot listening", "port", h.cfg.Port)
	return h.app.Listen(":" + h.cfg.Port)
}
