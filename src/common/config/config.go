package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	Slack     SlackConfig
	BikeShare BikeShareConfig
	Maps      MapsConfig
	Imgur     ImgurConfig
	Comics    ComicsConfig

	RedisAddr   string
	CacheTTL    time.Duration
	HTTPTimeout time.Duration
}

type SlackConfig struct {
	APIURL            string
	BotToken          string
	VerificationToken string
}

type BikeShareConfig struct {
	BaseURL string
}

type MapsConfig struct {
	BaseURL    string
	APIKey     string
	Region     string
	MaxResults int
}

type ImgurConfig struct {
	BaseURL  string
	ClientID string
}

type ComicsConfig struct {
	BaseURL string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "3000"),
		Slack: SlackConfig{
			APIURL:            getEnv("SLACK_API_URL", "https://slack.com/api"),
			BotToken:          getEnv("SLACK_BOT_TOKEN", ""),
			VerificationToken: getEnv("SLACK_VERIFICATION_TOKEN", ""),
		},
		BikeShare: BikeShareConfig{
			BaseURL: getEnv("BIKESHARE_BASE_URL", "https://gbfs.urbansharing.com/trondheimbysykkel.no"),
		},
		Maps: MapsConfig{
			BaseURL:    getEnv("MAPS_BASE_URL", "https://maps.googleapis.com"),
			APIKey:     getEnv("MAPS_API_KEY", ""),
			Region:     getEnv("MAPS_REGION", ""),
			MaxResults: getIntEnv("MAPS_MAX_RESULTS", 3),
		},
		Imgur: ImgurConfig{
			BaseURL:  getEnv("IMGUR_BASE_URL", "https://api.imgur.com"),
			ClientID: getEnv("IMGUR_CLIENT_ID", ""),
		},
		Comics: ComicsConfig{
			BaseURL: getEnv("COMICS_BASE_URL", "https://xkcd.com"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		CacheTTL:    getDurationEnv("CACHE_TTL", time.Hour),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) Validate() error {
	if c.Slack.BotToken == "" {
		return fmt.Errorf("SLACK_BOT_TOKEN is required")
	}
	if c.Maps.APIKey == "" {
		return fmt.Errorf("MAPS_API_KEY is required")
	}
	if c.Maps.MaxResults <= 0 {
		return fmt.Errorf("MAPS_MAX_RESULTS must be positive, got %d", c.Maps.MaxResults)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
