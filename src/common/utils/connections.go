package utils

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		// default to the redis service in the cluster
		addr = "redis:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	return rdb
}

// NewHTTPClient builds the client shared by every external collaborator.
// All outbound calls get a bounded timeout so a stalled collaborator is
// reported as a failure instead of hanging a message flow.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &http.Client{
		Timeout: timeout,
	}
}
