package instance

import (
	"time"

	"github.com/stitchandstory/shop-backend/pkg/env"
)

var startedAt = time.Now()

// GetID returns the runtime instance identifier or a default value.
func GetID() string {
	return env.First("local", "DYNO", "INSTANCE_ID")
}

// Uptime reports how long this process has been running.
func Uptime() time.Duration {
	return time.Since(startedAt)
}
