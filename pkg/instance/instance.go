// Package instance identifies the running process in logs.
package instance

import (
	"os"

	"github.com/angelmondragon/quizwizard-backend/pkg/env"
)

const (
	envInstanceID = "QUIZWIZARD_INSTANCE_ID"
	envDyno       = "DYNO"
	defaultID     = "local"
)

// GetID returns the configured instance id, then the platform dyno name, then the hostname.
func GetID() string {
	if id := env.Get(envInstanceID, env.Get(envDyno, "")); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return defaultID
}
