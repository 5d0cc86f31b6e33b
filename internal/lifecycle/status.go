// Package lifecycle derives a quiz's status from its creation time and duration.
package lifecycle

import (
	"math"
	"time"

	"github.com/angelmondragon/quizwizard-backend/pkg/enums"
)

const (
	day = 24 * time.Hour

	// DefaultGraceDays is how long a completed quiz lingers before it is swept.
	DefaultGraceDays = 7
)

// ElapsedDays returns floor((now-createdAt)/24h). Future timestamps yield negative values.
func ElapsedDays(createdAt, now time.Time) int {
	return int(math.Floor(float64(now.Sub(createdAt)) / float64(day)))
}

// Resolve derives the status. Missing timestamps or durations are treated as just created.
func Resolve(createdAt *time.Time, durationDays *int, now time.Time) enums.QuizStatus {
	if createdAt == nil || durationDays == nil {
		return enums.QuizStatusActive
	}
	if ElapsedDays(*createdAt, now) >= *durationDays {
		return enums.QuizStatusCompleted
	}
	return enums.QuizStatusActive
}

// ExpiredBeyondGrace reports whether a completed quiz has also outlived graceDays.
func ExpiredBeyondGrace(createdAt *time.Time, durationDays *int, graceDays int, now time.Time) bool {
	if Resolve(createdAt, durationDays, now) != enums.QuizStatusCompleted {
		return false
	}
	return ElapsedDays(*createdAt, now) >= *durationDays+graceDays
}

// WithOverride keeps an explicitly stored status (e.g. paused) over the derived one.
func WithOverride(stored string, derived enums.QuizStatus) enums.QuizStatus {
	if stored == "" {
		return derived
	}
	parsed, err := enums.ParseQuizStatus(stored)
	if err != nil || parsed != enums.QuizStatusPaused {
		return derived
	}
	return parsed
}

// OptionalDuration treats a non-positive duration as absent.
func OptionalDuration(days int) *int {
	if days <= 0 {
		return nil
	}
	return &days
}
