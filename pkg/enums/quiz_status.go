package enums

import (
	"fmt"
	"strings"
)

// QuizStatus is the lifecycle state shown for a discount quiz.
type QuizStatus string

const (
	QuizStatusActive    QuizStatus = "active"
	QuizStatusCompleted QuizStatus = "completed"
	// QuizStatusPaused is accepted from stored records but never derived.
	QuizStatusPaused QuizStatus = "paused"
)

var validQuizStatuses = []QuizStatus{
	QuizStatusActive,
	QuizStatusCompleted,
	QuizStatusPaused,
}

// IsValid checks whether the given status matches the canonical enum.
func (s QuizStatus) IsValid() bool {
	for _, candidate := range validQuizStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseQuizStatus converts raw strings into QuizStatus, ignoring case and surrounding space.
func ParseQuizStatus(value string) (QuizStatus, error) {
	normalized := QuizStatus(strings.ToLower(strings.TrimSpace(value)))
	if normalized.IsValid() {
		return normalized, nil
	}
	return "", fmt.Errorf("invalid quiz status %q", value)
}
