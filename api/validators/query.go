package validators

import (
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
)

// ParsePathID parses a positive int64 identifier taken from a path or query value.
func ParsePathID(raw, field string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "id must be a positive integer").WithDetails(map[string]any{"field": field})
	}
	return id, nil
}
