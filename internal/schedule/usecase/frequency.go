package usecase

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// timesPerWeekPattern matches descriptors like "3x per week", "3 x per week",
// "3 times per week" and "3 per week".
var timesPerWeekPattern = regexp.MustCompile(`^(\d+)\s*(?:x|times?)?\s*(?:per|a)\s+week$`)

// parseFrequency turns a free-text frequency descriptor into day offsets
// within a 7-day week, relative to the anchor weekday. "daily" selects all
// seven days; "N x per week" spreads N days evenly across the week starting
// at offset 0. The result is deterministic and sorted ascending.
func parseFrequency(descriptor string) ([]int, error) {
	normalized := strings.ToLower(strings.TrimSpace(descriptor))

	if normalized == "daily" || normalized == "every day" {
		return []int{0, 1, 2, 3, 4, 5, 6}, nil
	}

	match := timesPerWeekPattern.FindStringSubmatch(normalized)
	if match == nil {
		return nil, errors.New("unrecognized frequency descriptor")
	}

	n, err := strconv.Atoi(match[1])
	if err != nil || n < 1 || n > 7 {
		return nil, errors.New("frequency count must be between 1 and 7 per week")
	}

	// Even spread: offset i*7/N rounded, anchored at the start of the week.
	// For N in 1..7 the offsets are strictly increasing, so no dedup or tie
	// break is needed beyond rounding.
	offsets := make([]int, 0, n)
	for i := 0; i < n; i++ {
		offsets = append(offsets, int(math.Round(float64(i*7)/float64(n))))
	}
	return offsets, nil
}
