package service

import (
	"fmt"
	"time"

	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// dateLayout is the calendar-date format used across orders and the work log.
const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(
			fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field),
			map[string]any{"field": field, "value": value})
	}
	return parsed, nil
}

// checkDateFormat validates a date field, tolerating empty values.
func checkDateFormat(field, value string) error {
	if value == "" {
		return nil
	}
	_, err := parseDate(field, value)
	return err
}

// daysBetween returns the inclusive day count of [start, end].
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
