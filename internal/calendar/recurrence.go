package calendar

import (
	"strings"

	apperrors "tenant-calendar-backend/internal/errors"

	"github.com/teambition/rrule-go"
)

// NormalizeRecurrenceRule trims a rule and strips an optional "RRULE:" prefix
func NormalizeRecurrenceRule(rule string) string {
	rule = strings.TrimSpace(rule)
	if len(rule) >= 6 && strings.EqualFold(rule[:6], "RRULE:") {
		rule = rule[6:]
	}
	return rule
}

// ValidateRecurrenceRule checks that a rule parses as RFC 5545. Rules are
// stored verbatim and never expanded into occurrences.
func ValidateRecurrenceRule(rule string) error {
	normalized := NormalizeRecurrenceRule(rule)
	if normalized == "" {
		return apperrors.ErrInvalidRecurrenceRule
	}
	if _, err := rrule.StrToRRule(normalized); err != nil {
		return apperrors.NewValidationError("recurrence_rule", err.Error())
	}
	return nil
}
