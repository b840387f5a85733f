// Package calendar holds the subscription-resolution and aggregation rules of
// the unified calendar. Everything here is pure: store access lives in
// internal/repository and orchestration in internal/service.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"
)

// Source selects which event collections a calendar query reads
type Source string

const (
	SourceAll          Source = "all"
	SourceCatalog      Source = "catalog"
	SourceOrganization Source = "organization"
)

// IncludesCatalog reports whether catalog events are part of the result
func (s Source) IncludesCatalog() bool {
	return s == "" || s == SourceAll || s == SourceCatalog
}

// IncludesOrganization reports whether organization events are part of the result
func (s Source) IncludesOrganization() bool {
	return s == "" || s == SourceAll || s == SourceOrganization
}

// IsValid checks if the Source is one of the recognized values
func (s Source) IsValid() bool {
	switch s {
	case "", SourceAll, SourceCatalog, SourceOrganization:
		return true
	}
	return false
}

// FilterSpec is the user-supplied calendar filter. Every field is optional;
// the zero value places no constraint.
type FilterSpec struct {
	StartDate *time.Time
	EndDate   *time.Time
	Tags      []string
	Search    string
	Source    Source
	Country   string
	Region    string
	Type      models.CatalogType
}

// WithDates returns a copy of the spec whose date bounds are replaced
func (s FilterSpec) WithDates(start, end time.Time) FilterSpec {
	s.StartDate = &start
	s.EndDate = &end
	return s
}

// FilterQuery carries the raw query-string form of a FilterSpec
type FilterQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Tags      string `form:"tags"`
	Search    string `form:"search"`
	Source    string `form:"source"`
	Country   string `form:"country"`
	Region    string `form:"region"`
	Type      string `form:"type"`
}

// WithoutDates drops the date bounds, for views that impose their own window
func (q FilterQuery) WithoutDates() FilterQuery {
	q.StartDate, q.EndDate = "", ""
	return q
}

// Spec validates the raw query and converts it to a FilterSpec
func (q FilterQuery) Spec() (FilterSpec, error) {
	var spec FilterSpec

	if q.StartDate != "" {
		t, err := ParseDate(q.StartDate)
		if err != nil {
			return FilterSpec{}, apperrors.NewValidationError("startDate", err.Error())
		}
		spec.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := ParseDate(q.EndDate)
		if err != nil {
			return FilterSpec{}, apperrors.NewValidationError("endDate", err.Error())
		}
		spec.EndDate = &t
	}

	spec.Tags = SplitTags(q.Tags)
	spec.Search = strings.TrimSpace(q.Search)

	spec.Source = Source(strings.ToLower(strings.TrimSpace(q.Source)))
	if !spec.Source.IsValid() {
		return FilterSpec{}, apperrors.NewValidationError("source", "must be one of all, catalog, organization")
	}

	spec.Country = normalizeScope(q.Country)
	spec.Region = normalizeScope(q.Region)

	if q.Type != "" {
		spec.Type = models.CatalogType(strings.ToUpper(strings.TrimSpace(q.Type)))
		if !spec.Type.IsValid() {
			return FilterSpec{}, apperrors.NewValidationError("type", "unknown catalog type")
		}
	}

	return spec, nil
}

// ParseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates, the latter
// interpreted as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not RFC 3339 or YYYY-MM-DD", value)
	}
	return t.UTC(), nil
}

// SplitTags turns a comma-separated list into trimmed, non-empty tags
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// "all" is the UI's way of saying no country/region constraint
func normalizeScope(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "all") {
		return ""
	}
	return value
}

// AppliedFilters echoes the effective filters back to the client for display
type AppliedFilters struct {
	StartDate *time.Time          `json:"startDate"`
	EndDate   *time.Time          `json:"endDate"`
	Tags      []string            `json:"tags"`
	Search    *string             `json:"search"`
	Source    Source              `json:"source"`
	Country   *string             `json:"country"`
	Region    *string             `json:"region"`
	Type      *models.CatalogType `json:"type"`
}

// Applied builds the filter echo for a spec
func (s FilterSpec) Applied() AppliedFilters {
	applied := AppliedFilters{
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Tags:      s.Tags,
		Source:    s.Source,
		Search:    optional(s.Search),
		Country:   optional(s.Country),
		Region:    optional(s.Region),
	}
	if applied.Source == "" {
		applied.Source = SourceAll
	}
	if s.Type != "" {
		t := s.Type
		applied.Type = &t
	}
	return applied
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
