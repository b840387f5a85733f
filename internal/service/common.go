package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "tenant-calendar-backend/internal/errors"

	"gorm.io/datatypes"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// BulkCreateResponse reports how many events a bulk request stored
type BulkCreateResponse struct {
	Count int64 `json:"count"`
}

// PageInfo describes the page of a paginated list
type PageInfo struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

func normalizePage(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

// validationFailed turns validator output into an apperrors validation error
func validationFailed(err error) error {
	return apperrors.NewValidationError("request", err.Error())
}

func checkTimeRange(start, end time.Time) error {
	if end.Before(start) {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

func toJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// inBatch locates a validation error at position i of the request's events
func inBatch(i int, err error) error {
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	return apperrors.NewValidationError(fmt.Sprintf("events[%d].%s", i, ve.Field), ve.Message)
}
