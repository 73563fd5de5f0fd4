package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"social-network/core/apierror"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Errors accumulates body field failures in request order.
type Errors struct {
	details []apierror.FieldDetail
}

// Add records a failing field.
func (e *Errors) Add(field string, value any, issue, kind string) {
	e.details = append(e.details, apierror.FieldDetail{Field: field, Value: value, Issue: issue, Type: kind})
}

// Err returns a BODY_NOT_VALID error, or nil when nothing failed.
func (e *Errors) Err() error {
	if len(e.details) == 0 {
		return nil
	}
	return apierror.BodyNotValid(e.details)
}

// Required records a missing field when value is empty.
func (e *Errors) Required(field, value string) bool {
	if value == "" {
		e.Add(field, nil, "Field required", "missing")
		return false
	}
	return true
}

// Length checks the rune length of value against [min, max]. max <= 0 means unbounded.
func (e *Errors) Length(field, value string, min, max int) bool {
	n := utf8.RuneCountInString(value)
	if n < min {
		e.Add(field, value, fmt.Sprintf("String should have at least %d characters", min), "string_too_short")
		return false
	}
	if max > 0 && n > max {
		e.Add(field, value, fmt.Sprintf("String should have at most %d characters", max), "string_too_long")
		return false
	}
	return true
}

// RequiredLength combines Required and Length.
func (e *Errors) RequiredLength(field, value string, min, max int) bool {
	return e.Required(field, value) && e.Length(field, value, min, max)
}

// Email checks the address syntax.
func (e *Errors) Email(field, value string) bool {
	if !govalidator.IsEmail(value) {
		e.Add(field, value, "value is not a valid email address", "value_error")
		return false
	}
	return true
}

// Pattern checks value against re.
func (e *Errors) Pattern(field, value string, re *regexp.Regexp) bool {
	if !re.MatchString(value) {
		e.Add(field, value, fmt.Sprintf("String should match pattern '%s'", re.String()), "string_pattern_mismatch")
		return false
	}
	return true
}

// Min checks value >= min.
func (e *Errors) Min(field string, value, min int) bool {
	if value < min {
		e.Add(field, value, fmt.Sprintf("Input should be greater than or equal to %d", min), "greater_than_equal")
		return false
	}
	return true
}

// OneOf checks value is in allowed.
func (e *Errors) OneOf(field, value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	e.Add(field, value, fmt.Sprintf("Input should be one of %q", allowed), "enum")
	return false
}

// ID checks value is a well-formed identifier.
func (e *Errors) ID(field, value string) bool {
	if !IsID(value) {
		e.Add(field, value, "Must be a valid UUID", "value_error")
		return false
	}
	return true
}

// IsID reports whether s is a well-formed entity identifier.
func IsID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}

// dateLayouts are accepted for date-only and date-time inputs.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseTime parses value with the accepted layouts.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", value)
}

// Time parses value and records a failure when it is malformed.
func (e *Errors) Time(field, value string) (time.Time, bool) {
	t, err := ParseTime(value)
	if err != nil {
		e.Add(field, value, "Input should be a valid datetime", "datetime_parsing")
		return time.Time{}, false
	}
	return t, true
}

// DecodeBody unmarshals the JSON request body into out. A missing or malformed
// body is reported as BODY_NOT_VALID.
func DecodeBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(body) == 0 {
		return apierror.BodyNotValid([]apierror.FieldDetail{{Field: "body", Issue: "Field required", Type: "missing"}})
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return apierror.BodyNotValid([]apierror.FieldDetail{{Field: "body", Issue: err.Error(), Type: "json_invalid"}})
	}
	return nil
}
