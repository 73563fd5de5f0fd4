package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried in the response envelope.
const (
	CodeParamsNotValid   = "PARAMS_NOT_VALID"
	CodeBodyNotValid     = "BODY_NOT_VALID"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodePathNotFound     = "PATH_NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeHTTPError        = "HTTP_ERROR"
	CodeServerError      = "SERVER_ERROR"
)

// Error is an API error rendered into the standard envelope.
type Error struct {
	Code    string
	Message string
	Status  int
	Details any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParamDetail describes one invalid URL or query parameter.
type ParamDetail struct {
	Param          string `json:"param"`
	Value          string `json:"value"`
	Issue          string `json:"issue"`
	ExpectedFormat string `json:"expectedFormat,omitempty"`
}

// FieldDetail describes one invalid body field.
type FieldDetail struct {
	Field string `json:"field"`
	Value any    `json:"value"`
	Issue string `json:"issue"`
	Type  string `json:"type"`
}

// NotFoundDetail identifies the missing resource.
type NotFoundDetail struct {
	Resource   string `json:"resource"`
	Identifier string `json:"identifier"`
	SearchedBy string `json:"searchedBy"`
}

// ParamsNotValid reports invalid URL or query parameters.
func ParamsNotValid(details ...ParamDetail) *Error {
	return &Error{
		Code:    CodeParamsNotValid,
		Message: "URL parameter validation failed",
		Status:  http.StatusBadRequest,
		Details: details,
	}
}

// InvalidID reports a path parameter that is not a valid identifier.
func InvalidID(param, value string) *Error {
	return ParamsNotValid(ParamDetail{
		Param:          param,
		Value:          value,
		Issue:          "Must be a valid UUID",
		ExpectedFormat: "36-character UUID string",
	})
}

// BodyNotValid reports request body validation failures.
func BodyNotValid(details []FieldDetail) *Error {
	return &Error{
		Code:    CodeBodyNotValid,
		Message: "Request body validation failed",
		Status:  http.StatusBadRequest,
		Details: details,
	}
}

// BodyField is a shorthand for a single failing field.
func BodyField(field string, value any, issue string) *Error {
	return BodyNotValid([]FieldDetail{{Field: field, Value: value, Issue: issue, Type: "value_error"}})
}

// NotFound reports a missing resource.
func NotFound(resource, identifier string) *Error {
	return &Error{
		Code:    CodeResourceNotFound,
		Message: resource + " not found",
		Status:  http.StatusNotFound,
		Details: NotFoundDetail{Resource: resource, Identifier: identifier, SearchedBy: "id"},
	}
}

// Unauthorized reports a missing or wrong API key.
func Unauthorized() *Error {
	return &Error{
		Code:    CodeUnauthorized,
		Message: "A valid API key is required",
		Status:  http.StatusUnauthorized,
	}
}

// StatusOf returns the HTTP status an error will be rendered with.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return http.StatusInternalServerError
}
