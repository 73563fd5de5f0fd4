// Package validation collects request body field failures into BODY_NOT_VALID errors.
package validation
