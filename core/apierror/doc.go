// Package apierror defines the API error taxonomy and the Fiber error handler that
// renders it.
//
// Handlers return *Error values (ParamsNotValid, BodyNotValid, NotFound, ...) and
// never write error bodies themselves. Handler turns anything returned from the
// chain into the envelope:
//
//	{"error": {"code", "message", "statusCode", "timestamp", "path", "method", "details"}}
//
// Unknown routes become PATH_NOT_FOUND with the list of available endpoints, other
// Fiber errors become HTTP_ERROR, and anything else is logged with a fresh error id
// and reported as SERVER_ERROR.
package apierror
