// Package pagination parses page/limit/sort query parameters and writes paginated
// responses with HATEOAS links and X-Total-Count, X-Page and X-Limit headers.
package pagination
