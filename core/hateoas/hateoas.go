package hateoas

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Link is a hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// Links maps relation names to links.
type Links map[string]Link

// Param is an ordered query parameter.
type Param struct {
	Key   string
	Value string
}

// BaseURL returns scheme://host of the request, without a trailing slash.
func BaseURL(c *fiber.Ctx) string {
	return strings.TrimRight(c.BaseURL(), "/")
}

// Href joins base and a path built from format.
func Href(base, format string, args ...any) Link {
	return Link{Href: base + fmt.Sprintf(format, args...)}
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Pagination builds self/first/last/prev/next links for a list endpoint.
// Extra params with empty values are left out.
func Pagination(base, endpoint string, page, limit int, total int64, extra ...Param) Links {
	totalPages := TotalPages(total, limit)
	last := totalPages
	if last < 1 {
		last = 1
	}

	var qs strings.Builder
	for _, p := range extra {
		if p.Value == "" {
			continue
		}
		qs.WriteString("&")
		qs.WriteString(url.QueryEscape(p.Key))
		qs.WriteString("=")
		qs.WriteString(url.QueryEscape(p.Value))
	}
	query := qs.String()

	at := func(n int) Link {
		return Link{Href: fmt.Sprintf("%s%s?page=%d&limit=%d%s", base, endpoint, n, limit, query)}
	}

	links := Links{
		"self":  at(page),
		"first": at(1),
		"last":  at(last),
	}
	if page > 1 {
		links["prev"] = at(page - 1)
	}
	if page < totalPages {
		links["next"] = at(page + 1)
	}
	return links
}
