package pagination

import (
	"fmt"
	"strconv"

	"social-network/core/apierror"
	"social-network/core/hateoas"

	"github.com/gofiber/fiber/v2"
)

// Sort orders.
const (
	Asc  = "asc"
	Desc = "desc"
)

// Params is a validated page request.
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Offset returns the number of items to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Descending reports whether the sort order is descending.
func (p Params) Descending() bool {
	return p.SortOrder != Asc
}

// Options describes what a list endpoint accepts.
type Options struct {
	DefaultLimit int
	MaxLimit     int
	// SortFields lists accepted sort_by values, the first one is the default.
	SortFields []string
}

// FromQuery parses page, limit, sort_by and sort_order from the request.
func FromQuery(c *fiber.Ctx, opts Options) (Params, error) {
	p := Params{Page: 1, Limit: opts.DefaultLimit, SortOrder: Desc}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if len(opts.SortFields) > 0 {
		p.SortBy = opts.SortFields[0]
	}

	var details []apierror.ParamDetail

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			details = append(details, apierror.ParamDetail{
				Param: "page", Value: raw, Issue: "Input should be greater than or equal to 1", ExpectedFormat: "integer >= 1",
			})
		} else {
			p.Page = n
		}
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || (opts.MaxLimit > 0 && n > opts.MaxLimit) {
			details = append(details, apierror.ParamDetail{
				Param: "limit", Value: raw, Issue: fmt.Sprintf("Input should be between 1 and %d", opts.MaxLimit), ExpectedFormat: "integer",
			})
		} else {
			p.Limit = n
		}
	}

	if raw := c.Query("sort_by"); raw != "" {
		if !contains(opts.SortFields, raw) {
			details = append(details, apierror.ParamDetail{
				Param: "sort_by", Value: raw, Issue: fmt.Sprintf("Input should be one of %q", opts.SortFields),
			})
		} else {
			p.SortBy = raw
		}
	}

	if raw := c.Query("sort_order"); raw != "" {
		if raw != Asc && raw != Desc {
			details = append(details, apierror.ParamDetail{
				Param: "sort_order", Value: raw, Issue: "Input should be 'asc' or 'desc'",
			})
		} else {
			p.SortOrder = raw
		}
	}

	if len(details) > 0 {
		return Params{}, apierror.ParamsNotValid(details...)
	}
	return p, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Response is the paginated list envelope.
type Response[T any] struct {
	Data  []T           `json:"data"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Links hateoas.Links `json:"_links"`
}

// Send writes a page with links and the X-Total-Count, X-Page and X-Limit headers.
func Send[T any](c *fiber.Ctx, endpoint string, p Params, items []T, total int64, extra ...hateoas.Param) error {
	if items == nil {
		items = []T{}
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	c.Set("X-Page", strconv.Itoa(p.Page))
	c.Set("X-Limit", strconv.Itoa(p.Limit))

	params := append([]hateoas.Param{
		{Key: "sort_by", Value: p.SortBy},
		{Key: "sort_order", Value: p.SortOrder},
	}, extra...)

	return c.JSON(Response[T]{
		Data:  items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Links: hateoas.Pagination(hateoas.BaseURL(c), endpoint, p.Page, p.Limit, total, params...),
	})
}
