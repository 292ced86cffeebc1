package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gerai/catalog-api/internal/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// sortableFields lists the product fields exposed for ordering.
var sortableFields = map[string]bool{
	"id":        true,
	"name":      true,
	"code":      true,
	"price":     true,
	"stock":     true,
	"createdAt": true,
	"updatedAt": true,
}

// ProductQuery is the normalized GET /products query. Defaults are applied
// during parsing so the same value set always produces the same cache key.
type ProductQuery struct {
	Page        int
	Limit       int
	Search      string
	SortBy      string
	SortOrder   string
	CategoryIDs []int
	InStock     bool
}

// ParseProductQuery normalizes and validates raw query parameters. Invalid
// tokens inside categoryIds are dropped; out-of-range page/limit and unknown
// sort fields are rejected.
func ParseProductQuery(values url.Values) (*ProductQuery, error) {
	q := &ProductQuery{
		Page:      defaultPage,
		Limit:     defaultLimit,
		Search:    strings.TrimSpace(values.Get("search")),
		SortBy:    "createdAt",
		SortOrder: "DESC",
	}
	fields := map[string]string{}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fields["page"] = "page must be a number of at least 1"
		} else {
			q.Page = page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			fields["limit"] = "limit must be a number of at least 1"
		} else {
			if limit > maxLimit {
				limit = maxLimit
			}
			q.Limit = limit
		}
	}

	if raw := values.Get("sortBy"); raw != "" {
		if !sortableFields[raw] {
			fields["sortBy"] = "invalid sort field"
		} else {
			q.SortBy = raw
		}
	}

	if raw := values.Get("sortOrder"); raw != "" {
		upper := strings.ToUpper(raw)
		if upper != "ASC" && upper != "DESC" {
			fields["sortOrder"] = "sort order must be ASC or DESC"
		} else {
			q.SortOrder = upper
		}
	}

	if raw := values.Get("categoryIds"); raw != "" {
		for _, token := range strings.Split(raw, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if id, err := strconv.Atoi(token); err == nil {
				q.CategoryIDs = append(q.CategoryIDs, id)
			}
		}
	}

	if raw := values.Get("inStock"); raw != "" {
		switch raw {
		case "true":
			q.InStock = true
		case "false":
			q.InStock = false
		}
	}

	if len(fields) > 0 {
		return nil, utils.Validation("Invalid query parameters", fields)
	}
	return q, nil
}

// Offset returns the row offset for the current page.
func (q *ProductQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Params returns the normalized query as a flat map used for cache key
// derivation. The map form lets the cache gateway encode it canonically.
func (q *ProductQuery) Params() map[string]interface{} {
	ids := make([]interface{}, len(q.CategoryIDs))
	for i, id := range q.CategoryIDs {
		ids[i] = id
	}
	return map[string]interface{}{
		"page":        q.Page,
		"limit":       q.Limit,
		"search":      q.Search,
		"sortBy":      q.SortBy,
		"sortOrder":   q.SortOrder,
		"categoryIds": ids,
		"inStock":     q.InStock,
	}
}
