package content

import "strconv"

// ListQuery holds the list filters exposed to tool and CLI callers
type ListQuery struct {
	Search  string
	PerPage int
	Page    int
	OrderBy string
	Order   string
	Extra   map[string]string
}

// Params converts the query to REST parameters. Extra entries are applied
// last and win over the named filters.
func (q ListQuery) Params() map[string]string {
	params := make(map[string]string)
	if q.Search != "" {
		params["search"] = q.Search
	}
	if q.PerPage > 0 {
		params["per_page"] = strconv.Itoa(q.PerPage)
	}
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.OrderBy != "" {
		params["orderby"] = q.OrderBy
	}
	if q.Order != "" {
		params["order"] = q.Order
	}
	for k, v := range q.Extra {
		params[k] = v
	}
	return params
}
