package brewfather

import (
	"net/url"
	"strconv"
	"strings"
)

// OrderByDirection is the sort direction accepted by list endpoints.
type OrderByDirection string

const (
	Ascending  OrderByDirection = "asc"
	Descending OrderByDirection = "desc"
)

// ListQueryParams are the filter, sort and pagination options of a list endpoint.
// Nil or zero fields are not sent.
type ListQueryParams struct {
	InventoryNegative *bool
	Complete          *bool
	InventoryExists   *bool
	Limit             int
	StartAfter        string
	OrderBy           string
	OrderByDirection  OrderByDirection
}

// Encode renders the set options as a query string in a fixed order.
// It returns "" when no option is set. Limit is passed through unchecked.
func (p *ListQueryParams) Encode() string {
	if p == nil {
		return ""
	}

	var params []string
	if p.InventoryNegative != nil {
		params = append(params, "inventory_negative="+strconv.FormatBool(*p.InventoryNegative))
	}
	if p.Complete != nil {
		params = append(params, "complete="+strconv.FormatBool(*p.Complete))
	}
	if p.InventoryExists != nil {
		params = append(params, "inventory_exists="+strconv.FormatBool(*p.InventoryExists))
	}
	if p.Limit != 0 {
		params = append(params, "limit="+strconv.Itoa(p.Limit))
	}
	if p.StartAfter != "" {
		params = append(params, "start_after="+url.QueryEscape(p.StartAfter))
	}
	if p.OrderBy != "" {
		params = append(params, "order_by="+url.QueryEscape(p.OrderBy))
	}
	if p.OrderByDirection != "" {
		params = append(params, "order_by_direction="+string(p.OrderByDirection))
	}

	return strings.Join(params, "&")
}

// clone returns a copy the pagination loop can advance without touching the caller's value.
func (p *ListQueryParams) clone() ListQueryParams {
	if p == nil {
		return ListQueryParams{}
	}
	return *p
}

// Bool returns a pointer to b, for the optional boolean filters.
func Bool(b bool) *bool { return &b }
