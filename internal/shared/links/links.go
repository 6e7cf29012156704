// Package links builds HATEOAS links. Everything here is a pure
// function of the current request's parameters and pagination facts;
// nothing touches persistence.
package links

import (
	"net/url"
	"strconv"
)

// Link describes one valid next action on a resource.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

func New(href, rel, method string) Link {
	return Link{Href: href, Rel: rel, Method: method}
}

// Relation names used across resources.
const (
	RelSelf         = "self"
	RelNextPage     = "nextPage"
	RelPreviousPage = "previousPage"
)

// PageQuery captures the query parameters that identify one page of a
// collection resource. Params carries the non-navigation parameters
// (fields, orderBy, filters); page number and size are kept apart so
// neighbouring pages can be addressed.
type PageQuery struct {
	Path       string
	Params     url.Values
	PageNumber int
	PageSize   int
}

// URI serializes the query for the given page number. url.Values
// encodes keys in sorted order, so hrefs are deterministic.
func (q PageQuery) URI(pageNumber int) string {
	values := url.Values{}
	for k, vs := range q.Params {
		for _, v := range vs {
			if v != "" {
				values.Add(k, v)
			}
		}
	}
	values.Set("pageNumber", strconv.Itoa(pageNumber))
	values.Set("pageSize", strconv.Itoa(q.PageSize))
	return q.Path + "?" + values.Encode()
}

// Collection builds the link list for a collection page: self always,
// nextPage/previousPage only when the paging flags allow them.
func Collection(q PageQuery, hasPrevious, hasNext bool) []Link {
	out := []Link{New(q.URI(q.PageNumber), RelSelf, "GET")}
	if hasNext {
		out = append(out, New(q.URI(q.PageNumber+1), RelNextPage, "GET"))
	}
	if hasPrevious {
		out = append(out, New(q.URI(q.PageNumber-1), RelPreviousPage, "GET"))
	}
	return out
}
