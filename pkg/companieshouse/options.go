package companieshouse

import (
	"net/url"
	"strconv"
)

// String returns a pointer to v, for optional request parameters.
func String(v string) *string { return &v }

// Int returns a pointer to v, for optional request parameters.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional request parameters.
func Bool(v bool) *bool { return &v }

// setString, setInt and setBool attach a query value only when the field is
// set; nil fields never reach the wire, not even as empty values.
func setString(v url.Values, key string, p *string) {
	if p != nil {
		v.Set(key, *p)
	}
}

func setInt(v url.Values, key string, p *int) {
	if p != nil {
		v.Set(key, strconv.Itoa(*p))
	}
}

func setBool(v url.Values, key string, p *bool) {
	if p != nil {
		v.Set(key, strconv.FormatBool(*p))
	}
}

// PageOptions is the paging knob pair shared by several list and search
// endpoints.
type PageOptions struct {
	// ItemsPerPage is the number of results to return per page.
	ItemsPerPage *int
	// StartIndex is the offset into the entire result set that this page starts.
	StartIndex *int
}

func (o *PageOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "items_per_page", o.ItemsPerPage)
	setInt(v, "start_index", o.StartIndex)
	return v
}
