package companieshouse

import (
	"context"
	"net/url"
)

// SearchAll searches companies, officers and disqualified officers at once.
func (c *Client) SearchAll(ctx context.Context, q string, opts *PageOptions) (*Response, error) {
	v := opts.values()
	v.Set("q", q)
	return c.get(ctx, v, pathSearchAll)
}

// SearchCompaniesOptions refines a company search.
type SearchCompaniesOptions struct {
	// ItemsPerPage is the number of search results to return per page.
	ItemsPerPage *int
	// StartIndex is the index of the first result item to return.
	StartIndex *int
	// Restrictions is a space separated set of result restrictions, e.g.
	// "active-companies legally-equivalent-company-name" for a company name
	// availability search.
	Restrictions *string
}

func (o *SearchCompaniesOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "items_per_page", o.ItemsPerPage)
	setInt(v, "start_index", o.StartIndex)
	setString(v, "restrictions", o.Restrictions)
	return v
}

// SearchCompanies searches company information.
func (c *Client) SearchCompanies(ctx context.Context, q string, opts *SearchCompaniesOptions) (*Response, error) {
	v := opts.values()
	v.Set("q", q)
	return c.get(ctx, v, pathSearchCompanies)
}

// SearchOfficers searches officer information.
func (c *Client) SearchOfficers(ctx context.Context, q string, opts *PageOptions) (*Response, error) {
	v := opts.values()
	v.Set("q", q)
	return c.get(ctx, v, pathSearchOfficers)
}

// SearchDisqualifiedOfficers searches disqualified officer information.
func (c *Client) SearchDisqualifiedOfficers(ctx context.Context, q string, opts *PageOptions) (*Response, error) {
	v := opts.values()
	v.Set("q", q)
	return c.get(ctx, v, pathSearchDisqualifiedOfficers)
}

// AlphabeticalSearchOptions pages an alphabetical company search.
type AlphabeticalSearchOptions struct {
	// SearchAbove is the ordered_alpha_key_with_id used for paging upwards.
	SearchAbove *string
	// SearchBelow is the ordered_alpha_key_with_id used for paging downwards.
	SearchBelow *string
	// Size is the maximum number of results to return, in the range 1 to 100.
	Size *int
}

func (o *AlphabeticalSearchOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setString(v, "search_above", o.SearchAbove)
	setString(v, "search_below", o.SearchBelow)
	setInt(v, "size", o.Size)
	return v
}

// SearchCompaniesAlphabetically searches companies ordered by name.
func (c *Client) SearchCompaniesAlphabetically(ctx context.Context, q string, opts *AlphabeticalSearchOptions) (*Response, error) {
	v := opts.values()
	v.Set("q", q)
	return c.get(ctx, v, pathAlphabeticalCompanySearch)
}

// DissolvedSearchOptions refines a dissolved company search.
type DissolvedSearchOptions struct {
	// SearchAbove is the ordered_alpha_key_with_id used for paging upwards.
	SearchAbove *string
	// SearchBelow is the ordered_alpha_key_with_id used for paging downwards.
	SearchBelow *string
	// Size is the maximum number of results to return, in the range 1 to 100.
	Size *int
	// StartIndex applies to the best-match and previous-name-dissolved search types.
	StartIndex *int
}

func (o *DissolvedSearchOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setString(v, "search_above", o.SearchAbove)
	setString(v, "search_below", o.SearchBelow)
	setInt(v, "size", o.Size)
	setInt(v, "start_index", o.StartIndex)
	return v
}

// SearchDissolvedCompanies searches dissolved companies. searchType selects
// the search flavour: alphabetical, best-match or previous-name-dissolved.
func (c *Client) SearchDissolvedCompanies(ctx context.Context, q, searchType string, opts *DissolvedSearchOptions) (*Response, error) {
	v := opts.values()
	v.Set("q", q)
	v.Set("search_type", searchType)
	return c.get(ctx, v, pathDissolvedCompanySearch)
}

// AdvancedSearchOptions is the filter set of the advanced company search.
// Every field is optional; the comma-delimited fields accept multiple values.
type AdvancedSearchOptions struct {
	// CompanyNameIncludes filters by terms the company name must include.
	CompanyNameIncludes *string
	// CompanyNameExcludes filters by terms the company name must exclude.
	CompanyNameExcludes *string
	// CompanyStatus filters by company status, comma delimited.
	CompanyStatus *string
	// CompanySubtype filters by company subtype, comma delimited.
	CompanySubtype *string
	// CompanyType filters by company type, comma delimited.
	CompanyType *string
	// DissolvedFrom filters by dissolved date lower bound.
	DissolvedFrom *string
	// DissolvedTo filters by dissolved date upper bound.
	DissolvedTo *string
	// IncorporatedFrom filters by incorporation date lower bound.
	IncorporatedFrom *string
	// IncorporatedTo filters by incorporation date upper bound.
	IncorporatedTo *string
	// Location filters by company location.
	Location *string
	// SICCodes filters by SIC codes, comma delimited.
	SICCodes *string
	// Size is the maximum number of results to return.
	Size *int
	// StartIndex is the point at which results start from.
	StartIndex *int
}

func (o *AdvancedSearchOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setString(v, "company_name_includes", o.CompanyNameIncludes)
	setString(v, "company_name_excludes", o.CompanyNameExcludes)
	setString(v, "company_status", o.CompanyStatus)
	setString(v, "company_subtype", o.CompanySubtype)
	setString(v, "company_type", o.CompanyType)
	setString(v, "dissolved_from", o.DissolvedFrom)
	setString(v, "dissolved_to", o.DissolvedTo)
	setString(v, "incorporated_from", o.IncorporatedFrom)
	setString(v, "incorporated_to", o.IncorporatedTo)
	setString(v, "location", o.Location)
	setString(v, "sic_codes", o.SICCodes)
	setInt(v, "size", o.Size)
	setInt(v, "start_index", o.StartIndex)
	return v
}

// AdvancedCompanySearch performs a multi-filter company search.
func (c *Client) AdvancedCompanySearch(ctx context.Context, opts *AdvancedSearchOptions) (*Response, error) {
	return c.get(ctx, opts.values(), pathAdvancedCompanySearch)
}
