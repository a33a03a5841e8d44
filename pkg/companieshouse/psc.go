package companieshouse

import (
	"context"
	"net/url"
)

// PSCListOptions filters the persons-with-significant-control list endpoints.
type PSCListOptions struct {
	// ItemsPerPage is the number of entries to return per page.
	ItemsPerPage *int
	// StartIndex is the index of the first entry to return.
	StartIndex *int
	// RegisterView displays register specific information when true. When the
	// register is held at Companies House, only active PSCs (or those
	// terminated during the election period) are returned, with full dates of
	// birth where available.
	RegisterView *bool
}

func (o *PSCListOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "items_per_page", o.ItemsPerPage)
	setInt(v, "start_index", o.StartIndex)
	setBool(v, "register_view", o.RegisterView)
	return v
}

// PersonsWithSignificantControl lists the persons with significant control of
// a company.
func (c *Client) PersonsWithSignificantControl(ctx context.Context, companyNumber string, opts *PSCListOptions) (*Response, error) {
	return c.get(ctx, opts.values(), pathCompany, companyNumber, pathPSC)
}

// PersonsWithSignificantControlStatements lists the PSC statements of a
// company.
func (c *Client) PersonsWithSignificantControlStatements(ctx context.Context, companyNumber string, opts *PSCListOptions) (*Response, error) {
	return c.get(ctx, opts.values(), pathCompany, companyNumber, pathPSCStatements)
}

// PersonWithSignificantControlStatement returns a single PSC statement of a
// company.
func (c *Client) PersonWithSignificantControlStatement(ctx context.Context, companyNumber, statementID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathPSCStatements, statementID)
}

// SuperSecurePersonWithSignificantControl returns the details of a super
// secure person with significant control. The request path addresses the id
// directly under the PSC collection, without a super-secure segment; kept so
// the wire shape stays stable for existing callers.
func (c *Client) SuperSecurePersonWithSignificantControl(ctx context.Context, companyNumber, superSecureID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathPSC, superSecureID)
}

// SuperSecureBeneficialOwner returns the details of a super secure beneficial
// owner. Addressed directly under the company resource rather than the PSC
// collection; kept for the same wire-stability reason as above.
func (c *Client) SuperSecureBeneficialOwner(ctx context.Context, companyNumber, superSecureID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathSuperSecureBeneficialOwner, superSecureID)
}

// IndividualPersonWithSignificantControl returns the details of an individual
// person with significant control.
func (c *Client) IndividualPersonWithSignificantControl(ctx context.Context, companyNumber, pscID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathPSC, pathIndividual, pscID)
}

// IndividualBeneficialOwner returns the details of an individual beneficial
// owner.
func (c *Client) IndividualBeneficialOwner(ctx context.Context, companyNumber, pscID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathPSC, pathIndividualBeneficialOwner, pscID)
}

// CorporateEntityWithSignificantControl returns the details of a corporate
// entity with significant control.
func (c *Client) CorporateEntityWithSignificantControl(ctx context.Context, companyNumber, pscID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathPSC, pathCorporateEntity, pscID)
}

// CorporateEntityBeneficialOwner returns the details of a corporate entity
// beneficial owner.
func (c *Client) CorporateEntityBeneficialOwner(ctx context.Context, companyNumber, pscID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathPSC, pathCorporateEntityBeneficialOwner, pscID)
}

// LegalPersonWithSignificantControl returns the details of a legal person with
// significant control.
func (c *Client) LegalPersonWithSignificantControl(ctx context.Context, companyNumber, pscID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathPSC, pathLegalPerson, pscID)
}

// LegalPersonBeneficialOwner returns the details of a legal person beneficial
// owner.
func (c *Client) LegalPersonBeneficialOwner(ctx context.Context, companyNumber, pscID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathPSC, pathLegalPersonBeneficialOwner, pscID)
}
