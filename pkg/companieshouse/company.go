package companieshouse

import (
	"context"
	"net/url"
)

// CompanyProfile returns the basic information for the given company number.
func (c *Client) CompanyProfile(ctx context.Context, companyNumber string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber)
}

// CompanyRegisters returns the register information held for a company.
func (c *Client) CompanyRegisters(ctx context.Context, companyNumber string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathRegisters)
}

// CompanyCharges lists the charges registered against a company.
func (c *Client) CompanyCharges(ctx context.Context, companyNumber string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathCharges)
}

// CompanyCharge returns a single charge for a company.
//
// TODO: the documented endpoint shape is company/{number}/charges/{charge_id};
// the duplicated company number segment below is kept until existing callers
// confirm the remote accepts the corrected path.
func (c *Client) CompanyCharge(ctx context.Context, companyNumber, chargeID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, companyNumber, pathCharges, chargeID)
}

// FilingHistoryOptions filters the filing history list of a company.
type FilingHistoryOptions struct {
	// Category is one or more comma-separated categories to filter by (inclusive).
	Category *string
	// ItemsPerPage is the number of filing history items to return per page.
	ItemsPerPage *int
	// StartIndex is the index into the entire result set that this page starts.
	StartIndex *int
}

func (o *FilingHistoryOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setString(v, "category", o.Category)
	setInt(v, "items_per_page", o.ItemsPerPage)
	setInt(v, "start_index", o.StartIndex)
	return v
}

// CompanyFilingHistory returns the filing history list of a company.
func (c *Client) CompanyFilingHistory(ctx context.Context, companyNumber string, opts *FilingHistoryOptions) (*Response, error) {
	return c.get(ctx, opts.values(), pathCompany, companyNumber, pathFilingHistory)
}

// CompanyFilingHistoryItem returns a single filing history item of a company.
func (c *Client) CompanyFilingHistoryItem(ctx context.Context, companyNumber, transactionID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathFilingHistory, transactionID)
}

// CompanyInsolvency returns the insolvency information of a company.
func (c *Client) CompanyInsolvency(ctx context.Context, companyNumber string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathInsolvency)
}

// CompanyExemptions returns the exemptions information of a company.
func (c *Client) CompanyExemptions(ctx context.Context, companyNumber string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathExemptions)
}

// CompanyUKEstablishments lists the UK establishments of a company.
func (c *Client) CompanyUKEstablishments(ctx context.Context, companyNumber string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathUKEstablishments)
}

// CompanyOfficersOptions filters the officer list of a company. Values are
// forwarded verbatim; out-of-range or unknown values surface as remote errors.
type CompanyOfficersOptions struct {
	// ItemsPerPage is the number of officers to return per page.
	ItemsPerPage *int
	// RegisterType selects which officer type the registers view returns:
	// directors, secretaries or llp-members. Only honoured by the remote when
	// RegisterView is true.
	RegisterType *string
	// RegisterView displays register specific information when true.
	RegisterView *bool
	// StartIndex is the offset into the entire result set that this page starts.
	StartIndex *int
	// OrderBy orders the result set: appointed_on, resigned_on or surname.
	OrderBy *string
}

func (o *CompanyOfficersOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	setInt(v, "items_per_page", o.ItemsPerPage)
	setString(v, "register_type", o.RegisterType)
	setBool(v, "register_view", o.RegisterView)
	setInt(v, "start_index", o.StartIndex)
	setString(v, "order_by", o.OrderBy)
	return v
}

// CompanyOfficers lists the officers of a company.
func (c *Client) CompanyOfficers(ctx context.Context, companyNumber string, opts *CompanyOfficersOptions) (*Response, error) {
	return c.get(ctx, opts.values(), pathCompany, companyNumber, pathOfficers)
}

// CompanyOfficerAppointment returns a single officer appointment of a company.
func (c *Client) CompanyOfficerAppointment(ctx context.Context, companyNumber, officerID, appointmentID string) (*Response, error) {
	return c.get(ctx, nil, pathCompany, companyNumber, pathOfficers, officerID, pathAppointments, appointmentID)
}
