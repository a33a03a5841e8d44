package companieshouse

import "context"

// CorporateOfficerDisqualifications returns the disqualifications of a
// corporate officer.
func (c *Client) CorporateOfficerDisqualifications(ctx context.Context, officerID string) (*Response, error) {
	return c.get(ctx, nil, pathOfficers, pathDisqualificationsCorporate, officerID)
}

// NaturalOfficerDisqualifications returns the disqualifications of a natural
// officer.
func (c *Client) NaturalOfficerDisqualifications(ctx context.Context, officerID string) (*Response, error) {
	return c.get(ctx, nil, pathOfficers, pathDisqualificationsNatural, officerID)
}

// OfficerAppointments lists the appointments of an officer.
func (c *Client) OfficerAppointments(ctx context.Context, officerID string, opts *PageOptions) (*Response, error) {
	return c.get(ctx, opts.values(), pathOfficers, officerID, pathAppointments)
}
