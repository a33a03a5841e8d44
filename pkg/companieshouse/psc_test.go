package companieshouse

import (
	"context"
	"net/http"
	"testing"
)

func TestPSCListRegisterView(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, "{}")
	client := newTestClient(t, srv.URL)

	opts := &PSCListOptions{ItemsPerPage: Int(25), RegisterView: Bool(true)}
	if _, err := client.PersonsWithSignificantControl(context.Background(), "11799251", opts); err != nil {
		t.Fatalf("PersonsWithSignificantControl: %v", err)
	}
	if rec.path != "/company/11799251/persons-with-significant-control" {
		t.Fatalf("unexpected path: %s", rec.path)
	}
	if got := rec.query.Get("register_view"); got != "true" {
		t.Fatalf("unexpected register_view: %q", got)
	}
	if got := rec.query.Get("items_per_page"); got != "25" {
		t.Fatalf("unexpected items_per_page: %q", got)
	}
	if _, ok := rec.query["start_index"]; ok {
		t.Fatalf("expected start_index to be absent, query: %v", rec.query)
	}
}

func TestPSCStatementsPaths(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, "{}")
	client := newTestClient(t, srv.URL)

	if _, err := client.PersonsWithSignificantControlStatements(context.Background(), "11799251", nil); err != nil {
		t.Fatalf("PersonsWithSignificantControlStatements: %v", err)
	}
	if rec.path != "/company/11799251/persons-with-significant-control-statements" {
		t.Fatalf("unexpected path: %s", rec.path)
	}

	if _, err := client.PersonWithSignificantControlStatement(context.Background(), "11799251", "stmt-1"); err != nil {
		t.Fatalf("PersonWithSignificantControlStatement: %v", err)
	}
	if rec.path != "/company/11799251/persons-with-significant-control-statements/stmt-1" {
		t.Fatalf("unexpected path: %s", rec.path)
	}
}

func TestPSCVariantPaths(t *testing.T) {
	cases := []struct {
		name string
		call func(ctx context.Context, c *Client) (*Response, error)
		path string
	}{
		{
			name: "individual",
			call: func(ctx context.Context, c *Client) (*Response, error) {
				return c.IndividualPersonWithSignificantControl(ctx, "11799251", "psc-1")
			},
			path: "/company/11799251/persons-with-significant-control/individual/psc-1",
		},
		{
			name: "individual beneficial owner",
			call: func(ctx context.Context, c *Client) (*Response, error) {
				return c.IndividualBeneficialOwner(ctx, "11799251", "psc-1")
			},
			path: "/company/11799251/persons-with-significant-control/individual-beneficial-owner/psc-1",
		},
		{
			name: "corporate entity",
			call: func(ctx context.Context, c *Client) (*Response, error) {
				return c.CorporateEntityWithSignificantControl(ctx, "11799251", "psc-1")
			},
			path: "/company/11799251/persons-with-significant-control/corporate-entity/psc-1",
		},
		{
			name: "corporate entity beneficial owner",
			call: func(ctx context.Context, c *Client) (*Response, error) {
				return c.CorporateEntityBeneficialOwner(ctx, "11799251", "psc-1")
			},
			path: "/company/11799251/persons-with-significant-control/corporate-entity-beneficial-owner/psc-1",
		},
		{
			name: "legal person",
			call: func(ctx context.Context, c *Client) (*Response, error) {
				return c.LegalPersonWithSignificantControl(ctx, "11799251", "psc-1")
			},
			path: "/company/11799251/persons-with-significant-control/legal-person/psc-1",
		},
		{
			name: "legal person beneficial owner",
			call: func(ctx context.Context, c *Client) (*Response, error) {
				return c.LegalPersonBeneficialOwner(ctx, "11799251", "psc-1")
			},
			path: "/company/11799251/persons-with-significant-control/legal-person-beneficial-owner/psc-1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, rec := newRecordingServer(t, http.StatusOK, "{}")
			client := newTestClient(t, srv.URL)

			if _, err := tc.call(context.Background(), client); err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if rec.path != tc.path {
				t.Fatalf("expected path %s, got %s", tc.path, rec.path)
			}
			if len(rec.query) != 0 {
				t.Fatalf("expected no query params, got %v", rec.query)
			}
		})
	}
}

// Characterizes the super secure lookups: the PSC detail addresses the id
// directly under the collection (no super-secure segment) and the beneficial
// owner variant sits directly under the company resource.
func TestSuperSecurePaths(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, "{}")
	client := newTestClient(t, srv.URL)

	if _, err := client.SuperSecurePersonWithSignificantControl(context.Background(), "11799251", "ss-1"); err != nil {
		t.Fatalf("SuperSecurePersonWithSignificantControl: %v", err)
	}
	if rec.path != "/company/11799251/persons-with-significant-control/ss-1" {
		t.Fatalf("unexpected path: %s", rec.path)
	}

	if _, err := client.SuperSecureBeneficialOwner(context.Background(), "11799251", "ss-1"); err != nil {
		t.Fatalf("SuperSecureBeneficialOwner: %v", err)
	}
	if rec.path != "/company/11799251/super-secure-beneficial-owner/ss-1" {
		t.Fatalf("unexpected path: %s", rec.path)
	}
}
