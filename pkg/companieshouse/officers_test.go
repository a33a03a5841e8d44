package companieshouse

import (
	"context"
	"net/http"
	"testing"
)

func TestDisqualificationPaths(t *testing.T) {
	cases := []struct {
		name string
		call func(ctx context.Context, c *Client) (*Response, error)
		path string
	}{
		{
			name: "corporate",
			call: func(ctx context.Context, c *Client) (*Response, error) {
				return c.CorporateOfficerDisqualifications(ctx, "off-1")
			},
			path: "/officers/disqualified-officers/corporate/off-1",
		},
		{
			name: "natural",
			call: func(ctx context.Context, c *Client) (*Response, error) {
				return c.NaturalOfficerDisqualifications(ctx, "off-1")
			},
			path: "/officers/disqualified-officers/natural/off-1",
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
		})
	}
}

func TestOfficerAppointmentsPaging(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, "{}")
	client := newTestClient(t, srv.URL)

	if _, err := client.OfficerAppointments(context.Background(), "off-1", &PageOptions{ItemsPerPage: Int(10), StartIndex: Int(0)}); err != nil {
		t.Fatalf("OfficerAppointments: %v", err)
	}
	if rec.path != "/officers/off-1/appointments" {
		t.Fatalf("unexpected path: %s", rec.path)
	}
	if got := rec.query.Get("items_per_page"); got != "10" {
		t.Fatalf("unexpected items_per_page: %q", got)
	}
	// An explicit zero start index is a real value, not an unset field.
	if got := rec.query.Get("start_index"); got != "0" {
		t.Fatalf("unexpected start_index: %q", got)
	}
}

func TestOfficerAppointmentsNoOptions(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, "{}")
	client := newTestClient(t, srv.URL)

	if _, err := client.OfficerAppointments(context.Background(), "off-1", nil); err != nil {
		t.Fatalf("OfficerAppointments: %v", err)
	}
	if len(rec.query) != 0 {
		t.Fatalf("expected no query params, got %v", rec.query)
	}
}
