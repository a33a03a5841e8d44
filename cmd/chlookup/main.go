package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/regsense/companieshouse-go/internal/config"
	"github.com/regsense/companieshouse-go/internal/logger"
	"github.com/regsense/companieshouse-go/pkg/companieshouse"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: chlookup <resource> <identifier...>

resources:
  profile <company-number>
  registers <company-number>
  charges <company-number>
  charge <company-number> <charge-id>
  filing-history <company-number>
  filing <company-number> <transaction-id>
  insolvency <company-number>
  exemptions <company-number>
  uk-establishments <company-number>
  officers <company-number>
  appointment <company-number> <officer-id> <appointment-id>
  officer-appointments <officer-id>
  disqualifications-corporate <officer-id>
  disqualifications-natural <officer-id>
  psc <company-number>
  psc-statements <company-number>
`)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chlookup failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 2 {
		usage()
		return fmt.Errorf("a resource and an identifier are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := companieshouse.New(companieshouse.Config{
		Host:    cfg.Host,
		APIKey:  cfg.APIKey,
		Timeout: cfg.RequestTimeout,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}

	resp, err := lookup(ctx, client, flag.Args())
	if err != nil {
		return err
	}

	log.Infow("companies house response", "status", resp.StatusCode)
	fmt.Printf("%d\n%s\n", resp.StatusCode, resp.Body)
	return nil
}

func lookup(ctx context.Context, client *companieshouse.Client, args []string) (*companieshouse.Response, error) {
	resource, id := args[0], args[1]

	need := func(n int) error {
		if len(args) < n {
			usage()
			return fmt.Errorf("resource %q needs %d identifiers", resource, n-1)
		}
		return nil
	}

	switch resource {
	case "profile":
		return client.CompanyProfile(ctx, id)
	case "registers":
		return client.CompanyRegisters(ctx, id)
	case "charges":
		return client.CompanyCharges(ctx, id)
	case "charge":
		if err := need(3); err != nil {
			return nil, err
		}
		return client.CompanyCharge(ctx, id, args[2])
	case "filing-history":
		return client.CompanyFilingHistory(ctx, id, nil)
	case "filing":
		if err := need(3); err != nil {
			return nil, err
		}
		return client.CompanyFilingHistoryItem(ctx, id, args[2])
	case "insolvency":
		return client.CompanyInsolvency(ctx, id)
	case "exemptions":
		return client.CompanyExemptions(ctx, id)
	case "uk-establishments":
		return client.CompanyUKEstablishments(ctx, id)
	case "officers":
		return client.CompanyOfficers(ctx, id, nil)
	case "appointment":
		if err := need(4); err != nil {
			return nil, err
		}
		return client.CompanyOfficerAppointment(ctx, id, args[2], args[3])
	case "officer-appointments":
		return client.OfficerAppointments(ctx, id, nil)
	case "disqualifications-corporate":
		return client.CorporateOfficerDisqualifications(ctx, id)
	case "disqualifications-natural":
		return client.NaturalOfficerDisqualifications(ctx, id)
	case "psc":
		return client.PersonsWithSignificantControl(ctx, id, nil)
	case "psc-statements":
		return client.PersonsWithSignificantControlStatements(ctx, id, nil)
	default:
		usage()
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
}
