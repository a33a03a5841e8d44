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
	fmt.Fprintf(os.Stderr, `usage: chsearch [flags] <kind> <query>

kinds: all, companies, officers, disqualified-officers, alphabetical,
dissolved, advanced (query filters on company_name_includes)

flags:
  -items-per-page N   results per page
  -start-index N      offset of the first result
  -restrictions S     company search restrictions
  -search-type S      dissolved search type (required for dissolved)
  -size N             maximum results for alphabetical/dissolved/advanced
`)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chsearch failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		itemsPerPage = flag.Int("items-per-page", 0, "results per page")
		startIndex   = flag.Int("start-index", -1, "offset of the first result")
		restrictions = flag.String("restrictions", "", "company search restrictions")
		searchType   = flag.String("search-type", "", "dissolved search type")
		size         = flag.Int("size", 0, "maximum results")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 2 {
		usage()
		return fmt.Errorf("a search kind and a query are required")
	}
	kind, q := flag.Arg(0), flag.Arg(1)

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

	// Flags left at their zero sentinel stay off the wire entirely.
	var perPage, start, maxSize *int
	if *itemsPerPage > 0 {
		perPage = itemsPerPage
	}
	if *startIndex >= 0 {
		start = startIndex
	}
	if *size > 0 {
		maxSize = size
	}

	var resp *companieshouse.Response
	switch kind {
	case "all":
		resp, err = client.SearchAll(ctx, q, &companieshouse.PageOptions{ItemsPerPage: perPage, StartIndex: start})
	case "companies":
		opts := &companieshouse.SearchCompaniesOptions{ItemsPerPage: perPage, StartIndex: start}
		if *restrictions != "" {
			opts.Restrictions = restrictions
		}
		resp, err = client.SearchCompanies(ctx, q, opts)
	case "officers":
		resp, err = client.SearchOfficers(ctx, q, &companieshouse.PageOptions{ItemsPerPage: perPage, StartIndex: start})
	case "disqualified-officers":
		resp, err = client.SearchDisqualifiedOfficers(ctx, q, &companieshouse.PageOptions{ItemsPerPage: perPage, StartIndex: start})
	case "alphabetical":
		resp, err = client.SearchCompaniesAlphabetically(ctx, q, &companieshouse.AlphabeticalSearchOptions{Size: maxSize})
	case "dissolved":
		if *searchType == "" {
			return fmt.Errorf("-search-type is required for dissolved search")
		}
		resp, err = client.SearchDissolvedCompanies(ctx, q, *searchType, &companieshouse.DissolvedSearchOptions{Size: maxSize, StartIndex: start})
	case "advanced":
		resp, err = client.AdvancedCompanySearch(ctx, &companieshouse.AdvancedSearchOptions{
			CompanyNameIncludes: &q,
			Size:                maxSize,
			StartIndex:          start,
		})
	default:
		usage()
		return fmt.Errorf("unknown search kind %q", kind)
	}
	if err != nil {
		return err
	}

	log.Infow("companies house response", "status", resp.StatusCode)
	fmt.Printf("%d\n%s\n", resp.StatusCode, resp.Body)
	return nil
}
