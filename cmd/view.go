package main

import (
	"aggregator/internal/composer"
	"aggregator/internal/config"
	"aggregator/pkg/backend"
	"aggregator/pkg/correlation"
	"aggregator/pkg/domain"
	"aggregator/pkg/serrors"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

// viewNames lists the views the view command can compose.
//
//nolint: gochecknoglobals
var viewNames = []string{"candidate", "job", "application", "company", "review", "dashboard", "search"}

// runView composes the named view. The review view is a single record read
// straight from the review service.
func runView(ctx context.Context, c composer.Composer, reviews backend.ReviewService,
	name string, args []string, search domain.JobSearch,
) (any, error) {
	switch name {
	case "dashboard":
		return c.Dashboard(ctx)
	case "search":
		return c.SearchJobs(ctx, search)
	case "review":
		if len(args) == 0 || args[0] == "" {
			return nil, fmt.Errorf("view %q requires an id", name)
		}
		review, err := reviews.Review(ctx, args[0])
		if err != nil {
			return nil, fmt.Errorf("could not fetch review: %w", err)
		}
		if review == nil {
			return nil, serrors.With(serrors.ErrNotFound, "review %s not found", args[0])
		}

		return review, nil
	}
	if !slices.Contains(viewNames, name) {
		return nil, fmt.Errorf("unknown view %q", name)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("view %q requires an id", name)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid id %q", args[0])
	}

	switch name {
	case "candidate":
		return c.CandidateProfile(ctx, id)
	case "job":
		return c.JobDetail(ctx, id)
	case "application":
		return c.ApplicationDetail(ctx, id)
	default:
		return c.CompanyOverview(ctx, id)
	}
}

// viewCommand constructs the 'view' subcommand that composes one view against
// the configured backend services and prints it as JSON.
func viewCommand(cfg *config.Config) *cobra.Command {
	var search domain.JobSearch

	cmd := &cobra.Command{
		Use:       "view <candidate|job|application|company|review|dashboard|search> [id]",
		Short:     "Composes one view and prints it as JSON",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: viewNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HTTP.RequestTimeout)
			defer cancel()
			ctx = correlation.WithID(ctx, correlation.NewID())

			deps := getBackends(cfg)
			res, err := runView(ctx, getComposer(ctx, cfg, deps, nil), deps.Reviews, args[0], args[1:], search)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVar(&search.Title, "title", "", "search: title contains")
	cmd.Flags().StringVar(&search.Location, "location", "", "search: location contains")
	cmd.Flags().IntVar(&search.CategoryID, "category", 0, "search: category id")
	cmd.Flags().BoolVar(&search.ActiveOnly, "active", false, "search: active postings only")
	cmd.Flags().IntVar(&search.Page, "page", 1, "search: page number")
	cmd.Flags().IntVar(&search.PageSize, "page-size", 10, "search: page size")

	return cmd
}
