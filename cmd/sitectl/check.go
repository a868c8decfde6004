package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"propellus-site/internal/domain/entity"
	sectionUC "propellus-site/internal/usecase/section"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkResult is one row of the check report.
type checkResult struct {
	name     string
	resource string
	status   string
	detail   string
	took     time.Duration
	failed   bool
}

func newCheckCmd(opts *options) *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fetch and normalize every section and report its status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := opts.build()
			if err != nil {
				return err
			}
			results := runChecks(cmd.Context(), site.Sections, parallel)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SECTION\tRESOURCE\tSTATUS\tTOOK\tDETAIL")
			failed := 0
			for _, r := range results {
				if r.failed {
					failed++
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.name, r.resource, r.status, r.took.Round(time.Millisecond), r.detail)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d sections failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 4, "concurrent section reads")
	return cmd
}

// runChecks reads every catalog section and returns results in catalog order.
func runChecks(ctx context.Context, svc *sectionUC.Service, parallel int) []checkResult {
	endpoints := svc.Catalog.Endpoints()
	results := make([]checkResult, len(endpoints))

	var g errgroup.Group
	g.SetLimit(max(parallel, 1))
	for i, ep := range endpoints {
		g.Go(func() error {
			start := time.Now()
			sec, err := svc.Get(ctx, ep.Name)
			results[i] = describe(ep, sec, err, time.Since(start))
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func describe(ep sectionUC.Endpoint, sec *entity.Section, err error, took time.Duration) checkResult {
	r := checkResult{name: ep.Name, resource: ep.Resource, took: took}
	switch {
	case err != nil:
		r.status, r.detail, r.failed = "error", err.Error(), true
	case sec == nil:
		r.status, r.detail = "empty", "no content"
	default:
		r.status = "ok"
		r.detail = fmt.Sprintf("items=%d slides=%d media=%d", len(sec.Items), len(sec.Slides), len(sec.Media))
	}
	return r
}
