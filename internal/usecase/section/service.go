package section

import (
	"context"
	"fmt"

	"propellus-site/internal/domain/entity"
	"propellus-site/internal/normalize"
	"propellus-site/internal/observability/metrics"
	"propellus-site/internal/observability/slo"
	"propellus-site/internal/repository"
)

// Service provides the section read use case.
type Service struct {
	Repo       repository.ContentRepository
	Normalizer normalize.Normalizer
	Catalog    Catalog
}

// Get reads and normalizes the named section.
//
// A nil section with a nil error means the upstream document carried no
// content for it. Upstream failures are returned wrapped; the section is
// never partially returned alongside an error.
func (s *Service) Get(ctx context.Context, name string) (*entity.Section, error) {
	ep, ok := s.Catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}

	if ep.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, ep.Timeout,
			fmt.Errorf("section %s read budget of %v elapsed", name, ep.Timeout))
		defer cancel()
	}

	raw, err := s.Repo.Get(ctx, ep.Resource, ep.Query)
	if err != nil {
		metrics.RecordSectionRequest(name, "error")
		slo.Record(true)
		return nil, fmt.Errorf("read section %s: %w", name, err)
	}

	sec := ep.Normalize(s.Normalizer, normalize.Parse(raw))
	if sec == nil {
		metrics.RecordSectionRequest(name, "empty")
		slo.Record(false)
		return nil, nil
	}

	metrics.RecordSectionRequest(name, "ok")
	slo.Record(false)
	return sec, nil
}
