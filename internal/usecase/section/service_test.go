package section_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propellus-site/internal/infra/cms"
	"propellus-site/internal/normalize"
	"propellus-site/internal/usecase/section"
)

/* ───────── stub repository ───────── */

type stubRepo struct {
	body     []byte
	err      error
	calls    int
	resource string
	query    string
	deadline bool
}

func (s *stubRepo) Get(ctx context.Context, resource, query string) ([]byte, error) {
	s.calls++
	s.resource = resource
	s.query = query
	_, s.deadline = ctx.Deadline()
	return s.body, s.err
}

func newService(repo *stubRepo) *section.Service {
	return &section.Service{
		Repo:       repo,
		Normalizer: normalize.New(normalize.NewMediaResolver("http://cms.test")),
		Catalog:    section.DefaultCatalog(),
	}
}

const visionDoc = `{"data":{"id":1,"vision_section":[{"title":"Our vision","image":{"url":"/uploads/v.png"}}]}}`

func TestService_Get_NormalizesSection(t *testing.T) {
	repo := &stubRepo{body: []byte(visionDoc)}
	svc := newService(repo)

	sec, err := svc.Get(context.Background(), normalize.SectionVision)
	require.NoError(t, err)
	require.NotNil(t, sec)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, section.ResourceAbout, repo.resource)
	assert.Equal(t, "populate[vision_section][populate]=*", repo.query)
	require.Len(t, sec.Items, 1)
	assert.Equal(t, "http://cms.test/uploads/v.png", sec.Items[0].Media[0].URL)
}

func TestService_Get_EveryCallReadsUpstream(t *testing.T) {
	repo := &stubRepo{body: []byte(visionDoc)}
	svc := newService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.Get(context.Background(), normalize.SectionVision)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, repo.calls)
}

func TestService_Get_EmptyCollectionIsNoContent(t *testing.T) {
	repo := &stubRepo{body: []byte(`{"data":[],"meta":{}}`)}
	svc := newService(repo)

	sec, err := svc.Get(context.Background(), normalize.SectionLandingHero)
	assert.NoError(t, err)
	assert.Nil(t, sec)
}

func TestService_Get_MalformedBodyIsNoContent(t *testing.T) {
	repo := &stubRepo{body: []byte(`<html>not json</html>`)}
	svc := newService(repo)

	sec, err := svc.Get(context.Background(), normalize.SectionTerms)
	assert.NoError(t, err)
	assert.Nil(t, sec)
}

func TestService_Get_UpstreamErrorIsWrapped(t *testing.T) {
	upstream := &cms.StatusError{Code: 503, Status: "503 Service Unavailable", Body: "down"}
	repo := &stubRepo{err: upstream}
	svc := newService(repo)

	sec, err := svc.Get(context.Background(), normalize.SectionOTAFeatures)
	require.Error(t, err)
	assert.Nil(t, sec)

	se, ok := cms.AsStatusError(err)
	require.True(t, ok)
	assert.Equal(t, 503, se.Code)
	assert.Contains(t, err.Error(), "ota-features")
}

func TestService_Get_UnknownSection(t *testing.T) {
	repo := &stubRepo{}
	svc := newService(repo)

	_, err := svc.Get(context.Background(), "pricing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, section.ErrUnknownSection))
	assert.Zero(t, repo.calls)
}

func TestService_Get_EndpointTimeoutSetsDeadline(t *testing.T) {
	repo := &stubRepo{body: []byte(`{"data":{}}`)}
	svc := newService(repo)

	_, err := svc.Get(context.Background(), normalize.SectionOTAFairSection)
	require.NoError(t, err)
	assert.True(t, repo.deadline)

	_, err = svc.Get(context.Background(), normalize.SectionOTAVisaAPI)
	require.NoError(t, err)
	assert.False(t, repo.deadline)
}

/* ───────── catalog ───────── */

func TestDefaultCatalog_CoversEverySection(t *testing.T) {
	c := section.DefaultCatalog()
	assert.Equal(t, 36, c.Len())

	seenAliases := map[string]string{}
	for _, ep := range c.Endpoints() {
		assert.NotEmpty(t, ep.Name)
		assert.True(t, strings.HasPrefix(ep.Resource, "/api/"), ep.Name)
		assert.NotEmpty(t, ep.Query, ep.Name)
		assert.NotNil(t, ep.Normalize, ep.Name)
		for _, alias := range ep.Aliases {
			prev, dup := seenAliases[alias]
			assert.False(t, dup, "alias %s used by %s and %s", alias, prev, ep.Name)
			seenAliases[alias] = ep.Name
		}
	}
}

func TestCatalog_LookupAndOrder(t *testing.T) {
	c := section.NewCatalog(
		section.Endpoint{Name: "b", Resource: "/api/b"},
		section.Endpoint{Name: "a", Resource: "/api/a"},
		section.Endpoint{Name: "b", Resource: "/api/b2", Timeout: time.Second},
	)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a", "b"}, c.Names())

	eps := c.Endpoints()
	require.Len(t, eps, 2)
	assert.Equal(t, "b", eps[0].Name)
	assert.Equal(t, "/api/b2", eps[0].Resource)

	_, ok := c.Lookup("missing")
	assert.False(t, ok)
}
