package normalize

import (
	"strconv"

	"github.com/tidwall/gjson"

	"propellus-site/internal/domain/entity"
)

// Normalizer maps CMS documents onto sections, resolving media against one
// content host.
type Normalizer struct {
	media MediaResolver
}

// New returns a Normalizer that resolves media with r.
func New(r MediaResolver) Normalizer {
	return Normalizer{media: r}
}

// Media exposes the resolver used by n.
func (n Normalizer) Media() MediaResolver {
	return n.media
}

// Func normalizes one document. A nil section means the document carried no
// entry for it.
type Func func(n Normalizer, doc Doc) *entity.Section

// Section names, as exposed under /api/sections/{name}.
const (
	SectionAboutIntro         = "about-intro"
	SectionMission            = "mission"
	SectionVision             = "vision"
	SectionPropellusValues    = "propellus-values"
	SectionValueSlides        = "value-slides"
	SectionRoadmapSlides      = "roadmap-slides"
	SectionMeetTheTeam        = "meet-the-team"
	SectionTeamAndAdvisors    = "team-and-advisors"
	SectionAboutLogos         = "about-logos"
	SectionLandingHero        = "landing-hero"
	SectionTravelAgentsTeaser = "travel-agents-teaser"
	SectionOTAsTeaser         = "otas-teaser"
	SectionTestimonials       = "testimonials"
	SectionVisaSection        = "visa-section"
	SectionTravellers         = "travellers"
	SectionTAHero             = "ta-hero"
	SectionTAVisaProcess      = "ta-visa-process"
	SectionTAProblem          = "ta-problem"
	SectionTASolution         = "ta-solution"
	SectionTABenefits         = "ta-benefits"
	SectionTAFeatures         = "ta-features"
	SectionTAVisaApp          = "ta-visa-application"
	SectionTALove             = "ta-love"
	SectionInvestorsHero      = "investors-hero"
	SectionInvestorsApproach  = "investors-approach"
	SectionInvestorsHeadings  = "investors-headings"
	SectionInvestors          = "investors"
	SectionInvestorsForm      = "investors-form"
	SectionOTAHero            = "ota-hero"
	SectionOTAFeatures        = "ota-features"
	SectionOTAMetrics         = "ota-metrics"
	SectionOTAVisaIntegration = "ota-visa-integration"
	SectionOTAVisaAPI         = "ota-visa-api"
	SectionOTAFairSection     = "ota-fair-section"
	SectionOTAContactLogos    = "ota-contact-logos"
	SectionTerms              = "terms"
)

// entryComponent resolves the component at path inside the document's
// primary entry.
func entryComponent(doc Doc, path string) (gjson.Result, bool) {
	entry, ok := doc.Entry()
	if !ok {
		return gjson.Result{}, false
	}
	return component(entry, path)
}

// textBlock fills the common heading/body/summary/bullets quartet from the
// given fields of v.
func textBlock(s *entity.Section, v gjson.Result, headingPath, bodyPath string) {
	if headingPath != "" {
		s.Heading = richText(v, headingPath)
	}
	if bodyPath != "" {
		s.Body = richText(v, bodyPath)
		s.Summary = s.Body.PlainText()
		s.Bullets = s.Body.Bullets()
	}
}

// numbered collects the headingN/descriptionN triples some components use
// instead of a repeatable list.
func numbered(v gjson.Result, name, titleKey, bodyKey string, count int) []entity.Section {
	items := []entity.Section{}
	for i := 1; i <= count; i++ {
		suffix := strconv.Itoa(i)
		item := entity.NewSection(name)
		item.Title = str(v, titleKey+suffix)
		item.Body = richText(v, bodyKey+suffix)
		item.Summary = item.Body.PlainText()
		if item.Title == "" && item.Summary == "" {
			continue
		}
		items = append(items, *item)
	}
	return items
}

// attach appends the media at path below v to s, when present.
func (n Normalizer) attach(s *entity.Section, v gjson.Result, path, format, altFallback string) {
	if ref, ok := n.media.Media(v, path, format, altFallback); ok {
		s.Media = append(s.Media, ref)
	}
}
