package section

import (
	"sort"
	"time"

	"propellus-site/internal/normalize"
)

// Endpoint binds one page section to one fixed upstream read and one
// normalizer.
type Endpoint struct {
	// Name is the section name served under /api/sections/{name}.
	Name string

	// Resource is the content repository path, e.g. "/api/about-us".
	Resource string

	// Query is the fixed populate query sent with every read.
	Query string

	// Normalize maps the upstream document onto the section.
	Normalize normalize.Func

	// Aliases are additional same-origin paths serving this section.
	Aliases []string

	// Timeout overrides the client timeout for this endpoint when non-zero.
	Timeout time.Duration
}

// Catalog indexes endpoints by section name.
type Catalog struct {
	byName map[string]Endpoint
	order  []string
}

// NewCatalog builds a catalog. Later endpoints replace earlier ones with the
// same name.
func NewCatalog(endpoints ...Endpoint) Catalog {
	c := Catalog{byName: make(map[string]Endpoint, len(endpoints))}
	for _, ep := range endpoints {
		if _, exists := c.byName[ep.Name]; !exists {
			c.order = append(c.order, ep.Name)
		}
		c.byName[ep.Name] = ep
	}
	return c
}

// Lookup returns the endpoint for name.
func (c Catalog) Lookup(name string) (Endpoint, bool) {
	ep, ok := c.byName[name]
	return ep, ok
}

// Endpoints returns the endpoints in registration order.
func (c Catalog) Endpoints() []Endpoint {
	out := make([]Endpoint, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Names returns the section names sorted alphabetically.
func (c Catalog) Names() []string {
	names := append([]string(nil), c.order...)
	sort.Strings(names)
	return names
}

// Len returns the number of endpoints.
func (c Catalog) Len() int {
	return len(c.order)
}

// Upstream resources.
const (
	ResourceAbout        = "/api/about-us"
	ResourceLanding      = "/api/landing-pages"
	ResourceTravelAgents = "/api/travelagents"
	ResourceInvestors    = "/api/investors"
	ResourceOTA          = "/api/ota"
	ResourceTerms        = "/api/terms-of-services"
)

const (
	landingQuery = "populate[grow][populate]=*&populate[otas][populate]=*&populate[travllerslove][populate]=*" +
		"&populate[herosection][populate]=*&populate[visasection][populate]=*&populate[travellers][populate]=*"

	travelAgentsQuery = "populate[hero][populate]=*&populate[visaprocess][populate]=*" +
		"&populate[travelagentproblem][populate]=*&populate[solution][populate]=*&populate[benefits][populate]=*" +
		"&populate[heading]=true&populate[featureSeaction]=true&populate[visaApplication][populate]=*" +
		"&populate[travelagentlove][populate]=*"

	investorsQuery = "populate[investorsHero][populate]=*&populate[approach][populate]=*" +
		"&populate[investorsheading][populate]=*&populate[investor][populate]=*&populate[form][populate]=*"
)

// DefaultCatalog returns every section of the site with the populate query
// each one needs.
func DefaultCatalog() Catalog {
	return NewCatalog(
		// About
		Endpoint{
			Name:      normalize.SectionAboutIntro,
			Resource:  ResourceAbout,
			Query:     "populate[aboutUs_Image]=true",
			Normalize: normalize.Normalizer.AboutIntro,
			Aliases:   []string{"/api/aboutUs"},
		},
		Endpoint{
			Name:      normalize.SectionMission,
			Resource:  ResourceAbout,
			Query:     "populate[mission_section][populate]=*",
			Normalize: normalize.Normalizer.Mission,
			Aliases:   []string{"/api/aboutUs/mission"},
		},
		Endpoint{
			Name:      normalize.SectionVision,
			Resource:  ResourceAbout,
			Query:     "populate[vision_section][populate]=*",
			Normalize: normalize.Normalizer.Vision,
			Aliases:   []string{"/api/aboutUs/vision"},
		},
		Endpoint{
			Name:      normalize.SectionPropellusValues,
			Resource:  ResourceAbout,
			Query:     "populate[creatingPropellusValues][populate]=*",
			Normalize: normalize.Normalizer.PropellusValues,
			Aliases:   []string{"/api/aboutUs/propellusValues"},
		},
		Endpoint{
			Name:      normalize.SectionValueSlides,
			Resource:  ResourceAbout,
			Query:     "populate[value][populate][value_slides][populate]=*",
			Normalize: normalize.Normalizer.ValueSlides,
			Aliases:   []string{"/api/aboutUs/valueSlides"},
		},
		Endpoint{
			Name:      normalize.SectionRoadmapSlides,
			Resource:  ResourceAbout,
			Query:     "populate[roadmap][populate][roadmap_slides][populate]=*",
			Normalize: normalize.Normalizer.RoadmapSlides,
			Aliases:   []string{"/api/aboutUs/roadmapSlides"},
		},
		Endpoint{
			Name:      normalize.SectionMeetTheTeam,
			Resource:  ResourceAbout,
			Query:     "populate[meet_the_team][populate]=image",
			Normalize: normalize.Normalizer.MeetTheTeam,
			Aliases:   []string{"/api/aboutUs/meetTheTeam"},
		},
		Endpoint{
			Name:     normalize.SectionTeamAndAdvisors,
			Resource: ResourceAbout,
			Query: "populate[our_team_and_advisors][populate][advisors][populate]=advisors_image" +
				"&populate[our_team_and_advisors][populate]=team_image",
			Normalize: normalize.Normalizer.TeamAndAdvisors,
			Aliases:   []string{"/api/aboutUs/teamAndAdvisors"},
		},
		Endpoint{
			Name:      normalize.SectionAboutLogos,
			Resource:  ResourceAbout,
			Query:     "populate[logos][populate]=*",
			Normalize: normalize.Normalizer.AboutLogos,
			Aliases:   []string{"/api/aboutUs/logos"},
		},

		// Landing
		Endpoint{Name: normalize.SectionLandingHero, Resource: ResourceLanding, Query: landingQuery, Normalize: normalize.Normalizer.LandingHero},
		Endpoint{Name: normalize.SectionTravelAgentsTeaser, Resource: ResourceLanding, Query: landingQuery, Normalize: normalize.Normalizer.TravelAgentsTeaser},
		Endpoint{Name: normalize.SectionOTAsTeaser, Resource: ResourceLanding, Query: landingQuery, Normalize: normalize.Normalizer.OTAsTeaser},
		Endpoint{Name: normalize.SectionTestimonials, Resource: ResourceLanding, Query: landingQuery, Normalize: normalize.Normalizer.Testimonials},
		Endpoint{Name: normalize.SectionVisaSection, Resource: ResourceLanding, Query: landingQuery, Normalize: normalize.Normalizer.VisaSection},
		Endpoint{Name: normalize.SectionTravellers, Resource: ResourceLanding, Query: landingQuery, Normalize: normalize.Normalizer.Travellers},

		// Travel agents
		Endpoint{Name: normalize.SectionTAHero, Resource: ResourceTravelAgents, Query: travelAgentsQuery, Normalize: normalize.Normalizer.TAHero},
		Endpoint{Name: normalize.SectionTAVisaProcess, Resource: ResourceTravelAgents, Query: travelAgentsQuery, Normalize: normalize.Normalizer.TAVisaProcess},
		Endpoint{Name: normalize.SectionTAProblem, Resource: ResourceTravelAgents, Query: travelAgentsQuery, Normalize: normalize.Normalizer.TAProblem},
		Endpoint{Name: normalize.SectionTASolution, Resource: ResourceTravelAgents, Query: travelAgentsQuery, Normalize: normalize.Normalizer.TASolution},
		Endpoint{Name: normalize.SectionTABenefits, Resource: ResourceTravelAgents, Query: travelAgentsQuery, Normalize: normalize.Normalizer.TABenefits},
		Endpoint{Name: normalize.SectionTAFeatures, Resource: ResourceTravelAgents, Query: travelAgentsQuery, Normalize: normalize.Normalizer.TAFeatures},
		Endpoint{Name: normalize.SectionTAVisaApp, Resource: ResourceTravelAgents, Query: travelAgentsQuery, Normalize: normalize.Normalizer.TAVisaApplication},
		Endpoint{Name: normalize.SectionTALove, Resource: ResourceTravelAgents, Query: travelAgentsQuery, Normalize: normalize.Normalizer.TALove},

		// Investors
		Endpoint{Name: normalize.SectionInvestorsHero, Resource: ResourceInvestors, Query: investorsQuery, Normalize: normalize.Normalizer.InvestorsHero},
		Endpoint{Name: normalize.SectionInvestorsApproach, Resource: ResourceInvestors, Query: investorsQuery, Normalize: normalize.Normalizer.InvestorsApproach},
		Endpoint{Name: normalize.SectionInvestorsHeadings, Resource: ResourceInvestors, Query: investorsQuery, Normalize: normalize.Normalizer.InvestorsHeadings},
		Endpoint{Name: normalize.SectionInvestors, Resource: ResourceInvestors, Query: investorsQuery, Normalize: normalize.Normalizer.Investors},
		Endpoint{Name: normalize.SectionInvestorsForm, Resource: ResourceInvestors, Query: investorsQuery, Normalize: normalize.Normalizer.InvestorsForm},

		// OTAs
		Endpoint{
			Name:      normalize.SectionOTAHero,
			Resource:  ResourceOTA,
			Query:     "populate[heroSection][populate][logos][populate]=logoImage",
			Normalize: normalize.Normalizer.OTAHero,
			Aliases:   []string{"/api/otas"},
		},
		Endpoint{
			Name:      normalize.SectionOTAMetrics,
			Resource:  ResourceOTA,
			Query:     "populate[metrics][populate]=cards",
			Normalize: normalize.Normalizer.OTAMetrics,
			Aliases:   []string{"/api/otas/metrics"},
		},
		Endpoint{
			Name:      normalize.SectionOTAFeatures,
			Resource:  ResourceOTA,
			Query:     "populate[features][populate][cards][populate]=*",
			Normalize: normalize.Normalizer.OTAFeatures,
			Aliases:   []string{"/api/otas/features"},
		},
		Endpoint{
			Name:     normalize.SectionOTAVisaIntegration,
			Resource: ResourceOTA,
			Query: "populate[visaIntegration_section1][populate][bulletPoints][populate]=icon" +
				"&populate[visaIntegration_section1][populate]=image",
			Normalize: normalize.Normalizer.OTAVisaIntegration,
			Aliases:   []string{"/api/otas/visaIntegration"},
		},
		Endpoint{
			Name:      normalize.SectionOTAVisaAPI,
			Resource:  ResourceOTA,
			Query:     "populate[VisaApi][populate]=*",
			Normalize: normalize.Normalizer.OTAVisaAPI,
			Aliases:   []string{"/api/otas/visaApi"},
		},
		Endpoint{
			Name:      normalize.SectionOTAFairSection,
			Resource:  ResourceOTA,
			Query:     "populate[fairSection][populate][bulletPoints][populate]=icon&populate[fairSection][populate]=image",
			Normalize: normalize.Normalizer.OTAFairSection,
			Aliases:   []string{"/api/otas/fairAdventure"},
			Timeout:   10 * time.Second,
		},
		Endpoint{
			Name:      normalize.SectionOTAContactLogos,
			Resource:  ResourceOTA,
			Query:     "populate[contactForm][populate][logos][populate]=*",
			Normalize: normalize.Normalizer.OTAContactLogos,
			Aliases:   []string{"/api/otas/contactForm"},
		},

		// Terms
		Endpoint{
			Name:      normalize.SectionTerms,
			Resource:  ResourceTerms,
			Query:     "populate=sections",
			Normalize: normalize.Normalizer.Terms,
			Aliases:   []string{"/api/terms"},
		},
	)
}
