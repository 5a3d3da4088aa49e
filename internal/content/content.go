// Package content holds the static marketing copy for the landing page.
// Pure data: the page templates iterate over it, nothing mutates it.
package content

type Feature struct {
	Title string
	Desc  string
}

type UseCase struct {
	Title string
	Desc  string
}

type BenefitGroup struct {
	Audience string
	Items    []string
}

type Tier struct {
	Name     string
	Tagline  string
	Features []string
}

type Landing struct {
	HeroTitle    string
	HeroSubtitle string
	Features     []Feature
	UseCases     []UseCase
	Benefits     []BenefitGroup
	Tiers        []Tier
}

// Page is the full landing page content in display order.
var Page = Landing{
	HeroTitle:    "Monetize Your Expertise with Uniquers",
	HeroSubtitle: "Turn your knowledge into structured, sellable content and let clients reach you around the clock.",
	Features: []Feature{
		{Title: "Content Management", Desc: "Organize your expertise into a searchable knowledge library."},
		{Title: "Multi-Format Support", Desc: "Publish articles, video, and audio from one place."},
		{Title: "Content Tagging", Desc: "Tag and cross-link material so clients find answers fast."},
		{Title: "Analytics Dashboard", Desc: "See what your audience reads, watches, and asks for."},
		{Title: "Appointment System", Desc: "Let clients book sessions directly from your content."},
		{Title: "Monetization Tools", Desc: "Subscriptions, one-off purchases, and bundled offers."},
	},
	UseCases: []UseCase{
		{Title: "Therapists & Coaches", Desc: "Answer the common questions once, sell the deep work."},
		{Title: "Business Consultants", Desc: "Package frameworks and playbooks for self-serve clients."},
		{Title: "Fitness Trainers", Desc: "Programs and form guides available day and night."},
		{Title: "Language Tutors", Desc: "Reusable lessons with booking for live practice."},
	},
	Benefits: []BenefitGroup{
		{
			Audience: "For experts",
			Items: []string{
				"Passive income generation",
				"Reduced repetitive explanations",
				"Expanded client reach",
				"Data-driven content improvement",
				"Streamlined appointment management",
				"Efficient client communication",
			},
		},
		{
			Audience: "For clients",
			Items: []string{
				"24/7 access to expert knowledge",
				"Self-paced learning",
				"Cost-effective access to expertise",
				"Consistent information quality",
				"Easy booking process",
				"AI-powered assistance",
			},
		},
	},
	Tiers: []Tier{
		{
			Name:     "Expert Digital Front Door",
			Tagline:  "Plan 1",
			Features: []string{"Knowledge Access", "Content Tagging", "Direct Requests"},
		},
		{
			Name:     "Expert Knowledge Hub",
			Tagline:  "Plan 2",
			Features: []string{"Video Playback", "Audio Learning", "Expert Booking", "Analytics Dashboard"},
		},
		{
			Name:     "AI-Powered Content & Marketing Automation",
			Tagline:  "Plan 3",
			Features: []string{"AI-Powered FAQ", "Monetization Tools", "Appointment System"},
		},
	},
}
