// Package content holds the copy rendered by the site: site metadata,
// navigation, landing-page sections and the secondary pages. Content is read
// from YAML or TOML, validated, and never mutated after load.
package content

// Content is one immutable snapshot of everything the site renders.
type Content struct {
	Site         Site          `yaml:"site" toml:"site"`
	Nav          []NavLink     `yaml:"nav" toml:"nav" validate:"min=1,dive"`
	Hero         Hero          `yaml:"hero" toml:"hero"`
	SocialProof  SocialProof   `yaml:"social_proof" toml:"social_proof"`
	Features     []Feature     `yaml:"features" toml:"features" validate:"min=1,dive"`
	HowItWorks   []Step        `yaml:"how_it_works" toml:"how_it_works" validate:"min=1,dive"`
	Testimonials []Testimonial `yaml:"testimonials" toml:"testimonials" validate:"dive"`
	Pricing      []PricingPlan `yaml:"pricing" toml:"pricing" validate:"min=1,dive"`
	FAQ          []FAQItem     `yaml:"faq" toml:"faq" validate:"dive"`
	CTA          CTA           `yaml:"cta" toml:"cta"`
	About        About         `yaml:"about" toml:"about"`
	Services     Services      `yaml:"services" toml:"services"`
	Contact      Contact       `yaml:"contact" toml:"contact"`
}

// Site is the metadata used in the document head, header and footer.
type Site struct {
	Name        string       `yaml:"name" toml:"name" validate:"required"`
	Description string       `yaml:"description" toml:"description" validate:"required"`
	URL         string       `yaml:"url" toml:"url" validate:"required,url"`
	OGImage     string       `yaml:"og_image" toml:"og_image"`
	Links       []SocialLink `yaml:"links" toml:"links" validate:"dive"`
}

// SocialLink is an outbound profile link shown in the footer.
type SocialLink struct {
	Name string `yaml:"name" toml:"name" validate:"required"`
	URL  string `yaml:"url" toml:"url" validate:"required,url"`
}

// NavLink is a header navigation entry.
type NavLink struct {
	Label string `yaml:"label" toml:"label" validate:"required"`
	Href  string `yaml:"href" toml:"href" validate:"required"`
}

// Link is a labelled call to action.
type Link struct {
	Label string `yaml:"label" toml:"label" validate:"required"`
	Href  string `yaml:"href" toml:"href" validate:"required"`
}

// Hero is the landing page's opening band.
type Hero struct {
	Title     string `yaml:"title" toml:"title" validate:"required"`
	Subtitle  string `yaml:"subtitle" toml:"subtitle" validate:"required"`
	Primary   Link   `yaml:"primary" toml:"primary"`
	Secondary Link   `yaml:"secondary" toml:"secondary"`
}

// SocialProof lists customer names under a heading.
type SocialProof struct {
	Title     string   `yaml:"title" toml:"title" validate:"required"`
	Companies []string `yaml:"companies" toml:"companies" validate:"min=1,dive,required"`
}

// Feature is one entry of the features grid. Icon names an icon known to
// the section renderer.
type Feature struct {
	Icon        string `yaml:"icon" toml:"icon" validate:"required"`
	Title       string `yaml:"title" toml:"title" validate:"required"`
	Description string `yaml:"description" toml:"description" validate:"required"`
}

// Step is one numbered how-it-works step.
type Step struct {
	Step        int    `yaml:"step" toml:"step" validate:"min=1"`
	Title       string `yaml:"title" toml:"title" validate:"required"`
	Description string `yaml:"description" toml:"description" validate:"required"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Quote   string `yaml:"quote" toml:"quote" validate:"required"`
	Author  string `yaml:"author" toml:"author" validate:"required"`
	Role    string `yaml:"role" toml:"role"`
	Company string `yaml:"company" toml:"company"`
	Avatar  string `yaml:"avatar" toml:"avatar"`
}

// PricingPlan is one pricing tier. A nil Price means custom pricing.
type PricingPlan struct {
	Name        string   `yaml:"name" toml:"name" validate:"required"`
	Price       *int     `yaml:"price" toml:"price" validate:"omitempty,min=0"`
	Description string   `yaml:"description" toml:"description" validate:"required"`
	Features    []string `yaml:"features" toml:"features" validate:"min=1,dive,required"`
	Highlighted bool     `yaml:"highlighted" toml:"highlighted"`
	Badge       string   `yaml:"badge" toml:"badge"`
}

// Custom reports whether the plan has no list price.
func (p PricingPlan) Custom() bool {
	return p.Price == nil
}

// FAQItem is one question and answer.
type FAQItem struct {
	Question string `yaml:"question" toml:"question" validate:"required"`
	Answer   string `yaml:"answer" toml:"answer" validate:"required"`
}

// CTA is the closing call to action.
type CTA struct {
	Title    string `yaml:"title" toml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle" toml:"subtitle"`
	Action   Link   `yaml:"action" toml:"action"`
	Note     string `yaml:"note" toml:"note"`
}

// Intro is the heading band at the top of a secondary page.
type Intro struct {
	Title    string `yaml:"title" toml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle" toml:"subtitle"`
}

// Block is a titled run of paragraphs.
type Block struct {
	Title      string   `yaml:"title" toml:"title" validate:"required"`
	Paragraphs []string `yaml:"paragraphs" toml:"paragraphs" validate:"min=1"`
}

// Value is one company value card on the about page.
type Value struct {
	Icon        string `yaml:"icon" toml:"icon"`
	Title       string `yaml:"title" toml:"title" validate:"required"`
	Description string `yaml:"description" toml:"description" validate:"required"`
}

// About is the about page copy.
type About struct {
	Intro       Intro   `yaml:"intro" toml:"intro"`
	Story       Block   `yaml:"story" toml:"story"`
	Mission     Block   `yaml:"mission" toml:"mission"`
	ValuesTitle string  `yaml:"values_title" toml:"values_title" validate:"required"`
	Values      []Value `yaml:"values" toml:"values" validate:"dive"`
}

// Service is one offering on the services page.
type Service struct {
	Icon        string   `yaml:"icon" toml:"icon"`
	Title       string   `yaml:"title" toml:"title" validate:"required"`
	Description string   `yaml:"description" toml:"description" validate:"required"`
	Features    []string `yaml:"features" toml:"features" validate:"dive,required"`
}

// Services is the services page copy.
type Services struct {
	Intro Intro     `yaml:"intro" toml:"intro"`
	Items []Service `yaml:"items" toml:"items" validate:"min=1,dive"`
}

// ContactInfo is one way to reach the company.
type ContactInfo struct {
	Icon  string `yaml:"icon" toml:"icon"`
	Title string `yaml:"title" toml:"title" validate:"required"`
	Value string `yaml:"value" toml:"value" validate:"required"`
}

// Contact is the contact page copy.
type Contact struct {
	Intro     Intro         `yaml:"intro" toml:"intro"`
	FormTitle string        `yaml:"form_title" toml:"form_title" validate:"required"`
	InfoTitle string        `yaml:"info_title" toml:"info_title" validate:"required"`
	Info      []ContactInfo `yaml:"info" toml:"info" validate:"dive"`
}
