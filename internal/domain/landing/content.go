package landing

// Section keys. These are persisted inside Settings.SectionOrder and
// EnabledSections, so the strings are load-bearing.
const (
	SectionHero         = "hero"
	SectionFeatures     = "features"
	SectionInstructor   = "instructor"
	SectionTestimonials = "testimonials"
	SectionPricing      = "pricing"
	SectionContact      = "contact"
)

// SectionKeys lists every known section key in default render order.
var SectionKeys = []string{
	SectionHero,
	SectionFeatures,
	SectionInstructor,
	SectionTestimonials,
	SectionPricing,
	SectionContact,
}

// Content is the editable payload of a landing page. Sections are held by
// pointer so a field update can replace one section while every sibling
// stays reference-identical, which keeps change detection cheap upstream.
//
// Description and Bio style fields hold rich-text HTML produced by the
// editor toolbar. The model passes that HTML through opaque; sanitization
// happens at the public render boundary, not here.
type Content struct {
	Hero           *HeroSection         `json:"hero"`
	Features       *FeaturesSection     `json:"features"`
	Instructor     *InstructorSection   `json:"instructor"`
	Testimonials   *TestimonialsSection `json:"testimonials"`
	Pricing        *PricingSection      `json:"pricing"`
	Contact        *ContactSection      `json:"contact"`
	CustomSections []CustomSection      `json:"custom_sections,omitempty"`
}

type HeroSection struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ButtonText  string `json:"button_text"`
}

// Layout modes for list-shaped sections.
const (
	LayoutGrid  = "grid"
	LayoutList  = "list"
	LayoutCards = "cards"
)

type FeaturesSection struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []FeatureItem `json:"items"`
	Layout   string        `json:"layout"`
}

type FeatureItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type InstructorSection struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	Credentials string `json:"credentials"`
	Bio         string `json:"bio"`
}

type TestimonialsSection struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []Testimonial `json:"items"`
	Layout   string        `json:"layout"`
}

type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
	Content string `json:"content"`
	Rating  int    `json:"rating"` // 1..5
	Order   int    `json:"order"`
}

type PricingSection struct {
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"original_price,omitempty"`
	Currency      string   `json:"currency"`
	Features      []string `json:"features"`
	ButtonText    string   `json:"button_text"`
}

type ContactSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
}

// CustomSection is an extensible free-form block for content that does not
// fit the fixed sections.
type CustomSection struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Content map[string]any `json:"content"`
	Order   int            `json:"order"`
	Enabled bool           `json:"enabled"`
}
