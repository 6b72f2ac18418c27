// Package render turns a landing page into HTML. The same renderer backs
// the in-editor preview and the public page; the only differences are the
// edit affordance and the sanitization of author-supplied rich text.
package render

import (
	"bytes"
	"html/template"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"landing-app/internal/domain/landing"
)

// Mode selects the render variant.
type Mode int

const (
	// ModeEditor renders the preview inside the editor: rich text passes
	// through raw and an edit affordance is shown.
	ModeEditor Mode = iota
	// ModePublic renders the public-facing page: rich text is run through a
	// UGC sanitization policy before it reaches the document.
	ModePublic
)

type Renderer struct {
	tmpl *template.Template
	ugc  *bluemonday.Policy
}

func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
		ugc:  bluemonday.UGCPolicy(),
	}
}

// Render produces the full HTML document for the page. Sections are emitted
// in Settings.SectionOrder, skipping anything not in the enabled set; a
// skipped section produces no markup and no anchor.
func (r *Renderer) Render(p *landing.LandingPage, mode Mode) (string, error) {
	vm := pageView{
		Title:      p.Title,
		Editor:     mode == ModeEditor,
		PageID:     p.ID,
		Stylesheet: stylesheet(p.Settings),
		HeroStyle:  template.CSS("background: " + p.Settings.Gradients.Hero + "; min-height: " + p.Settings.Spacing.HeroHeight + ";"),
		SectStyle:  template.CSS("background: " + p.Settings.Gradients.Section + ";"),
	}

	for _, key := range p.Settings.SectionOrder {
		if !p.Settings.Enabled(key) {
			continue
		}
		sec, ok := r.sectionView(p, key, mode)
		if !ok {
			continue
		}
		vm.Sections = append(vm.Sections, sec)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, vm); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) sectionView(p *landing.LandingPage, key string, mode Mode) (sectionView, bool) {
	c := p.Content
	switch key {
	case landing.SectionHero:
		if c.Hero == nil {
			return sectionView{}, false
		}
		return sectionView{Key: key, Hero: &heroView{
			Title:      c.Hero.Title,
			Subtitle:   c.Hero.Subtitle,
			Desc:       r.richText(c.Hero.Description, mode),
			ButtonText: c.Hero.ButtonText,
			Form:       formView(p.FormConfig),
		}}, true

	case landing.SectionFeatures:
		if c.Features == nil {
			return sectionView{}, false
		}
		v := &featuresView{
			Title:    c.Features.Title,
			Subtitle: r.richText(c.Features.Subtitle, mode),
			Layout:   c.Features.Layout,
		}
		for _, it := range sortedFeatures(c.Features.Items) {
			v.Items = append(v.Items, featureItemView{Title: it.Title, Description: it.Description})
		}
		return sectionView{Key: key, Features: v}, true

	case landing.SectionInstructor:
		if c.Instructor == nil {
			return sectionView{}, false
		}
		return sectionView{Key: key, Instructor: &instructorView{
			Title:       c.Instructor.Title,
			Name:        c.Instructor.Name,
			Credentials: c.Instructor.Credentials,
			Bio:         r.richText(c.Instructor.Bio, mode),
		}}, true

	case landing.SectionTestimonials:
		if c.Testimonials == nil {
			return sectionView{}, false
		}
		v := &testimonialsView{
			Title:    c.Testimonials.Title,
			Subtitle: c.Testimonials.Subtitle,
		}
		for _, it := range sortedTestimonials(c.Testimonials.Items) {
			v.Items = append(v.Items, testimonialView{
				Name:    it.Name,
				Role:    it.Role,
				Company: it.Company,
				Content: it.Content,
				Stars:   strings.Repeat("★", clampRating(it.Rating)),
			})
		}
		return sectionView{Key: key, Testimonials: v}, true

	case landing.SectionPricing:
		if c.Pricing == nil {
			return sectionView{}, false
		}
		return sectionView{Key: key, Pricing: &pricingView{
			Title:         c.Pricing.Title,
			Subtitle:      c.Pricing.Subtitle,
			Price:         c.Pricing.Price,
			OriginalPrice: c.Pricing.OriginalPrice,
			Currency:      c.Pricing.Currency,
			Features:      c.Pricing.Features,
			ButtonText:    c.Pricing.ButtonText,
		}}, true

	case landing.SectionContact:
		if c.Contact == nil {
			return sectionView{}, false
		}
		return sectionView{Key: key, Contact: &contactView{
			Title:    c.Contact.Title,
			Subtitle: c.Contact.Subtitle,
			Phone:    c.Contact.Phone,
			Email:    c.Contact.Email,
			Address:  c.Contact.Address,
		}}, true
	}

	return sectionView{}, false
}

func stylesheet(s landing.Settings) template.CSS {
	var b strings.Builder
	b.WriteString("body { margin: 0; font-family: " + s.Fonts.Body + "; color: " + s.Colors.Text + "; background: " + s.Colors.Background + "; }\n")
	b.WriteString("h1, h2, h3 { font-family: " + s.Fonts.Heading + "; }\n")
	b.WriteString(".container { max-width: " + s.Spacing.ContainerMaxWidth + "; margin: 0 auto; padding: 0 24px; }\n")
	b.WriteString(".section { padding: " + s.Spacing.SectionPadding + " 0; }\n")
	b.WriteString(".card { background: " + s.Colors.Surface + "; border-radius: " + s.BorderRadius.Medium + "; box-shadow: " + s.Shadows.Card + "; padding: 24px; }\n")
	b.WriteString(".btn { display: inline-block; background: " + s.Colors.Primary + "; color: #fff; border: 0; border-radius: " + s.BorderRadius.Small + "; box-shadow: " + s.Shadows.Button + "; padding: 14px 28px; font-size: 16px; cursor: pointer; }\n")
	b.WriteString(".muted { color: " + s.Colors.TextSecondary + "; }\n")
	b.WriteString(".hero { box-shadow: " + s.Shadows.Hero + "; }\n")
	return template.CSS(b.String())
}

// richText converts an author-supplied HTML string into markup. Editor
// previews keep the raw payload; public renders go through the UGC policy.
func (r *Renderer) richText(raw string, mode Mode) template.HTML {
	if mode == ModePublic {
		return template.HTML(r.ugc.Sanitize(raw))
	}
	return template.HTML(raw)
}

// The content model keeps an order field per item but does not guarantee
// array position matches it after deletes. Render order follows the order
// field, always.
func sortedFeatures(items []landing.FeatureItem) []landing.FeatureItem {
	out := make([]landing.FeatureItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func sortedTestimonials(items []landing.Testimonial) []landing.Testimonial {
	out := make([]landing.Testimonial, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func clampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

func formView(cfg landing.FormConfig) *leadFormView {
	v := &leadFormView{
		SubmitText:     cfg.SubmitButtonText,
		SuccessMessage: cfg.SuccessMessage,
	}
	fields := make([]landing.FormField, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if f.Enabled {
			fields = append(fields, f)
		}
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })
	for _, f := range fields {
		v.Fields = append(v.Fields, formFieldView{
			Name:        f.Name,
			Label:       f.Label,
			Type:        f.Type,
			Required:    f.Required,
			Placeholder: f.Placeholder,
			Options:     f.Options,
		})
	}
	return v
}
