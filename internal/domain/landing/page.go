package landing

import (
	"time"

	"landing-app/internal/domain/templates"
)

// NewLandingPage creates a draft page from the named template, seeded with
// the default content catalog and form. Returns ErrUnknownTemplate when the
// key is not in the registry.
func NewLandingPage(title, slug string, courseID *string, templateKey string) (*LandingPage, error) {
	theme := templates.Get(templateKey)
	if theme == nil {
		return nil, ErrUnknownTemplate
	}

	p := &LandingPage{
		Title:      title,
		Slug:       slug,
		CourseID:   courseID,
		Template:   templateKey,
		Status:     StatusDraft,
		Content:    DefaultContent(),
		FormConfig: DefaultFormConfig(),
		Settings:   settingsFromTheme(theme),
	}
	return p, nil
}

func settingsFromTheme(theme *templates.Theme) Settings {
	enabled := make([]string, len(SectionKeys))
	order := make([]string, len(SectionKeys))
	copy(enabled, SectionKeys)
	copy(order, SectionKeys)

	s := Settings{
		EnabledSections: enabled,
		SectionOrder:    order,
	}
	s.applyTheme(theme)
	return s
}

func (s *Settings) applyTheme(theme *templates.Theme) {
	s.Colors = theme.Colors
	s.Fonts = theme.Fonts
	s.Gradients = theme.Gradients
	s.Spacing = theme.Spacing
	s.BorderRadius = theme.BorderRadius
	s.Shadows = theme.Shadows
}

// ApplyTemplate switches the page to another template. Only the theme groups
// of Settings are re-resolved; content, section visibility and ordering are
// untouched. Template changes are cosmetic.
func (p *LandingPage) ApplyTemplate(key string) error {
	theme := templates.Get(key)
	if theme == nil {
		return ErrUnknownTemplate
	}
	p.Template = key
	p.Settings.applyTheme(theme)
	return nil
}

// SetSections replaces the enabled set and render order. Every key must be a
// known section key; the renderer tolerates order entries outside the
// enabled set by skipping them.
func (p *LandingPage) SetSections(enabled, order []string) error {
	for _, k := range enabled {
		if !knownSection(k) {
			return ErrUnknownSectionKey
		}
	}
	for _, k := range order {
		if !knownSection(k) {
			return ErrUnknownSectionKey
		}
	}
	p.Settings.EnabledSections = enabled
	p.Settings.SectionOrder = order
	return nil
}

func knownSection(key string) bool {
	for _, k := range SectionKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Publish transitions the page to published and stamps PublishedAt.
// Publishing an already-published page keeps the status and refreshes the
// timestamp.
func (p *LandingPage) Publish(now time.Time) {
	p.Status = StatusPublished
	t := now
	p.PublishedAt = &t
}

// Unpublish returns the page to draft. PublishedAt is cleared so a later
// publish stamps a fresh timestamp.
func (p *LandingPage) Unpublish() {
	p.Status = StatusDraft
	p.PublishedAt = nil
}

// Archive retires the page. Archived pages are not publicly served.
func (p *LandingPage) Archive() {
	p.Status = StatusArchived
}
