package landing

import (
	"time"

	"landing-app/internal/domain/templates"
)

// Page status lifecycle.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Settings is the denormalized copy of the active theme plus the section
// visibility and ordering controls. Switching templates rewrites the theme
// groups here and nothing else.
type Settings struct {
	Colors       templates.ThemeColors    `json:"colors"`
	Fonts        templates.ThemeFonts     `json:"fonts"`
	Gradients    templates.ThemeGradients `json:"gradients"`
	Spacing      templates.ThemeSpacing   `json:"spacing"`
	BorderRadius templates.ThemeRadius    `json:"border_radius"`
	Shadows      templates.ThemeShadows   `json:"shadows"`

	EnabledSections []string `json:"enabled_sections"`
	SectionOrder    []string `json:"section_order"`
}

// Enabled reports whether the section key is in the enabled set.
func (s Settings) Enabled(key string) bool {
	for _, k := range s.EnabledSections {
		if k == key {
			return true
		}
	}
	return false
}

// Analytics is a read-only counter snapshot populated by the public page
// and lead-capture handlers.
type Analytics struct {
	Views          int64   `json:"views"`
	Leads          int64   `json:"leads"`
	ConversionRate float64 `json:"conversion_rate"`
}

// RecordView bumps the view counter and recomputes the conversion rate.
func (a *Analytics) RecordView() {
	a.Views++
	a.recompute()
}

// RecordLead bumps the lead counter and recomputes the conversion rate.
func (a *Analytics) RecordLead() {
	a.Leads++
	a.recompute()
}

func (a *Analytics) recompute() {
	if a.Views == 0 {
		a.ConversionRate = 0
		return
	}
	a.ConversionRate = float64(a.Leads) / float64(a.Views)
}

// LandingPage is the aggregate root for one landing page. Content, Settings,
// FormConfig and Analytics are stored as jsonb documents.
type LandingPage struct {
	ID       string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title    string  `gorm:"not null" json:"title"`
	Slug     string  `gorm:"not null;uniqueIndex" json:"slug"`
	CourseID *string `gorm:"index" json:"course_id,omitempty"`

	Template string `gorm:"not null;index" json:"template"`
	Status   string `gorm:"not null;default:'draft';index" json:"status"`

	Content    Content    `gorm:"type:jsonb;serializer:json" json:"content"`
	Settings   Settings   `gorm:"type:jsonb;serializer:json" json:"settings"`
	FormConfig FormConfig `gorm:"type:jsonb;serializer:json" json:"form_config"`
	Analytics  Analytics  `gorm:"type:jsonb;serializer:json" json:"analytics"`

	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
