package pagesapi

import "landing-app/internal/domain/landing"

// ---------- requests

type CreatePageRequest struct {
	Title    string  `json:"title" binding:"required"`
	Slug     string  `json:"slug" binding:"required"`
	CourseID *string `json:"course_id"`
	Template string  `json:"template" binding:"required"`
}

type UpdateContentRequest struct {
	Section string `json:"section" binding:"required"`
	Field   string `json:"field" binding:"required"`
	Value   string `json:"value"`
}

type AddFeatureRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type AddTestimonialRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

type ReorderFeaturesRequest struct {
	FeatureIDs []string `json:"feature_ids" binding:"required"`
}

type SwitchTemplateRequest struct {
	Template string `json:"template" binding:"required"`
}

type UpdateSectionsRequest struct {
	EnabledSections []string `json:"enabled_sections" binding:"required"`
	SectionOrder    []string `json:"section_order" binding:"required"`
}

// UpdateFormRequest replaces the whole form definition; partial form edits
// are computed client-side the same way list fields are.
type UpdateFormRequest struct {
	Form landing.FormConfig `json:"form" binding:"required"`
}

// ---------- responses

type PageSummaryDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Template string `json:"template"`
	Status   string `json:"status"`
}

type ListPagesResponse struct {
	Pages []PageSummaryDTO `json:"pages"`
}
