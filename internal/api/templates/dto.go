package templatesapi

import "landing-app/internal/domain/templates"

type TemplateSummaryDTO struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Primary     string `json:"primary_color"`
}

type ListTemplatesResponse struct {
	Templates []TemplateSummaryDTO `json:"templates"`
}

type GetTemplateResponse struct {
	Key   string          `json:"key"`
	Theme templates.Theme `json:"theme"`
}
