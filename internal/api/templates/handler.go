package templatesapi

import (
	"net/http"

	"landing-app/internal/domain/templates"

	"github.com/gin-gonic/gin"
)

// GET /templates
func ListTemplates(c *gin.Context) {
	keys := templates.Keys()
	out := ListTemplatesResponse{Templates: make([]TemplateSummaryDTO, 0, len(keys))}
	for _, key := range keys {
		t := templates.Get(key)
		if t == nil {
			continue
		}
		out.Templates = append(out.Templates, TemplateSummaryDTO{
			Key:         key,
			Name:        t.Name,
			Description: t.Description,
			Primary:     t.Colors.Primary,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /templates/:key
func GetTemplate(c *gin.Context) {
	key := c.Param("key")
	t := templates.Get(key)
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(http.StatusOK, GetTemplateResponse{Key: key, Theme: *t})
}
