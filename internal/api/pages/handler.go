package pagesapi

import (
	"errors"
	"net/http"
	"time"

	"landing-app/database"
	"landing-app/internal/domain/landing"
	"landing-app/internal/render"

	"github.com/gin-gonic/gin"
)

var previewRenderer = render.New()

// POST /pages
func CreatePage(c *gin.Context) {
	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := landing.NewLandingPage(req.Title, req.Slug, req.CourseID, req.Template)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create page"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GET /pages
func ListPages(c *gin.Context) {
	q := database.DB.Model(&landing.LandingPage{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var pages []landing.LandingPage
	if err := q.Order("created_at DESC").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	out := ListPagesResponse{Pages: make([]PageSummaryDTO, 0, len(pages))}
	for _, p := range pages {
		out.Pages = append(out.Pages, PageSummaryDTO{
			ID:       p.ID,
			Title:    p.Title,
			Slug:     p.Slug,
			Template: p.Template,
			Status:   p.Status,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /pages/:id
func GetPage(c *gin.Context) {
	p, ok := loadPage(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /pages/:id/content
//
// One field of one section per call, mirroring how the editor emits
// changes. Rich-text fields arrive as opaque HTML strings and are stored
// unchanged; sanitization happens when the public page is rendered.
func UpdateContent(c *gin.Context) {
	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, ok := loadPage(c)
	if !ok {
		return
	}

	content, err := landing.UpdateSectionField(p.Content, req.Section, req.Field, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.Content = content

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /pages/:id/features
func AddFeature(c *gin.Context) {
	var req AddFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, ok := loadPage(c)
	if !ok {
		return
	}

	content, err := landing.AddFeature(p.Content, req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.Content = content

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /pages/:id/features/:featureId
func DeleteFeature(c *gin.Context) {
	p, ok := loadPage(c)
	if !ok {
		return
	}

	p.Content = landing.DeleteFeature(p.Content, c.Param("featureId"))

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /pages/:id/features/reorder
func ReorderFeatures(c *gin.Context) {
	var req ReorderFeaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, ok := loadPage(c)
	if !ok {
		return
	}

	content, err := landing.ReorderFeatures(p.Content, req.FeatureIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.Content = content

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /pages/:id/testimonials
func AddTestimonial(c *gin.Context) {
	var req AddTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, ok := loadPage(c)
	if !ok {
		return
	}

	content, err := landing.AddTestimonial(p.Content, req.Name, req.Role, req.Company, req.Content, req.Rating)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.Content = content

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /pages/:id/testimonials/:testimonialId
func DeleteTestimonial(c *gin.Context) {
	p, ok := loadPage(c)
	if !ok {
		return
	}

	p.Content = landing.DeleteTestimonial(p.Content, c.Param("testimonialId"))

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /pages/:id/form
func UpdateForm(c *gin.Context) {
	var req UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, ok := loadPage(c)
	if !ok {
		return
	}
	p.FormConfig = req.Form

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /pages/:id/template
//
// Switching templates only re-resolves the theme values in settings;
// entered content is never touched.
func SwitchTemplate(c *gin.Context) {
	var req SwitchTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, ok := loadPage(c)
	if !ok {
		return
	}

	if err := p.ApplyTemplate(req.Template); err != nil {
		if errors.Is(err, landing.ErrUnknownTemplate) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /pages/:id/sections
func UpdateSections(c *gin.Context) {
	var req UpdateSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, ok := loadPage(c)
	if !ok {
		return
	}

	if err := p.SetSections(req.EnabledSections, req.SectionOrder); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /pages/:id/publish
func PublishPage(c *gin.Context) {
	p, ok := loadPage(c)
	if !ok {
		return
	}

	p.Publish(time.Now())

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": p.Status, "published_at": p.PublishedAt})
}

// POST /pages/:id/unpublish
func UnpublishPage(c *gin.Context) {
	p, ok := loadPage(c)
	if !ok {
		return
	}

	p.Unpublish()

	if err := database.DB.Model(p).Select("status", "published_at").Updates(map[string]any{
		"status":       p.Status,
		"published_at": nil,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": p.Status})
}

// POST /pages/:id/archive
func ArchivePage(c *gin.Context) {
	p, ok := loadPage(c)
	if !ok {
		return
	}

	p.Archive()

	if !savePage(c, p) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": p.Status})
}

// GET /pages/:id/preview
//
// Editor-mode render: raw rich text, edit affordance shown.
func PreviewPage(c *gin.Context) {
	p, ok := loadPage(c)
	if !ok {
		return
	}

	html, err := previewRenderer.Render(p, render.ModeEditor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render preview"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
