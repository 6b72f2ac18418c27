package publicapi

import (
	"errors"
	"log"
	"net/http"

	"landing-app/database"
	"landing-app/internal/domain/landing"
	"landing-app/internal/domain/leads"
	"landing-app/internal/render"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var pageRenderer = render.New()

func loadPublished(c *gin.Context) (*landing.LandingPage, bool) {
	slug := c.Param("slug")

	var p landing.LandingPage
	if err := database.DB.First(&p, "slug = ? AND status = ?", slug, landing.StatusPublished).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = landing.ErrPageNotFound
		}
		if errors.Is(err, landing.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return nil, false
	}
	return &p, true
}

// GET /p/:slug
//
// Public-mode render: rich text goes through the UGC sanitizer, no edit
// affordances. Each hit counts a page view.
func ServePage(c *gin.Context) {
	p, ok := loadPublished(c)
	if !ok {
		return
	}

	html, err := pageRenderer.Render(p, render.ModePublic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render page"})
		return
	}

	p.Analytics.RecordView()
	if err := database.DB.Model(p).Update("analytics", p.Analytics).Error; err != nil {
		// A lost counter should not take the page down.
		log.Printf("failed to record view for page %s: %v", p.ID, err)
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// POST /p/:slug/leads
//
// Server-side twin of the form's client gating: first name, last name and
// email required, phone optional.
func CaptureLead(c *gin.Context) {
	p, ok := loadPublished(c)
	if !ok {
		return
	}

	var sub leads.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": p.FormConfig.ErrorMessage})
		return
	}

	if err := sub.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	lead := leads.FromSubmission(p.ID, sub)
	if err := database.DB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": p.FormConfig.ErrorMessage})
		return
	}

	p.Analytics.RecordLead()
	if err := database.DB.Model(p).Update("analytics", p.Analytics).Error; err != nil {
		log.Printf("failed to record lead for page %s: %v", p.ID, err)
	}

	resp := gin.H{"message": p.FormConfig.SuccessMessage}
	if p.FormConfig.RedirectURL != "" {
		resp["redirect_url"] = p.FormConfig.RedirectURL
	}
	c.JSON(http.StatusCreated, resp)
}
