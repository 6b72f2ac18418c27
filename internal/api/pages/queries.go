package pagesapi

import (
	"errors"
	"net/http"

	"landing-app/database"
	"landing-app/internal/domain/landing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func loadPage(c *gin.Context) (*landing.LandingPage, bool) {
	id := c.Param("id")

	var p landing.LandingPage
	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		code, msg := lookupFailure(err)
		c.JSON(code, gin.H{"error": msg})
		return nil, false
	}
	return &p, true
}

// lookupFailure folds the driver's not-found into the domain sentinel so
// every page lookup answers a miss the same way.
func lookupFailure(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = landing.ErrPageNotFound
	}
	if errors.Is(err, landing.ErrPageNotFound) {
		return http.StatusNotFound, "Page not found"
	}
	return http.StatusInternalServerError, "Failed to load page"
}

func savePage(c *gin.Context, p *landing.LandingPage) bool {
	if err := database.DB.Save(p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save page"})
		return false
	}
	return true
}
