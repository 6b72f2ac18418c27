package uploadsapi

import (
	"log"
	"net/http"

	"landing-app/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// POST /uploads/image
//
// Uploads a hero or instructor image to Cloudinary and returns the hosted
// URL plus the public id needed for later deletion. Returns 503 when no
// CLOUDINARY_URL is configured.
func UploadImage(c *gin.Context) {
	if config.CLOUDINARY_URL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image upload is not configured"})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	cld, err := cloudinary.NewFromURL(config.CLOUDINARY_URL)
	if err != nil {
		log.Println("cloudinary init:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	res, err := cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{Folder: "landing"})
	if err != nil {
		log.Println("cloudinary upload:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"image_url": res.SecureURL,
		"image_key": res.PublicID,
	})
}
