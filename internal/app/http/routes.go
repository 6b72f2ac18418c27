package routes

import (
	pagesapi "landing-app/internal/api/pages"
	publicapi "landing-app/internal/api/public"
	templatesapi "landing-app/internal/api/templates"
	uploadsapi "landing-app/internal/api/uploads"
	"landing-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/templates", templatesapi.ListTemplates)
	r.GET("/templates/:key", templatesapi.GetTemplate)

	// Editor surface. Content bodies carry rich-text HTML, so no input
	// sanitization here; the public renderer sanitizes on the way out.
	r.POST("/pages", pagesapi.CreatePage)
	r.GET("/pages", pagesapi.ListPages)
	r.GET("/pages/:id", pagesapi.GetPage)
	r.PUT("/pages/:id/content", pagesapi.UpdateContent)
	r.POST("/pages/:id/features", pagesapi.AddFeature)
	r.DELETE("/pages/:id/features/:featureId", pagesapi.DeleteFeature)
	r.PUT("/pages/:id/features/reorder", pagesapi.ReorderFeatures)
	r.POST("/pages/:id/testimonials", pagesapi.AddTestimonial)
	r.DELETE("/pages/:id/testimonials/:testimonialId", pagesapi.DeleteTestimonial)
	r.PUT("/pages/:id/form", pagesapi.UpdateForm)
	r.PUT("/pages/:id/template", pagesapi.SwitchTemplate)
	r.PUT("/pages/:id/sections", pagesapi.UpdateSections)
	r.POST("/pages/:id/publish", pagesapi.PublishPage)
	r.POST("/pages/:id/unpublish", pagesapi.UnpublishPage)
	r.POST("/pages/:id/archive", pagesapi.ArchivePage)
	r.GET("/pages/:id/preview", pagesapi.PreviewPage)

	r.POST("/uploads/image", uploadsapi.UploadImage)

	// Public surface. Visitor input gets markup-stripped before binding.
	r.GET("/p/:slug", publicapi.ServePage)

	public := r.Group("/")
	public.Use(middleware.SanitizeLeadInput())
	public.POST("/p/:slug/leads", publicapi.CaptureLead)
}
