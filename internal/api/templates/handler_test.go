package templatesapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/templates", ListTemplates)
	r.GET("/templates/:key", GetTemplate)
	return r
}

func TestListTemplates(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	newRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp ListTemplatesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Templates) != 5 {
		t.Fatalf("got %d templates, want 5", len(resp.Templates))
	}
	if resp.Templates[0].Key != "professional" || resp.Templates[4].Key != "bold" {
		t.Errorf("catalog order wrong: %+v", resp.Templates)
	}
	for _, tmpl := range resp.Templates {
		if tmpl.Name == "" || tmpl.Primary == "" {
			t.Errorf("template %q has empty summary fields", tmpl.Key)
		}
	}
}

func TestGetTemplate(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates/tech", nil)
	newRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp GetTemplateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Key != "tech" || resp.Theme.Colors.Primary != "#10b981" {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestGetTemplateUnknownKey(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/templates/nonexistent", nil)
	newRouter().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
