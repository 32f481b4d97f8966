package api

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sitegen_ai_server/internal/ai"
	"sitegen_ai_server/internal/spec"
)

type stubConverter struct {
	ws  *spec.WebsiteSpec
	err error
}

func (s *stubConverter) Convert(_ context.Context, _ string) (*spec.WebsiteSpec, error) {
	return s.ws, s.err
}

func testSpec() *spec.WebsiteSpec {
	return &spec.WebsiteSpec{
		Project:      spec.Project{Name: "Acme", Archetype: "company"},
		DesignTokens: spec.DefaultTokens(),
		Pages: []spec.Page{
			{Route: "/", Sections: []spec.Section{{ID: "a", Type: spec.SectionHero, Props: map[string]any{}}}},
		},
	}
}

func postJSON(t *testing.T, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func TestMakeSpecReturnsSpecJSON(t *testing.T) {
	h := NewAPIHandler(&stubConverter{ws: testSpec()}, nil)

	w := postJSON(t, h.MakeSpec, "/api/spec", `{"prompt": "company site"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var got spec.WebsiteSpec
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a spec: %v", err)
	}
	if got.Project.Name != "Acme" {
		t.Fatalf("unexpected project name %q", got.Project.Name)
	}
}

func TestMakeSpecRequiresPrompt(t *testing.T) {
	h := NewAPIHandler(&stubConverter{ws: testSpec()}, nil)

	w := postJSON(t, h.MakeSpec, "/api/spec", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestMakeSpecMapsValidationError(t *testing.T) {
	h := NewAPIHandler(&stubConverter{
		err: &spec.ValidationError{Field: "pages[0].route", Reason: "is required"},
	}, nil)

	w := postJSON(t, h.MakeSpec, "/api/spec", `{"prompt": "x"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pages[0].route") {
		t.Fatalf("expected offending field in message, got %s", w.Body.String())
	}
}

func TestMakeSpecMapsServiceError(t *testing.T) {
	h := NewAPIHandler(&stubConverter{
		err: &ai.ExternalServiceError{Kind: ai.KindTransport, Err: context.DeadlineExceeded},
	}, nil)

	w := postJSON(t, h.MakeSpec, "/api/spec", `{"prompt": "x"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
}

func TestMakeSpecMapsAuthErrorToServerFault(t *testing.T) {
	h := NewAPIHandler(&stubConverter{
		err: &ai.ExternalServiceError{Kind: ai.KindAuth, Err: context.Canceled},
	}, nil)

	w := postJSON(t, h.MakeSpec, "/api/spec", `{"prompt": "x"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}

func TestGenerateSiteReturnsZip(t *testing.T) {
	h := NewAPIHandler(&stubConverter{ws: testSpec()}, nil)

	w := postJSON(t, h.GenerateSite, "/api/generate", `{"prompt": "company site"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("expected zip content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", cd)
	}

	data := w.Body.Bytes()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("body is not a zip archive: %v", err)
	}
	found := false
	for _, f := range r.File {
		if f.Name == "src/pages/HomePage.jsx" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected HomePage.jsx in archive")
	}
}

func TestGenerateSiteMapsServiceError(t *testing.T) {
	h := NewAPIHandler(&stubConverter{
		err: &ai.ExternalServiceError{Kind: ai.KindRateLimit, Err: context.DeadlineExceeded},
	}, nil)

	w := postJSON(t, h.GenerateSite, "/api/generate", `{"prompt": "x"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
}

func TestGenerateSiteRenderFailureIsAllOrNothing(t *testing.T) {
	ws := testSpec()
	// Non-scalar prop shape makes the Hero template refuse to render.
	ws.Pages[0].Sections[0].Props = map[string]any{"headline": map[string]any{"nested": true}}
	h := NewAPIHandler(&stubConverter{ws: ws}, nil)

	w := postJSON(t, h.GenerateSite, "/api/generate", `{"prompt": "x"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); strings.Contains(ct, "zip") {
		t.Fatal("no archive should be produced on render failure")
	}
}
