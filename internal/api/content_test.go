package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/acns/backend/internal/storage"
)

func TestPublicContentRoutes(t *testing.T) {
	h, store := newTestHandler(t, &fakeModel{text: "x"}, nil)
	if err := store.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	rr := doJSON(t, h, http.MethodGet, "/api/settings", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /api/settings = %d", rr.Code)
	}
	var settings storage.WebsiteSettings
	json.NewDecoder(rr.Body).Decode(&settings)
	if settings.CompanyName == "" {
		t.Error("settings missing company name")
	}

	rr = doJSON(t, h, http.MethodGet, "/api/services", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /api/services = %d", rr.Code)
	}
	var services struct {
		Services []storage.Service `json:"services"`
	}
	json.NewDecoder(rr.Body).Decode(&services)
	if len(services.Services) != 4 {
		t.Errorf("services = %d, want 4 seeded", len(services.Services))
	}

	rr = doJSON(t, h, http.MethodGet, "/api/services/cybersecurity", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /api/services/cybersecurity = %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/services/nope", "", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("GET /api/services/nope = %d, want 404", rr.Code)
	}
	if got := errType(t, rr); got != "not_found_error" {
		t.Errorf("error type = %q", got)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/testimonials", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /api/testimonials = %d", rr.Code)
	}
	var testimonials struct {
		Testimonials []storage.Testimonial `json:"testimonials"`
	}
	json.NewDecoder(rr.Body).Decode(&testimonials)
	if len(testimonials.Testimonials) != 3 {
		t.Errorf("testimonials = %d, want 3 seeded", len(testimonials.Testimonials))
	}
}

func TestContactSubmission(t *testing.T) {
	h, store := newTestHandler(t, &fakeModel{text: "x"}, nil)

	rr := doJSON(t, h, http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@example.com","message":"I need a quote"}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	contacts, err := store.ListContacts(10, 0)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(contacts) != 1 || contacts[0].Status != "new" {
		t.Errorf("stored contacts = %+v", contacts)
	}
}

func TestContactValidation(t *testing.T) {
	h, _ := newTestHandler(t, &fakeModel{text: "x"}, nil)

	for name, body := range map[string]string{
		"missing name":  `{"email":"jo@example.com","message":"hi"}`,
		"missing email": `{"name":"Jo","message":"hi"}`,
		"bad email":     `{"name":"Jo","email":"not-an-email","message":"hi"}`,
		"blank message": `{"name":"Jo","email":"jo@example.com","message":"  "}`,
	} {
		rr := doJSON(t, h, http.MethodPost, "/api/contact", body, "")
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rr.Code)
		}
	}
}

func TestBlogListAndPagination(t *testing.T) {
	h, _ := newTestHandler(t, &fakeModel{text: "x"}, nil)

	// Seed three published posts through the admin surface.
	for _, body := range []string{
		`{"title":"One","slug":"one","content":"a","isPublished":true}`,
		`{"title":"Two","slug":"two","content":"b","isPublished":true}`,
		`{"title":"Three","slug":"three","content":"c","isPublished":true}`,
	} {
		rr := doJSON(t, h, http.MethodPost, "/api/admin/blogs", body, testAdminToken)
		if rr.Code != http.StatusCreated {
			t.Fatalf("creating post: %d %s", rr.Code, rr.Body.String())
		}
	}

	rr := doJSON(t, h, http.MethodGet, "/api/blogs?limit=2", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /api/blogs = %d", rr.Code)
	}
	var posts struct {
		Posts []storage.BlogPost `json:"posts"`
	}
	json.NewDecoder(rr.Body).Decode(&posts)
	if len(posts.Posts) != 2 {
		t.Errorf("limit=2 returned %d posts", len(posts.Posts))
	}

	rr = doJSON(t, h, http.MethodGet, "/api/blogs/one", "", "")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/blogs/one = %d", rr.Code)
	}
}
