package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/acns/backend/internal/storage"
)

func TestAdminRequiresToken(t *testing.T) {
	h, _ := newTestHandler(t, &fakeModel{text: "x"}, nil)

	rr := doJSON(t, h, http.MethodGet, "/api/admin/contacts", "", "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/admin/contacts", "", "wrong-token")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("wrong token status = %d, want 401", rr.Code)
	}
	if got := errType(t, rr); got != "authentication_error" {
		t.Errorf("error type = %q", got)
	}
}

func TestAdminServiceLifecycle(t *testing.T) {
	h, _ := newTestHandler(t, &fakeModel{text: "x"}, nil)

	rr := doJSON(t, h, http.MethodPost, "/api/admin/services",
		`{"name":"Edge Computing","slug":"edge-computing","shortDesc":"Edge","isActive":true}`, testAdminToken)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var created storage.Service
	json.NewDecoder(rr.Body).Decode(&created)
	if created.ID == "" {
		t.Fatal("created service has no ID")
	}

	// Visible on the public surface.
	rr = doJSON(t, h, http.MethodGet, "/api/services/edge-computing", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("public GET after create = %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodPut, "/api/admin/services/"+created.ID,
		`{"name":"Edge Computing v2","slug":"edge-computing","isActive":true}`, testAdminToken)
	if rr.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, h, http.MethodGet, "/api/services/edge-computing", "", "")
	var got storage.Service
	json.NewDecoder(rr.Body).Decode(&got)
	if got.Name != "Edge Computing v2" {
		t.Errorf("name after update = %q", got.Name)
	}

	rr = doJSON(t, h, http.MethodDelete, "/api/admin/services/"+created.ID, "", testAdminToken)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/services/edge-computing", "", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("public GET after delete = %d, want 404", rr.Code)
	}
}

func TestAdminCreateValidation(t *testing.T) {
	h, _ := newTestHandler(t, &fakeModel{text: "x"}, nil)

	rr := doJSON(t, h, http.MethodPost, "/api/admin/services", `{"slug":"no-name"}`, testAdminToken)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want 400", rr.Code)
	}

	rr = doJSON(t, h, http.MethodPost, "/api/admin/blogs", `{"title":"x","slug":"x"}`, testAdminToken)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing content status = %d, want 400", rr.Code)
	}
}

func TestAdminUpdateMissingReturns404(t *testing.T) {
	h, _ := newTestHandler(t, &fakeModel{text: "x"}, nil)

	rr := doJSON(t, h, http.MethodPut, "/api/admin/products/missing",
		`{"name":"X","slug":"x"}`, testAdminToken)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestAdminSettingsUpdate(t *testing.T) {
	h, store := newTestHandler(t, &fakeModel{text: "x"}, nil)
	if err := store.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	rr := doJSON(t, h, http.MethodPut, "/api/admin/settings",
		`{"companyName":"ACNS Global","contactEmail":"hello@acns.tech"}`, testAdminToken)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.CompanyName != "ACNS Global" {
		t.Errorf("company name = %q", settings.CompanyName)
	}
	if settings.ID != "main" {
		t.Errorf("settings ID = %q, want seeded row kept", settings.ID)
	}
}

func TestAdminContactWorkflow(t *testing.T) {
	h, _ := newTestHandler(t, &fakeModel{text: "x"}, nil)

	rr := doJSON(t, h, http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@example.com","message":"quote please"}`, "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("contact status = %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/admin/contacts", "", testAdminToken)
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d", rr.Code)
	}
	var list struct {
		Contacts []storage.ContactSubmission `json:"contacts"`
	}
	json.NewDecoder(rr.Body).Decode(&list)
	if len(list.Contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(list.Contacts))
	}
	id := list.Contacts[0].ID

	rr = doJSON(t, h, http.MethodPatch, "/api/admin/contacts/"+id, `{"status":"spam"}`, testAdminToken)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad status value = %d, want 400", rr.Code)
	}

	rr = doJSON(t, h, http.MethodPatch, "/api/admin/contacts/"+id, `{"status":"replied"}`, testAdminToken)
	if rr.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body = %s", rr.Code, rr.Body.String())
	}
}
