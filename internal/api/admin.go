package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acns/backend/internal/storage"
)

func registerAdminRoutes(r chi.Router, store *storage.Store) {
	r.Put("/settings", handleUpdateSettings(store))

	r.Post("/services", handleCreateService(store))
	r.Put("/services/{id}", handleUpdateService(store))
	r.Delete("/services/{id}", handleDeleteService(store))

	r.Post("/blogs", handleCreatePost(store))
	r.Put("/blogs/{id}", handleUpdatePost(store))
	r.Delete("/blogs/{id}", handleDeletePost(store))

	r.Post("/products", handleCreateProduct(store))
	r.Put("/products/{id}", handleUpdateProduct(store))
	r.Delete("/products/{id}", handleDeleteProduct(store))

	r.Post("/jobs", handleCreateJob(store))
	r.Put("/jobs/{id}", handleUpdateJob(store))
	r.Delete("/jobs/{id}", handleDeleteJob(store))

	r.Post("/testimonials", handleCreateTestimonial(store))

	r.Get("/contacts", handleListContacts(store))
	r.Patch("/contacts/{id}", handleUpdateContactStatus(store))
}

func requireFields(w http.ResponseWriter, pairs ...string) bool {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "%s is required", pairs[i])
			return false
		}
	}
	return true
}

func handleUpdateSettings(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings storage.WebsiteSettings
		if !decodeBody(w, r, &settings) {
			return
		}
		if !requireFields(w, "companyName", settings.CompanyName) {
			return
		}
		if settings.ID == "" {
			settings.ID = uuid.New().String()
		}
		if err := store.UpsertSettings(settings); err != nil {
			storeError(w, err)
			return
		}
		updated, err := store.GetSettings()
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func handleCreateService(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var svc storage.Service
		if !decodeBody(w, r, &svc) {
			return
		}
		if !requireFields(w, "name", svc.Name, "slug", svc.Slug) {
			return
		}
		svc.ID = uuid.New().String()
		svc.CreatedAt = time.Now().UTC()
		if err := store.SaveService(svc); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, svc)
	}
}

func handleUpdateService(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var svc storage.Service
		if !decodeBody(w, r, &svc) {
			return
		}
		svc.ID = chi.URLParam(r, "id")
		if err := store.UpdateService(svc); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, svc)
	}
}

func handleDeleteService(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteService(chi.URLParam(r, "id")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCreatePost(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post storage.BlogPost
		if !decodeBody(w, r, &post) {
			return
		}
		if !requireFields(w, "title", post.Title, "slug", post.Slug, "content", post.Content) {
			return
		}
		post.ID = uuid.New().String()
		post.CreatedAt = time.Now().UTC()
		if err := store.SavePost(post); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, post)
	}
}

func handleUpdatePost(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post storage.BlogPost
		if !decodeBody(w, r, &post) {
			return
		}
		post.ID = chi.URLParam(r, "id")
		if err := store.UpdatePost(post); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

func handleDeletePost(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeletePost(chi.URLParam(r, "id")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCreateProduct(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product storage.Product
		if !decodeBody(w, r, &product) {
			return
		}
		if !requireFields(w, "name", product.Name, "slug", product.Slug) {
			return
		}
		product.ID = uuid.New().String()
		product.CreatedAt = time.Now().UTC()
		if err := store.SaveProduct(product); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, product)
	}
}

func handleUpdateProduct(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product storage.Product
		if !decodeBody(w, r, &product) {
			return
		}
		product.ID = chi.URLParam(r, "id")
		if err := store.UpdateProduct(product); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}

func handleDeleteProduct(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteProduct(chi.URLParam(r, "id")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCreateJob(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var job storage.JobOpening
		if !decodeBody(w, r, &job) {
			return
		}
		if !requireFields(w, "title", job.Title, "slug", job.Slug) {
			return
		}
		job.ID = uuid.New().String()
		job.CreatedAt = time.Now().UTC()
		if err := store.SaveJob(job); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, job)
	}
}

func handleUpdateJob(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var job storage.JobOpening
		if !decodeBody(w, r, &job) {
			return
		}
		job.ID = chi.URLParam(r, "id")
		if err := store.UpdateJob(job); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

func handleDeleteJob(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteJob(chi.URLParam(r, "id")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCreateTestimonial(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t storage.Testimonial
		if !decodeBody(w, r, &t) {
			return
		}
		if !requireFields(w, "clientName", t.ClientName, "content", t.Content) {
			return
		}
		t.ID = uuid.New().String()
		t.CreatedAt = time.Now().UTC()
		if err := store.SaveTestimonial(t); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

func handleListContacts(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := pagination(r)
		contacts, err := store.ListContacts(limit, offset)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
	}
}

func handleUpdateContactStatus(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		switch req.Status {
		case "new", "read", "replied", "archived":
		default:
			httpError(w, http.StatusBadRequest, "invalid_request_error", "unsupported status %q", req.Status)
			return
		}
		if err := store.UpdateContactStatus(chi.URLParam(r, "id"), req.Status); err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": chi.URLParam(r, "id"), "status": req.Status})
	}
}
