package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Read-side queries used by the public API and the AI subsystem. All filters
// (active/published flags, sort keys, caps) are fixed here rather than built
// dynamically by callers.

const serviceCols = "id, name, slug, description, short_desc, features, is_active, sort_order, created_at"
const blogCols = "id, title, slug, excerpt, content, author, category, tags, is_published, created_at"
const productCols = "id, name, slug, description, short_desc, features, category, is_active, sort_order, created_at"
const jobCols = "id, title, slug, department, location, type, description, is_active, created_at"

// GetSettings returns the website settings singleton, or ErrNotFound when the
// database has not been seeded yet.
func (s *Store) GetSettings() (WebsiteSettings, error) {
	var w WebsiteSettings
	var updatedAt string
	err := s.db.QueryRow(`
		SELECT id, company_name, tagline, contact_email, phone, address, updated_at
		FROM website_settings LIMIT 1`,
	).Scan(&w.ID, &w.CompanyName, &w.Tagline, &w.ContactEmail, &w.Phone, &w.Address, &updatedAt)
	if err == sql.ErrNoRows {
		return WebsiteSettings{}, ErrNotFound
	}
	if err != nil {
		return WebsiteSettings{}, err
	}
	if w.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return WebsiteSettings{}, err
	}
	return w, nil
}

// ActiveServices returns up to limit active services ordered by sort key.
func (s *Store) ActiveServices(limit int) ([]Service, error) {
	rows, err := s.db.Query(`
		SELECT `+serviceCols+` FROM services
		WHERE is_active = 1 ORDER BY sort_order ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return scanServices(rows)
}

// RecentPosts returns up to limit published posts, newest first.
func (s *Store) RecentPosts(limit int) ([]BlogPost, error) {
	rows, err := s.db.Query(`
		SELECT `+blogCols+` FROM blog_posts
		WHERE is_published = 1 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

// ListPosts returns published posts newest first with limit/offset paging.
func (s *Store) ListPosts(limit, offset int) ([]BlogPost, error) {
	rows, err := s.db.Query(`
		SELECT `+blogCols+` FROM blog_posts
		WHERE is_published = 1 ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

// LatestPost returns the most recent published post.
func (s *Store) LatestPost() (BlogPost, error) {
	posts, err := s.RecentPosts(1)
	if err != nil {
		return BlogPost{}, err
	}
	if len(posts) == 0 {
		return BlogPost{}, ErrNotFound
	}
	return posts[0], nil
}

// ActiveJobs returns up to limit active job openings.
func (s *Store) ActiveJobs(limit int) ([]JobOpening, error) {
	rows, err := s.db.Query(`
		SELECT `+jobCols+` FROM job_openings
		WHERE is_active = 1 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

// CountActiveJobs returns the number of active job openings.
func (s *Store) CountActiveJobs() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM job_openings WHERE is_active = 1`).Scan(&n)
	return n, err
}

// ActiveProducts returns up to limit active products ordered by sort key.
func (s *Store) ActiveProducts(limit int) ([]Product, error) {
	rows, err := s.db.Query(`
		SELECT `+productCols+` FROM products
		WHERE is_active = 1 ORDER BY sort_order ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

// ActiveTestimonials returns active testimonials ordered by sort key.
func (s *Store) ActiveTestimonials(limit int) ([]Testimonial, error) {
	rows, err := s.db.Query(`
		SELECT id, client_name, company, content, rating, is_active, sort_order, created_at
		FROM testimonials WHERE is_active = 1 ORDER BY sort_order ASC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Testimonial
	for rows.Next() {
		var t Testimonial
		var createdAt string
		if err := rows.Scan(&t.ID, &t.ClientName, &t.Company, &t.Content, &t.Rating, &t.IsActive, &t.SortOrder, &createdAt); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

// --- Lookup by ID / slug ---

func (s *Store) GetService(id string) (Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceCols+` FROM services WHERE id = ?`, id)
	return scanService(row)
}

func (s *Store) GetServiceBySlug(slug string) (Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceCols+` FROM services WHERE slug = ? AND is_active = 1`, slug)
	return scanService(row)
}

func (s *Store) GetPost(id string) (BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+blogCols+` FROM blog_posts WHERE id = ?`, id)
	return scanPost(row)
}

func (s *Store) GetPostBySlug(slug string) (BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+blogCols+` FROM blog_posts WHERE slug = ? AND is_published = 1`, slug)
	return scanPost(row)
}

func (s *Store) GetProduct(id string) (Product, error) {
	row := s.db.QueryRow(`SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return scanProduct(row)
}

func (s *Store) GetProductBySlug(slug string) (Product, error) {
	row := s.db.QueryRow(`SELECT `+productCols+` FROM products WHERE slug = ? AND is_active = 1`, slug)
	return scanProduct(row)
}

func (s *Store) GetJob(id string) (JobOpening, error) {
	rows, err := s.db.Query(`SELECT `+jobCols+` FROM job_openings WHERE id = ?`, id)
	if err != nil {
		return JobOpening{}, err
	}
	jobs, err := scanJobs(rows)
	if err != nil {
		return JobOpening{}, err
	}
	if len(jobs) == 0 {
		return JobOpening{}, ErrNotFound
	}
	return jobs[0], nil
}

// --- Keyword search (case-insensitive substring match) ---

// SearchServices matches term against name, description, and short_desc of
// active services.
func (s *Store) SearchServices(term string, limit int) ([]Service, error) {
	p := likePattern(term)
	rows, err := s.db.Query(`
		SELECT `+serviceCols+` FROM services
		WHERE is_active = 1 AND (name LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR short_desc LIKE ? ESCAPE '\')
		ORDER BY sort_order ASC LIMIT ?`, p, p, p, limit)
	if err != nil {
		return nil, err
	}
	return scanServices(rows)
}

// SearchPosts matches term against title, content, excerpt, and category of
// published posts.
func (s *Store) SearchPosts(term string, limit int) ([]BlogPost, error) {
	p := likePattern(term)
	rows, err := s.db.Query(`
		SELECT `+blogCols+` FROM blog_posts
		WHERE is_published = 1 AND (title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\' OR excerpt LIKE ? ESCAPE '\' OR category LIKE ? ESCAPE '\')
		ORDER BY created_at DESC LIMIT ?`, p, p, p, p, limit)
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

// SearchProducts matches term against name, description, short_desc, and
// category of active products.
func (s *Store) SearchProducts(term string, limit int) ([]Product, error) {
	p := likePattern(term)
	rows, err := s.db.Query(`
		SELECT `+productCols+` FROM products
		WHERE is_active = 1 AND (name LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR short_desc LIKE ? ESCAPE '\' OR category LIKE ? ESCAPE '\')
		ORDER BY sort_order ASC LIMIT ?`, p, p, p, p, limit)
	if err != nil {
		return nil, err
	}
	return scanProducts(rows)
}

// SearchJobs matches term against title, description, department, and
// location of active openings.
func (s *Store) SearchJobs(term string, limit int) ([]JobOpening, error) {
	p := likePattern(term)
	rows, err := s.db.Query(`
		SELECT `+jobCols+` FROM job_openings
		WHERE is_active = 1 AND (title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR department LIKE ? ESCAPE '\' OR location LIKE ? ESCAPE '\')
		ORDER BY created_at DESC LIMIT ?`, p, p, p, p, limit)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

// likePattern escapes LIKE metacharacters so the term matches literally.
// SQLite LIKE is case-insensitive for ASCII by default.
func likePattern(term string) string {
	escaped := ""
	for _, r := range term {
		if r == '%' || r == '_' {
			escaped += "\\"
		}
		escaped += string(r)
	}
	return "%" + escaped + "%"
}

// --- Scan helpers ---

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp: %w", err)
	}
	return t, nil
}

func scanService(row *sql.Row) (Service, error) {
	var v Service
	var createdAt string
	err := row.Scan(&v.ID, &v.Name, &v.Slug, &v.Description, &v.ShortDesc, &v.Features, &v.IsActive, &v.SortOrder, &createdAt)
	if err == sql.ErrNoRows {
		return Service{}, ErrNotFound
	}
	if err != nil {
		return Service{}, err
	}
	if v.CreatedAt, err = parseTime(createdAt); err != nil {
		return Service{}, err
	}
	return v, nil
}

func scanServices(rows *sql.Rows) ([]Service, error) {
	defer rows.Close()
	var results []Service
	for rows.Next() {
		var v Service
		var createdAt string
		if err := rows.Scan(&v.ID, &v.Name, &v.Slug, &v.Description, &v.ShortDesc, &v.Features, &v.IsActive, &v.SortOrder, &createdAt); err != nil {
			return nil, err
		}
		var err error
		if v.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, rows.Err()
}

func scanPost(row *sql.Row) (BlogPost, error) {
	var b BlogPost
	var createdAt string
	err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Author, &b.Category, &b.Tags, &b.IsPublished, &createdAt)
	if err == sql.ErrNoRows {
		return BlogPost{}, ErrNotFound
	}
	if err != nil {
		return BlogPost{}, err
	}
	if b.CreatedAt, err = parseTime(createdAt); err != nil {
		return BlogPost{}, err
	}
	return b, nil
}

func scanPosts(rows *sql.Rows) ([]BlogPost, error) {
	defer rows.Close()
	var results []BlogPost
	for rows.Next() {
		var b BlogPost
		var createdAt string
		if err := rows.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Author, &b.Category, &b.Tags, &b.IsPublished, &createdAt); err != nil {
			return nil, err
		}
		var err error
		if b.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		results = append(results, b)
	}
	return results, rows.Err()
}

func scanProduct(row *sql.Row) (Product, error) {
	var p Product
	var createdAt string
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDesc, &p.Features, &p.Category, &p.IsActive, &p.SortOrder, &createdAt)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return Product{}, err
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	defer rows.Close()
	var results []Product
	for rows.Next() {
		var p Product
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDesc, &p.Features, &p.Category, &p.IsActive, &p.SortOrder, &createdAt); err != nil {
			return nil, err
		}
		var err error
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

func scanJobs(rows *sql.Rows) ([]JobOpening, error) {
	defer rows.Close()
	var results []JobOpening
	for rows.Next() {
		var j JobOpening
		var createdAt string
		if err := rows.Scan(&j.ID, &j.Title, &j.Slug, &j.Department, &j.Location, &j.Type, &j.Description, &j.IsActive, &createdAt); err != nil {
			return nil, err
		}
		var err error
		if j.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		results = append(results, j)
	}
	return results, rows.Err()
}
