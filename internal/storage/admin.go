package storage

import (
	"database/sql"
	"time"
)

// Write-side queries used by the admin API, the contact form, and seeding.

func (s *Store) SaveService(v Service) error {
	_, err := s.db.Exec(`
		INSERT INTO services (id, name, slug, description, short_desc, features, is_active, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Name, v.Slug, v.Description, v.ShortDesc, orJSONArray(v.Features),
		v.IsActive, v.SortOrder, v.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) UpdateService(v Service) error {
	res, err := s.db.Exec(`
		UPDATE services SET name = ?, slug = ?, description = ?, short_desc = ?, features = ?, is_active = ?, sort_order = ?
		WHERE id = ?`,
		v.Name, v.Slug, v.Description, v.ShortDesc, orJSONArray(v.Features), v.IsActive, v.SortOrder, v.ID,
	)
	return checkAffected(res, err)
}

func (s *Store) DeleteService(id string) error {
	res, err := s.db.Exec(`DELETE FROM services WHERE id = ?`, id)
	return checkAffected(res, err)
}

func (s *Store) SavePost(b BlogPost) error {
	_, err := s.db.Exec(`
		INSERT INTO blog_posts (id, title, slug, excerpt, content, author, category, tags, is_published, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Author, b.Category, orJSONArray(b.Tags),
		b.IsPublished, b.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) UpdatePost(b BlogPost) error {
	res, err := s.db.Exec(`
		UPDATE blog_posts SET title = ?, slug = ?, excerpt = ?, content = ?, author = ?, category = ?, tags = ?, is_published = ?
		WHERE id = ?`,
		b.Title, b.Slug, b.Excerpt, b.Content, b.Author, b.Category, orJSONArray(b.Tags), b.IsPublished, b.ID,
	)
	return checkAffected(res, err)
}

func (s *Store) DeletePost(id string) error {
	res, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = ?`, id)
	return checkAffected(res, err)
}

func (s *Store) SaveProduct(p Product) error {
	_, err := s.db.Exec(`
		INSERT INTO products (id, name, slug, description, short_desc, features, category, is_active, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Slug, p.Description, p.ShortDesc, orJSONArray(p.Features), p.Category,
		p.IsActive, p.SortOrder, p.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) UpdateProduct(p Product) error {
	res, err := s.db.Exec(`
		UPDATE products SET name = ?, slug = ?, description = ?, short_desc = ?, features = ?, category = ?, is_active = ?, sort_order = ?
		WHERE id = ?`,
		p.Name, p.Slug, p.Description, p.ShortDesc, orJSONArray(p.Features), p.Category, p.IsActive, p.SortOrder, p.ID,
	)
	return checkAffected(res, err)
}

func (s *Store) DeleteProduct(id string) error {
	res, err := s.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return checkAffected(res, err)
}

func (s *Store) SaveJob(j JobOpening) error {
	jobType := j.Type
	if jobType == "" {
		jobType = "full-time"
	}
	_, err := s.db.Exec(`
		INSERT INTO job_openings (id, title, slug, department, location, type, description, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.Title, j.Slug, j.Department, j.Location, jobType, j.Description,
		j.IsActive, j.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) UpdateJob(j JobOpening) error {
	res, err := s.db.Exec(`
		UPDATE job_openings SET title = ?, slug = ?, department = ?, location = ?, type = ?, description = ?, is_active = ?
		WHERE id = ?`,
		j.Title, j.Slug, j.Department, j.Location, j.Type, j.Description, j.IsActive, j.ID,
	)
	return checkAffected(res, err)
}

func (s *Store) DeleteJob(id string) error {
	res, err := s.db.Exec(`DELETE FROM job_openings WHERE id = ?`, id)
	return checkAffected(res, err)
}

func (s *Store) SaveTestimonial(t Testimonial) error {
	_, err := s.db.Exec(`
		INSERT INTO testimonials (id, client_name, company, content, rating, is_active, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ClientName, t.Company, t.Content, t.Rating, t.IsActive, t.SortOrder,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// UpsertSettings replaces the settings singleton, keeping the existing row ID
// when one is present.
func (s *Store) UpsertSettings(w WebsiteSettings) error {
	now := time.Now().UTC().Format(time.RFC3339)
	existing, err := s.GetSettings()
	if err == nil {
		_, err = s.db.Exec(`
			UPDATE website_settings SET company_name = ?, tagline = ?, contact_email = ?, phone = ?, address = ?, updated_at = ?
			WHERE id = ?`,
			w.CompanyName, w.Tagline, w.ContactEmail, w.Phone, w.Address, now, existing.ID,
		)
		return err
	}
	if err != ErrNotFound {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO website_settings (id, company_name, tagline, contact_email, phone, address, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.CompanyName, w.Tagline, w.ContactEmail, w.Phone, w.Address, now,
	)
	return err
}

func (s *Store) SaveContact(c ContactSubmission) error {
	status := c.Status
	if status == "" {
		status = "new"
	}
	_, err := s.db.Exec(`
		INSERT INTO contact_submissions (id, name, email, phone, subject, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, status,
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListContacts returns contact submissions, newest first.
func (s *Store) ListContacts(limit, offset int) ([]ContactSubmission, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, phone, subject, message, status, created_at
		FROM contact_submissions ORDER BY created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ContactSubmission
	for rows.Next() {
		var c ContactSubmission
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &createdAt); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

func (s *Store) UpdateContactStatus(id, status string) error {
	res, err := s.db.Exec(`UPDATE contact_submissions SET status = ? WHERE id = ?`, status, id)
	return checkAffected(res, err)
}

// checkAffected maps zero-row updates and deletes to ErrNotFound.
func checkAffected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func orJSONArray(v string) string {
	if v == "" {
		return "[]"
	}
	return v
}
