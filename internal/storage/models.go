package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// WebsiteSettings is the singleton row holding company-wide site settings.
type WebsiteSettings struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"companyName"`
	Tagline      string    `json:"tagline"`
	ContactEmail string    `json:"contactEmail"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ShortDesc   string    `json:"shortDesc"`
	Features    string    `json:"features"` // JSON array stored as text
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Tags        string    `json:"tags"` // JSON array stored as text
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ShortDesc   string    `json:"shortDesc"`
	Features    string    `json:"features"` // JSON array stored as text
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

type JobOpening struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Type        string    `json:"type"` // "full-time", "part-time", "contract"
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Testimonial struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	Company    string    `json:"company"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	IsActive   bool      `json:"isActive"`
	SortOrder  int       `json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // "new", "read", "replied"
	CreatedAt time.Time `json:"createdAt"`
}
