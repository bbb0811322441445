package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Seed inserts the default website settings, starter services, and
// testimonials. Each section is skipped when the table already has rows, so
// running it repeatedly is safe.
func (s *Store) Seed() error {
	if _, err := s.GetSettings(); err == ErrNotFound {
		settings := WebsiteSettings{
			ID:           "main",
			CompanyName:  "Advanced Cloud & Network Solutions",
			Tagline:      "Empowering Businesses with Cutting-Edge Technology",
			ContactEmail: "contact@acns.tech",
			Phone:        "+1 (555) 123-4567",
			Address:      "123 Tech Innovation Drive, San Francisco, CA 94105, USA",
		}
		if err := s.UpsertSettings(settings); err != nil {
			return fmt.Errorf("seeding settings: %w", err)
		}
	} else if err != nil {
		return err
	}

	var serviceCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&serviceCount); err != nil {
		return err
	}
	if serviceCount == 0 {
		now := time.Now().UTC()
		services := []Service{
			{
				Name:      "Cloud Infrastructure",
				Slug:      "cloud-infrastructure",
				ShortDesc: "Scalable and secure cloud solutions tailored to your business needs.",
				Description: "Our cloud infrastructure services provide robust, scalable, and cost-effective solutions " +
					"built on leading platforms including AWS, Azure, and Google Cloud. We help you migrate, manage, " +
					"and optimize your cloud environment for maximum performance and efficiency.",
				Features:  `["Cloud Migration & Strategy","Multi-Cloud Architecture","Cloud Security & Compliance","Cost Optimization","24/7 Monitoring & Support"]`,
				SortOrder: 1,
			},
			{
				Name:      "Network Solutions",
				Slug:      "network-solutions",
				ShortDesc: "Enterprise-grade networking for reliable connectivity.",
				Description: "Build a resilient and high-performance network infrastructure with our comprehensive " +
					"networking solutions. From SD-WAN implementation to network security, we ensure your organization " +
					"stays connected and protected.",
				Features:  `["SD-WAN Implementation","Network Security","Wireless Solutions","Network Monitoring","Performance Optimization"]`,
				SortOrder: 2,
			},
			{
				Name:      "Cybersecurity",
				Slug:      "cybersecurity",
				ShortDesc: "Comprehensive security solutions to protect your digital assets.",
				Description: "Protect your organization from evolving cyber threats with our comprehensive security " +
					"services. Our team of security experts provides end-to-end protection including threat assessment, " +
					"implementation, and ongoing monitoring.",
				Features:  `["Threat Assessment & Penetration Testing","Security Operations Center (SOC)","Identity & Access Management","Compliance & Risk Management","Incident Response"]`,
				SortOrder: 3,
			},
			{
				Name:      "Digital Transformation",
				Slug:      "digital-transformation",
				ShortDesc: "Modernize your business with end-to-end digital solutions.",
				Description: "Embrace the digital future with our comprehensive transformation services. We help " +
					"organizations reimagine their processes, adopt modern technologies, and create exceptional digital " +
					"experiences.",
				Features:  `["Business Process Automation","Legacy System Modernization","API Integration","Data Analytics & BI","Change Management"]`,
				SortOrder: 4,
			},
		}
		for _, svc := range services {
			svc.ID = uuid.New().String()
			svc.IsActive = true
			svc.CreatedAt = now
			if err := s.SaveService(svc); err != nil {
				return fmt.Errorf("seeding service %s: %w", svc.Slug, err)
			}
		}
	}

	var testimonialCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM testimonials`).Scan(&testimonialCount); err != nil {
		return err
	}
	if testimonialCount == 0 {
		now := time.Now().UTC()
		testimonials := []Testimonial{
			{
				ClientName: "Sarah Johnson",
				Company:    "TechFlow Industries",
				Content: "ACNS transformed our entire IT infrastructure. Their cloud migration expertise saved us 40% " +
					"on operational costs while improving our system reliability dramatically.",
				Rating:    5,
				SortOrder: 1,
			},
			{
				ClientName: "Michael Chen",
				Company:    "DataDrive Solutions",
				Content: "Working with ACNS on our network security has been game-changing. Their team identified " +
					"vulnerabilities we never knew existed and implemented world-class protection.",
				Rating:    5,
				SortOrder: 2,
			},
			{
				ClientName: "Emily Rodriguez",
				Company:    "InnovateTech Startup",
				Content: "As a growing startup, we needed a technology partner who could scale with us. ACNS provided " +
					"exactly that, with flexible solutions and exceptional support.",
				Rating:    5,
				SortOrder: 3,
			},
		}
		for _, tm := range testimonials {
			tm.ID = uuid.New().String()
			tm.IsActive = true
			tm.CreatedAt = now
			if err := s.SaveTestimonial(tm); err != nil {
				return fmt.Errorf("seeding testimonial for %s: %w", tm.ClientName, err)
			}
		}
	}

	return nil
}
