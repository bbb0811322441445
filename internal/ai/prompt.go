package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Persona facts baked into every system prompt.
const (
	companyName    = "ACNS (Advanced Cloud & Network Solutions)"
	founderName    = "Shaswata Saha"
	companyContact = "contact@acns.tech"
)

const personaIntro = `You are the ACNS AI Assistant, an intelligent, friendly, and professional support chatbot for ` +
	companyName + `, a global technology company founded by ` + founderName + `.`

const companyFacts = `COMPANY INFO
- Full Name: Advanced Cloud & Network Solutions (ACNS)
- Founder: ` + founderName + `
- Contact Email: ` + companyContact + `
- Core Services: Cloud Infrastructure, Network Solutions, Cybersecurity, Digital Transformation
- Mission: To empower businesses worldwide with innovative, secure, and scalable technology solutions
- Vision: To be the global leader in technology solutions`

const capabilities = `YOUR CAPABILITIES
1. Website Navigation Helper - guide users to the right pages
2. Service Expert - explain ACNS services in depth
3. Product Advisor - help users find the right product or solution
4. Career Guide - tell users about open positions and how to apply
5. Contact Helper - help users draft contact inquiries
6. Blog Recommender - suggest relevant blog posts or summarize content
7. Technical Consultant - answer general cloud, network, and security questions`

const personality = `PERSONALITY
- Tone: professional yet warm and approachable
- Always be helpful; never refuse a reasonable question
- Use bold text and bullet points for readability
- When referencing pages, provide the full URL link
- If you don't have specific information, say so and direct users to the contact page
- Keep replies concise but comprehensive
- When asked about pricing, say pricing is customized and offer to help send an inquiry
- Never reveal internal API details, database schemas, or credentials`

const adminClause = `The current user is an ADMIN with dashboard access. You can help them with admin-specific tasks ` +
	`like managing blog posts, products, services, and job openings, handling contact requests, and updating website settings.`

var pageLinks = []struct {
	name string
	path string
}{
	{"Home", "/"},
	{"About", "/about"},
	{"Services", "/services"},
	{"Products", "/products"},
	{"Blog", "/blog"},
	{"Careers", "/careers"},
	{"Contact", "/contact"},
}

// BuildSystemPrompt assembles the chat system prompt from the persona
// constants, the page link table for frontendURL, and a serialized live
// content snapshot. The admin clause is appended only when isAdmin is set.
// Pure function of its inputs; safe to call per request.
func BuildSystemPrompt(lc LiveContext, frontendURL string, isAdmin bool) string {
	var sb strings.Builder

	sb.WriteString(personaIntro)
	sb.WriteString("\n\n")
	sb.WriteString(companyFacts)
	sb.WriteString("\n\n")

	sb.WriteString("WEBSITE PAGES\n")
	for _, p := range pageLinks {
		fmt.Fprintf(&sb, "- %s: %s%s\n", p.name, frontendURL, p.path)
	}
	sb.WriteString("\n")

	sb.WriteString(capabilities)
	sb.WriteString("\n\n")

	sb.WriteString("LIVE CONTEXT\n")
	sb.WriteString(formatLiveContext(lc))
	sb.WriteString("\n")

	sb.WriteString(personality)

	if isAdmin {
		sb.WriteString("\n\n")
		sb.WriteString(adminClause)
	}

	return sb.String()
}

// Reduced views of content records so the prompt carries only the fields the
// model should see.

type settingsView struct {
	CompanyName string `json:"companyName"`
	Tagline     string `json:"tagline,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
}

type serviceView struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ShortDesc string `json:"shortDesc,omitempty"`
}

type blogView struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt,omitempty"`
	Category string `json:"category,omitempty"`
}

type jobView struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Department string `json:"department,omitempty"`
	Location   string `json:"location,omitempty"`
	Type       string `json:"type,omitempty"`
}

type productView struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ShortDesc string `json:"shortDesc,omitempty"`
	Category  string `json:"category,omitempty"`
}

func formatLiveContext(lc LiveContext) string {
	var sb strings.Builder

	if lc.Settings != nil {
		writeContextLine(&sb, "Website Settings", settingsView{
			CompanyName: lc.Settings.CompanyName,
			Tagline:     lc.Settings.Tagline,
			Phone:       lc.Settings.Phone,
			Email:       lc.Settings.ContactEmail,
			Address:     lc.Settings.Address,
		})
	}
	if len(lc.Services) > 0 {
		views := make([]serviceView, len(lc.Services))
		for i, s := range lc.Services {
			views[i] = serviceView{Name: s.Name, Slug: s.Slug, ShortDesc: s.ShortDesc}
		}
		writeContextLine(&sb, "Active Services", views)
	}
	if len(lc.RecentPosts) > 0 {
		views := make([]blogView, len(lc.RecentPosts))
		for i, b := range lc.RecentPosts {
			views[i] = blogView{Title: b.Title, Slug: b.Slug, Excerpt: b.Excerpt, Category: b.Category}
		}
		writeContextLine(&sb, "Recent Blog Posts", views)
	}
	if len(lc.ActiveJobs) > 0 {
		views := make([]jobView, len(lc.ActiveJobs))
		for i, j := range lc.ActiveJobs {
			views[i] = jobView{Title: j.Title, Slug: j.Slug, Department: j.Department, Location: j.Location, Type: j.Type}
		}
		writeContextLine(&sb, "Open Positions", views)
	}
	if len(lc.Products) > 0 {
		views := make([]productView, len(lc.Products))
		for i, p := range lc.Products {
			views[i] = productView{Name: p.Name, Slug: p.Slug, ShortDesc: p.ShortDesc, Category: p.Category}
		}
		writeContextLine(&sb, "Active Products", views)
	}

	if sb.Len() == 0 {
		return "(no live content available)\n"
	}
	return sb.String()
}

func writeContextLine(sb *strings.Builder, label string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, b)
}
