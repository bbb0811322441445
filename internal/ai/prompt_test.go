package ai

import (
	"strings"
	"testing"

	"github.com/acns/backend/internal/storage"
)

func testLiveContext() LiveContext {
	return LiveContext{
		Settings: &storage.WebsiteSettings{CompanyName: "ACNS", Tagline: "Tech that works"},
		Services: []storage.Service{
			{Name: "Cloud Infrastructure", Slug: "cloud-infrastructure", ShortDesc: "Scalable cloud"},
		},
		RecentPosts: []storage.BlogPost{
			{Title: "Zero Trust 101", Slug: "zero-trust-101", Category: "Security"},
		},
		ActiveJobs: []storage.JobOpening{
			{Title: "SRE", Slug: "sre", Department: "Engineering", Location: "Remote", Type: "full-time"},
		},
		Products: []storage.Product{
			{Name: "NetGuard", Slug: "netguard", Category: "Security"},
		},
	}
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	lc := testLiveContext()
	a := BuildSystemPrompt(lc, "https://acns.example", false)
	b := BuildSystemPrompt(lc, "https://acns.example", false)
	if a != b {
		t.Error("BuildSystemPrompt is not deterministic for identical input")
	}
}

func TestBuildSystemPromptContainsLiveContent(t *testing.T) {
	p := BuildSystemPrompt(testLiveContext(), "https://acns.example", false)

	for _, want := range []string{
		"Cloud Infrastructure",
		"Zero Trust 101",
		"SRE",
		"NetGuard",
		"Tech that works",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing live content %q", want)
		}
	}
}

func TestBuildSystemPromptPageLinks(t *testing.T) {
	p := BuildSystemPrompt(LiveContext{}, "https://acns.example", false)

	for _, want := range []string{
		"https://acns.example/services",
		"https://acns.example/careers",
		"https://acns.example/contact",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing page link %q", want)
		}
	}
}

func TestBuildSystemPromptAdminClause(t *testing.T) {
	visitor := BuildSystemPrompt(LiveContext{}, "https://acns.example", false)
	admin := BuildSystemPrompt(LiveContext{}, "https://acns.example", true)

	if strings.Contains(visitor, "ADMIN") {
		t.Error("visitor prompt must not contain the admin clause")
	}
	if !strings.Contains(admin, "ADMIN") {
		t.Error("admin prompt must contain the admin clause")
	}
}

func TestBuildSystemPromptEmptyContext(t *testing.T) {
	p := BuildSystemPrompt(LiveContext{}, "https://acns.example", false)
	if !strings.Contains(p, "no live content available") {
		t.Error("empty context should produce the placeholder line")
	}
}
