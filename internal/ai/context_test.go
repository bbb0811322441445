package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/acns/backend/internal/storage"
)

// flakyReader fails the queries named in fail and serves fixed data otherwise.
type flakyReader struct {
	fail map[string]bool
}

func (r *flakyReader) GetSettings() (storage.WebsiteSettings, error) {
	if r.fail["settings"] {
		return storage.WebsiteSettings{}, errors.New("boom")
	}
	return storage.WebsiteSettings{ID: "main", CompanyName: "ACNS"}, nil
}

func (r *flakyReader) ActiveServices(limit int) ([]storage.Service, error) {
	if r.fail["services"] {
		return nil, errors.New("boom")
	}
	return []storage.Service{{ID: "s1", Name: "Cloud"}}, nil
}

func (r *flakyReader) RecentPosts(limit int) ([]storage.BlogPost, error) {
	if r.fail["posts"] {
		return nil, errors.New("boom")
	}
	return []storage.BlogPost{{ID: "p1", Title: "Post"}}, nil
}

func (r *flakyReader) ActiveJobs(limit int) ([]storage.JobOpening, error) {
	if r.fail["jobs"] {
		return nil, errors.New("boom")
	}
	return []storage.JobOpening{{ID: "j1", Title: "SRE"}}, nil
}

func (r *flakyReader) ActiveProducts(limit int) ([]storage.Product, error) {
	if r.fail["products"] {
		return nil, errors.New("boom")
	}
	return []storage.Product{{ID: "pr1", Name: "NetGuard"}}, nil
}

func TestFetchFullSnapshot(t *testing.T) {
	f := NewContextFetcher(&flakyReader{})

	lc := f.Fetch(context.Background())
	if lc.Settings == nil || lc.Settings.CompanyName != "ACNS" {
		t.Errorf("Settings = %+v, want ACNS", lc.Settings)
	}
	if len(lc.Services) != 1 || len(lc.RecentPosts) != 1 || len(lc.ActiveJobs) != 1 || len(lc.Products) != 1 {
		t.Errorf("snapshot incomplete: %+v", lc)
	}
}

// TestFetchDegradesPerQuery verifies one failing query leaves the rest of the
// snapshot intact instead of failing the whole fetch.
func TestFetchDegradesPerQuery(t *testing.T) {
	f := NewContextFetcher(&flakyReader{fail: map[string]bool{"services": true, "settings": true}})

	lc := f.Fetch(context.Background())
	if lc.Settings != nil {
		t.Errorf("Settings = %+v, want nil on failure", lc.Settings)
	}
	if lc.Services != nil {
		t.Errorf("Services = %+v, want nil on failure", lc.Services)
	}
	if len(lc.RecentPosts) != 1 || len(lc.ActiveJobs) != 1 || len(lc.Products) != 1 {
		t.Errorf("unrelated queries degraded too: %+v", lc)
	}
}

func TestFetchAllFailing(t *testing.T) {
	f := NewContextFetcher(&flakyReader{fail: map[string]bool{
		"settings": true, "services": true, "posts": true, "jobs": true, "products": true,
	}})

	lc := f.Fetch(context.Background())
	if lc.Settings != nil || lc.Services != nil || lc.RecentPosts != nil || lc.ActiveJobs != nil || lc.Products != nil {
		t.Errorf("expected empty snapshot, got %+v", lc)
	}
}
