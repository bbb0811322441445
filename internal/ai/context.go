package ai

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/acns/backend/internal/storage"
)

// Caps on how much of each content type is injected into the system prompt.
const (
	contextServiceLimit = 10
	contextBlogLimit    = 5
	contextJobLimit     = 10
	contextProductLimit = 10
)

// ContentReader is the read-only slice of the data layer the fetcher needs.
type ContentReader interface {
	GetSettings() (storage.WebsiteSettings, error)
	ActiveServices(limit int) ([]storage.Service, error)
	RecentPosts(limit int) ([]storage.BlogPost, error)
	ActiveJobs(limit int) ([]storage.JobOpening, error)
	ActiveProducts(limit int) ([]storage.Product, error)
}

// LiveContext is a fresh, unpersisted snapshot of current site content. Any
// field may be empty when its query failed or the database holds no rows.
type LiveContext struct {
	Settings    *storage.WebsiteSettings
	Services    []storage.Service
	RecentPosts []storage.BlogPost
	ActiveJobs  []storage.JobOpening
	Products    []storage.Product
}

// ContextFetcher assembles LiveContext snapshots from the data layer.
type ContextFetcher struct {
	store  ContentReader
	logger *slog.Logger
}

// NewContextFetcher creates a fetcher over the given reader.
func NewContextFetcher(store ContentReader) *ContextFetcher {
	return &ContextFetcher{store: store, logger: slog.Default()}
}

// Fetch runs the five snapshot queries concurrently and merges the results.
// It never fails: a query error is logged and leaves that slice of the
// snapshot empty, so the caller always gets a usable (possibly partial)
// context.
func (f *ContextFetcher) Fetch(ctx context.Context) LiveContext {
	var out LiveContext

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		settings, err := f.store.GetSettings()
		if err != nil {
			if err != storage.ErrNotFound {
				f.logger.Warn("live context: settings query failed", "error", err)
			}
			return nil
		}
		out.Settings = &settings
		return nil
	})
	g.Go(func() error {
		services, err := f.store.ActiveServices(contextServiceLimit)
		if err != nil {
			f.logger.Warn("live context: services query failed", "error", err)
			return nil
		}
		out.Services = services
		return nil
	})
	g.Go(func() error {
		posts, err := f.store.RecentPosts(contextBlogLimit)
		if err != nil {
			f.logger.Warn("live context: blog query failed", "error", err)
			return nil
		}
		out.RecentPosts = posts
		return nil
	})
	g.Go(func() error {
		jobs, err := f.store.ActiveJobs(contextJobLimit)
		if err != nil {
			f.logger.Warn("live context: jobs query failed", "error", err)
			return nil
		}
		out.ActiveJobs = jobs
		return nil
	})
	g.Go(func() error {
		products, err := f.store.ActiveProducts(contextProductLimit)
		if err != nil {
			f.logger.Warn("live context: products query failed", "error", err)
			return nil
		}
		out.Products = products
		return nil
	})

	// Workers only ever return nil; failures degrade to an empty slice.
	_ = g.Wait()
	return out
}
