// Package ai implements the conversational assistant: key rotation, session
// history, live content context, and the chat, search, generation, and
// summarization flows on top of the Gemini API.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/acns/backend/internal/gemini"
	"github.com/acns/backend/internal/storage"
)

const (
	historyWindow  = 20
	searchHitLimit = 5

	maxMessageLen = 2000
	minPromptLen  = 5
	maxPromptLen  = 1000

	apologyReply = "I apologize, I could not generate a response. Please try again."
)

var (
	chatConfig      = &gemini.GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 40, MaxOutputTokens: 2048}
	generateConfig  = &gemini.GenerationConfig{Temperature: 0.8, TopP: 0.9, MaxOutputTokens: 4096}
	summaryConfig   = &gemini.GenerationConfig{Temperature: 0.5, MaxOutputTokens: 256}
	summarizeConfig = &gemini.GenerationConfig{Temperature: 0.3, MaxOutputTokens: 512}
)

// Generator is the upstream model call. *gemini.Client satisfies it; tests
// substitute a fake.
type Generator interface {
	Generate(ctx context.Context, apiKey string, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// Service ties the assistant flows together.
type Service struct {
	store       *storage.Store
	fetcher     *ContextFetcher
	keys        *KeyPool
	sessions    *SessionStore
	client      Generator
	frontendURL string
	logger      *slog.Logger
}

func NewService(store *storage.Store, keys *KeyPool, sessions *SessionStore, client Generator, frontendURL string) *Service {
	return &Service{
		store:       store,
		fetcher:     NewContextFetcher(store),
		keys:        keys,
		sessions:    sessions,
		client:      client,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      slog.Default().With("component", "ai"),
	}
}

// ChatResult is the reply to a single chat turn.
type ChatResult struct {
	Reply     string    `json:"reply"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat runs one conversation turn. An empty sessionID starts a fresh
// anonymous session; the returned SessionID must be echoed back by the
// caller to continue the conversation.
func (s *Service) Chat(ctx context.Context, sessionID, message string, isAdmin bool) (*ChatResult, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil, fmt.Errorf("%w: message must not be empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(msg) > maxMessageLen {
		return nil, fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, maxMessageLen)
	}

	key, err := s.keys.Next()
	if err != nil {
		return nil, err
	}

	if sessionID == "" {
		sessionID = AnonymousSessionID()
	}

	lc := s.fetcher.Fetch(ctx)
	sess := s.sessions.GetOrCreate(sessionID)

	turns := sess.Recent(historyWindow)
	contents := make([]gemini.Content, 0, len(turns)*2+1)
	for _, t := range turns {
		contents = append(contents, gemini.UserTurn(t.User), gemini.ModelTurn(t.Model))
	}
	contents = append(contents, gemini.UserTurn(msg))

	resp, err := s.client.Generate(ctx, key, gemini.GenerateRequest{
		Contents:          contents,
		SystemInstruction: gemini.SystemInstruction(BuildSystemPrompt(lc, s.frontendURL, isAdmin)),
		GenerationConfig:  chatConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("chat generation: %w", err)
	}

	reply := resp.FirstText()
	if strings.TrimSpace(reply) == "" {
		s.logger.Warn("model returned empty chat reply", "session", sessionID)
		reply = apologyReply
	}

	sess.Append(msg, reply)

	return &ChatResult{Reply: reply, SessionID: sessionID, Timestamp: time.Now().UTC()}, nil
}

// SearchHit is one search match, tagged with its content type.
type SearchHit struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt,omitempty"`
	URL     string `json:"url"`
}

// SearchGroups holds the matches grouped by content type. Empty groups
// marshal as empty arrays.
type SearchGroups struct {
	Services []SearchHit `json:"services"`
	Blogs    []SearchHit `json:"blogs"`
	Products []SearchHit `json:"products"`
	Jobs     []SearchHit `json:"jobs"`
}

// SearchResult is the outcome of a site-wide search. Summary is nil when the
// model summary could not be produced; the hits themselves are still valid.
type SearchResult struct {
	Query        string       `json:"query"`
	Results      SearchGroups `json:"results"`
	TotalResults int          `json:"totalResults"`
	Summary      *string      `json:"aiSummary"`
}

// Search runs the query against services, blog posts, products, and job
// openings in parallel, then asks the model for a short summary of the hits.
// The summary is best effort; a model failure degrades to hits-only.
func (s *Service) Search(ctx context.Context, query string) (*SearchResult, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < 2 {
		return nil, fmt.Errorf("%w: query must be at least 2 characters", ErrInvalidInput)
	}

	var (
		services []storage.Service
		posts    []storage.BlogPost
		products []storage.Product
		jobs     []storage.JobOpening
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) { services, err = s.store.SearchServices(q, searchHitLimit); return })
	g.Go(func() (err error) { posts, err = s.store.SearchPosts(q, searchHitLimit); return })
	g.Go(func() (err error) { products, err = s.store.SearchProducts(q, searchHitLimit); return })
	g.Go(func() (err error) { jobs, err = s.store.SearchJobs(q, searchHitLimit); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("searching content: %w", err)
	}

	groups := SearchGroups{
		Services: make([]SearchHit, 0, len(services)),
		Blogs:    make([]SearchHit, 0, len(posts)),
		Products: make([]SearchHit, 0, len(products)),
		Jobs:     make([]SearchHit, 0, len(jobs)),
	}
	for _, v := range services {
		groups.Services = append(groups.Services, SearchHit{
			Type: "service", ID: v.ID, Title: v.Name, Slug: v.Slug,
			Excerpt: v.ShortDesc, URL: s.frontendURL + "/services/" + v.Slug,
		})
	}
	for _, v := range posts {
		groups.Blogs = append(groups.Blogs, SearchHit{
			Type: "blog", ID: v.ID, Title: v.Title, Slug: v.Slug,
			Excerpt: v.Excerpt, URL: s.frontendURL + "/blog/" + v.Slug,
		})
	}
	for _, v := range products {
		groups.Products = append(groups.Products, SearchHit{
			Type: "product", ID: v.ID, Title: v.Name, Slug: v.Slug,
			Excerpt: v.ShortDesc, URL: s.frontendURL + "/products/" + v.Slug,
		})
	}
	for _, v := range jobs {
		groups.Jobs = append(groups.Jobs, SearchHit{
			Type: "job", ID: v.ID, Title: v.Title, Slug: v.Slug,
			Excerpt: v.Department + " · " + v.Location, URL: s.frontendURL + "/careers/" + v.Slug,
		})
	}

	total := len(groups.Services) + len(groups.Blogs) + len(groups.Products) + len(groups.Jobs)
	result := &SearchResult{Query: q, Results: groups, TotalResults: total}
	if total > 0 {
		if summary := s.summarizeHits(ctx, q, groups); summary != "" {
			result.Summary = &summary
		}
	}
	return result, nil
}

func (s *Service) summarizeHits(ctx context.Context, query string, groups SearchGroups) string {
	key, err := s.keys.Next()
	if err != nil {
		return ""
	}

	encoded, err := json.Marshal(groups)
	if err != nil {
		return ""
	}
	prompt := fmt.Sprintf(
		"A visitor searched our website for %q and these results matched:\n%s\n\nIn 2-3 sentences, summarize what was found and which result looks most relevant.",
		query, encoded)

	resp, err := s.client.Generate(ctx, key, gemini.GenerateRequest{
		Contents:         []gemini.Content{gemini.UserTurn(prompt)},
		GenerationConfig: summaryConfig,
	})
	if err != nil {
		s.logger.Warn("search summary failed", "error", err)
		return ""
	}
	return strings.TrimSpace(resp.FirstText())
}

// GenerateResult carries the draft content produced for one request.
type GenerateResult struct {
	ContentType string    `json:"type"`
	Generated   Generated `json:"generated"`
	Timestamp   time.Time `json:"timestamp"`
}

// GenerateContent produces structured draft content of the given type from a
// freeform prompt. Tone defaults to "professional" when empty. An empty model
// response degrades to an empty object rather than an error.
func (s *Service) GenerateContent(ctx context.Context, contentType, prompt, tone string) (*GenerateResult, error) {
	p := strings.TrimSpace(prompt)
	n := utf8.RuneCountInString(p)
	if n < minPromptLen || n > maxPromptLen {
		return nil, fmt.Errorf("%w: prompt must be between %d and %d characters", ErrInvalidInput, minPromptLen, maxPromptLen)
	}
	if tone == "" {
		tone = "professional"
	} else if !validTone(tone) {
		return nil, fmt.Errorf("%w: unsupported tone %q", ErrInvalidInput, tone)
	}

	key, err := s.keys.Next()
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, key, gemini.GenerateRequest{
		Contents:         []gemini.Content{gemini.UserTurn(buildGenerationPrompt(contentType, p, tone))},
		GenerationConfig: generateConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("content generation: %w", err)
	}

	text := resp.FirstText()
	if strings.TrimSpace(text) == "" {
		text = "{}"
	}
	return &GenerateResult{
		ContentType: contentType,
		Generated:   parseGenerated(text),
		Timestamp:   time.Now().UTC(),
	}, nil
}

// SummarizeResult carries the model summary of a single content record.
type SummarizeResult struct {
	ContentType string    `json:"type"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Timestamp   time.Time `json:"timestamp"`
}

// Summarize produces a short summary of one blog post, service, or product.
// The content type is validated before any data access.
func (s *Service) Summarize(ctx context.Context, contentType, id string) (*SummarizeResult, error) {
	switch contentType {
	case "blog", "service", "product":
	default:
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrInvalidInput, contentType)
	}

	key, err := s.keys.Next()
	if err != nil {
		return nil, err
	}

	var title, body string
	switch contentType {
	case "blog":
		post, err := s.store.GetPost(id)
		if err != nil {
			return nil, err
		}
		title, body = post.Title, post.Content
	case "service":
		svc, err := s.store.GetService(id)
		if err != nil {
			return nil, err
		}
		title, body = svc.Name, svc.Description
	case "product":
		prod, err := s.store.GetProduct(id)
		if err != nil {
			return nil, err
		}
		title, body = prod.Name, prod.Description
	}

	prompt := fmt.Sprintf("Summarize this content in 3-4 concise bullet points:\nTitle: %s\nContent: %s", title, body)

	resp, err := s.client.Generate(ctx, key, gemini.GenerateRequest{
		Contents:         []gemini.Content{gemini.UserTurn(prompt)},
		GenerationConfig: summarizeConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("summarization: %w", err)
	}

	summary := strings.TrimSpace(resp.FirstText())
	if summary == "" {
		summary = "Unable to generate summary."
	}

	return &SummarizeResult{
		ContentType: contentType,
		ID:          id,
		Title:       title,
		Summary:     summary,
		Timestamp:   time.Now().UTC(),
	}, nil
}
