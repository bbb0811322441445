package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/acns/backend/internal/storage"
)

// QuickAction is a suggested next step shown next to the chat widget. Action
// is either "chat" (Message is sent as the user turn) or "navigate" (URL is a
// frontend path the widget routes to).
type QuickAction struct {
	Label   string `json:"label"`
	Action  string `json:"action"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
}

func chatAction(label, message string) QuickAction {
	return QuickAction{Label: label, Action: "chat", Message: message}
}

func navigateAction(label, url string) QuickAction {
	return QuickAction{Label: label, Action: "navigate", URL: url}
}

var baseQuickActions = map[string][]QuickAction{
	"home": {
		chatAction("Tell me about ACNS services", "What services does ACNS offer?"),
		chatAction("I need cloud solutions", "Tell me about your cloud infrastructure services."),
		navigateAction("Contact the team", "/contact"),
		navigateAction("View open positions", "/careers"),
	},
	"services": {
		chatAction("Compare services", "Can you compare your cloud and cybersecurity services?"),
		navigateAction("Get a consultation", "/contact"),
	},
	"blog": {
		chatAction("Suggest articles for me", "Recommend blog posts based on cloud computing."),
	},
	"careers": {
		chatAction("Help me prepare my application", "Can you help me prepare for a job application at ACNS?"),
	},
}

var adminQuickActions = []QuickAction{
	chatAction("Generate a blog post", "Help me write a blog post about cloud security trends."),
	chatAction("Write product description", "Help me create a compelling product description for a new cloud service."),
	chatAction("Generate SEO metadata", "Generate SEO metadata for our services page."),
}

// QuickActions returns the suggestions for the given page, with live data
// woven in where available. Unknown pages get no base set, so a visitor sees
// an empty list and an admin sees only the admin extras. Missing content is
// skipped; only real storage failures are reported.
func (s *Service) QuickActions(ctx context.Context, page string, isAdmin bool) ([]QuickAction, error) {
	actions := make([]QuickAction, 0, 8)

	switch page {
	case "blog":
		post, err := s.store.LatestPost()
		switch {
		case errors.Is(err, storage.ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("loading latest post: %w", err)
		default:
			actions = append(actions, navigateAction("Read: "+post.Title, "/blog/"+post.Slug))
		}
	case "careers":
		count, err := s.store.CountActiveJobs()
		if err != nil {
			return nil, fmt.Errorf("counting open positions: %w", err)
		}
		if count > 0 {
			actions = append(actions, navigateAction(
				fmt.Sprintf("Browse %d open positions", count), "/careers"))
		}
	}

	actions = append(actions, baseQuickActions[page]...)
	if isAdmin {
		actions = append(actions, adminQuickActions...)
	}
	return actions, nil
}
