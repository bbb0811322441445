package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/acns/backend/internal/ai"
	"github.com/acns/backend/internal/storage"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Store     *storage.Store
	Assistant *ai.Service
}

// NewMCPServer creates an MCP server exposing site search and content
// summarization as tools, plus the website settings as a resource.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"acns",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("acns — company website content: services, blog posts, products, and job openings."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("search_site",
			mcp.WithDescription("Search the website's services, blog posts, products, and job openings."),
			mcp.WithString("query", mcp.Description("Search query (at least 2 characters)"), mcp.Required()),
		),
		mcpSearchSite(deps),
	)

	s.AddTool(
		mcp.NewTool("summarize_content",
			mcp.WithDescription("Summarize a single blog post, service, or product by ID."),
			mcp.WithString("contentType", mcp.Description("One of: blog, service, product"), mcp.Required()),
			mcp.WithString("id", mcp.Description("ID of the content record"), mcp.Required()),
		),
		mcpSummarizeContent(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"site://settings",
			"Website Settings",
			mcp.WithResourceDescription("Current website settings as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceSettings(deps),
	)

	return s
}

func mcpSearchSite(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}

		result, err := deps.Assistant.Search(ctx, query)
		if err != nil {
			return mcpError(fmt.Sprintf("search failed: %v", err)), nil
		}

		b, err := json.Marshal(result)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpSummarizeContent(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		contentType, err := req.RequireString("contentType")
		if err != nil {
			return mcpError("contentType is required"), nil
		}
		id, err := req.RequireString("id")
		if err != nil {
			return mcpError("id is required"), nil
		}

		result, err := deps.Assistant.Summarize(ctx, contentType, id)
		if err != nil {
			return mcpError(fmt.Sprintf("summarization failed: %v", err)), nil
		}
		return mcpText(result.Summary), nil
	}
}

func mcpResourceSettings(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		settings, err := deps.Store.GetSettings()
		if err != nil {
			return nil, fmt.Errorf("failed to get settings: %w", err)
		}

		b, err := json.Marshal(settings)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal settings: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
