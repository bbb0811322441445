// Package gemini implements a minimal client for the Google Generative
// Language REST API (generateContent). The API key is supplied per call so a
// single client can serve a rotating credential pool.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTimeout = 60 * time.Second
)

// Part is a single content fragment; this client only uses text parts.
type Part struct {
	Text string `json:"text"`
}

// Content is a role-tagged message turn ("user" or "model").
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig holds the sampling parameters for a generate call.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateRequest is the body of a generateContent call.
type GenerateRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

// Candidate is one alternative completion. Only the first is ever used.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// GenerateResponse is the body returned by a generateContent call.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// FirstText returns the text of the first candidate's first part, or "" when
// the response carries no usable candidate.
func (r *GenerateResponse) FirstText() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}

// SystemInstruction wraps a system prompt string as request content.
func SystemInstruction(text string) *Content {
	return &Content{Parts: []Part{{Text: text}}}
}

// UserTurn builds a user-role content turn from plain text.
func UserTurn(text string) Content {
	return Content{Role: "user", Parts: []Part{{Text: text}}}
}

// ModelTurn builds a model-role content turn from plain text.
func ModelTurn(text string) Content {
	return Content{Role: "model", Parts: []Part{{Text: text}}}
}

// Client calls the Generative Language API for a fixed model.
type Client struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given model name (e.g. "gemini-2.0-flash").
func NewClient(model string) *Client {
	return &Client{
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

// NewClientWithBaseURL creates a client pointing at a custom base URL (for testing).
func NewClientWithBaseURL(model, baseURL string) *Client {
	c := NewClient(model)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Generate performs a generateContent call authenticated with apiKey. The
// call is bounded by a 60s timeout on top of any deadline already on ctx.
func (c *Client) Generate(ctx context.Context, apiKey string, req GenerateRequest) (*GenerateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}
