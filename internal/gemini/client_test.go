package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithBaseURL("test-model", srv.URL)
}

func TestGenerateRequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotBody GenerateRequest

	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hi there"}]}}]}`))
	})

	req := GenerateRequest{
		Contents:          []Content{UserTurn("hello")},
		SystemInstruction: SystemInstruction("be nice"),
		GenerationConfig:  &GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 40, MaxOutputTokens: 2048},
	}
	resp, err := c.Generate(context.Background(), "key-1", req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if gotPath != "/models/test-model:generateContent" {
		t.Errorf("path = %q, want /models/test-model:generateContent", gotPath)
	}
	if gotKey != "key-1" {
		t.Errorf("api key header = %q, want key-1", gotKey)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Role != "user" {
		t.Errorf("contents = %+v, want single user turn", gotBody.Contents)
	}
	if gotBody.SystemInstruction == nil || gotBody.SystemInstruction.Parts[0].Text != "be nice" {
		t.Errorf("systemInstruction = %+v, want be nice", gotBody.SystemInstruction)
	}
	if gotBody.GenerationConfig == nil || gotBody.GenerationConfig.MaxOutputTokens != 2048 {
		t.Errorf("generationConfig = %+v, want maxOutputTokens 2048", gotBody.GenerationConfig)
	}

	if got := resp.FirstText(); got != "hi there" {
		t.Errorf("FirstText = %q, want %q", got, "hi there")
	}
}

func TestGenerateNon200(t *testing.T) {
	c := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	_, err := c.Generate(context.Background(), "key-1", GenerateRequest{
		Contents: []Content{UserTurn("hello")},
	})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error = %v, want status and body included", err)
	}
}

func TestFirstTextEmptyResponse(t *testing.T) {
	var r *GenerateResponse
	if got := r.FirstText(); got != "" {
		t.Errorf("nil response FirstText = %q, want empty", got)
	}
	if got := (&GenerateResponse{}).FirstText(); got != "" {
		t.Errorf("no-candidate FirstText = %q, want empty", got)
	}
	empty := &GenerateResponse{Candidates: []Candidate{{}}}
	if got := empty.FirstText(); got != "" {
		t.Errorf("no-part FirstText = %q, want empty", got)
	}
}
