package ai

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseGeneratedPlainJSON(t *testing.T) {
	g := parseGenerated(`{"title":"Hello","tags":["a","b"]}`)
	if g.Structured == nil {
		t.Fatalf("expected structured result, got raw %q", g.Raw)
	}
	if g.Structured["title"] != "Hello" {
		t.Errorf("title = %v, want Hello", g.Structured["title"])
	}
}

func TestParseGeneratedStripsFences(t *testing.T) {
	for _, text := range []string{
		"```json\n{\"title\":\"Fenced\"}\n```",
		"```\n{\"title\":\"Fenced\"}\n```",
		"  ```json\n{\"title\":\"Fenced\"}\n```  ",
	} {
		g := parseGenerated(text)
		if g.Structured == nil {
			t.Errorf("parseGenerated(%q) fell back to raw", text)
			continue
		}
		if g.Structured["title"] != "Fenced" {
			t.Errorf("parseGenerated(%q) title = %v", text, g.Structured["title"])
		}
	}
}

func TestParseGeneratedRawFallback(t *testing.T) {
	text := "Sorry, here is your blog post as plain prose."
	g := parseGenerated(text)
	if g.Structured != nil {
		t.Fatalf("expected raw fallback, got %v", g.Structured)
	}
	if g.Raw != text {
		t.Errorf("Raw = %q, want original text preserved", g.Raw)
	}
}

func TestGeneratedMarshalJSON(t *testing.T) {
	structured := Generated{Structured: map[string]any{"title": "X"}}
	b, err := json.Marshal(structured)
	if err != nil {
		t.Fatalf("marshal structured: %v", err)
	}
	if string(b) != `{"title":"X"}` {
		t.Errorf("structured JSON = %s", b)
	}

	raw := Generated{Raw: "plain text"}
	b, err = json.Marshal(raw)
	if err != nil {
		t.Fatalf("marshal raw: %v", err)
	}
	if string(b) != `{"raw":"plain text"}` {
		t.Errorf("raw JSON = %s", b)
	}
}

func TestBuildGenerationPromptKnownTypes(t *testing.T) {
	for typ := range generationTemplates {
		p := buildGenerationPrompt(typ, "cloud security", "casual")
		if !strings.Contains(p, "cloud security") {
			t.Errorf("%s prompt missing subject", typ)
		}
		if !strings.Contains(p, "casual") {
			t.Errorf("%s prompt missing tone", typ)
		}
		if !strings.Contains(p, "JSON object") {
			t.Errorf("%s prompt missing JSON instruction", typ)
		}
	}
}

func TestBuildGenerationPromptUnknownType(t *testing.T) {
	p := buildGenerationPrompt("podcast", "cloud security", "formal")
	if !strings.Contains(p, "podcast") || !strings.Contains(p, "cloud security") {
		t.Errorf("generic prompt missing type or subject: %q", p)
	}
}

func TestValidTone(t *testing.T) {
	for _, tone := range ValidTones {
		if !validTone(tone) {
			t.Errorf("validTone(%q) = false", tone)
		}
	}
	if validTone("sarcastic") {
		t.Error("validTone(sarcastic) = true, want false")
	}
}
