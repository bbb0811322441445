package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Generated is the outcome of a content generation call. When the model
// returns valid JSON the structured form is kept; otherwise the raw text is
// preserved under a single "raw" key so callers always get an object.
type Generated struct {
	Structured map[string]any
	Raw        string
}

func (g Generated) MarshalJSON() ([]byte, error) {
	if g.Structured != nil {
		return json.Marshal(g.Structured)
	}
	return json.Marshal(map[string]any{"raw": g.Raw})
}

// parseGenerated strips markdown code fences the model tends to wrap JSON in,
// then attempts to decode. Non-JSON output falls back to the raw form.
func parseGenerated(text string) Generated {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var structured map[string]any
	if err := json.Unmarshal([]byte(cleaned), &structured); err == nil {
		return Generated{Structured: structured}
	}
	return Generated{Raw: text}
}

// ValidTones lists the accepted tone values for content generation.
var ValidTones = []string{"professional", "casual", "technical", "friendly", "formal"}

func validTone(tone string) bool {
	for _, t := range ValidTones {
		if t == tone {
			return true
		}
	}
	return false
}

var generationTemplates = map[string]string{
	"blog": `Write a complete blog post about: %s

Tone: %s

Return the result as a JSON object with these exact keys:
- "title": an engaging title
- "slug": a URL-friendly slug
- "excerpt": a 1-2 sentence summary
- "content": the full post in markdown (at least 500 words)
- "category": a single category name
- "tags": an array of 3-5 relevant tags

Return ONLY the JSON object, no other text.`,

	"product": `Write marketing copy for a product described as: %s

Tone: %s

Return the result as a JSON object with these exact keys:
- "name": a product name
- "shortDesc": a one-sentence pitch
- "description": 2-3 paragraphs of product description
- "features": an array of 4-6 feature strings
- "category": a single category name

Return ONLY the JSON object, no other text.`,

	"service": `Write a service description for: %s

Tone: %s

Return the result as a JSON object with these exact keys:
- "name": the service name
- "shortDesc": a one-sentence summary
- "description": 2-3 paragraphs describing the service and its benefits
- "features": an array of 4-6 feature strings

Return ONLY the JSON object, no other text.`,

	"seo": `Generate SEO metadata for a page about: %s

Tone: %s

Return the result as a JSON object with these exact keys:
- "title": an SEO title under 60 characters
- "description": a meta description under 160 characters
- "keywords": an array of 5-10 keywords

Return ONLY the JSON object, no other text.`,

	"email": `Write a marketing email about: %s

Tone: %s

Return the result as a JSON object with these exact keys:
- "subject": an email subject line
- "preheader": a short preview text
- "body": the email body in markdown

Return ONLY the JSON object, no other text.`,

	"social": `Write social media posts about: %s

Tone: %s

Return the result as a JSON object with these exact keys:
- "twitter": a post under 280 characters
- "linkedin": a longer professional post
- "hashtags": an array of 3-5 hashtags

Return ONLY the JSON object, no other text.`,
}

// buildGenerationPrompt renders the template for the given content type.
// Unknown types get a generic prompt rather than an error.
func buildGenerationPrompt(contentType, prompt, tone string) string {
	if tmpl, ok := generationTemplates[contentType]; ok {
		return fmt.Sprintf(tmpl, prompt, tone)
	}
	return fmt.Sprintf(`Generate %s content about: %s

Tone: %s

Return the result as a JSON object. Return ONLY the JSON object, no other text.`, contentType, prompt, tone)
}
