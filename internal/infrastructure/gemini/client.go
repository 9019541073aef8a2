package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// ConversationStarters generates three opening lines for a freshly matched
// pair. mySkill is what the current user teaches, partnerSkill what the
// counterpart teaches. Any failure falls back to fixed template sentences, so
// the caller always gets usable suggestions.
func (c *GeminiClient) ConversationStarters(ctx context.Context, mySkill, partnerSkill string) []string {
	if c == nil {
		return FallbackStarters(mySkill, partnerSkill)
	}

	prompt := fmt.Sprintf(`
		You are an expert at fostering connections on a skill-sharing platform.
		Two users have just matched.
		- User A can teach "%s".
		- User B can teach "%s".

		Generate three distinct, friendly, and engaging conversation starters for User A to send to User B.
		The starters should be encouraging and focus on the mutual benefit of their skill swap.
		Output: JSON array of strings. Example: ["starter 1", "starter 2", "starter 3"]
		Do not include any other text or markdown formatting.
	`, mySkill, partnerSkill)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		fmt.Printf("Warning: Gemini API unavailable, using fallback starters: %v\n", err)
		return FallbackStarters(mySkill, partnerSkill)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return FallbackStarters(mySkill, partnerSkill)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var starters []string
	if err := json.Unmarshal([]byte(responseText), &starters); err != nil || len(starters) == 0 {
		return FallbackStarters(mySkill, partnerSkill)
	}
	return starters
}

// FallbackStarters are the canned suggestions used whenever the AI
// collaborator cannot be reached or returns something unusable.
func FallbackStarters(mySkill, partnerSkill string) []string {
	return []string{
		fmt.Sprintf("Hey! I saw we matched. I'd love to learn %s from you, and happy to teach you %s in return!", partnerSkill, mySkill),
		fmt.Sprintf("Hi there! This seems like a perfect skill swap. I'm really interested in your knowledge of %s.", partnerSkill),
		fmt.Sprintf("This is cool, we both have something the other wants to learn! How did you get started with %s?", partnerSkill),
	}
}
