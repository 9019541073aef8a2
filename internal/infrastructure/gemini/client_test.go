package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackStarters(t *testing.T) {
	got := FallbackStarters("Guitar", "Spanish")

	want := []string{
		"Hey! I saw we matched. I'd love to learn Spanish from you, and happy to teach you Guitar in return!",
		"Hi there! This seems like a perfect skill swap. I'm really interested in your knowledge of Spanish.",
		"This is cool, we both have something the other wants to learn! How did you get started with Spanish?",
	}
	assert.Equal(t, want, got)
}

func TestNilClientFallsBack(t *testing.T) {
	// A nil client is the normal state when no API key is configured; it must
	// still produce usable starters.
	var c *GeminiClient
	got := c.ConversationStarters(context.Background(), "Cooking", "Photography")

	assert.Equal(t, FallbackStarters("Cooking", "Photography"), got)
	for _, s := range got {
		assert.Contains(t, s, "Photography")
	}
}
