// Package iata resolves a city or place name to an IATA airport code using
// the Gemini API, so config authors do not have to look codes up by hand.
package iata

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Unknown is returned when the model cannot identify an airport.
const Unknown = "UNK"

const model = "gemini-2.5-flash-lite"

var codePattern = regexp.MustCompile(`[A-Z]{3}`)

const promptTemplate = `You are an IATA airport code lookup API.
The user supplies a city or place name, possibly misspelled.
Return the primary airport or city code for that place: exactly 3 uppercase letters.

Rules:
1. Return only the 3 letters (e.g. LAS, PHX, SFO). No explanation, punctuation or Markdown.
2. For a metro area with several airports, prefer the city code over a specific airport.
3. If the place cannot be identified, return "UNK".

User input: %q`

// Lookup asks Gemini for the airport code of a place.
func Lookup(ctx context.Context, apiKey, place string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(model)
	m.SetTemperature(0.0)

	res, err := m.GenerateContent(ctx, genai.Text(fmt.Sprintf(promptTemplate, place)))
	if err != nil {
		return "", fmt.Errorf("Gemini request failed: %w", err)
	}

	code := Unknown
	if len(res.Candidates) > 0 && res.Candidates[0].Content != nil {
		for _, part := range res.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				code = ParseCode(string(txt))
			}
		}
	}
	return code, nil
}

// ParseCode extracts a 3-letter code from a model reply, tolerating extra
// words around it.
func ParseCode(reply string) string {
	code := strings.TrimSpace(reply)
	if len(code) == 3 && code == strings.ToUpper(code) && codePattern.MatchString(code) {
		return code
	}
	if found := codePattern.FindString(code); found != "" {
		return found
	}
	return Unknown
}
