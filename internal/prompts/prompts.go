// Package prompts builds the (system prompt, user query) pairs sent to
// Gemini. Pure string construction, no side effects.
package prompts

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultRole is substituted when the project endpoint receives no role.
const DefaultRole = "AI Software Engineer"

// ErrNoKeywords is returned by Bio when the keywords are empty or
// whitespace-only after trimming.
var ErrNoKeywords = errors.New("no keywords provided")

const bioSystemPrompt = "You are a professional resume writer. Write an engaging, first-person " +
	"'About Me' section for a personal portfolio. The tone should be passionate " +
	"and professional. Base it on the following keywords. Keep it to 3-4 " +
	"concise paragraphs."

const projectSystemPrompt = "You are a tech mentor. Suggest a new, impressive portfolio project idea. " +
	"Respond with a title, a 1-2 sentence description, and 3-4 key technologies. " +
	"Format your response in simple HTML " +
	"(e.g., <h3>Title</h3><p>Description</p>" +
	"<p><strong>Tech:</strong> Tech 1, Tech 2</p>)."

// Bio composes the prompt pair for the "About Me" generator.
func Bio(keywords string) (systemPrompt, userQuery string, err error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return "", "", ErrNoKeywords
	}
	return bioSystemPrompt, "Keywords: " + keywords, nil
}

// Project composes the prompt pair for the project-idea generator. An
// empty role falls back to DefaultRole; this route never fails validation.
func Project(role string) (systemPrompt, userQuery string) {
	role = strings.TrimSpace(role)
	if role == "" {
		role = DefaultRole
	}
	return projectSystemPrompt, "Role: " + role
}
