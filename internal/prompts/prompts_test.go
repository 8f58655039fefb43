package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBio(t *testing.T) {
	t.Run(`non-empty keywords build the prompt pair`, func(t *testing.T) {
		systemPrompt, userQuery, err := Bio("golang, distributed systems")
		require.Nil(t, err)
		require.Equal(t, "Keywords: golang, distributed systems", userQuery)
		require.Contains(t, systemPrompt, "professional resume writer")
		require.Contains(t, systemPrompt, "3-4")
	})

	t.Run(`keywords are trimmed before use`, func(t *testing.T) {
		_, userQuery, err := Bio("  cloud infrastructure \n")
		require.Nil(t, err)
		require.Equal(t, "Keywords: cloud infrastructure", userQuery)
	})

	t.Run(`empty keywords fail validation`, func(t *testing.T) {
		_, _, err := Bio("")
		require.ErrorIs(t, err, ErrNoKeywords)
	})

	t.Run(`whitespace-only keywords fail validation`, func(t *testing.T) {
		_, _, err := Bio("   \t\n  ")
		require.ErrorIs(t, err, ErrNoKeywords)
	})
}

func TestProject(t *testing.T) {
	t.Run(`non-empty role builds the prompt pair`, func(t *testing.T) {
		systemPrompt, userQuery := Project("Backend Developer")
		require.Equal(t, "Role: Backend Developer", userQuery)
		require.Contains(t, systemPrompt, "tech mentor")
		require.Contains(t, systemPrompt, "<h3>Title</h3>")
	})

	t.Run(`empty role falls back to the default`, func(t *testing.T) {
		_, userQuery := Project("")
		require.Equal(t, "Role: AI Software Engineer", userQuery)
	})

	t.Run(`whitespace-only role falls back to the default`, func(t *testing.T) {
		_, userQuery := Project("  \t ")
		require.Equal(t, "Role: "+DefaultRole, userQuery)
	})

	t.Run(`role is trimmed before use`, func(t *testing.T) {
		_, userQuery := Project("  Data Engineer ")
		require.Equal(t, "Role: Data Engineer", userQuery)
	})
}
