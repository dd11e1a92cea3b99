package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestEngineOptions(t *testing.T) {
	assert.Empty(t, engineOptions(nil))
	assert.Empty(t, engineOptions(&Config{}))
	assert.Empty(t, engineOptions(&Config{Matching: &MatchingConfig{}}))
	assert.Empty(t, engineOptions(&Config{Matching: &MatchingConfig{Fuzzy: boolPtr(true)}}))

	opts := engineOptions(&Config{Matching: &MatchingConfig{Fuzzy: boolPtr(false)}})
	assert.Len(t, opts, 1)
}

func TestResolveWithExperienceFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().Bool("experience", false, "")
		c.Flags().BoolP("yes", "y", false, "")
		return c
	}

	t.Run("explicit flag wins", func(t *testing.T) {
		c := newCmd()
		require.NoError(t, c.Flags().Set("experience", "true"))

		got, err := resolveWithExperience(c)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("explicit false wins even with yes", func(t *testing.T) {
		c := newCmd()
		require.NoError(t, c.Flags().Set("experience", "false"))
		require.NoError(t, c.Flags().Set("yes", "true"))

		got, err := resolveWithExperience(c)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("yes skips the prompt and evaluates", func(t *testing.T) {
		c := newCmd()
		require.NoError(t, c.Flags().Set("yes", "true"))

		got, err := resolveWithExperience(c)
		require.NoError(t, err)
		assert.True(t, got)
	})
}
