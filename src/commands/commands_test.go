package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommandFlags(t *testing.T) {
	cmd := newSeedCmd()

	force := cmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "f", force.Shorthand)
	assert.Equal(t, "false", force.DefValue)

	require.NoError(t, cmd.ParseFlags([]string{"-f"}))
	assert.Equal(t, "true", force.Value.String())
}

func TestRootRegistersSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"seed", "serve", "migrate"})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, wrap(nil, "ignored"))
	assert.EqualError(t, wrap(assert.AnError, "load %s", "catalog"), "load catalog: "+assert.AnError.Error())
}
