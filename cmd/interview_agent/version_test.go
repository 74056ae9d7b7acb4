package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCommand.SetOut(&out)

	// Execute on a subcommand delegates to the root, which would otherwise
	// parse the test binary's os.Args.
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, versionCommand.Execute())
	assert.Equal(t, "dev\n", out.String())
}
