package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigReturnsFlagValue(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()

	configFlag = "/tmp/custom.yaml"
	assert.Equal(t, "/tmp/custom.yaml", Config())

	configFlag = ""
	assert.Empty(t, Config())
}

func TestIsTTY_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.False(t, isTTY(r))
	assert.False(t, isTTY(w))
}

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "flowviz", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage, "errors print once, not with usage spam")
	assert.True(t, rootCmd.SilenceErrors, "Execute owns error printing")
}
