package termcolor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffersAreNotTerminals(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))
	assert.False(t, Enabled(&buf))
}

func TestRegularFilesAreNotTerminals(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.False(t, IsTerminal(f))
	assert.False(t, Enabled(f))
}
