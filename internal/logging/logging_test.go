package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handlepick.log")

	closer := Setup(path)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	log.Printf("picked %d users", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "picked 3 users")
}

func TestSetup_NoFile(t *testing.T) {
	closer := Setup("")
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.NoError(t, closer.Close())
}
