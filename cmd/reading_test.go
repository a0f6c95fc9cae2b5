package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/oracle/internal/config"
	"github.com/arcanaland/oracle/internal/loader"
)

func TestParseInlineSpread(t *testing.T) {
	s, err := parseInlineSpread("[[2,1,3]]")
	require.NoError(t, err)
	assert.Equal(t, 3, s.PositionCount())

	// A bare row is accepted and treated as a single-row matrix.
	s, err = parseInlineSpread("[1,2,3]")
	require.NoError(t, err)
	assert.Equal(t, 3, s.PositionCount())

	_, err = parseInlineSpread("not json")
	assert.Error(t, err)

	// Valid JSON but invalid indices.
	_, err = parseInlineSpread("[[1,1]]")
	assert.Error(t, err)
}

func TestMaybeSaveSession(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	cfg := config.Default()
	cfg.AutosaveSessions = false

	session := loader.Session{
		Question:   "q",
		SpreadName: "single",
		Grid:       "[ 0   ]",
		Legend:     "General Information:\n  [ 0   ] - The Fool (Major Arcana)",
	}

	// Autosave off and no force: nothing written.
	require.NoError(t, maybeSaveSession(cfg, false, false, dir, session))
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	// --save forces a write even with autosave off.
	require.NoError(t, maybeSaveSession(cfg, true, false, dir, session))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// --no-save wins over autosave being on.
	cfg.AutosaveSessions = true
	require.NoError(t, maybeSaveSession(cfg, false, true, dir, session))
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
