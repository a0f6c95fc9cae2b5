package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/oracle/internal/card"
)

func testLoader(t *testing.T) *Loader {
	t.Helper()
	base := t.TempDir()
	l := &Loader{
		DecksDir:       filepath.Join(base, "decks"),
		SpreadsDir:     filepath.Join(base, "spreads"),
		InvocationsDir: filepath.Join(base, "invocations"),
		MaxFileSize:    1 << 20,
	}
	for _, dir := range []string{l.DecksDir, l.SpreadsDir, l.InvocationsDir} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}
	return l
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"celtic", "celtic"},
		{"my-spread_2", "my-spread_2"},
		{"../../etc/passwd", "etcpasswd"},
		{".hidden", "hidden"},
		{"--flag", "flag"},
		{"path/with/slashes", "pathwithslashes"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), "sanitizeName(%q)", tt.in)
	}
}

func TestLoadSpread(t *testing.T) {
	l := testLoader(t)
	doc := `{
		"name": "mini",
		"description": "two cards",
		"positions": [[1, 2]],
		"semantics": [["Now", "Next"]]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(l.SpreadsDir, "mini.json"), []byte(doc), 0644))

	s, err := l.LoadSpread("mini")
	require.NoError(t, err)
	assert.Equal(t, "mini", s.Name)
	assert.Equal(t, 2, s.PositionCount())
	assert.Equal(t, "Now", s.SemanticAt(1))
}

func TestLoadSpreadInvalid(t *testing.T) {
	l := testLoader(t)
	doc := `{"name": "broken", "positions": [[1, 1]]}`
	require.NoError(t, os.WriteFile(filepath.Join(l.SpreadsDir, "broken.json"), []byte(doc), 0644))

	_, err := l.LoadSpread("broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, card.ErrInvalidValue)
}

func TestLoadSpreadMissing(t *testing.T) {
	l := testLoader(t)
	_, err := l.LoadSpread("no-such-spread-xyzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadDeck(t *testing.T) {
	l := testLoader(t)
	doc := `{
		"name": "Tiny Deck",
		"author": "tester",
		"version": "1.0",
		"cards": [
			{"suit": "wands", "rank": 1, "name": "Ace of Wands", "upright_meaning": "spark"},
			{"suit": "cups", "rank": "queen", "upright_meaning": "care", "image_path": "images/cq.png"}
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(l.DecksDir, "tiny.json"), []byte(doc), 0644))

	d, err := l.LoadDeck("tiny")
	require.NoError(t, err)
	assert.Equal(t, "Tiny Deck", d.Name)
	assert.Equal(t, 2, d.Size())
	assert.Equal(t, l.DecksDir, d.Dir)

	cq, ok := d.ByCode("CQ")
	require.True(t, ok)
	assert.Equal(t, "images/cq.png", cq.ImagePath)
}

func TestLoadDeckTypeError(t *testing.T) {
	l := testLoader(t)
	doc := `{"name": "bad", "cards": [{"suit": "wands", "rank": 1.5}]}`
	require.NoError(t, os.WriteFile(filepath.Join(l.DecksDir, "bad.json"), []byte(doc), 0644))

	_, err := l.LoadDeck("bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, card.ErrInvalidType)
}

func TestLoadInvocation(t *testing.T) {
	l := testLoader(t)
	require.NoError(t, os.WriteFile(filepath.Join(l.InvocationsDir, "morning.txt"),
		[]byte("By first light I ask.\n"), 0644))

	text, err := l.LoadInvocation("morning")
	require.NoError(t, err)
	assert.Equal(t, "By first light I ask.", text)
}

func TestMaxFileSize(t *testing.T) {
	l := testLoader(t)
	l.MaxFileSize = 16
	require.NoError(t, os.WriteFile(filepath.Join(l.InvocationsDir, "long.txt"),
		[]byte("this invocation text is longer than sixteen bytes"), 0644))

	_, err := l.LoadInvocation("long")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit")
}

func TestListSpreads(t *testing.T) {
	l := testLoader(t)
	good := `{"name": "good", "description": "fine", "positions": [[1]]}`
	bad := `{"name": "bad", "positions": [[1, 1]]}`
	require.NoError(t, os.WriteFile(filepath.Join(l.SpreadsDir, "good.json"), []byte(good), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(l.SpreadsDir, "bad.json"), []byte(bad), 0644))

	listings := l.ListSpreads()
	require.Len(t, listings, 1)
	assert.Equal(t, "good", listings[0].Name)
	assert.Equal(t, "fine", listings[0].Description)
}

func TestListInvocations(t *testing.T) {
	l := testLoader(t)
	require.NoError(t, os.WriteFile(filepath.Join(l.InvocationsDir, "short.md"),
		[]byte("A brief opening."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(l.InvocationsDir, "ignored.json"),
		[]byte("{}"), 0644))

	listings := l.ListInvocations()
	require.Len(t, listings, 1)
	assert.Equal(t, "short", listings[0].Name)
	assert.Equal(t, "A brief opening.", listings[0].Description)
}

func TestSessionFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)

	legend := "Heading:\n  [ XVI ] - The Tower (Major Arcana)\n  [↓CQ  ] - Queen of Cups (Cups)"
	assert.Equal(t, "2026-08-31-143005-XVI-RCQ.md", sessionFilename(legend, now))

	assert.Equal(t, "2026-08-31-143005-no-codes.md", sessionFilename("no brackets here", now))
}

func TestSaveSession(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "oracles")
	path, err := SaveSession(dir, Session{
		Question:   "what now",
		SpreadName: "3-card",
		Invocation: "By first light I ask.",
		Grid:       "[ XVI ] [ WA  ] [ SA  ]",
		Legend:     "General Information:\n  [ XVI ] - The Tower (Major Arcana)",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# === Invocation ===")
	assert.Contains(t, content, "# === Tarot Reading ===")
	assert.Contains(t, content, "**Question**: what now")
	assert.Contains(t, content, "**Spread**: 3-card")
	assert.Contains(t, content, "[ XVI ]")
	assert.NotContains(t, content, "# === Interpretation ===")
}

func TestSaveSessionWithInterpretation(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveSession(dir, Session{
		Question:                "q",
		SpreadName:              "single",
		Grid:                    "[ 0   ]",
		Legend:                  "General Information:\n  [ 0   ] - The Fool (Major Arcana)",
		InterpretationRequested: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Interpretation was not available.")
}
