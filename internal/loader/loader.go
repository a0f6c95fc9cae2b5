// Package loader reads user-provided content: custom decks, custom
// spreads, and invocation texts. Lookups are by name, searched in the
// current directory first and then the user data directory, with filename
// sanitization and path containment checks.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/arcanaland/oracle/internal/config"
	"github.com/arcanaland/oracle/internal/deck"
	"github.com/arcanaland/oracle/internal/spread"
)

// Loader resolves content files from the working directory and the user
// data directories.
type Loader struct {
	DecksDir       string
	SpreadsDir     string
	InvocationsDir string
	MaxFileSize    int64
}

// FromConfig builds a loader over the standard data directories.
func FromConfig(cfg *config.Config) *Loader {
	return &Loader{
		DecksDir:       config.GetDecksDir(),
		SpreadsDir:     config.GetSpreadsDir(),
		InvocationsDir: config.GetInvocationsDir(),
		MaxFileSize:    cfg.MaxFileSize,
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// sanitizeName strips characters that could escape the search directories.
func sanitizeName(name string) string {
	safe := unsafeChars.ReplaceAllString(name, "")
	return strings.TrimLeft(safe, ".-")
}

// LoadDeck loads a custom deck by name, searching ./name.json then the
// deck directory.
func (l *Loader) LoadDeck(name string) (*deck.Deck, error) {
	path, err := l.find(name, l.DecksDir, []string{".json"})
	if err != nil {
		return nil, err
	}
	data, err := l.readFile(path)
	if err != nil {
		return nil, err
	}

	var f deck.File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("deck %q: %v", name, err)
	}
	d, err := deck.FromFile(f)
	if err != nil {
		return nil, fmt.Errorf("deck %q: %w", name, err)
	}
	d.Dir = filepath.Dir(path)
	log.Debug().Str("deck", name).Str("path", path).Int("cards", d.Size()).Msg("loaded deck")
	return d, nil
}

// LoadSpread loads and validates a custom spread by name.
func (l *Loader) LoadSpread(name string) (*spread.Spread, error) {
	path, err := l.find(name, l.SpreadsDir, []string{".json"})
	if err != nil {
		return nil, err
	}
	data, err := l.readFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("spread %q: %v", name, err)
	}
	s, err := spread.Validate(raw)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("spread", name).Str("path", path).Int("positions", s.PositionCount()).Msg("loaded spread")
	return s, nil
}

// LoadInvocation loads an invocation text by name, trying the bare name,
// then .txt, then .md.
func (l *Loader) LoadInvocation(name string) (string, error) {
	path, err := l.find(name, l.InvocationsDir, []string{"", ".txt", ".md"})
	if err != nil {
		return "", err
	}
	data, err := l.readFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// find resolves a name against the search order: the working directory
// with each extension, then dir with each extension.
func (l *Loader) find(name, dir string, extensions []string) (string, error) {
	safe := sanitizeName(name)
	if safe == "" {
		return "", fmt.Errorf("invalid name %q", name)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	var candidates []string
	for _, ext := range extensions {
		candidates = append(candidates, filepath.Join(cwd, safe+ext))
	}
	for _, ext := range extensions {
		candidates = append(candidates, filepath.Join(dir, safe+ext))
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if err := containedIn(path, cwd, dir); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("%q not found", name)
}

// containedIn rejects paths that resolve outside every allowed root.
func containedIn(path string, roots ...string) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return err
	}
	for _, root := range roots {
		if root == "" {
			continue
		}
		resolvedRoot, err := filepath.EvalSymlinks(root)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(resolvedRoot, resolved)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil
		}
	}
	return fmt.Errorf("path %q resolves outside allowed directories", path)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if l.MaxFileSize > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() > l.MaxFileSize {
			return nil, fmt.Errorf("file %q exceeds size limit of %d bytes", path, l.MaxFileSize)
		}
	}
	return os.ReadFile(path)
}

// Listing describes one available content file.
type Listing struct {
	Filename    string
	Name        string
	Description string
}

// ListSpreads scans the spread directory for valid spread files.
func (l *Loader) ListSpreads() []Listing {
	var listings []Listing
	entries, err := os.ReadDir(l.SpreadsDir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		s, err := l.LoadSpread(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			log.Debug().Str("file", entry.Name()).Err(err).Msg("skipping invalid spread")
			continue
		}
		listings = append(listings, Listing{
			Filename:    entry.Name(),
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return listings
}

// ListDecks scans the deck directory for valid deck files.
func (l *Loader) ListDecks() []Listing {
	var listings []Listing
	entries, err := os.ReadDir(l.DecksDir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		d, err := l.LoadDeck(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			log.Debug().Str("file", entry.Name()).Err(err).Msg("skipping invalid deck")
			continue
		}
		listings = append(listings, Listing{
			Filename:    entry.Name(),
			Name:        d.Name,
			Description: d.Description,
		})
	}
	return listings
}

// ListInvocations scans the invocation directory, returning a preview of
// each text as its description.
func (l *Loader) ListInvocations() []Listing {
	var listings []Listing
	entries, err := os.ReadDir(l.InvocationsDir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".md")) {
			continue
		}
		data, err := l.readFile(filepath.Join(l.InvocationsDir, name))
		if err != nil {
			continue
		}
		preview := strings.Join(strings.Fields(string(data)), " ")
		if len(preview) > 97 {
			preview = preview[:97] + "..."
		}
		if preview == "" {
			preview = "Empty invocation file"
		}
		listings = append(listings, Listing{
			Filename:    name,
			Name:        strings.TrimSuffix(strings.TrimSuffix(name, ".md"), ".txt"),
			Description: preview,
		})
	}
	return listings
}
