package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Session captures everything shown for one reading so it can be written
// to disk exactly as displayed.
type Session struct {
	Question   string
	SpreadName string
	Invocation string
	Grid       string
	Legend     string

	InterpretationRequested bool
	Interpretation          string
}

var codeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// sessionFilename builds YYYY-MM-DD-HHMMSS-codes.md from the bracketed
// codes in the legend. Reversal arrows become an R prefix.
func sessionFilename(legend string, now time.Time) string {
	var codes []string
	for _, m := range regexp.MustCompile(`\[([^\]]+)\]`).FindAllStringSubmatch(legend, -1) {
		code := strings.ReplaceAll(m[1], "↓", "R")
		code = codeChars.ReplaceAllString(code, "")
		if code != "" {
			codes = append(codes, code)
		}
	}
	suffix := "no-codes"
	if len(codes) > 0 {
		suffix = strings.Join(codes, "-")
	}
	return fmt.Sprintf("%s-%s.md", now.Format("2006-01-02-150405"), suffix)
}

// SaveSession writes the reading to a timestamped markdown file under dir,
// mirroring the terminal output, and returns the file path.
func SaveSession(dir string, s Session) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating save directory %q: %v", dir, err)
	}

	path := filepath.Join(dir, sessionFilename(s.Legend, time.Now()))

	var b strings.Builder
	if s.Invocation != "" {
		b.WriteString("# === Invocation ===\n")
		b.WriteString(s.Invocation + "\n\n")
	}
	b.WriteString("# === Tarot Reading ===\n\n")
	b.WriteString("**Question**: " + s.Question + "\n")
	b.WriteString("**Spread**: " + s.SpreadName + "\n\n")
	b.WriteString(s.Grid + "\n\n")
	b.WriteString(s.Legend + "\n")
	if s.InterpretationRequested {
		b.WriteString("\n# === Interpretation ===\n")
		if s.Interpretation != "" {
			b.WriteString(s.Interpretation + "\n")
		} else {
			b.WriteString("Interpretation was not available.\n")
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("saving session: %v", err)
	}
	log.Debug().Str("path", path).Msg("session saved")
	return path, nil
}
