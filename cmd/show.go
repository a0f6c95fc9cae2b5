package cmd

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color" // This is the standard library color package
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/term"

	"github.com/arcanaland/oracle/internal/card"
	"github.com/arcanaland/oracle/internal/config"
	"github.com/arcanaland/oracle/internal/loader"

	colorize "github.com/fatih/color" // Rename this import to avoid the conflict
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_code]",
	Short: "Display a card with ANSI art",
	Long: `Show displays detailed information about a single card, with ANSI
terminal art when the deck provides card images.

Cards are addressed by notation code: roman numerals for major arcana
(XVII, 0) or suit letter plus value for minors (W3, CQ).

Examples:
  oracle show XVII
  oracle show --deck my-deck CQ`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ld := loader.FromConfig(cfg)

		deckName, _ := cmd.Flags().GetString("deck")
		d, err := resolveDeck(ld, deckName)
		if err != nil {
			return err
		}

		results, err := d.ResolveCodes(args[0])
		if err != nil {
			return err
		}
		if len(results) != 1 {
			return fmt.Errorf("show takes exactly one card code")
		}
		c := results[0].Card

		var ansiArt string
		if c.ImagePath != "" {
			imagePath := c.ImagePath
			if !filepath.IsAbs(imagePath) {
				imagePath = filepath.Join(d.Dir, imagePath)
			}
			if art, err := cachedAnsiArt(imagePath); err == nil {
				ansiArt = art
			} else {
				fmt.Fprintf(os.Stderr, "Warning: could not render card image: %v\n", err)
			}
		}

		displayCard(c, ansiArt, d.Name)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("deck", "d", "", "Custom deck file to show the card from")
}

// cachedAnsiArt returns ANSI art for an image, generating and caching it
// under the application cache directory on first use.
func cachedAnsiArt(imagePath string) (string, error) {
	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %v", err)
	}

	cacheFilename := fmt.Sprintf("%x.ansi", md5.Sum([]byte(imagePath)))
	cachePath := filepath.Join(cacheDir, cacheFilename)

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	art, err := generateAnsiArt(imagePath)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI cache: %v", err)
	}
	return art, nil
}

// generateAnsiArt converts an image file to ANSI art
func generateAnsiArt(imagePath string) (string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	return imageToAnsi(img, 40, 32), nil
}

// imageToAnsi converts an image to ANSI art using half-block characters
func imageToAnsi(img image.Image, width, height int) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// Four pixels make up one character cell
			c1 := getColorAt(resized, x, y)
			c2 := getColorAt(resized, x+1, y)
			c3 := getColorAt(resized, x, y+1)
			c4 := getColorAt(resized, x+1, y+1)

			col1, _ := colorful.MakeColor(c1)
			col2, _ := colorful.MakeColor(c2)
			col3, _ := colorful.MakeColor(c3)
			col4, _ := colorful.MakeColor(c4)

			// Top pixels as foreground, bottom pixels as background
			fg := colorfulToColor(averageColor(col1, col2))
			bg := colorfulToColor(averageColor(col3, col4))

			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255} // Return black for out-of-bounds
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

// colorfulToColor converts a colorful.Color to a standard color.Color
func colorfulToColor(c colorful.Color) color.Color {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

// ansiColorString formats a character with truecolor ANSI codes
func ansiColorString(char rune, fg, bg color.Color) string {
	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	// RGBA() returns values in range 0-65535
	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

func getSuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Wands:
		return ""
	case card.Cups:
		return ""
	case card.Swords:
		return "󰞇"
	case card.Pentacles:
		return "󱙧"
	default:
		return "•"
	}
}

// getArcanaSymbol returns a symbol for the arcana type
func getArcanaSymbol(isMinor bool) string {
	if isMinor {
		return "󱀝"
	}
	return ""
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		result = append(result, currentLine)
	}
	return result
}

// displayCard displays the card information next to its ANSI art
func displayCard(c card.Card, ansiArt, deckName string) {
	ansiLines := strings.Split(strings.TrimRight(ansiArt, "\n"), "\n")
	if ansiArt == "" {
		ansiLines = nil
	}
	maxAnsiWidth := 0
	for _, line := range ansiLines {
		// Visible width excludes ANSI escape sequences
		visibleWidth := len(stripAnsi(line))
		if visibleWidth > maxAnsiWidth {
			maxAnsiWidth = visibleWidth
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	var infoLines []string

	isMinor := !c.IsMajor()
	arcanaSymbol := getArcanaSymbol(isMinor)

	infoLines = append(infoLines, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", c.Name))
	infoLines = append(infoLines, colorize.CyanString("Deck: ")+colorize.HiWhiteString(deckName))
	infoLines = append(infoLines, colorize.CyanString("Code: ")+colorize.HiWhiteString(c.NotationCode()))

	if c.IsMajor() {
		infoLines = append(infoLines, colorize.CyanString("Type: ")+
			colorize.HiWhiteString("Major Arcana · %s", arcanaSymbol))
	} else {
		infoLines = append(infoLines, colorize.CyanString("Type: ")+
			colorize.HiWhiteString("Minor Arcana · %s", arcanaSymbol))
		infoLines = append(infoLines, colorize.CyanString("Suit: ")+
			colorize.HiWhiteString("%s · %s", c.Suit.Title(), getSuitSymbol(c.Suit)))
		infoLines = append(infoLines, colorize.CyanString("Rank: ")+colorize.HiWhiteString(c.Rank.Title()))
	}

	// ANSI art on the left, info on the right
	spacing := 4
	infoStartCol := maxAnsiWidth + spacing

	infoWidth := width - infoStartCol - 2 // Leave a small margin
	if infoWidth < 20 {
		infoWidth = 20 // Minimum width for text
	}

	if c.Upright != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.CyanString("Upright:"))
		infoLines = append(infoLines, wrapText(c.Upright, infoWidth)...)
	}
	if c.Reversed != "" {
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, colorize.CyanString("Reversed:"))
		infoLines = append(infoLines, wrapText(c.Reversed, infoWidth)...)
	}

	fmt.Println()

	maxLines := max(len(ansiLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(ansiLines) {
			fmt.Print(ansiLines[i])
			visibleWidth := len(stripAnsi(ansiLines[i]))
			fmt.Print(strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}

		fmt.Println()
	}

	fmt.Println()
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
