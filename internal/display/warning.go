package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/hevcparam/internal/logger"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // One line per problem (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning to out, with the title highlighted when out
// is a terminal.
func (w Warning) Display(out io.Writer) {
	pal := logger.NewPalette(out)
	var b strings.Builder

	b.WriteString(pal.Warn(w.Title))
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for _, item := range w.Items {
		b.WriteString("  - ")
		b.WriteString(item)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    ")
		b.WriteString(pal.Label("Suggestion:"))
		b.WriteString(" ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, b.String())
}
