// Package renderer turns an assembled investwise.ReportDocument into its
// concrete output forms: a display string for the terminal and a markdown
// document file for export.
package renderer

import (
	"strings"

	"github.com/investwise/investwise"
)

// Text renders the document as a plain display string: for each section an
// upper-cased title line, a separator line, then each item followed by a
// blank line. Pure and deterministic, no I/O.
func Text(doc *investwise.ReportDocument) string {
	var b strings.Builder
	for _, s := range doc.Sections {
		title := strings.ToUpper(s.Title)
		b.WriteString(title)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("=", len(title)))
		b.WriteByte('\n')
		for _, item := range s.Items {
			b.WriteString(item)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
