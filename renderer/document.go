package renderer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	md "github.com/nao1215/markdown"

	"github.com/investwise/investwise"
)

const reportTitle = "InvestWise Financial Report"

const disclaimer = "This is an automated financial report generated by InvestWise."

// GenerationError reports an I/O failure while producing the exported
// report file. It is the only hard error the rendering pipeline surfaces.
type GenerationError struct {
	Path string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("could not generate report %q: %v", e.Path, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// FileName returns the report file name for a user. The name is
// deterministic so a new export overwrites the previous one.
func FileName(username string) string {
	return username + "_Financial_Report.md"
}

// Document renders the report as a markdown document: a title block, the
// user and generation date, one heading per section with its items as a
// bullet list (a placeholder stays plain text), and a trailing disclaimer.
func Document(doc *investwise.ReportDocument, username string, generated time.Time) string {
	var buf bytes.Buffer
	m := md.NewMarkdown(&buf)

	m.H1(reportTitle)
	m.PlainText("Prepared for: " + username)
	m.PlainText("Date: " + generated.Format(time.RFC1123))

	for _, s := range doc.Sections {
		m.H2(s.Title)
		if s.Empty {
			m.PlainText(s.Items[0])
			continue
		}
		m.BulletList(s.Items...)
	}

	m.PlainText(md.Italic(disclaimer))
	return m.String()
}

// WriteDocument renders the report and writes it to dir under the user's
// report file name, returning the written path. An existing report for the
// same user is overwritten silently.
//
// The file is written to a temporary path and renamed into place, so a
// failed write never leaves a partial file at the target path. Any failure
// is returned as a *GenerationError.
func WriteDocument(dir string, doc *investwise.ReportDocument, username string, generated time.Time) (string, error) {
	target := filepath.Join(dir, FileName(username))
	content := Document(doc, username, generated)

	tmp, err := os.CreateTemp(dir, FileName(username)+".*.tmp")
	if err != nil {
		return "", &GenerationError{Path: target, Err: err}
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", &GenerationError{Path: target, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", &GenerationError{Path: target, Err: err}
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", &GenerationError{Path: target, Err: err}
	}
	return target, nil
}
