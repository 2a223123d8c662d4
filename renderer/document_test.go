package renderer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/investwise/investwise"
)

var generatedAt = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// headings parses markdown and returns each heading as "level:text",
// in document order.
func headings(t *testing.T, source []byte) []string {
	t.Helper()

	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var found []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			found = append(found, strings.Repeat("#", h.Level)+":"+string(h.Text(source)))
		}
		return ast.WalkContinue, nil
	})
	return found
}

func TestDocument_Structure(t *testing.T) {
	out := Document(testDocument(), "bob", generatedAt)

	got := headings(t, []byte(out))
	want := []string{
		"#:InvestWise Financial Report",
		"##:Financial Goals",
		"##:Connected Stock Accounts",
	}
	if len(got) != len(want) {
		t.Fatalf("got headings %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	for _, substr := range []string{
		"Prepared for: bob",
		"Date: " + generatedAt.Format(time.RFC1123),
		"Retirement: target $100,000.00",
		investwise.NoAccountsPlaceholder,
		disclaimer,
	} {
		if !strings.Contains(out, substr) {
			t.Errorf("document is missing %q", substr)
		}
	}
}

func TestWriteDocument_Idempotent(t *testing.T) {
	dir := t.TempDir()
	doc := testDocument()

	first, err := WriteDocument(dir, doc, "bob", generatedAt)
	if err != nil {
		t.Fatalf("first WriteDocument() error: %v", err)
	}
	second, err := WriteDocument(dir, doc, "bob", generatedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("second WriteDocument() error: %v", err)
	}

	if first != second {
		t.Errorf("paths differ: %q vs %q", first, second)
	}
	if want := filepath.Join(dir, "bob_Financial_Report.md"); first != want {
		t.Errorf("path = %q, want %q", first, want)
	}

	// Exactly one file, no temp leftovers, content from the last write.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("output dir holds %d entries, want 1", len(entries))
	}
	content, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if want := generatedAt.Add(time.Hour).Format(time.RFC1123); !strings.Contains(string(content), want) {
		t.Errorf("file was not overwritten, missing date %q", want)
	}
}

func TestWriteDocument_FailureLeavesNoFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "nested")

	_, err := WriteDocument(dir, testDocument(), "bob", generatedAt)
	if err == nil {
		t.Fatal("WriteDocument() into a missing directory should fail")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error type = %T, want *GenerationError", err)
	}
	if genErr.Unwrap() == nil {
		t.Error("GenerationError should wrap the underlying I/O error")
	}
	if _, statErr := os.Stat(genErr.Path); !os.IsNotExist(statErr) {
		t.Errorf("target %q exists after failed write", genErr.Path)
	}
}
