package renderer

import (
	"testing"

	"github.com/investwise/investwise"
)

func testDocument() *investwise.ReportDocument {
	return &investwise.ReportDocument{
		Sections: []investwise.Section{
			{
				Title: investwise.GoalsSectionTitle,
				Items: []string{
					"Retirement: target $100,000.00",
					"Car: target $30,000.00, saved $5,000.00",
				},
			},
			{
				Title: investwise.AccountsSectionTitle,
				Items: []string{investwise.NoAccountsPlaceholder},
				Empty: true,
			},
		},
	}
}

func TestText_Layout(t *testing.T) {
	got := Text(testDocument())

	want := "FINANCIAL GOALS\n" +
		"===============\n" +
		"Retirement: target $100,000.00\n\n" +
		"Car: target $30,000.00, saved $5,000.00\n\n" +
		"CONNECTED STOCK ACCOUNTS\n" +
		"========================\n" +
		"No stock accounts connected.\n\n"

	if got != want {
		t.Errorf("Text() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestText_Deterministic(t *testing.T) {
	doc := testDocument()
	if first, second := Text(doc), Text(doc); first != second {
		t.Error("Text() is not deterministic for an identical document")
	}
}
