package investwise

import (
	"errors"
	"fmt"
)

// ErrNoIdentity is returned when a report is requested without a user
// identity. It is surfaced before any storage access happens.
var ErrNoIdentity = errors.New("no user identity available")

// Section titles and placeholder items, in the exact wording the report
// renders. A section that ends up with no items still appears, holding its
// placeholder as the single item.
const (
	GoalsSectionTitle    = "Financial Goals"
	AccountsSectionTitle = "Connected Stock Accounts"

	NoGoalsPlaceholder    = "No goals found."
	NoAccountsPlaceholder = "No stock accounts connected."
)

// Section is one titled block of a report: an ordered list of line items.
// Empty is set when the section holds only its placeholder item.
type Section struct {
	Title string
	Items []string
	Empty bool
}

// ReportDocument is the assembled report: an ordered sequence of sections,
// goals first, then accounts. It is built fresh per request and is never
// persisted itself, only its rendered forms are.
type ReportDocument struct {
	Sections []Section
}

// Assembler composes store outputs into a ReportDocument. It never touches
// the renderers and has no side effects of its own.
type Assembler struct {
	Goals    *GoalStore
	Accounts *AccountStore
}

// Assemble builds the report for one user: that user's goals followed by
// that user's linked accounts. It fails only with ErrNoIdentity.
func (a *Assembler) Assemble(user string) (*ReportDocument, error) {
	if user == "" {
		return nil, ErrNoIdentity
	}
	return a.assemble(user, a.Goals.LoadGoalsForUser(user)), nil
}

// AssembleGlobal builds the report with the goals section covering all
// users while the accounts section stays scoped to user. This reproduces
// the admin style summary view of the upstream system and exists as an
// explicit mode so no call site selects it by accident.
func (a *Assembler) AssembleGlobal(user string) (*ReportDocument, error) {
	if user == "" {
		return nil, ErrNoIdentity
	}
	return a.assemble(user, a.Goals.LoadAllGoals()), nil
}

func (a *Assembler) assemble(user string, goals []Goal) *ReportDocument {
	goalsSec := Section{Title: GoalsSectionTitle}
	for _, g := range goals {
		goalsSec.Items = append(goalsSec.Items, g.String())
	}
	if len(goalsSec.Items) == 0 {
		goalsSec.Items = []string{NoGoalsPlaceholder}
		goalsSec.Empty = true
	}

	accountsSec := Section{Title: AccountsSectionTitle}
	for _, acc := range a.Accounts.LoadAccounts(user) {
		accountsSec.Items = append(accountsSec.Items, fmt.Sprintf("Platform: %s, Email: %s", acc.Platform, acc.Email))
	}
	if len(accountsSec.Items) == 0 {
		accountsSec.Items = []string{NoAccountsPlaceholder}
		accountsSec.Empty = true
	}

	return &ReportDocument{Sections: []Section{goalsSec, accountsSec}}
}
