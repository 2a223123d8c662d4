package investwise

import (
	"fmt"
	"strings"
)

// Goal is a single financial objective owned by one user. The core only
// reads goals; creating and editing them belongs to the goal management
// tooling that maintains the goals file.
type Goal struct {
	Owner    string `json:"user"`
	Name     string `json:"name"`
	Target   Money  `json:"target"`
	Saved    Money  `json:"saved,omitzero"`
	Deadline string `json:"deadline,omitempty"`
}

// String returns the display form of the goal, the line item used verbatim
// in report sections.
func (g Goal) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: target %s", g.Name, g.Target)
	if !g.Saved.IsZero() {
		fmt.Fprintf(&b, ", saved %s", g.Saved)
	}
	if g.Deadline != "" {
		fmt.Fprintf(&b, ", by %s", g.Deadline)
	}
	return b.String()
}
