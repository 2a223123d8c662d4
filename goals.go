package investwise

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
)

// GoalStore reads goal records from a JSONL file, one goal per line.
//
// The store is read-only and tolerant: a missing or unreadable file is the
// same as an empty one, and lines that do not decode are skipped. "No
// goals" and "no storage" are indistinguishable on purpose.
type GoalStore struct {
	path string
}

// NewGoalStore returns a store backed by the given goals file.
func NewGoalStore(path string) *GoalStore {
	return &GoalStore{path: path}
}

// LoadAllGoals returns every goal in the file, for all users, in file order.
func (s *GoalStore) LoadAllGoals() []Goal {
	f, err := os.Open(s.path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return DecodeGoals(f)
}

// LoadGoalsForUser returns the goals owned by user, in file order.
func (s *GoalStore) LoadGoalsForUser(user string) []Goal {
	var goals []Goal
	for _, g := range s.LoadAllGoals() {
		if g.Owner == user {
			goals = append(goals, g)
		}
	}
	return goals
}

// DecodeGoals decodes goal records from a stream of JSONL data. Empty and
// malformed lines are skipped.
func DecodeGoals(r io.Reader) []Goal {
	var goals []Goal
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var g Goal
		if err := json.Unmarshal(line, &g); err != nil {
			continue
		}
		goals = append(goals, g)
	}
	return goals
}
