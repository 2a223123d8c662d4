package investwise

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// LinkedAccount associates a user with a login on an external brokerage
// platform. Fields beyond the first three are preserved but never rendered.
type LinkedAccount struct {
	Username string
	Platform string
	Email    string
	Extra    []string
}

// minAccountFields is the minimum number of comma separated fields a row
// must have to be considered a valid account record.
const minAccountFields = 4

// AccountStore reads linked account records from a flat comma separated
// table, one record per line: username,platform,email,...
//
// The format has no header row and no escaping of embedded commas; the
// file is split on raw commas to stay compatible with existing files.
type AccountStore struct {
	path string
}

// NewAccountStore returns a store backed by the given accounts file.
func NewAccountStore(path string) *AccountStore {
	return &AccountStore{path: path}
}

// LoadAccounts returns the accounts whose username field equals user, in
// file order. A missing or unreadable file reads as no accounts.
func (s *AccountStore) LoadAccounts(user string) []LinkedAccount {
	f, err := os.Open(s.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var accounts []LinkedAccount
	for _, a := range DecodeAccounts(f) {
		if a.Username == user {
			accounts = append(accounts, a)
		}
	}
	return accounts
}

// DecodeAccounts decodes every well-formed account row from r, in order.
// Rows with fewer than minAccountFields fields are skipped silently.
func DecodeAccounts(r io.Reader) []LinkedAccount {
	var accounts []LinkedAccount
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		parts := strings.Split(line, ",")
		if len(parts) < minAccountFields {
			continue
		}
		accounts = append(accounts, LinkedAccount{
			Username: parts[0],
			Platform: parts[1],
			Email:    parts[2],
			Extra:    parts[3:],
		})
	}
	return accounts
}
