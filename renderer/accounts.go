package renderer

import (
	"sort"
	"strconv"
	"strings"

	cashbook "github.com/supramk4h/PersonalCashbook"
)

// Accounts renders the chart of accounts, ordered by serial.
func Accounts(l *cashbook.Ledger, currency string) string {
	accounts := make([]cashbook.Account, len(l.Accounts))
	copy(accounts, l.Accounts)
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Serial < accounts[j].Serial })

	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	header(&b, "No", "Name", "Type", "Narration", "Opening", "Id")
	for _, a := range accounts {
		row(&b, strconv.Itoa(a.Serial), a.Name, a.Type, a.Narration,
			money(a.OpeningBalance, currency), a.ID)
	}
	if len(accounts) == 0 {
		b.WriteString("\nNo accounts defined yet.\n")
	}
	return b.String()
}
