package renderer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	cashbook "github.com/supramk4h/PersonalCashbook"
)

// Balances renders the account balances table, ordered by account serial.
func Balances(l *cashbook.Ledger, balances map[string]decimal.Decimal, currency string) string {
	accounts := make([]cashbook.Account, len(l.Accounts))
	copy(accounts, l.Accounts)
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Serial < accounts[j].Serial })

	var b strings.Builder
	b.WriteString("# Balances\n\n")
	header(&b, "No", "Account", "Type", "Balance")
	var total decimal.Decimal
	for _, a := range accounts {
		bal := balances[a.ID]
		total = total.Add(bal)
		row(&b, strconv.Itoa(a.Serial), a.Name, a.Type, money(bal, currency))
	}
	row(&b, "", "Total", "", money(total, currency))
	return b.String()
}
