package renderer

import (
	"fmt"
	"strconv"
	"strings"

	cashbook "github.com/supramk4h/PersonalCashbook"
)

// Summary renders the dashboard overview.
func Summary(s cashbook.Summary, currency string) string {
	var b strings.Builder
	b.WriteString("# Cashbook Summary\n\n")
	header(&b, "Cash", "Bank", "Accounts", "Posted", "Drafts")
	row(&b,
		money(s.CashTotal, currency),
		money(s.BankTotal, currency),
		strconv.Itoa(s.Accounts),
		strconv.Itoa(s.Posted),
		strconv.Itoa(s.Drafts))
	return b.String()
}

// BackupList renders the retained backups, newest first.
func BackupList(infos []cashbook.BackupInfo) string {
	var b strings.Builder
	b.WriteString("# Backups\n\n")
	header(&b, "Key", "Time", "Kind", "Accounts", "Vouchers")
	for _, info := range infos {
		row(&b, info.Key, info.Timestamp, string(info.Kind),
			strconv.Itoa(info.Accounts), strconv.Itoa(info.Transactions))
	}
	if len(infos) == 0 {
		b.WriteString("\nNo backups yet.\n")
	}
	fmt.Fprintf(&b, "\n%d backup(s) retained.\n", len(infos))
	return b.String()
}
