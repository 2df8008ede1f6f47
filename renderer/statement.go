package renderer

import (
	"fmt"
	"strings"

	cashbook "github.com/supramk4h/PersonalCashbook"
)

// Statement renders a report to markdown. Account-filtered statements carry
// the opening/closing balance banner and a running balance column; unfiltered
// ones show the account of each line instead.
func Statement(r cashbook.Report, currency string) string {
	var b strings.Builder
	b.WriteString("# Statement\n\n")

	if r.Filtered {
		fmt.Fprintf(&b, "Opening Balance: %s, Closing Balance: %s\n\n",
			money(r.OpeningBalance, currency), money(r.FinalBalance, currency))
		header(&b, "Date", "Voucher", "Narration", "Debit", "Credit", "Balance")
		for _, e := range r.Rows {
			row(&b, e.Date.String(), fmt.Sprintf("#%d", e.VoucherNo), e.Narration,
				cell(e.Dr, currency), cell(e.Cr, currency), money(e.Balance, currency))
		}
	} else {
		header(&b, "Date", "Voucher", "Account", "Narration", "Debit", "Credit")
		for _, e := range r.Rows {
			row(&b, e.Date.String(), fmt.Sprintf("#%d", e.VoucherNo), e.AccountName,
				e.Narration, cell(e.Dr, currency), cell(e.Cr, currency))
		}
	}

	if len(r.Rows) == 0 {
		b.WriteString("\nNo records found for the selected criteria.\n")
	}
	fmt.Fprintf(&b, "\nTotals: debit %s, credit %s\n",
		money(r.TotalDr, currency), money(r.TotalCr, currency))
	return b.String()
}
