package renderer

import (
	"fmt"
	"strings"

	cashbook "github.com/supramk4h/PersonalCashbook"
)

// Voucher renders a single voucher with its lines.
func Voucher(l *cashbook.Ledger, tx cashbook.Transaction, currency string) string {
	var b strings.Builder
	status := "draft"
	if tx.Posted {
		status = "posted"
	}
	fmt.Fprintf(&b, "# Voucher #%d (%s) %s\n\n", tx.VoucherNo, status, tx.Date)
	if tx.Narration != "" {
		fmt.Fprintf(&b, "%s\n\n", tx.Narration)
	}
	header(&b, "Account", "Narration", "Debit", "Credit")
	for _, line := range tx.Lines {
		name := line.AccountID
		if acc := l.Account(line.AccountID); acc != nil {
			name = acc.Name
		}
		row(&b, name, line.Narration, cell(line.Dr, currency), cell(line.Cr, currency))
	}
	dr, cr := tx.Totals()
	row(&b, "", "Total", money(dr, currency), money(cr, currency))
	return b.String()
}

// Vouchers renders the voucher list in ledger order.
func Vouchers(txs []cashbook.Transaction, currency string) string {
	var b strings.Builder
	b.WriteString("# Vouchers\n\n")
	header(&b, "Voucher", "Date", "Status", "Narration", "Amount", "Id")
	for _, tx := range txs {
		status := "draft"
		if tx.Posted {
			status = "posted"
		}
		dr, _ := tx.Totals()
		row(&b, fmt.Sprintf("#%d", tx.VoucherNo), tx.Date.String(), status,
			tx.Narration, money(dr, currency), tx.ID)
	}
	if len(txs) == 0 {
		b.WriteString("\nNo vouchers recorded yet.\n")
	}
	return b.String()
}
