package cashbook

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ReportFilter selects the vouchers and lines of a statement. A zero Start or
// End leaves that side of the range unbounded; an empty AccountID produces an
// unfiltered statement over every line.
type ReportFilter struct {
	AccountID string
	Start     Date
	End       Date
}

// ReportRow is one line of a statement. AccountName is only set on
// unfiltered statements; Balance is only meaningful on filtered ones.
type ReportRow struct {
	LineID      string
	VoucherNo   int
	Date        Date
	Narration   string
	AccountID   string
	AccountName string
	Dr          decimal.Decimal
	Cr          decimal.Decimal
	Balance     decimal.Decimal
}

// Report is an ordered, running-balance-annotated statement with footer
// totals. Filtered reports true when an account was selected: only those
// carry a per-row running balance, seeded from the reconstructed opening
// balance.
type Report struct {
	Filter         ReportFilter
	Filtered       bool
	Rows           []ReportRow
	OpeningBalance decimal.Decimal
	TotalDr        decimal.Decimal
	TotalCr        decimal.Decimal
	FinalBalance   decimal.Decimal
}

// BuildReport produces the statement for the given filter.
//
// Posted vouchers are ordered by (date, voucherNo); the voucher number breaks
// same-day ties, which makes the running balance deterministic. When an
// account is selected, the opening balance is reconstructed as of the start
// date: the account's nominal opening balance advanced by every matching line
// dated strictly before it. Without a start date the nominal opening balance
// is used as is.
func (l *Ledger) BuildReport(filter ReportFilter) Report {
	report := Report{Filter: filter, Filtered: filter.AccountID != ""}

	posted := make([]Transaction, 0, len(l.Transactions))
	for _, tx := range l.Transactions {
		if tx.Posted {
			posted = append(posted, tx)
		}
	}
	sort.SliceStable(posted, func(i, j int) bool {
		if posted[i].Date != posted[j].Date {
			return posted[i].Date.Before(posted[j].Date)
		}
		return posted[i].VoucherNo < posted[j].VoucherNo
	})

	if target := l.Account(filter.AccountID); target != nil {
		report.OpeningBalance = target.OpeningBalance
		if !filter.Start.IsZero() {
			// Advance the opening balance over the pre-range vouchers so the
			// statement carries the point-in-time balance forward.
			for _, tx := range posted {
				if !tx.Date.Before(filter.Start) {
					continue
				}
				for _, line := range tx.Lines {
					if line.AccountID == filter.AccountID {
						report.OpeningBalance = report.OpeningBalance.Add(line.Dr.Sub(line.Cr))
					}
				}
			}
		}
	}

	running := report.OpeningBalance
	for _, tx := range posted {
		if !filter.Start.IsZero() && tx.Date.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && tx.Date.After(filter.End) {
			continue
		}
		for _, line := range tx.Lines {
			if report.Filtered && line.AccountID != filter.AccountID {
				continue
			}
			row := ReportRow{
				LineID:    line.ID,
				VoucherNo: tx.VoucherNo,
				Date:      tx.Date,
				Narration: line.Narration,
				AccountID: line.AccountID,
				Dr:        line.Dr,
				Cr:        line.Cr,
			}
			if row.Narration == "" {
				row.Narration = tx.Narration
			}
			if report.Filtered {
				running = running.Add(line.Dr.Sub(line.Cr))
				row.Balance = running
			} else if acc := l.Account(line.AccountID); acc != nil {
				row.AccountName = acc.Name
			}
			report.TotalDr = report.TotalDr.Add(line.Dr)
			report.TotalCr = report.TotalCr.Add(line.Cr)
			report.Rows = append(report.Rows, row)
		}
	}
	report.FinalBalance = running
	return report
}
