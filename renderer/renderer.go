// Package renderer turns cashbook projections into markdown strings. It has
// no state and performs no I/O; commands decide where the markdown goes.
package renderer

import (
	"strings"

	"github.com/shopspring/decimal"
	cashbook "github.com/supramk4h/PersonalCashbook"
)

// money formats a decimal in the display currency, e.g. "$1,234.50".
func money(v decimal.Decimal, currency string) string {
	return cashbook.M(v, currency).String()
}

// cell renders a decimal amount for a dr/cr column: empty amounts show as "-"
// the way a paper cashbook leaves a column blank.
func cell(v decimal.Decimal, currency string) string {
	if v.IsZero() {
		return "-"
	}
	return money(v, currency)
}

// row writes one markdown table row.
func row(b *strings.Builder, cells ...string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

// header writes a markdown table header with its separator line.
func header(b *strings.Builder, cells ...string) {
	row(b, cells...)
	seps := make([]string, len(cells))
	for i := range seps {
		seps[i] = "---"
	}
	row(b, seps...)
}
