package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	cashbook "github.com/supramk4h/PersonalCashbook"
	"github.com/supramk4h/PersonalCashbook/renderer"
)

// lineSpec is one parsed -l flag value.
type lineSpec struct {
	account   string
	side      string // "dr" or "cr"
	amount    decimal.Decimal
	narration string
}

// lineFlags accumulates repeated -l flags.
type lineFlags []lineSpec

func (l *lineFlags) String() string { return fmt.Sprintf("%d line(s)", len(*l)) }

// Set parses "ACCOUNT:dr|cr:AMOUNT[:narration]".
func (l *lineFlags) Set(value string) error {
	parts := strings.SplitN(value, ":", 4)
	if len(parts) < 3 {
		return fmt.Errorf("invalid line %q: want ACCOUNT:dr|cr:AMOUNT[:narration]", value)
	}
	side := strings.ToLower(parts[1])
	if side != "dr" && side != "cr" {
		return fmt.Errorf("invalid line %q: side must be dr or cr", value)
	}
	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return fmt.Errorf("invalid line %q: bad amount: %w", value, err)
	}
	spec := lineSpec{account: parts[0], side: side, amount: amount}
	if len(parts) == 4 {
		spec.narration = parts[3]
	}
	*l = append(*l, spec)
	return nil
}

type voucherCmd struct {
	id        string
	no        int
	date      string
	narration string
	post      bool
	lines     lineFlags
}

func (*voucherCmd) Name() string     { return "voucher" }
func (*voucherCmd) Synopsis() string { return "create or edit a voucher" }
func (*voucherCmd) Usage() string {
	return `pcb voucher [-id <id>] [-no <number>] [-d <date>] [-m <narration>] [-post] -l <line> -l <line> ...

  Creates a voucher, or edits the one selected by -id. Each -l flag adds a
  line in the form ACCOUNT:dr|cr:AMOUNT[:narration]; at least two lines are
  required and debits must equal credits. Without -post the voucher is saved
  as a draft and stays out of balances and reports.

  A -no greater than or equal to the next voucher number also advances the
  counter, so explicit numbering and auto-numbering never collide.

Usage Examples:
$ pcb voucher -d 2025-03-01 -m "Opening float" -l Cash:dr:100 -l Capital:cr:100 -post

`
}

func (c *voucherCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Voucher id to edit; omit to create.")
	f.IntVar(&c.no, "no", 0, "Explicit voucher number; 0 auto-assigns.")
	f.StringVar(&c.date, "d", "", "Voucher date YYYY-MM-DD (default today).")
	f.StringVar(&c.narration, "m", "", "Voucher narration.")
	f.BoolVar(&c.post, "post", false, "Post the voucher instead of keeping it as a draft.")
	f.Var(&c.lines, "l", "Voucher line ACCOUNT:dr|cr:AMOUNT[:narration] (repeatable).")
}

func (c *voucherCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger := session.Ledger()

	var draft cashbook.Transaction
	if c.id != "" {
		existing := ledger.Transaction(c.id)
		if existing == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown voucher %q\n", c.id)
			return subcommands.ExitFailure
		}
		draft = *existing
	} else if len(c.lines) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -l flag is required to create a voucher.")
		return subcommands.ExitUsageError
	}

	if c.no != 0 {
		draft.VoucherNo = c.no
	}
	if c.date != "" {
		day, err := cashbook.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date '%s': %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
		draft.Date = day
	} else if draft.Date.IsZero() {
		draft.Date = cashbook.Today()
	}
	if c.narration != "" {
		draft.Narration = c.narration
	}
	if c.post {
		draft.Posted = true
	}

	if len(c.lines) > 0 {
		draft.Lines = nil
		for _, spec := range c.lines {
			acc, err := resolveAccount(ledger, spec.account)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			line := cashbook.TransactionLine{AccountID: acc.ID, Narration: spec.narration}
			if spec.side == "dr" {
				line.SetDr(spec.amount)
			} else {
				line.SetCr(spec.amount)
			}
			draft.Lines = append(draft.Lines, line)
		}
	}

	saved, err := session.SaveTransaction(draft)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving voucher: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Voucher(session.Ledger(), saved, Currency()))
	return subcommands.ExitSuccess
}
