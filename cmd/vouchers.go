package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	cashbook "github.com/supramk4h/PersonalCashbook"
	"github.com/supramk4h/PersonalCashbook/renderer"
)

type vouchersCmd struct {
	drafts bool
}

func (*vouchersCmd) Name() string     { return "vouchers" }
func (*vouchersCmd) Synopsis() string { return "list vouchers" }
func (*vouchersCmd) Usage() string {
	return `pcb vouchers [-drafts]

  Lists vouchers ordered by date then voucher number. With -drafts only
  unposted vouchers are shown.

`
}

func (c *vouchersCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.drafts, "drafts", false, "Show only draft vouchers.")
}

func (c *vouchersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cashbook: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger := session.Ledger()

	var txs []cashbook.Transaction
	for _, tx := range ledger.Transactions {
		if c.drafts && tx.Posted {
			continue
		}
		txs = append(txs, tx)
	}
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date.Before(txs[j].Date)
		}
		return txs[i].VoucherNo < txs[j].VoucherNo
	})
	printMarkdown(renderer.Vouchers(txs, Currency()))
	return subcommands.ExitSuccess
}
