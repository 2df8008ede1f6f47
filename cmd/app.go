// Package cmd implements the CLI application to manage a personal cashbook.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	cashbook "github.com/supramk4h/PersonalCashbook"
)

// Environment variables understood by the application. Flags take precedence.
const (
	EnvDir      = "CASHBOOK_DIR"
	EnvCurrency = "CASHBOOK_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", "", "Path to the cashbook data directory (default $CASHBOOK_DIR or ~/.cashbook)")
var currencyFlag = flag.String("currency", "", "Display currency code (default $CASHBOOK_CURRENCY or USD)")
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// Commands is the list of all subcommands; a main package registers them and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&addAccountCmd{},
	&updateAccountCmd{},
	&deleteAccountCmd{},
	&accountsCmd{},
	&voucherCmd{},
	&deleteVoucherCmd{},
	&vouchersCmd{},
	&balancesCmd{},
	&reportCmd{},
	&summaryCmd{},
	&backupCmd{},
	&backupsCmd{},
	&restoreCmd{},
	&exportCmd{},
	&importCmd{},
	&resetCmd{},
}

func init() {
	// A .env file in the working directory may provide the variables above.
	_ = godotenv.Load()
}

// Dir resolves the data directory: flag, then environment, then ~/.cashbook.
func Dir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cashbook"
	}
	return filepath.Join(home, ".cashbook")
}

// Currency resolves the display currency: flag, then environment, then USD.
func Currency() string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	if cur := os.Getenv(EnvCurrency); cur != "" {
		return cur
	}
	return "USD"
}

// openSession opens the cashbook session backed by the data directory.
func openSession() (*cashbook.Session, error) {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
	store, err := cashbook.NewFileStore(Dir())
	if err != nil {
		return nil, err
	}
	return cashbook.Open(store, cashbook.NewIDGenerator())
}

// resolveAccount finds an account by name first, then by id.
func resolveAccount(l *cashbook.Ledger, nameOrID string) (*cashbook.Account, error) {
	if acc := l.AccountByName(nameOrID); acc != nil {
		return acc, nil
	}
	if acc := l.Account(nameOrID); acc != nil {
		return acc, nil
	}
	return nil, fmt.Errorf("unknown account %q", nameOrID)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
