// Package cashbook provides the types and functions for keeping a personal
// double-entry ledger. It is designed to be local-first and auditable: the
// whole ledger lives in a single JSON snapshot that the user owns, and every
// derived figure can be recomputed from the recorded vouchers.
//
// The core functionalities include:
//   - Ledger Management: Recording accounts and double-entry vouchers, with
//     draft and posted states, voucher numbering, and account serials.
//   - Balance Engine: A pure projection that folds posted vouchers over the
//     accounts' opening balances to produce current balances.
//   - Report Builder: Filtered account statements with reconstructed opening
//     balances, chronological running balances, and aggregate totals.
//   - Data Persistence: Snapshot save/load plus timestamped backups with
//     bounded retention, handled through a pluggable store.
//
// This package serves as the foundational logic for the `pcb` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package cashbook
