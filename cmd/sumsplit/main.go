// Command sumsplit finds every way a list of constituent values can be
// summed to a list of target totals without using any constituent twice.
//
// Values and totals are supplied inline or as one-number-per-line files:
//
//	sumsplit --values 1,2,3,4,5,6 --totals 12,9
//	sumsplit --values-path ledger.txt --totals-path invoices.txt
//	sumsplit --test
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
