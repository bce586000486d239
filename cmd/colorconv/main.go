// Command colorconv converts colors between models and checks text
// contrast from the command line.
//
// Usage:
//
//	colorconv convert --from hex --to hsl '#3399cc'
//	colorconv convert --from rgb --to all 1 0.5 0
//	colorconv contrast '#777777' '#ffffff'
//	colorconv best-text '#ffcc00'
//	colorconv validate '#abcdef' '#abc'
//	colorconv swatch '#000000' '#ffcc00' -o swatch.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
