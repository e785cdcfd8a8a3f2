// Numeral is a command-line calculator for fixed-point decimals.
// It evaluates expressions and prints numbers grouped in the international
// or Indic style, or spelled out in words.
package main

import (
	"os"

	"github.com/govalues/numeral/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
