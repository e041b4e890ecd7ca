package main

import (
	"os"

	"github.com/rpgo/tax-calculator/cmd/taxcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
